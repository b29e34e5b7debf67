// Copyright 2025 Culinate
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package menu parses markdown restaurant guides into dish records.
//
// A guide is a markdown document with numbered restaurant sections
// ("## 1. Name ⭐⭐⭐⭐"), bold metadata lines ("**Cuisine:** Thai"),
// bold category headers ("**Suppen (Soups):**") and dash-prefixed menu
// items ("- Tom Kha Gai - 3€"). Lines that don't match any of these are
// skipped, so real-world guides with prose between sections parse fine.
//
// Parsing preserves document order: Guide.Records returns the flat dish
// stream in the order it appears on the page, which downstream code uses
// as the stable catalog order.
package menu
