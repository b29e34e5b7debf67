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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDishRecord indicates a DishRecord failed validation.
	ErrInvalidDishRecord = errors.New("invalid dish record")

	// ErrEmptyDishName indicates the Name field is empty.
	ErrEmptyDishName = errors.New("dish name cannot be empty")

	// ErrEmptyRestaurant indicates the Restaurant field is empty.
	ErrEmptyRestaurant = errors.New("restaurant name cannot be empty")

	// ErrNegativePrice indicates the Price field is negative.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNegativeOrdinal indicates the Ordinal field is negative.
	ErrNegativeOrdinal = errors.New("ordinal cannot be negative")

	// ErrInvalidMatchKind indicates an invalid MatchKind value.
	ErrInvalidMatchKind = errors.New("invalid match kind")
)
