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

package storage

import "errors"

var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStorageClosed indicates an operation was attempted on a closed
	// repository.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a record could not be serialized or
	// deserialized.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrDuplicateRecord indicates a record with the same content ID already
	// exists in the catalog.
	ErrDuplicateRecord = errors.New("duplicate record")
)
