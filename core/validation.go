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

import "fmt"

// ValidateDishRecord validates a DishRecord according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Restaurant must not be empty
//   - Price must not be negative (0 means unlisted)
//   - Ordinal must not be negative
//
// NOT validated (populated later):
//   - Vector (can be empty until the ingestion pipeline runs)
//   - ID (0 is valid before the catalog assigns content IDs)
func ValidateDishRecord(record *DishRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidDishRecord)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDishRecord, ErrEmptyDishName)
	}

	if record.Restaurant == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDishRecord, ErrEmptyRestaurant)
	}

	if record.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDishRecord, ErrNegativePrice)
	}

	if record.Ordinal < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDishRecord, ErrNegativeOrdinal)
	}

	return nil
}

// ValidateMatchKind validates that a MatchKind has a valid value.
func ValidateMatchKind(kind MatchKind) error {
	if kind < MatchExact || kind > MatchSemantic {
		return fmt.Errorf("%w: value %d", ErrInvalidMatchKind, kind)
	}
	return nil
}
