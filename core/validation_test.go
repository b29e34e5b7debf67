package core

import (
	"errors"
	"testing"
)

func TestValidateDishRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *DishRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &DishRecord{
				Name:       "Pho Bo",
				Restaurant: "Goc Pho",
				Price:      14,
			},
			wantErr: nil,
		},
		{
			name: "valid record without price",
			record: &DishRecord{
				Name:       "Tom Kha",
				Restaurant: "Thong Thai",
			},
			wantErr: nil,
		},
		{
			name: "valid record with empty vector",
			record: &DishRecord{
				Name:       "Dan Dan Noodles",
				Restaurant: "Pak Choi",
				Vector:     nil,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidDishRecord,
		},
		{
			name: "empty dish name",
			record: &DishRecord{
				Restaurant: "Goc Pho",
			},
			wantErr: ErrEmptyDishName,
		},
		{
			name: "empty restaurant",
			record: &DishRecord{
				Name: "Pho Bo",
			},
			wantErr: ErrEmptyRestaurant,
		},
		{
			name: "negative price",
			record: &DishRecord{
				Name:       "Pho Bo",
				Restaurant: "Goc Pho",
				Price:      -1,
			},
			wantErr: ErrNegativePrice,
		},
		{
			name: "negative ordinal",
			record: &DishRecord{
				Name:       "Pho Bo",
				Restaurant: "Goc Pho",
				Ordinal:    -1,
			},
			wantErr: ErrNegativeOrdinal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDishRecord(tt.record)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDishRecord() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDishRecord() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidDishRecord) {
				t.Errorf("ValidateDishRecord() error = %v, want wrapped ErrInvalidDishRecord", err)
			}
		})
	}
}

func TestValidateMatchKind(t *testing.T) {
	for _, kind := range []MatchKind{MatchExact, MatchPartial, MatchFuzzy, MatchKeyword, MatchSemantic} {
		if err := ValidateMatchKind(kind); err != nil {
			t.Errorf("ValidateMatchKind(%v) error = %v, want nil", kind, err)
		}
	}

	for _, kind := range []MatchKind{0, -1, 6, 99} {
		if err := ValidateMatchKind(kind); !errors.Is(err, ErrInvalidMatchKind) {
			t.Errorf("ValidateMatchKind(%d) error = %v, want ErrInvalidMatchKind", kind, err)
		}
	}
}
