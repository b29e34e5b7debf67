package storage

import (
	"context"

	"github.com/culinate/dishfinder/core"
)

// CatalogRepository provides operations for managing the dish catalog.
// Implementations must be thread-safe and support concurrent readers; the
// catalog is write-once (load) and read-many (search).
type CatalogRepository interface {
	// AddDishRecords adds one or more dish records to the catalog.
	// Assigns sequential ordinals in insertion order and content-based IDs
	// derived from the record tuple. Returns the records with ordinals and
	// IDs populated.
	AddDishRecords(ctx context.Context, records ...*core.DishRecord) ([]*core.DishRecord, error)

	// UpdateDishRecords overwrites existing records, keyed by ordinal. Used
	// by the ingestion pipeline to store embedding vectors.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateDishRecords(ctx context.Context, records ...*core.DishRecord) ([]*core.DishRecord, error)

	// GetDishRecord retrieves a single record by its content ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetDishRecord(ctx context.Context, id core.ID) (*core.DishRecord, error)

	// ListDishRecords retrieves all records in catalog (insertion) order.
	ListDishRecords(ctx context.Context) ([]*core.DishRecord, error)

	// CountDishRecords returns the number of records in the catalog.
	CountDishRecords(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
