package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/culinate/dishfinder/core"
	"github.com/culinate/dishfinder/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend     *Backend
	ordinalSeq  *badger.Sequence
	ownsBackend bool
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a CatalogRepository on an existing backend.
// The caller remains responsible for closing the backend.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	ordinalSeq, err := backend.GetSequence(dishOrdinalSeq)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{
		backend:    backend,
		ordinalSeq: ordinalSeq,
	}, nil
}

// Close releases the ordinal sequence, and the backend if this repository
// owns it.
func (r *CatalogRepository) Close() error {
	err := r.ordinalSeq.Release()
	if r.ownsBackend {
		if closeErr := r.backend.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

// AddDishRecords adds one or more dish records to the catalog. Ordinals are
// assigned in insertion order starting at zero; IDs are derived from the
// record tuple so reloading the same guide yields the same IDs.
func (r *CatalogRepository) AddDishRecords(ctx context.Context, records ...*core.DishRecord) ([]*core.DishRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			record.Id = core.IDFromContent(record.Tuple())

			// Reject tuples already in the catalog
			idKey := makeDishIDKey(record.Id)
			if _, err := tx.Get(idKey); err == nil {
				return storage.ErrDuplicateRecord
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			nextOrd, err := r.ordinalSeq.Next()
			if err != nil {
				return err
			}
			record.Ordinal = int(nextOrd)

			// Store primary record
			key := makeDishRecordKey(record.Ordinal)
			value := storage.MarshalDishRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update ID index
			if err := tx.Set(idKey, encodeOrdinal(record.Ordinal)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateDishRecords overwrites existing records, keyed by ordinal.
func (r *CatalogRepository) UpdateDishRecords(ctx context.Context, records ...*core.DishRecord) ([]*core.DishRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeDishRecordKey(record.Ordinal)

			old, err := r.readDishRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			value := storage.MarshalDishRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update the ID index if the tuple changed
			if old.Id != record.Id {
				if err := tx.Delete(makeDishIDKey(old.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeDishIDKey(record.Id), encodeOrdinal(record.Ordinal)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetDishRecord retrieves a single dish record by its content ID.
func (r *CatalogRepository) GetDishRecord(ctx context.Context, id core.ID) (*core.DishRecord, error) {
	var result *core.DishRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDishIDKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var ordinal int
		if err := item.Value(func(val []byte) error {
			var decodeErr error
			ordinal, decodeErr = decodeOrdinal(val)
			return decodeErr
		}); err != nil {
			return err
		}

		result, err = r.readDishRecord(tx, makeDishRecordKey(ordinal))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListDishRecords retrieves all dish records in catalog order.
func (r *CatalogRepository) ListDishRecords(ctx context.Context) ([]*core.DishRecord, error) {
	var results []*core.DishRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(dishRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.DishRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalDishRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)
	return results, err
}

// CountDishRecords returns the number of records in the catalog.
func (r *CatalogRepository) CountDishRecords(ctx context.Context) (int, error) {
	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(dishRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readDishRecord reads a dish record from the transaction.
func (r *CatalogRepository) readDishRecord(tx *badger.Txn, key []byte) (*core.DishRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.DishRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalDishRecord(val)
		return unmarshalErr
	})
	return record, err
}
