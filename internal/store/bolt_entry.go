package store

import (
	"bytes"
	"cmp"
	"context"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type boltEntryRepository struct {
	db     *BoltDB
	logger *logger.Logger
}

// NewBoltEntryRepository constructs an [EntryRepository] over a bbolt file.
func NewBoltEntryRepository(db *BoltDB, logger *logger.Logger) EntryRepository {
	return &boltEntryRepository{db: db, logger: logger}
}

func (r *boltEntryRepository) Insert(ctx context.Context, entry models.Entry) (string, error) {
	data, err := encodeRecord(entry)
	if err != nil {
		return "", err
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		key := entryKey(entry.OwnerID, entry.ID)
		if b.Get(key) != nil {
			return ErrEntryAlreadyExists
		}
		return b.Put(key, data)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltEntryRepository.Insert").
			Str("entry_id", entry.ID).
			Msg("failed to insert entry")
		return "", err
	}

	return entry.ID, nil
}

func (r *boltEntryRepository) FindByOwner(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	prefix := ownerKey(ownerID)

	err := r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketEntries).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var e models.Entry
			if err := decodeRecord(v, &e); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltEntryRepository.FindByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to list entries")
		return nil, err
	}

	slices.SortFunc(entries, func(a, b models.Entry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return entries, nil
}

func (r *boltEntryRepository) FindByID(ctx context.Context, ownerID int64, id string) (models.Entry, error) {
	var e models.Entry

	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketEntries).Get(entryKey(ownerID, id))
		if data == nil {
			return ErrEntryNotFound
		}
		return decodeRecord(data, &e)
	})
	if err != nil {
		return models.Entry{}, err
	}

	return e, nil
}

func (r *boltEntryRepository) Update(ctx context.Context, entry models.Entry) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		key := entryKey(entry.OwnerID, entry.ID)

		data := b.Get(key)
		if data == nil {
			return ErrEntryNotFound
		}

		var stored models.Entry
		if err := decodeRecord(data, &stored); err != nil {
			return err
		}
		entry.CreatedAt = stored.CreatedAt

		updated, err := encodeRecord(entry)
		if err != nil {
			return err
		}
		return b.Put(key, updated)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltEntryRepository.Update").
			Str("entry_id", entry.ID).
			Msg("failed to update entry")
	}

	return err
}

func (r *boltEntryRepository) DeleteByID(ctx context.Context, ownerID int64, id string) (bool, error) {
	var existed bool

	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		key := entryKey(ownerID, id)
		existed = b.Get(key) != nil
		if !existed {
			return nil
		}
		return b.Delete(key)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltEntryRepository.DeleteByID").
			Str("entry_id", id).
			Msg("failed to delete entry")
		return false, err
	}

	return existed, nil
}
