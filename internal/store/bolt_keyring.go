package store

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type boltKeyringRepository struct {
	db     *BoltDB
	logger *logger.Logger
}

// NewBoltKeyringRepository constructs a [KeyringRepository] over a bbolt file.
func NewBoltKeyringRepository(db *BoltDB, logger *logger.Logger) KeyringRepository {
	return &boltKeyringRepository{db: db, logger: logger}
}

func (r *boltKeyringRepository) LoadKeyring(ctx context.Context, ownerID int64) (models.Keyring, error) {
	var k models.Keyring

	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketKeyrings).Get(ownerKey(ownerID))
		if data == nil {
			return ErrKeyringNotFound
		}
		return decodeRecord(data, &k)
	})
	if err != nil {
		return models.Keyring{}, err
	}

	return k, nil
}

func (r *boltKeyringRepository) SaveKeyring(ctx context.Context, keyring models.Keyring) error {
	data, err := encodeRecord(keyring)
	if err != nil {
		return err
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketKeyrings)
		key := ownerKey(keyring.OwnerID)
		if b.Get(key) != nil {
			return ErrKeyringAlreadyExists
		}
		return b.Put(key, data)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltKeyringRepository.SaveKeyring").
			Msg("failed to save keyring")
	}

	return err
}
