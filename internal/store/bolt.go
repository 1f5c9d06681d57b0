package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var (
	bucketEntries  = []byte("entries")
	bucketKeyrings = []byte("keyrings")
)

// recordEncoding keeps nanoseconds so ordering by creation time survives a
// round trip.
var recordEncoding = mustEncMode(cbor.EncOptions{Time: cbor.TimeRFC3339Nano})

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// BoltDB is a single-file local store. Records are CBOR encoded.
type BoltDB struct {
	*bbolt.DB
	logger *logger.Logger
}

// NewConnectBolt opens (or creates) the bbolt file at path and makes sure
// every bucket exists.
func NewConnectBolt(path string, log *logger.Logger) (*BoltDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("error creating DB directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewConnectBolt").Msg("error opening bolt database")
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketEntries, bucketKeyrings} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bolt buckets: %w", err)
	}
	log.Debug().Str("func", "NewConnectBolt").Msg("opened bolt database")

	return &BoltDB{DB: db, logger: log}, nil
}

func ownerKey(ownerID int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(ownerID))
	return key
}

// entryKey sorts all entries of an owner next to each other.
func entryKey(ownerID int64, id string) []byte {
	return append(ownerKey(ownerID), id...)
}

func encodeRecord(v any) ([]byte, error) {
	data, err := recordEncoding.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}
	return data, nil
}

func decodeRecord(data []byte, v any) error {
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	return nil
}
