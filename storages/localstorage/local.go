// Package localstorage persists vehicles into a local bolt database file.
package localstorage

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"github.com/adamluzsi/fleet"
	"github.com/adamluzsi/fleet/iterators"
)

var bucketName = []byte("vehicles")

func NewLocal(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "localstorage: opening %s", path)
	}
	return &Local{DB: db}, nil
}

type Local struct {
	DB *bolt.DB
}

// Close the Local database and release the file lock
func (storage *Local) Close() error {
	return storage.DB.Close()
}

// Store appends the vehicle to the end of the stored fleet.
func (storage *Local) Store(v fleet.Vehicle) error {
	rec, err := NewRecord(v)
	if err != nil {
		return err
	}

	value, err := rec.encode()
	if err != nil {
		return err
	}

	return storage.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		return bucket.Put(uintToBytes(seq), value)
	})
}

// View opens a read transaction, and passes a cursor over the stored vehicles to fn.
// The vehicles are yielded in the order they were stored.
//
// The cursor is only valid until fn returns, and it is closed by View afterwards.
// fn may wrap it into decorators and close them on its own.
func (storage *Local) View(fn func(iterators.Cursor[fleet.Vehicle]) error) error {
	return storage.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fn(iterators.Empty[fleet.Vehicle]())
		}

		c := NewBucketCursor(bucket)
		defer c.Close()
		return fn(c)
	})
}

// Count returns how many vehicles are stored.
func (storage *Local) Count() (int, error) {
	var n int
	err := storage.View(func(c iterators.Cursor[fleet.Vehicle]) error {
		var err error
		n, err = iterators.Count(c)
		return err
	})
	return n, err
}

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
