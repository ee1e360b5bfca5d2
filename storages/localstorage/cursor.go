package localstorage

import (
	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"github.com/adamluzsi/fleet"
	"github.com/adamluzsi/fleet/iterators"
)

var _ iterators.Cursor[fleet.Vehicle] = (*BucketCursor)(nil)

// NewBucketCursor adapts the native cursor of a bolt bucket.
// The bucket belongs to a transaction, and the cursor must not be used after the transaction is closed.
func NewBucketCursor(b *bolt.Bucket) *BucketCursor {
	c := &BucketCursor{cursor: b.Cursor()}
	c.First()
	return c
}

// BucketCursor yields the vehicles of a bucket in key order.
// A record that can't be decoded ends the traversal, and the cause is reported by Err.
type BucketCursor struct {
	cursor *bolt.Cursor

	key     []byte
	current fleet.Vehicle
	err     error
	closed  bool
}

func (c *BucketCursor) First() {
	if c.closed {
		return
	}
	c.err = nil
	c.load(c.cursor.First())
}

func (c *BucketCursor) Next() {
	if c.IsDone() {
		return
	}
	c.load(c.cursor.Next())
}

func (c *BucketCursor) IsDone() bool {
	return c.closed || c.err != nil || c.key == nil
}

func (c *BucketCursor) Current() fleet.Vehicle {
	if c.IsDone() {
		panic(iterators.ErrDone)
	}
	return c.current
}

func (c *BucketCursor) Err() error {
	return c.err
}

// Close drops the position.
// The transaction and the bucket remain owned by whoever opened them.
func (c *BucketCursor) Close() error {
	c.closed = true
	c.key, c.current = nil, nil
	return nil
}

func (c *BucketCursor) load(key, value []byte) {
	c.key, c.current = key, nil
	if key == nil {
		return
	}

	rec, err := decodeRecord(value)
	if err != nil {
		c.err = errors.Wrapf(err, "key %x", key)
		return
	}

	v, err := rec.Vehicle()
	if err != nil {
		c.err = errors.Wrapf(err, "key %x", key)
		return
	}
	c.current = v
}
