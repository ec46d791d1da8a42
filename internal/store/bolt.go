package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketCaptures = []byte("captures")

// BoltStore implements Store using BoltDB.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates a BoltDB database.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCaptures)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// captureKey encodes id big-endian so cursor order is insertion order.
func captureKey(id uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, id)
}

func (s *BoltStore) SaveCapture(c *Capture) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketCaptures)
		}
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		c.ID = id
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		return b.Put(captureKey(id), data)
	})
}

func (s *BoltStore) GetCapture(id uint64) (*Capture, error) {
	var c Capture
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketCaptures)
		}
		data := b.Get(captureKey(id))
		if data == nil {
			return fmt.Errorf("capture %d: %w", id, ErrNotFound)
		}
		return json.Unmarshal(data, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *BoltStore) ListCaptures(limit int) ([]*Capture, error) {
	var captures []*Capture
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return nil // no bucket = no captures
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(captures) >= limit {
				break
			}
			var capture Capture
			if err := json.Unmarshal(v, &capture); err != nil {
				return fmt.Errorf("capture %d: %w", binary.BigEndian.Uint64(k), err)
			}
			captures = append(captures, &capture)
		}
		return nil
	})
	return captures, err
}

func (s *BoltStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	})
	return n, err
}

func (s *BoltStore) Prune(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	var removed int
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return nil
		}
		excess := b.Stats().KeyN - keep
		c := b.Cursor()
		for k, _ := c.First(); k != nil && removed < excess; k, _ = c.First() {
			if err := b.Delete(k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	return removed, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
