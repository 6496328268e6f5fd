package kvdb

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

type boltStore struct {
	db *bbolt.DB
}

func openBolt(path string) (*boltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Put(rec Record) error {
	key, value, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return errors.Wrap(err, "create bucket")
		}
		return b.Put(key, value)
	})
}

func (s *boltStore) List() ([]Record, error) {
	var records []Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		// bbolt 커서는 키 순서로 순회
		return b.ForEach(func(_, v []byte) error {
			rec, err := decodeRecord(v)
			if err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	return records, err
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
