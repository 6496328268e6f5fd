package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Put(rec Record) error {
	key, value, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return s.db.Set(key, value, pebble.Sync)
}

func (s *pebbleStore) List() ([]Record, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "new iterator")
	}
	defer it.Close()

	var records []Record
	for it.First(); it.Valid(); it.Next() {
		// Value() 는 Next() 전까지만 유효, decode 가 복사한다
		rec, err := decodeRecord(it.Value())
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, it.Error()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
