package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

type badgerStore struct {
	db *badger.DB
}

func openBadger(dir string) (*badgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Put(rec Record) error {
	key, value, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (s *badgerStore) List() ([]Record, error) {
	var records []Record

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return errors.Wrap(err, "read value")
			}
			rec, err := decodeRecord(value)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
