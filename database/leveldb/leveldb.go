// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

// Package leveldb adapts a goleveldb instance to the store contract, giving
// the journal a durable on-disk backing store.
package leveldb

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/onther-tech/journalkv/database"
)

var _ database.Store = (*Database)(nil)

// Database is a persistent key/value store backed by LevelDB.
type Database struct {
	db *leveldb.DB
}

// New opens (creating if necessary) the LevelDB database at [path].
func New(path string) (*Database, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, err
	}
	return &Database{db: db}, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	return db.db.Has(key, nil)
}

func (db *Database) Get(key []byte) ([]byte, error) {
	value, err := db.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	return value, err
}

func (db *Database) Put(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

func (db *Database) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

// Close flushes and closes the underlying LevelDB instance.
func (db *Database) Close() error {
	return db.db.Close()
}
