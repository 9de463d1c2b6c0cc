// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avadb adapts an avalanchego database to the store contract, so a
// journal can layer over whatever database a VM was handed (memdb, leveldb,
// rocksdb) the same way versiondb does.
package avadb

import (
	"errors"

	avadatabase "github.com/ava-labs/avalanchego/database"

	"github.com/onther-tech/journalkv/database"
)

var _ database.Store = (*Database)(nil)

// Database wraps an avalanchego database.
type Database struct {
	db avadatabase.Database
}

// New returns a store view of [db].
func New(db avadatabase.Database) *Database {
	return &Database{db: db}
}

func (db *Database) Has(key []byte) (bool, error) {
	return db.db.Has(key)
}

func (db *Database) Get(key []byte) ([]byte, error) {
	value, err := db.db.Get(key)
	if errors.Is(err, avadatabase.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	return value, err
}

func (db *Database) Put(key []byte, value []byte) error {
	return db.db.Put(key, value)
}

func (db *Database) Delete(key []byte) error {
	return db.db.Delete(key)
}
