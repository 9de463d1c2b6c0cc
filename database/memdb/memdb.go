// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memdb provides a map-backed implementation of the store contract.
// It is the default engine for tests and for journals that never persist to
// disk.
package memdb

import (
	"sync"

	"github.com/onther-tech/journalkv/database"
)

// DefaultSize is the default initial size of the backing map.
const DefaultSize = 1024

var _ database.Store = (*Database)(nil)

// Database is an in-memory key/value store.
type Database struct {
	lock sync.RWMutex
	kv   map[string][]byte
}

// New returns a store with [DefaultSize] capacity pre-allocated.
func New() *Database {
	return NewWithSize(DefaultSize)
}

// NewWithSize returns a store with [size] capacity pre-allocated.
func NewWithSize(size int) *Database {
	return &Database{kv: make(map[string][]byte, size)}
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	_, ok := db.kv[string(key)]
	return ok, nil
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if value, ok := db.kv[string(key)]; ok {
		cp := make([]byte, len(value))
		copy(cp, value)
		return cp, nil
	}
	return nil, database.ErrNotFound
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	db.kv[string(key)] = cp
	return nil
}

func (db *Database) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.kv, string(key))
	return nil
}

// Len returns the number of keys currently stored.
func (db *Database) Len() int {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return len(db.kv)
}

// Keys returns every stored key. Order is unspecified.
func (db *Database) Keys() [][]byte {
	db.lock.RLock()
	defer db.lock.RUnlock()

	keys := make([][]byte, 0, len(db.kv))
	for key := range db.kv {
		keys = append(keys, []byte(key))
	}
	return keys
}
