// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

// Package database defines the key/value store contract the journal layers
// over. Any store exposing this capability set can back a journal, and the
// journaled store implements the same contract, so stores compose.
package database

// KeyValueReader is a minimal interface for reading from a store.
type KeyValueReader interface {
	// Has reports whether [key] is present. Absence is not an error.
	Has(key []byte) (bool, error)

	// Get returns the value of [key], or ErrNotFound if it is absent.
	Get(key []byte) ([]byte, error)
}

// KeyValueWriter is a minimal interface for writing to a store.
type KeyValueWriter interface {
	Put(key []byte, value []byte) error
}

// KeyValueDeleter is a minimal interface for deleting from a store.
type KeyValueDeleter interface {
	// Delete removes [key]. Deleting an absent key is a no-op.
	Delete(key []byte) error
}

// KeyValueWriterDeleter groups the mutating half of a store. It is the
// target contract for applying a diff.
type KeyValueWriterDeleter interface {
	KeyValueWriter
	KeyValueDeleter
}

// Store is the full backing-store contract.
type Store interface {
	KeyValueReader
	KeyValueWriter
	KeyValueDeleter
}
