// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package journaldb

import (
	"github.com/onther-tech/journalkv/database"
)

var _ database.Store = (*Database)(nil)

// Database reads and writes through a journal layered over a backing store.
// It implements the same store contract the backing store exposes, so it is
// a drop-in substitute anywhere a key/value store is expected, e.g. under a
// trie. The backing store is only mutated by Persist, and only with the
// fully resolved net diff.
type Database struct {
	store   database.Store
	journal *Journal
}

// Option configures a Database at construction.
type Option func(*Database)

// WithIDGenerator replaces the default changeset id generator.
func WithIDGenerator(newID IDGenerator) Option {
	return func(db *Database) {
		db.journal.newID = newID
	}
}

// New returns a journaled view of [store] with a single empty base layer.
func New(store database.Store, opts ...Option) *Database {
	db := &Database{
		store:   store,
		journal: NewJournal(nil),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Get returns the journal's answer for [key], falling through to the
// backing store only if no layer has an entry. A tombstone is authoritative
// even if the backing store still holds a stale value.
func (db *Database) Get(key []byte) ([]byte, error) {
	slot, ok := db.journal.Get(key)
	if !ok {
		return db.store.Get(key)
	}
	if slot.Deleted {
		return nil, database.ErrNotFound
	}
	cp := make([]byte, len(slot.Value))
	copy(cp, slot.Value)
	return cp, nil
}

// Has reports whether Get would succeed for [key].
func (db *Database) Has(key []byte) (bool, error) {
	slot, ok := db.journal.Get(key)
	if ok {
		return !slot.Deleted, nil
	}
	return db.store.Has(key)
}

// Put buffers [value] for [key] in the journal's top layer.
func (db *Database) Put(key []byte, value []byte) error {
	db.journal.Put(key, value)
	return nil
}

// Delete buffers a tombstone for [key] in the journal's top layer.
// Deleting a key that is absent or already tombstoned succeeds silently.
func (db *Database) Delete(key []byte) error {
	db.journal.Delete(key)
	return nil
}

// Record opens a new changeset with a generated id and returns the id.
func (db *Database) Record() (ChangesetID, error) {
	return db.journal.Record()
}

// RecordWithID opens a new changeset with a caller-supplied id.
func (db *Database) RecordWithID(id ChangesetID) error {
	return db.journal.RecordWithID(id)
}

// Discard rolls the journal back to its state just before [id] was
// recorded.
func (db *Database) Discard(id ChangesetID) error {
	return db.journal.Discard(id)
}

// Commit folds the changeset [id], and everything above it, into the layer
// below. The net visible state is unchanged.
func (db *Database) Commit(id ChangesetID) error {
	return db.journal.Commit(id)
}

// HasChangeset reports whether [id] is currently tracked by the journal.
func (db *Database) HasChangeset(id ChangesetID) bool {
	return db.journal.HasChangeset(id)
}

// Flatten collapses every journal layer into the base layer without
// touching the backing store.
func (db *Database) Flatten() {
	db.journal.Flatten()
}

// Diff returns the journal's net changes relative to the backing store.
func (db *Database) Diff() Diff {
	return db.journal.Diff()
}

// Persist applies the journal's net diff to the backing store and resets
// the journal to a single empty base layer. Every previously tracked
// changeset id becomes untracked; the net state visible through the
// Database is unchanged. If applying the diff fails the journal is left
// intact so the flush can be retried.
func (db *Database) Persist() error {
	if err := db.journal.Diff().ApplyTo(db.store); err != nil {
		return err
	}
	db.journal.reset()
	return nil
}
