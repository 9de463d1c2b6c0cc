// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

// Package journaldb provides transactional semantics over any key/value
// store. Writes are buffered in an in-memory stack of layers; a caller can
// snapshot the stack with Record, roll it back with Discard, fold it with
// Commit, and flush the net change to the backing store with Persist.
package journaldb

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateChangeset = errors.New("changeset id already in use")
	ErrChangesetNotFound  = errors.New("changeset not found")
)

// Slot is the state of one key within a layer: a value, or a deletion
// tombstone that overrides anything below the layer. A key absent from a
// layer entirely is a third state (the layer is silent about it).
type Slot struct {
	Value   []byte
	Deleted bool
}

// layer is one level of the overlay stack. The base layer (index 0) is
// never tagged with a changeset id.
type layer struct {
	id     ChangesetID
	tagged bool
	slots  map[string]Slot
}

func newLayer() *layer {
	return &layer{slots: make(map[string]Slot)}
}

func newTaggedLayer(id ChangesetID) *layer {
	return &layer{id: id, tagged: true, slots: make(map[string]Slot)}
}

// Journal is an ordered stack of in-memory layers, oldest at index 0. It
// owns all snapshot/rollback/merge logic and never touches a backing store.
// A Journal is not safe for concurrent use; it assumes a single owner, the
// way one state transition owns its nested call stack.
type Journal struct {
	newID IDGenerator

	// layers[0] is the base layer; index maps each tracked changeset id
	// to its layer's position.
	layers []*layer
	index  map[ChangesetID]int
}

// NewJournal returns a journal holding a single empty base layer. A nil
// [newID] selects RandomID.
func NewJournal(newID IDGenerator) *Journal {
	if newID == nil {
		newID = RandomID
	}
	j := &Journal{newID: newID}
	j.reset()
	return j
}

// reset drops every layer and identifier, leaving one empty base layer.
func (j *Journal) reset() {
	j.layers = []*layer{newLayer()}
	j.index = make(map[ChangesetID]int)
}

func (j *Journal) top() *layer {
	return j.layers[len(j.layers)-1]
}

// Record pushes a new empty layer tagged with a generated changeset id and
// returns the id. If the generated id is already tracked the call fails
// with ErrDuplicateChangeset, the same as an explicit collision.
func (j *Journal) Record() (ChangesetID, error) {
	id, err := j.newID()
	if err != nil {
		return ChangesetID{}, err
	}
	if err := j.RecordWithID(id); err != nil {
		return ChangesetID{}, err
	}
	return id, nil
}

// RecordWithID pushes a new empty layer tagged with the caller-supplied
// [id]. Fails with ErrDuplicateChangeset if [id] is tracked anywhere in the
// stack, leaving the stack unchanged.
func (j *Journal) RecordWithID(id ChangesetID) error {
	if _, ok := j.index[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChangeset, id)
	}
	j.index[id] = len(j.layers)
	j.layers = append(j.layers, newTaggedLayer(id))
	return nil
}

// Get scans layers from newest to oldest and returns the first slot found
// for [key]. The second return is false iff no layer has an entry for the
// key, in which case the caller decides whether to consult a backing store.
// A tombstone slot stops the scan: lower layers are never consulted.
func (j *Journal) Get(key []byte) (Slot, bool) {
	for i := len(j.layers) - 1; i >= 0; i-- {
		if slot, ok := j.layers[i].slots[string(key)]; ok {
			return slot, true
		}
	}
	return Slot{}, false
}

// Put records [value] for [key] in the current top layer.
func (j *Journal) Put(key []byte, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)
	j.top().slots[string(key)] = Slot{Value: cp}
}

// Delete records a tombstone for [key] in the current top layer. The entry
// stays in the layer's mapping; the tombstone/absence distinction is what
// makes Diff correct.
func (j *Journal) Delete(key []byte) {
	j.top().slots[string(key)] = Slot{Deleted: true}
}

// Discard removes the layer tagged [id] and every layer above it, restoring
// the journal to its state just before the matching Record call. Every
// identifier on a removed layer becomes untracked.
func (j *Journal) Discard(id ChangesetID) error {
	pos, ok := j.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrChangesetNotFound, id)
	}
	j.untrackFrom(pos)
	j.layers = j.layers[:pos]
	return nil
}

// Commit merges the layer tagged [id], and every layer above it, into the
// layer immediately below, newest slots winning per key. The net visible
// state is unchanged; only the stack shrinks. [id] and every identifier
// above it become untracked.
func (j *Journal) Commit(id ChangesetID) error {
	pos, ok := j.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrChangesetNotFound, id)
	}
	dst := j.layers[pos-1]
	for _, l := range j.layers[pos:] {
		for key, slot := range l.slots {
			dst.slots[key] = slot
		}
	}
	j.untrackFrom(pos)
	j.layers = j.layers[:pos]
	return nil
}

// Flatten collapses every layer into the base layer. No identifiers remain
// tracked afterwards. The backing store is untouched.
func (j *Journal) Flatten() {
	if len(j.layers) == 1 {
		return
	}
	base := j.layers[0]
	for _, l := range j.layers[1:] {
		for key, slot := range l.slots {
			base.slots[key] = slot
		}
	}
	j.layers = j.layers[:1]
	j.index = make(map[ChangesetID]int)
}

// Diff returns the net slot per key across the whole stack, oldest to
// newest with last write winning. Keys untouched by any layer are absent
// from the diff. The stack is not mutated.
func (j *Journal) Diff() Diff {
	slots := make(map[string]Slot)
	for _, l := range j.layers {
		for key, slot := range l.slots {
			slots[key] = slot
		}
	}
	return Diff{slots: slots}
}

// HasChangeset reports whether [id] is currently tracked.
func (j *Journal) HasChangeset(id ChangesetID) bool {
	_, ok := j.index[id]
	return ok
}

// Depth returns the number of layers, including the base layer.
func (j *Journal) Depth() int {
	return len(j.layers)
}

func (j *Journal) untrackFrom(pos int) {
	for _, l := range j.layers[pos:] {
		if l.tagged {
			delete(j.index, l.id)
		}
	}
}
