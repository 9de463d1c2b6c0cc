// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package journaldb

import (
	"errors"

	"github.com/onther-tech/journalkv/database"
)

// Diff is a read-only snapshot of the journal's net changes: one slot per
// touched key, regardless of how many layers produced it.
type Diff struct {
	slots map[string]Slot
}

// Len returns the number of keys the diff touches.
func (d Diff) Len() int {
	return len(d.slots)
}

// Get returns the net slot for [key], if the diff touches it.
func (d Diff) Get(key []byte) (Slot, bool) {
	slot, ok := d.slots[string(key)]
	return slot, ok
}

// ApplyTo materializes the diff against [target]: values are written with
// Put, tombstones with Delete. A Delete failing with ErrNotFound is treated
// as success; a logical delete may have no physical counterpart.
func (d Diff) ApplyTo(target database.KeyValueWriterDeleter) error {
	for key, slot := range d.slots {
		if slot.Deleted {
			if err := target.Delete([]byte(key)); err != nil && !errors.Is(err, database.ErrNotFound) {
				return err
			}
			continue
		}
		if err := target.Put([]byte(key), slot.Value); err != nil {
			return err
		}
	}
	return nil
}
