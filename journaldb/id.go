// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package journaldb

import "github.com/google/uuid"

// ChangesetID names a recorded layer of the journal. IDs are opaque to the
// journal; they only need stable equality, which the 128-bit array type
// provides.
type ChangesetID uuid.UUID

// String returns the canonical UUID form of [id].
func (id ChangesetID) String() string {
	return uuid.UUID(id).String()
}

// IDGenerator produces changeset identifiers for Record. A journal owns its
// generator; there is no process-wide state.
type IDGenerator func() (ChangesetID, error)

// RandomID is the default IDGenerator. It draws 128 random bits from
// crypto/rand, so collisions within one process are negligible.
func RandomID() (ChangesetID, error) {
	id, err := uuid.NewRandom()
	return ChangesetID(id), err
}
