// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package leveldb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onther-tech/journalkv/database"
)

func newTestDB(t *testing.T) *Database {
	db, err := New(t.TempDir())
	assert.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestPutGetDelete(t *testing.T) {
	assert := assert.New(t)
	db := newTestDB(t)

	_, err := db.Get([]byte("k"))
	assert.ErrorIs(err, database.ErrNotFound)

	assert.NoError(db.Put([]byte("k"), []byte("v")))

	ok, err := db.Has([]byte("k"))
	assert.NoError(err)
	assert.True(ok)

	value, err := db.Get([]byte("k"))
	assert.NoError(err)
	assert.Equal([]byte("v"), value)

	assert.NoError(db.Delete([]byte("k")))

	ok, err = db.Has([]byte("k"))
	assert.NoError(err)
	assert.False(ok)

	// deleting an absent key is a no-op
	assert.NoError(db.Delete([]byte("k")))
}

func TestReopen(t *testing.T) {
	assert := assert.New(t)
	path := t.TempDir()

	db, err := New(path)
	assert.NoError(err)
	assert.NoError(db.Put([]byte("k"), []byte("v")))
	assert.NoError(db.Close())

	db, err = New(path)
	assert.NoError(err)
	defer db.Close()

	value, err := db.Get([]byte("k"))
	assert.NoError(err)
	assert.Equal([]byte("v"), value)
}
