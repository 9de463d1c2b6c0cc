// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onther-tech/journalkv/database"
)

func TestPutGetDelete(t *testing.T) {
	assert := assert.New(t)
	db := New()

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

func TestGetReturnsCopy(t *testing.T) {
	assert := assert.New(t)
	db := New()

	assert.NoError(db.Put([]byte("k"), []byte("abc")))

	value, err := db.Get([]byte("k"))
	assert.NoError(err)
	value[0] = 'x'

	again, err := db.Get([]byte("k"))
	assert.NoError(err)
	assert.Equal([]byte("abc"), again)
}

func TestPutCopiesValue(t *testing.T) {
	assert := assert.New(t)
	db := New()

	value := []byte("abc")
	assert.NoError(db.Put([]byte("k"), value))
	value[0] = 'x'

	stored, err := db.Get([]byte("k"))
	assert.NoError(err)
	assert.Equal([]byte("abc"), stored)
}
