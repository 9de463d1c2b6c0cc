// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onther-tech/journalkv/database/memdb"
	"github.com/onther-tech/journalkv/journaldb"
)

func newTestService() (*Service, *memdb.Database) {
	store := memdb.New()
	return New(journaldb.New(store)), store
}

func TestPutGetDelete(t *testing.T) {
	assert := assert.New(t)
	s, _ := newTestService()

	key := hex.EncodeToString([]byte("k"))
	value := hex.EncodeToString([]byte("v"))

	putReply := BoolReply{}
	assert.NoError(s.Put(nil, &PutArgs{Key: key, Value: value}, &putReply))
	assert.True(putReply.Success)

	getReply := ValueReply{}
	assert.NoError(s.Get(nil, &KeyArgs{Key: key}, &getReply))
	assert.Equal(value, getReply.Value)

	hasReply := BoolReply{}
	assert.NoError(s.Has(nil, &KeyArgs{Key: key}, &hasReply))
	assert.True(hasReply.Success)

	delReply := BoolReply{}
	assert.NoError(s.Delete(nil, &KeyArgs{Key: key}, &delReply))
	assert.True(delReply.Success)

	assert.Error(s.Get(nil, &KeyArgs{Key: key}, &ValueReply{}))
}

func TestRecordDiscardRoundTrip(t *testing.T) {
	assert := assert.New(t)
	s, _ := newTestService()

	key := hex.EncodeToString([]byte("k"))

	assert.NoError(s.Put(nil, &PutArgs{Key: key, Value: "61"}, &BoolReply{}))

	recordReply := ChangesetReply{}
	assert.NoError(s.Record(nil, &ChangesetArgs{}, &recordReply))
	assert.NotEmpty(recordReply.ID)

	trackedReply := BoolReply{}
	assert.NoError(s.HasChangeset(nil, &ChangesetArgs{ID: recordReply.ID}, &trackedReply))
	assert.True(trackedReply.Success)

	assert.NoError(s.Put(nil, &PutArgs{Key: key, Value: "62"}, &BoolReply{}))

	discardReply := BoolReply{}
	assert.NoError(s.Discard(nil, &ChangesetArgs{ID: recordReply.ID}, &discardReply))
	assert.True(discardReply.Success)

	getReply := ValueReply{}
	assert.NoError(s.Get(nil, &KeyArgs{Key: key}, &getReply))
	assert.Equal("61", getReply.Value)

	assert.NoError(s.HasChangeset(nil, &ChangesetArgs{ID: recordReply.ID}, &trackedReply))
	assert.False(trackedReply.Success)
}

func TestCommitAndPersist(t *testing.T) {
	assert := assert.New(t)
	s, store := newTestService()

	key := hex.EncodeToString([]byte("k"))

	recordReply := ChangesetReply{}
	assert.NoError(s.Record(nil, &ChangesetArgs{}, &recordReply))

	assert.NoError(s.Put(nil, &PutArgs{Key: key, Value: "61"}, &BoolReply{}))

	assert.NoError(s.Commit(nil, &ChangesetArgs{ID: recordReply.ID}, &BoolReply{}))

	ok, err := store.Has([]byte("k"))
	assert.NoError(err)
	assert.False(ok)

	assert.NoError(s.Persist(nil, nil, &BoolReply{}))

	value, err := store.Get([]byte("k"))
	assert.NoError(err)
	assert.Equal([]byte("a"), value)
}

func TestRecordWithCustomID(t *testing.T) {
	assert := assert.New(t)
	s, _ := newTestService()

	custom, err := journaldb.RandomID()
	assert.NoError(err)

	recordReply := ChangesetReply{}
	assert.NoError(s.Record(nil, &ChangesetArgs{ID: custom.String()}, &recordReply))
	assert.Equal(custom.String(), recordReply.ID)

	// reuse of a tracked id is rejected
	assert.Error(s.Record(nil, &ChangesetArgs{ID: custom.String()}, &ChangesetReply{}))
}

func TestBadHexKey(t *testing.T) {
	assert := assert.New(t)
	s, _ := newTestService()

	assert.Error(s.Get(nil, &KeyArgs{Key: "zz"}, &ValueReply{}))
	assert.Error(s.Put(nil, &PutArgs{Key: "zz", Value: "61"}, &BoolReply{}))
}
