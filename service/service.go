// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

// Package service exposes a journaled store over JSON-RPC. It sits beside
// the core journal, which itself carries no wire surface; the service is
// also the single-owner coordinator the journal requires, serializing every
// request with one lock.
package service

import (
	"encoding/hex"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"

	"github.com/onther-tech/journalkv/journaldb"
)

// Name is the JSON-RPC namespace the service registers under.
const Name = "journalkv"

// Service is the API service for a journaled store.
type Service struct {
	lock sync.Mutex
	db   *journaldb.Database
}

// New returns a service wrapping [db].
func New(db *journaldb.Database) *Service {
	return &Service{db: db}
}

// NewHandler returns an http.Handler serving the JSON-RPC API for [db].
func NewHandler(db *journaldb.Database) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json2.NewCodec(), "application/json")
	server.RegisterCodec(json2.NewCodec(), "application/json;charset=UTF-8")
	return server, server.RegisterService(New(db), Name)
}

// KeyArgs is an API request naming a single key, hex-encoded.
type KeyArgs struct {
	Key string `json:"key"`
}

// PutArgs are the arguments to Put.
type PutArgs struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ValueReply is the reply carrying a hex-encoded value.
type ValueReply struct {
	Value string `json:"value"`
}

// BoolReply is the reply carrying a single boolean.
type BoolReply struct {
	Success bool `json:"success"`
}

// ChangesetArgs is an API request naming a changeset id.
type ChangesetArgs struct {
	ID string `json:"id"`
}

// ChangesetReply is the reply carrying a changeset id.
type ChangesetReply struct {
	ID string `json:"id"`
}

// Get returns the value of [args.Key].
func (s *Service) Get(_ *http.Request, args *KeyArgs, reply *ValueReply) error {
	key, err := hex.DecodeString(args.Key)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	value, err := s.db.Get(key)
	if err != nil {
		return err
	}
	reply.Value = hex.EncodeToString(value)
	return nil
}

// Put buffers [args.Value] for [args.Key] in the journal.
func (s *Service) Put(_ *http.Request, args *PutArgs, reply *BoolReply) error {
	key, err := hex.DecodeString(args.Key)
	if err != nil {
		return err
	}
	value, err := hex.DecodeString(args.Value)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.db.Put(key, value); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

// Delete buffers a tombstone for [args.Key] in the journal.
func (s *Service) Delete(_ *http.Request, args *KeyArgs, reply *BoolReply) error {
	key, err := hex.DecodeString(args.Key)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.db.Delete(key); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

// Has reports whether [args.Key] is visible through the journal.
func (s *Service) Has(_ *http.Request, args *KeyArgs, reply *BoolReply) error {
	key, err := hex.DecodeString(args.Key)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	ok, err := s.db.Has(key)
	if err != nil {
		return err
	}
	reply.Success = ok
	return nil
}

// Record opens a new changeset. If [args.ID] is empty an id is generated;
// otherwise the supplied UUID is used.
func (s *Service) Record(_ *http.Request, args *ChangesetArgs, reply *ChangesetReply) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if args.ID == "" {
		id, err := s.db.Record()
		if err != nil {
			return err
		}
		reply.ID = id.String()
		return nil
	}

	id, err := parseChangesetID(args.ID)
	if err != nil {
		return err
	}
	if err := s.db.RecordWithID(id); err != nil {
		return err
	}
	reply.ID = id.String()
	return nil
}

// Discard rolls the journal back to just before [args.ID] was recorded.
func (s *Service) Discard(_ *http.Request, args *ChangesetArgs, reply *BoolReply) error {
	id, err := parseChangesetID(args.ID)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.db.Discard(id); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

// Commit folds the changeset [args.ID] into the layer below.
func (s *Service) Commit(_ *http.Request, args *ChangesetArgs, reply *BoolReply) error {
	id, err := parseChangesetID(args.ID)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.db.Commit(id); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

// HasChangeset reports whether [args.ID] is currently tracked.
func (s *Service) HasChangeset(_ *http.Request, args *ChangesetArgs, reply *BoolReply) error {
	id, err := parseChangesetID(args.ID)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	reply.Success = s.db.HasChangeset(id)
	return nil
}

// Flatten collapses every journal layer into the base layer.
func (s *Service) Flatten(_ *http.Request, _ *struct{}, reply *BoolReply) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.db.Flatten()
	reply.Success = true
	return nil
}

// Persist flushes the journal's net diff to the backing store.
func (s *Service) Persist(_ *http.Request, _ *struct{}, reply *BoolReply) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.db.Persist(); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

func parseChangesetID(s string) (journaldb.ChangesetID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return journaldb.ChangesetID{}, err
	}
	return journaldb.ChangesetID(id), nil
}
