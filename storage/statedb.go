// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/countervm/state"
)

var (
	_ state.Immutable = (*StateDB)(nil)
	_ state.Mutable   = (*StateDB)(nil)
)

// StateDB adapts an avalanchego database to the state interfaces actions
// execute against. Missing keys surface as database.ErrNotFound, which the
// storage helpers translate into default values.
type StateDB struct {
	db database.KeyValueReaderWriterDeleter
}

func NewStateDB(db database.KeyValueReaderWriterDeleter) *StateDB {
	return &StateDB{db: db}
}

func (s *StateDB) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return s.db.Get(key)
}

func (s *StateDB) Insert(_ context.Context, key []byte, value []byte) error {
	return s.db.Put(key, value)
}

func (s *StateDB) Remove(_ context.Context, key []byte) error {
	return s.db.Delete(key)
}
