// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "context"

// Immutable is the read-only view of persistent state handed to actions and
// RPC queries. Implementations must return database.ErrNotFound for missing
// keys so callers can treat absence as a default value.
type Immutable interface {
	GetValue(ctx context.Context, key []byte) (value []byte, err error)
}

// Mutable is the read-write view of persistent state handed to executing
// actions. The host serializes calls to a given state object, so
// implementations need no internal locking.
type Mutable interface {
	Immutable

	Insert(ctx context.Context, key []byte, value []byte) error
	Remove(ctx context.Context, key []byte) error
}
