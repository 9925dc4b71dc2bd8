// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/state"
)

// Action is a single state transition of the counter state machine. Every
// Action is atomic from the caller's perspective: all checks run before the
// first state write, so a failed Action leaves state untouched.
type Action interface {
	codec.Typed

	// Name is the operation tag used for gating policy lookups, history
	// records, and metrics.
	Name() string

	// StateKeys is a full enumeration of all database keys that could be
	// touched during execution of this action, suffixed with permissions.
	// Dynamically sloted entries, such as history records, are enumerated
	// by their key prefix.
	StateKeys(actor codec.Address) state.Keys

	// Execute applies the transition against [mu] on behalf of [actor].
	// [timestamp] is the host-provided monotonic time of the call.
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		timestamp int64,
		actor codec.Address,
		actionID ids.ID,
	) (codec.Typed, error)
}

// Eventer is implemented by action results that translate into structured
// events for external observers.
type Eventer interface {
	Events(timestamp int64) []codec.Typed
}

type Rules interface {
	// Should almost always be constant (unless there is a fork of
	// a live network)
	GetNetworkID() uint32
	GetChainID() ids.ID

	// GetMaxHistoryEntries bounds the history log; appends beyond the bound
	// evict the oldest record.
	GetMaxHistoryEntries() uint64

	// RequiresOwner reports whether [operation] is gated on the stored owner.
	RequiresOwner(operation string) bool

	// LogOwnershipTransfers reports whether ownership transfers append a
	// history record like other mutators do.
	LogOwnershipTransfers() bool

	FetchCustom(string) (any, bool)
}

type RuleFactory interface {
	GetRules(t int64) Rules
}
