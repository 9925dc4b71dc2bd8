// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/countervm/actions"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"
)

// Genesis describes the initial state and policy of a counter deployment.
type Genesis struct {
	// Owner is the identity permitted to perform gated mutations.
	Owner codec.Address `json:"owner"`

	// InitialValue seeds the counter.
	InitialValue uint64 `json:"initialValue"`

	// MaxHistoryEntries bounds the history log.
	MaxHistoryEntries uint64 `json:"maxHistoryEntries"`

	// OwnerGated is the per-operation gating table. Operations missing from
	// the table are ungated. Exposing the table here keeps the policy
	// uniform and testable instead of hard-coding the reference behavior's
	// inconsistencies.
	OwnerGated map[string]bool `json:"ownerGated"`

	// LogOwnershipTransfers controls whether transfer_ownership appends a
	// history record like other mutators.
	LogOwnershipTransfers bool `json:"logOwnershipTransfers"`
}

func Default() *Genesis {
	return &Genesis{
		MaxHistoryEntries: storage.MaxHistoryEntries,
		OwnerGated: map[string]bool{
			actions.OpReset:             true,
			actions.OpSetValue:          true,
			actions.OpTransferOwnership: true,
			actions.OpClearHistory:      true,
		},
		LogOwnershipTransfers: true,
	}
}

func New(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("could not unmarshal genesis: %w", err)
		}
	}
	return g, nil
}

// Load performs the one-time state initialization: it writes the owner and
// initial value and marks the state as initialized. A second Load on the
// same state fails with ErrAlreadyInitialized and writes nothing.
func (g *Genesis) Load(ctx context.Context, mu state.Mutable) error {
	initialized, err := storage.IsInitialized(ctx, mu)
	if err != nil {
		return err
	}
	if initialized {
		return storage.ErrAlreadyInitialized
	}
	if err := storage.SetOwner(ctx, mu, g.Owner); err != nil {
		return err
	}
	if err := storage.SetCounter(ctx, mu, g.InitialValue); err != nil {
		return err
	}
	return storage.SetInitialized(ctx, mu)
}
