// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/event"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"

	mconsts "github.com/ava-labs/countervm/consts"
)

var (
	_ chain.Action  = (*Reset)(nil)
	_ codec.Typed   = (*ResetResult)(nil)
	_ chain.Eventer = (*ResetResult)(nil)
)

// Reset sets the counter to 0 unconditionally. Owner-gated in the default
// policy; always succeeds once authorized.
type Reset struct{}

func (*Reset) GetTypeID() uint8 {
	return mconsts.ResetID
}

func (*Reset) Name() string {
	return OpReset
}

func (*Reset) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.OwnerKey()):             state.Read,
		string(storage.CounterKey()):           state.Read | state.Write,
		string(storage.HistoryMetaKey()):       state.Read | state.Write,
		string(storage.HistoryEntriesPrefix()): state.Allocate | state.Write,
	}
}

func (*Reset) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if r.RequiresOwner(OpReset) {
		if err := storage.AssertOwner(ctx, mu, actor); err != nil {
			return nil, err
		}
	}
	if err := storage.SetCounter(ctx, mu, 0); err != nil {
		return nil, err
	}
	if err := storage.AppendHistory(ctx, mu, storage.Record{
		Action:    storage.ResetTag,
		Value:     0,
		Timestamp: timestamp,
		Actor:     actor,
	}, r.GetMaxHistoryEntries()); err != nil {
		return nil, err
	}

	return &ResetResult{
		By: actor,
	}, nil
}

type ResetResult struct {
	By codec.Address `serialize:"true" json:"by"`
}

func (*ResetResult) GetTypeID() uint8 {
	return mconsts.ResetID
}

func (r *ResetResult) Events(timestamp int64) []codec.Typed {
	return []codec.Typed{
		&event.Reset{
			By:        r.By,
			Timestamp: timestamp,
		},
	}
}
