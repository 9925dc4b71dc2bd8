// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"

	mconsts "github.com/ava-labs/countervm/consts"
)

var (
	_ chain.Action = (*ClearHistory)(nil)
	_ codec.Typed  = (*ClearHistoryResult)(nil)
)

// ClearHistory removes every record from the history log. Owner-gated in the
// default policy. The aggregate table is untouched; it has no clear
// operation.
type ClearHistory struct{}

func (*ClearHistory) GetTypeID() uint8 {
	return mconsts.ClearHistoryID
}

func (*ClearHistory) Name() string {
	return OpClearHistory
}

func (*ClearHistory) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.OwnerKey()):             state.Read,
		string(storage.HistoryMetaKey()):       state.Read | state.Write,
		string(storage.HistoryEntriesPrefix()): state.All,
	}
}

func (*ClearHistory) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if r.RequiresOwner(OpClearHistory) {
		if err := storage.AssertOwner(ctx, mu, actor); err != nil {
			return nil, err
		}
	}
	cleared, err := storage.HistoryLength(ctx, mu)
	if err != nil {
		return nil, err
	}
	if err := storage.ClearHistory(ctx, mu, r.GetMaxHistoryEntries()); err != nil {
		return nil, err
	}

	return &ClearHistoryResult{
		Cleared: cleared,
	}, nil
}

type ClearHistoryResult struct {
	Cleared uint64 `serialize:"true" json:"cleared"`
}

func (*ClearHistoryResult) GetTypeID() uint8 {
	return mconsts.ClearHistoryID
}
