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
	_ chain.Action  = (*Decrement)(nil)
	_ codec.Typed   = (*DecrementResult)(nil)
	_ chain.Eventer = (*DecrementResult)(nil)
)

// Decrement subtracts 1 from the counter and fails with Underflow when the
// counter is 0. Ungated in the default policy.
type Decrement struct{}

func (*Decrement) GetTypeID() uint8 {
	return mconsts.DecrementID
}

func (*Decrement) Name() string {
	return OpDecrement
}

func (*Decrement) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.OwnerKey()):             state.Read,
		string(storage.CounterKey()):           state.Read | state.Write,
		string(storage.TotalsKey()):            state.Read | state.Write,
		string(storage.ActionCountKey(actor)):  state.All,
		string(storage.HistoryMetaKey()):       state.Read | state.Write,
		string(storage.HistoryEntriesPrefix()): state.Allocate | state.Write,
	}
}

func (*Decrement) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if r.RequiresOwner(OpDecrement) {
		if err := storage.AssertOwner(ctx, mu, actor); err != nil {
			return nil, err
		}
	}
	value, err := storage.SubCounter(ctx, mu, 1)
	if err != nil {
		return nil, err
	}
	if err := storage.AddTotalDecrements(ctx, mu); err != nil {
		return nil, err
	}
	count, err := storage.AddActionCount(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	if err := storage.AppendHistory(ctx, mu, storage.Record{
		Action:    storage.DecrementTag,
		Value:     value,
		Timestamp: timestamp,
		Actor:     actor,
	}, r.GetMaxHistoryEntries()); err != nil {
		return nil, err
	}

	return &DecrementResult{
		Value:       value,
		ActionCount: count,
	}, nil
}

type DecrementResult struct {
	Value       uint64 `serialize:"true" json:"value"`
	ActionCount uint64 `serialize:"true" json:"actionCount"`
}

func (*DecrementResult) GetTypeID() uint8 {
	return mconsts.DecrementID
}

func (r *DecrementResult) Events(timestamp int64) []codec.Typed {
	return []codec.Typed{
		&event.CounterUpdated{
			NewValue:  r.Value,
			Timestamp: timestamp,
		},
	}
}
