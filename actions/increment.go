// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/event"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"

	mconsts "github.com/ava-labs/countervm/consts"
)

var (
	_ chain.Action  = (*Increment)(nil)
	_ codec.Typed   = (*IncrementResult)(nil)
	_ chain.Eventer = (*IncrementResult)(nil)
)

// Increment adds [Amount] to the counter. Any caller may invoke it unless
// the gating policy says otherwise.
type Increment struct {
	// Amount is added to the counter value. The RPC layer defaults it to 1.
	Amount uint64 `serialize:"true" json:"amount"`
}

func (*Increment) GetTypeID() uint8 {
	return mconsts.IncrementID
}

func (*Increment) Name() string {
	return OpIncrement
}

func (i *Increment) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.OwnerKey()):             state.Read,
		string(storage.CounterKey()):           state.Read | state.Write,
		string(storage.TotalsKey()):            state.Read | state.Write,
		string(storage.ActionCountKey(actor)):  state.All,
		string(storage.HistoryMetaKey()):       state.Read | state.Write,
		string(storage.HistoryEntriesPrefix()): state.Allocate | state.Write,
	}
}

func (i *Increment) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if r.RequiresOwner(OpIncrement) {
		if err := storage.AssertOwner(ctx, mu, actor); err != nil {
			return nil, err
		}
	}
	value, err := storage.AddCounter(ctx, mu, i.Amount)
	if err != nil {
		return nil, err
	}
	if err := storage.AddTotalIncrements(ctx, mu); err != nil {
		return nil, err
	}
	count, err := storage.AddActionCount(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	tag := storage.IncrementTag
	if i.Amount != 1 {
		tag = fmt.Sprintf("increment_by_%d", i.Amount)
	}
	if err := storage.AppendHistory(ctx, mu, storage.Record{
		Action:    tag,
		Value:     value,
		Timestamp: timestamp,
		Actor:     actor,
	}, r.GetMaxHistoryEntries()); err != nil {
		return nil, err
	}

	return &IncrementResult{
		Value:       value,
		ActionCount: count,
	}, nil
}

type IncrementResult struct {
	Value       uint64 `serialize:"true" json:"value"`
	ActionCount uint64 `serialize:"true" json:"actionCount"`
}

func (*IncrementResult) GetTypeID() uint8 {
	return mconsts.IncrementID // Common practice is to use the action ID
}

func (r *IncrementResult) Events(timestamp int64) []codec.Typed {
	return []codec.Typed{
		&event.CounterUpdated{
			NewValue:  r.Value,
			Timestamp: timestamp,
		},
	}
}
