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
	_ chain.Action  = (*Flip)(nil)
	_ codec.Typed   = (*FlipResult)(nil)
	_ chain.Eventer = (*FlipResult)(nil)
)

// Flip toggles the boolean flip value. Ungated in the default policy. Flips
// are counted in their own per-caller table, separate from the counter's
// action counts.
type Flip struct{}

func (*Flip) GetTypeID() uint8 {
	return mconsts.FlipID
}

func (*Flip) Name() string {
	return OpFlip
}

func (*Flip) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.OwnerKey()):             state.Read,
		string(storage.FlipKey()):              state.Read | state.Write,
		string(storage.TotalFlipsKey()):        state.Read | state.Write,
		string(storage.FlipCountKey(actor)):    state.All,
		string(storage.HistoryMetaKey()):       state.Read | state.Write,
		string(storage.HistoryEntriesPrefix()): state.Allocate | state.Write,
	}
}

func (*Flip) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if r.RequiresOwner(OpFlip) {
		if err := storage.AssertOwner(ctx, mu, actor); err != nil {
			return nil, err
		}
	}
	value, count, err := storage.Flip(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	recorded := uint64(0)
	if value {
		recorded = 1
	}
	if err := storage.AppendHistory(ctx, mu, storage.Record{
		Action:    storage.FlipTag,
		Value:     recorded,
		Timestamp: timestamp,
		Actor:     actor,
	}, r.GetMaxHistoryEntries()); err != nil {
		return nil, err
	}

	return &FlipResult{
		Value:     value,
		FlipCount: count,
		By:        actor,
	}, nil
}

type FlipResult struct {
	Value     bool          `serialize:"true" json:"value"`
	FlipCount uint64        `serialize:"true" json:"flipCount"`
	By        codec.Address `serialize:"true" json:"by"`
}

func (*FlipResult) GetTypeID() uint8 {
	return mconsts.FlipID
}

func (r *FlipResult) Events(timestamp int64) []codec.Typed {
	return []codec.Typed{
		&event.Flipped{
			By:        r.By,
			NewValue:  r.Value,
			FlipCount: r.FlipCount,
		},
	}
}
