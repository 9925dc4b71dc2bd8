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
	_ chain.Action  = (*SetValue)(nil)
	_ codec.Typed   = (*SetValueResult)(nil)
	_ chain.Eventer = (*SetValueResult)(nil)
)

// SetValue assigns an absolute value to the counter. No arithmetic check is
// needed since it is an assignment, not a transition. Owner-gated in the
// default policy.
type SetValue struct {
	Value uint64 `serialize:"true" json:"value"`
}

func (*SetValue) GetTypeID() uint8 {
	return mconsts.SetValueID
}

func (*SetValue) Name() string {
	return OpSetValue
}

func (*SetValue) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.OwnerKey()):             state.Read,
		string(storage.CounterKey()):           state.Read | state.Write,
		string(storage.HistoryMetaKey()):       state.Read | state.Write,
		string(storage.HistoryEntriesPrefix()): state.Allocate | state.Write,
	}
}

func (s *SetValue) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if r.RequiresOwner(OpSetValue) {
		if err := storage.AssertOwner(ctx, mu, actor); err != nil {
			return nil, err
		}
	}
	if err := storage.SetCounter(ctx, mu, s.Value); err != nil {
		return nil, err
	}
	if err := storage.AppendHistory(ctx, mu, storage.Record{
		Action:    fmt.Sprintf("set_to_%d", s.Value),
		Value:     s.Value,
		Timestamp: timestamp,
		Actor:     actor,
	}, r.GetMaxHistoryEntries()); err != nil {
		return nil, err
	}

	return &SetValueResult{
		Value: s.Value,
	}, nil
}

type SetValueResult struct {
	Value uint64 `serialize:"true" json:"value"`
}

func (*SetValueResult) GetTypeID() uint8 {
	return mconsts.SetValueID
}

func (r *SetValueResult) Events(timestamp int64) []codec.Typed {
	return []codec.Typed{
		&event.CounterUpdated{
			NewValue:  r.Value,
			Timestamp: timestamp,
		},
	}
}
