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
	_ chain.Action  = (*TransferOwnership)(nil)
	_ codec.Typed   = (*TransferOwnershipResult)(nil)
	_ chain.Eventer = (*TransferOwnershipResult)(nil)
)

// TransferOwnership hands the owner role to [NewOwner]. Owner-gated in the
// default policy. Whether the transfer is appended to the history log is
// controlled by Rules.LogOwnershipTransfers.
type TransferOwnership struct {
	NewOwner codec.Address `serialize:"true" json:"newOwner"`
}

func (*TransferOwnership) GetTypeID() uint8 {
	return mconsts.TransferOwnershipID
}

func (*TransferOwnership) Name() string {
	return OpTransferOwnership
}

func (*TransferOwnership) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.OwnerKey()):             state.Read | state.Write,
		string(storage.CounterKey()):           state.Read,
		string(storage.HistoryMetaKey()):       state.Read | state.Write,
		string(storage.HistoryEntriesPrefix()): state.Allocate | state.Write,
	}
}

func (t *TransferOwnership) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if r.RequiresOwner(OpTransferOwnership) {
		if err := storage.AssertOwner(ctx, mu, actor); err != nil {
			return nil, err
		}
	}
	old, err := storage.GetOwner(ctx, mu)
	if err != nil {
		return nil, err
	}
	if err := storage.SetOwner(ctx, mu, t.NewOwner); err != nil {
		return nil, err
	}
	if r.LogOwnershipTransfers() {
		// The counter value is untouched by a transfer; the record carries
		// the value standing at the time of the action.
		value, err := storage.GetCounter(ctx, mu)
		if err != nil {
			return nil, err
		}
		if err := storage.AppendHistory(ctx, mu, storage.Record{
			Action:    storage.TransferTag,
			Value:     value,
			Timestamp: timestamp,
			Actor:     actor,
		}, r.GetMaxHistoryEntries()); err != nil {
			return nil, err
		}
	}

	return &TransferOwnershipResult{
		Old: old,
		New: t.NewOwner,
	}, nil
}

type TransferOwnershipResult struct {
	Old codec.Address `serialize:"true" json:"old"`
	New codec.Address `serialize:"true" json:"new"`
}

func (*TransferOwnershipResult) GetTypeID() uint8 {
	return mconsts.TransferOwnershipID
}

func (r *TransferOwnershipResult) Events(timestamp int64) []codec.Typed {
	return []codec.Typed{
		&event.AuthorityUpdated{
			Old:       r.Old,
			New:       r.New,
			Timestamp: timestamp,
		},
	}
}
