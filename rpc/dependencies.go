// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/storage"
	"github.com/ava-labs/countervm/vm"
)

type Controller interface {
	Genesis() *genesis.Genesis

	Submit(ctx context.Context, actor codec.Address, action chain.Action) (codec.Typed, error)

	Value(ctx context.Context) (uint64, error)
	Owner(ctx context.Context) (codec.Address, error)
	IsOwner(ctx context.Context, addr codec.Address) (bool, error)
	Totals(ctx context.Context) (uint64, uint64, error)
	ActionCount(ctx context.Context, addr codec.Address) (uint64, error)
	History(ctx context.Context, limit uint64) ([]storage.Record, error)
	HistoryRange(ctx context.Context, offset uint64, limit uint64) ([]storage.Record, error)
	HistoryLength(ctx context.Context) (uint64, error)
	Flipped(ctx context.Context) (bool, error)
	FlipCount(ctx context.Context, addr codec.Address) (uint64, error)
	TotalFlips(ctx context.Context) (uint64, error)
	Stats(ctx context.Context) (*vm.Stats, error)
}
