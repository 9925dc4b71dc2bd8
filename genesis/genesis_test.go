// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/actions"
	"github.com/ava-labs/countervm/chain/chaintest"
	"github.com/ava-labs/countervm/codec/codectest"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/storage"
)

func TestDefaultGenesis(t *testing.T) {
	require := require.New(t)
	g := genesis.Default()

	require.Equal(storage.MaxHistoryEntries, g.MaxHistoryEntries)
	require.True(g.LogOwnershipTransfers)

	require.True(g.OwnerGated[actions.OpReset])
	require.True(g.OwnerGated[actions.OpSetValue])
	require.True(g.OwnerGated[actions.OpTransferOwnership])
	require.True(g.OwnerGated[actions.OpClearHistory])
	require.False(g.OwnerGated[actions.OpIncrement])
	require.False(g.OwnerGated[actions.OpDecrement])
	require.False(g.OwnerGated[actions.OpFlip])
}

func TestGenesisFromBytes(t *testing.T) {
	require := require.New(t)
	owner := codectest.NewRandomAddress()

	b, err := json.Marshal(map[string]any{
		"owner":        owner,
		"initialValue": 7,
		"ownerGated": map[string]bool{
			actions.OpReset: true,
			actions.OpFlip:  true,
		},
	})
	require.NoError(err)

	g, err := genesis.New(b)
	require.NoError(err)
	require.Equal(owner, g.Owner)
	require.Equal(uint64(7), g.InitialValue)
	// Omitted fields keep their defaults, present ones replace them.
	require.Equal(storage.MaxHistoryEntries, g.MaxHistoryEntries)
	require.True(g.OwnerGated[actions.OpFlip])
	require.False(g.OwnerGated[actions.OpSetValue])
}

func TestGenesisFromEmptyBytes(t *testing.T) {
	require := require.New(t)

	g, err := genesis.New(nil)
	require.NoError(err)
	require.Equal(genesis.Default(), g)
}

func TestGenesisFromInvalidBytes(t *testing.T) {
	require := require.New(t)

	_, err := genesis.New([]byte("not json"))
	require.Error(err)
}

func TestGenesisLoad(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	owner := codectest.NewRandomAddress()

	g := genesis.Default()
	g.Owner = owner
	g.InitialValue = 10

	require.NoError(g.Load(ctx, store))

	value, err := storage.GetCounter(ctx, store)
	require.NoError(err)
	require.Equal(uint64(10), value)

	got, err := storage.GetOwner(ctx, store)
	require.NoError(err)
	require.Equal(owner, got)
}

func TestGenesisLoadTwice(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	g := genesis.Default()
	g.Owner = codectest.NewRandomAddress()
	g.InitialValue = 10

	require.NoError(g.Load(ctx, store))

	// A second initialization fails and leaves the state alone, even when
	// the counter moved in between.
	require.NoError(storage.SetCounter(ctx, store, 99))
	require.ErrorIs(g.Load(ctx, store), storage.ErrAlreadyInitialized)

	value, err := storage.GetCounter(ctx, store)
	require.NoError(err)
	require.Equal(uint64(99), value)
}
