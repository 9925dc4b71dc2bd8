// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/chain/chaintest"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/storage"
)

func defaultRules() *genesis.Rules {
	return genesis.NewRules(genesis.Default(), 1, consts.ID)
}

func gatedRules(ops ...string) *genesis.Rules {
	g := genesis.Default()
	for _, op := range ops {
		g.OwnerGated[op] = true
	}
	return genesis.NewRules(g, 1, consts.ID)
}

func newStateWithOwner(t *testing.T, owner codec.Address) *chaintest.InMemoryStore {
	store := chaintest.NewInMemoryStore()
	require.NoError(t, storage.SetOwner(context.Background(), store, owner))
	return store
}

func newStateWithCounter(t *testing.T, owner codec.Address, value uint64) *chaintest.InMemoryStore {
	store := newStateWithOwner(t, owner)
	require.NoError(t, storage.SetCounter(context.Background(), store, value))
	return store
}
