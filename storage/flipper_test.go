// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/chain/chaintest"
	"github.com/ava-labs/countervm/codec/codectest"
)

func TestFlip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	alice := codectest.NewRandomAddress()
	bob := codectest.NewRandomAddress()

	value, err := GetFlip(ctx, store)
	require.NoError(err)
	require.False(value)

	value, count, err := Flip(ctx, store, alice)
	require.NoError(err)
	require.True(value)
	require.Equal(uint64(1), count)

	value, count, err = Flip(ctx, store, alice)
	require.NoError(err)
	require.False(value)
	require.Equal(uint64(2), count)

	value, count, err = Flip(ctx, store, bob)
	require.NoError(err)
	require.True(value)
	require.Equal(uint64(1), count)

	total, err := GetTotalFlips(ctx, store)
	require.NoError(err)
	require.Equal(uint64(3), total)

	count, err = GetFlipCount(ctx, store, alice)
	require.NoError(err)
	require.Equal(uint64(2), count)
}
