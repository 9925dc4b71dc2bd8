// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/chain/chaintest"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/codec/codectest"
)

func readStateOf(store *chaintest.InMemoryStore) ReadState {
	return func(ctx context.Context, keys [][]byte) ([][]byte, []error) {
		values := make([][]byte, len(keys))
		errs := make([]error, len(keys))
		for i, key := range keys {
			values[i], errs[i] = store.GetValue(ctx, key)
		}
		return values, errs
	}
}

func TestCounterDefaultsToZero(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	value, err := GetCounter(ctx, store)
	require.NoError(err)
	require.Zero(value)
}

func TestAddCounter(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	value, err := AddCounter(ctx, store, 1)
	require.NoError(err)
	require.Equal(uint64(1), value)

	value, err = AddCounter(ctx, store, 41)
	require.NoError(err)
	require.Equal(uint64(42), value)

	value, err = GetCounter(ctx, store)
	require.NoError(err)
	require.Equal(uint64(42), value)
}

func TestAddCounterOverflow(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	require.NoError(SetCounter(ctx, store, math.MaxUint64))

	_, err := AddCounter(ctx, store, 1)
	require.ErrorIs(err, ErrOverflow)

	// The failed addition must not disturb the stored value.
	value, err := GetCounter(ctx, store)
	require.NoError(err)
	require.Equal(uint64(math.MaxUint64), value)

	// MaxUint64 + 0 is still in range.
	value, err = AddCounter(ctx, store, 0)
	require.NoError(err)
	require.Equal(uint64(math.MaxUint64), value)
}

func TestSubCounterUnderflow(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	_, err := SubCounter(ctx, store, 1)
	require.ErrorIs(err, ErrUnderflow)

	value, err := GetCounter(ctx, store)
	require.NoError(err)
	require.Zero(value)

	require.NoError(SetCounter(ctx, store, 3))
	value, err = SubCounter(ctx, store, 3)
	require.NoError(err)
	require.Zero(value)

	_, err = SubCounter(ctx, store, 1)
	require.ErrorIs(err, ErrUnderflow)
}

func TestCounterFromState(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	f := readStateOf(store)

	// Missing key reads as 0, like the direct read path.
	value, err := GetCounterFromState(ctx, f)
	require.NoError(err)
	require.Zero(value)

	require.NoError(SetCounter(ctx, store, 42))

	value, err = GetCounterFromState(ctx, f)
	require.NoError(err)
	require.Equal(uint64(42), value)
}

func TestOwner(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	owner := codectest.NewRandomAddress()
	other := codectest.NewRandomAddress()

	got, err := GetOwner(ctx, store)
	require.NoError(err)
	require.Equal(codec.EmptyAddress, got)

	require.NoError(SetOwner(ctx, store, owner))

	got, err = GetOwner(ctx, store)
	require.NoError(err)
	require.Equal(owner, got)

	require.NoError(AssertOwner(ctx, store, owner))
	require.ErrorIs(AssertOwner(ctx, store, other), ErrUnauthorized)
}

func TestTotals(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	incs, decs, err := GetTotals(ctx, store)
	require.NoError(err)
	require.Zero(incs)
	require.Zero(decs)

	for i := 0; i < 3; i++ {
		require.NoError(AddTotalIncrements(ctx, store))
	}
	require.NoError(AddTotalDecrements(ctx, store))

	incs, decs, err = GetTotals(ctx, store)
	require.NoError(err)
	require.Equal(uint64(3), incs)
	require.Equal(uint64(1), decs)
}

func TestInitialized(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	initialized, err := IsInitialized(ctx, store)
	require.NoError(err)
	require.False(initialized)

	require.NoError(SetInitialized(ctx, store))

	initialized, err = IsInitialized(ctx, store)
	require.NoError(err)
	require.True(initialized)
}
