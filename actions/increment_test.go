// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/actions"
	"github.com/ava-labs/countervm/chain/chaintest"
	"github.com/ava-labs/countervm/codec/codectest"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"
)

func TestIncrementAction(t *testing.T) {
	ctx := context.Background()
	owner := codectest.NewRandomAddress()
	actor := codectest.NewRandomAddress()

	tests := []chaintest.ActionTest{
		{
			Name:      "IncrementFromZero",
			Action:    &actions.Increment{Amount: 1},
			Rules:     defaultRules(),
			State:     newStateWithOwner(t, owner),
			Timestamp: 100,
			Actor:     actor,
			ActionID:  ids.Empty,
			ExpectedOutputs: &actions.IncrementResult{
				Value:       1,
				ActionCount: 1,
			},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounter(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(1), value)
				incs, decs, err := storage.GetTotals(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(1), incs)
				require.Zero(decs)
				records, err := storage.GetRecentHistory(ctx, mu, 1, storage.MaxHistoryEntries)
				require.NoError(err)
				require.Len(records, 1)
				require.Equal(storage.IncrementTag, records[0].Action)
				require.Equal(uint64(1), records[0].Value)
				require.Equal(int64(100), records[0].Timestamp)
				require.Equal(actor, records[0].Actor)
			},
		},
		{
			Name:      "IncrementByAmount",
			Action:    &actions.Increment{Amount: 41},
			Rules:     defaultRules(),
			State:     newStateWithCounter(t, owner, 1),
			Timestamp: 101,
			Actor:     actor,
			ActionID:  ids.Empty,
			ExpectedOutputs: &actions.IncrementResult{
				Value:       42,
				ActionCount: 1,
			},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				records, err := storage.GetRecentHistory(ctx, mu, 1, storage.MaxHistoryEntries)
				require.NoError(err)
				require.Len(records, 1)
				require.Equal("increment_by_41", records[0].Action)
			},
		},
		{
			Name:        "Overflow",
			Action:      &actions.Increment{Amount: 1},
			Rules:       defaultRules(),
			State:       newStateWithCounter(t, owner, math.MaxUint64),
			Timestamp:   102,
			Actor:       actor,
			ActionID:    ids.Empty,
			ExpectedErr: storage.ErrOverflow,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounter(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(math.MaxUint64), value)
				incs, _, err := storage.GetTotals(ctx, mu)
				require.NoError(err)
				require.Zero(incs)
				count, err := storage.GetActionCount(ctx, mu, actor)
				require.NoError(err)
				require.Zero(count)
				length, err := storage.HistoryLength(ctx, mu)
				require.NoError(err)
				require.Zero(length)
			},
		},
		{
			Name:        "GatedRejectsNonOwner",
			Action:      &actions.Increment{Amount: 1},
			Rules:       gatedRules(actions.OpIncrement),
			State:       newStateWithOwner(t, owner),
			Timestamp:   103,
			Actor:       actor,
			ActionID:    ids.Empty,
			ExpectedErr: storage.ErrUnauthorized,
		},
		{
			Name:      "GatedAllowsOwner",
			Action:    &actions.Increment{Amount: 1},
			Rules:     gatedRules(actions.OpIncrement),
			State:     newStateWithOwner(t, owner),
			Timestamp: 104,
			Actor:     owner,
			ActionID:  ids.Empty,
			ExpectedOutputs: &actions.IncrementResult{
				Value:       1,
				ActionCount: 1,
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestIncrementRepeatedCalls(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	owner := codectest.NewRandomAddress()
	actor := codectest.NewRandomAddress()
	rules := defaultRules()
	store := newStateWithOwner(t, owner)

	for i := uint64(1); i <= 10; i++ {
		output, err := (&actions.Increment{Amount: 1}).Execute(ctx, rules, store, int64(i), actor, ids.Empty)
		require.NoError(err)
		require.Equal(&actions.IncrementResult{Value: i, ActionCount: i}, output)
	}

	value, err := storage.GetCounter(ctx, store)
	require.NoError(err)
	require.Equal(uint64(10), value)

	count, err := storage.GetActionCount(ctx, store, actor)
	require.NoError(err)
	require.Equal(uint64(10), count)

	length, err := storage.HistoryLength(ctx, store)
	require.NoError(err)
	require.Equal(uint64(10), length)
}
