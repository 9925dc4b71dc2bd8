// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/actions"
	"github.com/ava-labs/countervm/chain/chaintest"
	"github.com/ava-labs/countervm/codec/codectest"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"
)

func TestDecrementAction(t *testing.T) {
	ctx := context.Background()
	owner := codectest.NewRandomAddress()
	actor := codectest.NewRandomAddress()

	tests := []chaintest.ActionTest{
		{
			Name:      "Decrement",
			Action:    &actions.Decrement{},
			Rules:     defaultRules(),
			State:     newStateWithCounter(t, owner, 10),
			Timestamp: 100,
			Actor:     actor,
			ActionID:  ids.Empty,
			ExpectedOutputs: &actions.DecrementResult{
				Value:       9,
				ActionCount: 1,
			},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				_, decs, err := storage.GetTotals(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(1), decs)
				records, err := storage.GetRecentHistory(ctx, mu, 1, storage.MaxHistoryEntries)
				require.NoError(err)
				require.Len(records, 1)
				require.Equal(storage.DecrementTag, records[0].Action)
				require.Equal(uint64(9), records[0].Value)
			},
		},
		{
			Name:        "Underflow",
			Action:      &actions.Decrement{},
			Rules:       defaultRules(),
			State:       newStateWithOwner(t, owner),
			Timestamp:   101,
			Actor:       actor,
			ActionID:    ids.Empty,
			ExpectedErr: storage.ErrUnderflow,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounter(ctx, mu)
				require.NoError(err)
				require.Zero(value)
				_, decs, err := storage.GetTotals(ctx, mu)
				require.NoError(err)
				require.Zero(decs)
				count, err := storage.GetActionCount(ctx, mu, actor)
				require.NoError(err)
				require.Zero(count)
			},
		},
		{
			Name:        "GatedRejectsNonOwner",
			Action:      &actions.Decrement{},
			Rules:       gatedRules(actions.OpDecrement),
			State:       newStateWithCounter(t, owner, 10),
			Timestamp:   102,
			Actor:       actor,
			ActionID:    ids.Empty,
			ExpectedErr: storage.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
