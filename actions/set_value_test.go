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

func TestSetValueAction(t *testing.T) {
	ctx := context.Background()
	owner := codectest.NewRandomAddress()
	other := codectest.NewRandomAddress()

	tests := []chaintest.ActionTest{
		{
			Name:        "NonOwnerRejected",
			Action:      &actions.SetValue{Value: 100},
			Rules:       defaultRules(),
			State:       newStateWithCounter(t, owner, 42),
			Timestamp:   100,
			Actor:       other,
			ActionID:    ids.Empty,
			ExpectedErr: storage.ErrUnauthorized,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounter(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(42), value)
			},
		},
		{
			Name:      "OwnerSetsValue",
			Action:    &actions.SetValue{Value: 100},
			Rules:     defaultRules(),
			State:     newStateWithCounter(t, owner, 42),
			Timestamp: 101,
			Actor:     owner,
			ActionID:  ids.Empty,
			ExpectedOutputs: &actions.SetValueResult{
				Value: 100,
			},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounter(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(100), value)
				records, err := storage.GetRecentHistory(ctx, mu, 1, storage.MaxHistoryEntries)
				require.NoError(err)
				require.Len(records, 1)
				require.Equal("set_to_100", records[0].Action)
				require.Equal(uint64(100), records[0].Value)
			},
		},
		{
			// An assignment, not a transition: any uint64 is admissible.
			Name:      "MaxValue",
			Action:    &actions.SetValue{Value: math.MaxUint64},
			Rules:     defaultRules(),
			State:     newStateWithOwner(t, owner),
			Timestamp: 102,
			Actor:     owner,
			ActionID:  ids.Empty,
			ExpectedOutputs: &actions.SetValueResult{
				Value: math.MaxUint64,
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
