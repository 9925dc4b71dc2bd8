// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/actions"
	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/chain/chaintest"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/codec/codectest"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/event"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/storage"
)

func newRuleFactory() chain.RuleFactory {
	return &genesis.ImmutableRuleFactory{
		Rules: genesis.NewRules(genesis.Default(), 1, consts.ID),
	}
}

func TestProcessorNotifiesSubscriptions(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	actor := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()

	var events []codec.Typed
	sub := event.SubscriptionFunc[codec.Typed]{
		AcceptF: func(_ context.Context, e codec.Typed) error {
			events = append(events, e)
			return nil
		},
	}

	p := chain.NewProcessor(zap.NewNop(), newRuleFactory(), sub)

	result, err := p.Execute(ctx, store, actor, &actions.Increment{Amount: 1}, 100, ids.Empty)
	require.NoError(err)
	require.Equal(&actions.IncrementResult{Value: 1, ActionCount: 1}, result)

	require.Len(events, 1)
	updated, ok := events[0].(*event.CounterUpdated)
	require.True(ok)
	require.Equal(uint64(1), updated.NewValue)
	require.Equal(int64(100), updated.Timestamp)
}

func TestProcessorSkipsEventsOnFailure(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	actor := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()

	notified := 0
	sub := event.SubscriptionFunc[codec.Typed]{
		AcceptF: func(context.Context, codec.Typed) error {
			notified++
			return nil
		},
	}

	p := chain.NewProcessor(zap.NewNop(), newRuleFactory(), sub)

	// Fresh state: decrement underflows and must not emit.
	_, err := p.Execute(ctx, store, actor, &actions.Decrement{}, 100, ids.Empty)
	require.ErrorIs(err, storage.ErrUnderflow)
	require.Zero(notified)
}
