// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/event"
	"github.com/ava-labs/countervm/state"
)

// Processor executes actions and fans successful results out to event
// subscriptions. The host serializes calls to a given state, so Execute is
// sequential logic with no suspension points.
type Processor struct {
	log         *zap.Logger
	ruleFactory RuleFactory
	subs        []event.Subscription[codec.Typed]
}

func NewProcessor(
	log *zap.Logger,
	ruleFactory RuleFactory,
	subs ...event.Subscription[codec.Typed],
) *Processor {
	return &Processor{
		log:         log,
		ruleFactory: ruleFactory,
		subs:        subs,
	}
}

// Execute runs [action] against [mu] on behalf of [actor] and notifies every
// subscription of the events the result translates into. Events are recorded
// by the end of a successful call; no delivery guarantee beyond that.
func (p *Processor) Execute(
	ctx context.Context,
	mu state.Mutable,
	actor codec.Address,
	action Action,
	timestamp int64,
	actionID ids.ID,
) (codec.Typed, error) {
	rules := p.ruleFactory.GetRules(timestamp)
	result, err := action.Execute(ctx, rules, mu, timestamp, actor, actionID)
	if err != nil {
		p.log.Debug("action rejected",
			zap.String("action", action.Name()),
			zap.Stringer("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}
	p.log.Debug("action executed",
		zap.String("action", action.Name()),
		zap.Stringer("actor", actor),
		zap.Int64("timestamp", timestamp),
	)
	if eventer, ok := result.(Eventer); ok {
		for _, e := range eventer.Events(timestamp) {
			if err := event.NotifyAll(ctx, e, p.subs...); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
