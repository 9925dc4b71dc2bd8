// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/countervm/actions"
)

type metrics struct {
	increment         prometheus.Counter
	decrement         prometheus.Counter
	reset             prometheus.Counter
	setValue          prometheus.Counter
	transferOwnership prometheus.Counter
	clearHistory      prometheus.Counter
	flip              prometheus.Counter

	rejected prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		increment: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "increment",
			Help:      "number of increment actions",
		}),
		decrement: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "decrement",
			Help:      "number of decrement actions",
		}),
		reset: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "reset",
			Help:      "number of reset actions",
		}),
		setValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "set_value",
			Help:      "number of set value actions",
		}),
		transferOwnership: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "transfer_ownership",
			Help:      "number of transfer ownership actions",
		}),
		clearHistory: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "clear_history",
			Help:      "number of clear history actions",
		}),
		flip: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "flip",
			Help:      "number of flip actions",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "rejected",
			Help:      "number of rejected actions",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.increment),
		r.Register(m.decrement),
		r.Register(m.reset),
		r.Register(m.setValue),
		r.Register(m.transferOwnership),
		r.Register(m.clearHistory),
		r.Register(m.flip),
		r.Register(m.rejected),
	)
	return m, errs.Err
}

func (m *metrics) track(name string) {
	switch name {
	case actions.OpIncrement:
		m.increment.Inc()
	case actions.OpDecrement:
		m.decrement.Inc()
	case actions.OpReset:
		m.reset.Inc()
	case actions.OpSetValue:
		m.setValue.Inc()
	case actions.OpTransferOwnership:
		m.transferOwnership.Inc()
	case actions.OpClearHistory:
		m.clearHistory.Inc()
	case actions.OpFlip:
		m.flip.Inc()
	}
}
