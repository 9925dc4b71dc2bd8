// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/event"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/storage"
)

// VM hosts a single counter state machine over a persistent store. It
// provides what the engine expects of its runtime: serialized calls, a
// monotonic timestamp source, a caller identity per operation, and an event
// sink fan-out.
type VM struct {
	log       *zap.Logger
	state     *storage.StateDB
	genesis   *genesis.Genesis
	rules     chain.RuleFactory
	processor *chain.Processor
	metrics   *metrics

	// Mutating operations are serialized; the engine itself holds no locks.
	mu            sync.Mutex
	lastTimestamp int64
	nonce         uint64

	clock func() int64
}

type Option func(*VM)

// WithClock overrides the timestamp source, mostly for tests.
func WithClock(clock func() int64) Option {
	return func(vm *VM) {
		vm.clock = clock
	}
}

// New builds a VM over [db]. Fresh state is initialized from [g]; restarting
// over existing state leaves it untouched.
func New(
	ctx context.Context,
	log *zap.Logger,
	db database.KeyValueReaderWriterDeleter,
	g *genesis.Genesis,
	networkID uint32,
	chainID ids.ID,
	registry prometheus.Registerer,
	subs []event.Subscription[codec.Typed],
	opts ...Option,
) (*VM, error) {
	st := storage.NewStateDB(db)
	if err := g.Load(ctx, st); err != nil && !errors.Is(err, storage.ErrAlreadyInitialized) {
		return nil, err
	}
	m, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}
	ruleFactory := &genesis.ImmutableRuleFactory{
		Rules: genesis.NewRules(g, networkID, chainID),
	}
	vm := &VM{
		log:       log,
		state:     st,
		genesis:   g,
		rules:     ruleFactory,
		processor: chain.NewProcessor(log, ruleFactory, subs...),
		metrics:   m,
		clock:     func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm, nil
}

// Submit executes [action] on behalf of [actor]. Calls are serialized, so an
// action observes no interleaved writes.
func (vm *VM) Submit(ctx context.Context, actor codec.Address, action chain.Action) (codec.Typed, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	timestamp := vm.now()
	actionID := ids.Empty.Prefix(vm.nonce)
	vm.nonce++

	result, err := vm.processor.Execute(ctx, vm.state, actor, action, timestamp, actionID)
	if err != nil {
		vm.metrics.rejected.Inc()
		return nil, err
	}
	vm.metrics.track(action.Name())
	return result, nil
}

// now returns a monotonically non-decreasing timestamp in milliseconds.
func (vm *VM) now() int64 {
	t := vm.clock()
	if t < vm.lastTimestamp {
		t = vm.lastTimestamp
	}
	vm.lastTimestamp = t
	return t
}

func (vm *VM) Genesis() *genesis.Genesis {
	return vm.genesis
}

func (vm *VM) Rules(t int64) chain.Rules {
	return vm.rules.GetRules(t)
}

// ReadState batch-reads [keys] from the underlying store. Queries are served
// from this primitive rather than from the mutable state handle directly.
func (vm *VM) ReadState(ctx context.Context, keys [][]byte) ([][]byte, []error) {
	values := make([][]byte, len(keys))
	errs := make([]error, len(keys))
	for i, key := range keys {
		values[i], errs[i] = vm.state.GetValue(ctx, key)
	}
	return values, errs
}

func (vm *VM) Value(ctx context.Context) (uint64, error) {
	return storage.GetCounterFromState(ctx, vm.ReadState)
}

func (vm *VM) Owner(ctx context.Context) (codec.Address, error) {
	return storage.GetOwner(ctx, vm.state)
}

func (vm *VM) IsOwner(ctx context.Context, addr codec.Address) (bool, error) {
	owner, err := storage.GetOwner(ctx, vm.state)
	if err != nil {
		return false, err
	}
	return addr == owner, nil
}

func (vm *VM) Totals(ctx context.Context) (uint64, uint64, error) {
	return storage.GetTotals(ctx, vm.state)
}

func (vm *VM) ActionCount(ctx context.Context, addr codec.Address) (uint64, error) {
	return storage.GetActionCountFromState(ctx, vm.ReadState, addr)
}

func (vm *VM) History(ctx context.Context, limit uint64) ([]storage.Record, error) {
	rules := vm.rules.GetRules(vm.clock())
	return storage.GetRecentHistory(ctx, vm.state, limit, rules.GetMaxHistoryEntries())
}

func (vm *VM) HistoryRange(ctx context.Context, offset uint64, limit uint64) ([]storage.Record, error) {
	rules := vm.rules.GetRules(vm.clock())
	return storage.GetHistoryRange(ctx, vm.state, offset, limit, rules.GetMaxHistoryEntries())
}

func (vm *VM) HistoryLength(ctx context.Context) (uint64, error) {
	return storage.HistoryLength(ctx, vm.state)
}

func (vm *VM) Flipped(ctx context.Context) (bool, error) {
	return storage.GetFlip(ctx, vm.state)
}

func (vm *VM) FlipCount(ctx context.Context, addr codec.Address) (uint64, error) {
	return storage.GetFlipCount(ctx, vm.state, addr)
}

func (vm *VM) TotalFlips(ctx context.Context) (uint64, error) {
	return storage.GetTotalFlips(ctx, vm.state)
}

// Stats is the comprehensive snapshot served by the stats query.
type Stats struct {
	Value           uint64        `json:"value"`
	TotalIncrements uint64        `json:"totalIncrements"`
	TotalDecrements uint64        `json:"totalDecrements"`
	HistoryLength   uint64        `json:"historyLength"`
	Owner           codec.Address `json:"owner"`
	TotalFlips      uint64        `json:"totalFlips"`
}

func (vm *VM) Stats(ctx context.Context) (*Stats, error) {
	value, err := storage.GetCounter(ctx, vm.state)
	if err != nil {
		return nil, err
	}
	incs, decs, err := storage.GetTotals(ctx, vm.state)
	if err != nil {
		return nil, err
	}
	length, err := storage.HistoryLength(ctx, vm.state)
	if err != nil {
		return nil, err
	}
	owner, err := storage.GetOwner(ctx, vm.state)
	if err != nil {
		return nil, err
	}
	flips, err := storage.GetTotalFlips(ctx, vm.state)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Value:           value,
		TotalIncrements: incs,
		TotalDecrements: decs,
		HistoryLength:   length,
		Owner:           owner,
		TotalFlips:      flips,
	}, nil
}
