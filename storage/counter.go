// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// ReadState is the batched read primitive RPC queries are served from.
type ReadState func(context.Context, [][]byte) ([][]byte, []error)

func CounterKey() []byte {
	return []byte{counterPrefix}
}

func OwnerKey() []byte {
	return []byte{ownerPrefix}
}

func TotalsKey() []byte {
	return []byte{totalsPrefix}
}

func InitializedKey() []byte {
	return []byte{initializedPrefix}
}

// GetCounter returns the current counter value, or 0 if none has been
// written yet.
func GetCounter(ctx context.Context, im state.Immutable) (uint64, error) {
	v, err := im.GetValue(ctx, CounterKey())
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

// GetCounterFromState is used to serve RPC queries.
func GetCounterFromState(ctx context.Context, f ReadState) (uint64, error) {
	values, errs := f(ctx, [][]byte{CounterKey()})
	if errors.Is(errs[0], database.ErrNotFound) {
		return 0, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return database.ParseUInt64(values[0])
}

func SetCounter(ctx context.Context, mu state.Mutable, value uint64) error {
	return mu.Insert(ctx, CounterKey(), binary.BigEndian.AppendUint64(nil, value))
}

// AddCounter applies a checked addition to the counter value. The state is
// untouched when the addition would overflow.
func AddCounter(ctx context.Context, mu state.Mutable, amount uint64) (uint64, error) {
	value, err := GetCounter(ctx, mu)
	if err != nil {
		return 0, err
	}
	nvalue, err := smath.Add(value, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not add (value=%d, amount=%d)",
			ErrOverflow,
			value,
			amount,
		)
	}
	return nvalue, SetCounter(ctx, mu, nvalue)
}

// SubCounter applies a checked subtraction to the counter value. The state is
// untouched when the subtraction would go below zero.
func SubCounter(ctx context.Context, mu state.Mutable, amount uint64) (uint64, error) {
	value, err := GetCounter(ctx, mu)
	if err != nil {
		return 0, err
	}
	nvalue, err := smath.Sub(value, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not subtract (value=%d, amount=%d)",
			ErrUnderflow,
			value,
			amount,
		)
	}
	return nvalue, SetCounter(ctx, mu, nvalue)
}

// GetOwner returns the owner of the counter, or EmptyAddress when the state
// has not been initialized.
func GetOwner(ctx context.Context, im state.Immutable) (codec.Address, error) {
	v, err := im.GetValue(ctx, OwnerKey())
	if errors.Is(err, database.ErrNotFound) {
		return codec.EmptyAddress, nil
	}
	if err != nil {
		return codec.EmptyAddress, err
	}
	if len(v) != codec.AddressLen {
		return codec.EmptyAddress, ErrInvalidValue
	}
	return codec.Address(v), nil
}

func SetOwner(ctx context.Context, mu state.Mutable, owner codec.Address) error {
	return mu.Insert(ctx, OwnerKey(), owner[:])
}

// AssertOwner returns ErrUnauthorized when [actor] is not the stored owner.
// Pure comparison, no side effects.
func AssertOwner(ctx context.Context, im state.Immutable, actor codec.Address) error {
	owner, err := GetOwner(ctx, im)
	if err != nil {
		return err
	}
	if actor != owner {
		return fmt.Errorf("%w (actor=%s)", ErrUnauthorized, actor)
	}
	return nil
}

// GetTotals returns the number of successful increment and decrement calls.
func GetTotals(ctx context.Context, im state.Immutable) (uint64, uint64, error) {
	v, err := im.GetValue(ctx, TotalsKey())
	if errors.Is(err, database.ErrNotFound) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}
	if len(v) != 2*consts.Uint64Len {
		return 0, 0, ErrInvalidValue
	}
	return binary.BigEndian.Uint64(v[:consts.Uint64Len]), binary.BigEndian.Uint64(v[consts.Uint64Len:]), nil
}

func setTotals(ctx context.Context, mu state.Mutable, increments uint64, decrements uint64) error {
	v := make([]byte, 0, 2*consts.Uint64Len)
	v = binary.BigEndian.AppendUint64(v, increments)
	v = binary.BigEndian.AppendUint64(v, decrements)
	return mu.Insert(ctx, TotalsKey(), v)
}

// AddTotalIncrements counts one successful increment call.
func AddTotalIncrements(ctx context.Context, mu state.Mutable) error {
	incs, decs, err := GetTotals(ctx, mu)
	if err != nil {
		return err
	}
	nincs, err := smath.Add(incs, uint64(1))
	if err != nil {
		return err
	}
	return setTotals(ctx, mu, nincs, decs)
}

// AddTotalDecrements counts one successful decrement call.
func AddTotalDecrements(ctx context.Context, mu state.Mutable) error {
	incs, decs, err := GetTotals(ctx, mu)
	if err != nil {
		return err
	}
	ndecs, err := smath.Add(decs, uint64(1))
	if err != nil {
		return err
	}
	return setTotals(ctx, mu, incs, ndecs)
}

// IsInitialized reports whether the one-time state initialization already ran.
func IsInitialized(ctx context.Context, im state.Immutable) (bool, error) {
	_, err := im.GetValue(ctx, InitializedKey())
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func SetInitialized(ctx context.Context, mu state.Mutable) error {
	return mu.Insert(ctx, InitializedKey(), []byte{1})
}
