// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

func FlipKey() []byte {
	return []byte{flipPrefix}
}

func TotalFlipsKey() []byte {
	return []byte{totalFlipsPrefix}
}

// [flipCountPrefix] + [address]
func FlipCountKey(addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = flipCountPrefix
	copy(k[1:], addr[:])
	return k
}

// GetFlip returns the boolean flip value, false if never flipped.
func GetFlip(ctx context.Context, im state.Immutable) (bool, error) {
	v, err := im.GetValue(ctx, FlipKey())
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(v) != 1 {
		return false, ErrInvalidValue
	}
	return v[0] != 0, nil
}

func SetFlip(ctx context.Context, mu state.Mutable, value bool) error {
	b := byte(0)
	if value {
		b = 1
	}
	return mu.Insert(ctx, FlipKey(), []byte{b})
}

// GetTotalFlips returns the total number of successful flips by any actor.
func GetTotalFlips(ctx context.Context, im state.Immutable) (uint64, error) {
	v, err := im.GetValue(ctx, TotalFlipsKey())
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

// GetFlipCount returns the number of flips performed by [addr], 0 for
// addresses that never flipped.
func GetFlipCount(ctx context.Context, im state.Immutable, addr codec.Address) (uint64, error) {
	v, err := im.GetValue(ctx, FlipCountKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

// Flip toggles the flip value and records the actor's flip. It returns the
// new value and the actor's new flip count.
func Flip(ctx context.Context, mu state.Mutable, actor codec.Address) (bool, uint64, error) {
	value, err := GetFlip(ctx, mu)
	if err != nil {
		return false, 0, err
	}
	count, err := GetFlipCount(ctx, mu, actor)
	if err != nil {
		return false, 0, err
	}
	ncount, err := smath.Add(count, uint64(1))
	if err != nil {
		return false, 0, err
	}
	total, err := GetTotalFlips(ctx, mu)
	if err != nil {
		return false, 0, err
	}
	ntotal, err := smath.Add(total, uint64(1))
	if err != nil {
		return false, 0, err
	}

	nvalue := !value
	if err := SetFlip(ctx, mu, nvalue); err != nil {
		return false, 0, err
	}
	if err := mu.Insert(ctx, FlipCountKey(actor), binary.BigEndian.AppendUint64(nil, ncount)); err != nil {
		return false, 0, err
	}
	if err := mu.Insert(ctx, TotalFlipsKey(), binary.BigEndian.AppendUint64(nil, ntotal)); err != nil {
		return false, 0, err
	}
	return nvalue, ncount, nil
}
