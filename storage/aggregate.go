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

// [actionCountPrefix] + [address]
func ActionCountKey(addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = actionCountPrefix
	copy(k[1:], addr[:])
	return k
}

// GetActionCount returns the number of successful actions performed by
// [addr]. Addresses with no prior action report 0.
func GetActionCount(ctx context.Context, im state.Immutable, addr codec.Address) (uint64, error) {
	v, err := im.GetValue(ctx, ActionCountKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

// GetActionCountFromState is used to serve RPC queries.
func GetActionCountFromState(ctx context.Context, f ReadState, addr codec.Address) (uint64, error) {
	values, errs := f(ctx, [][]byte{ActionCountKey(addr)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return 0, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return database.ParseUInt64(values[0])
}

// AddActionCount records one successful action by [addr] and returns the new
// count. Rows are created lazily and never removed.
func AddActionCount(ctx context.Context, mu state.Mutable, addr codec.Address) (uint64, error) {
	count, err := GetActionCount(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	ncount, err := smath.Add(count, uint64(1))
	if err != nil {
		return 0, err
	}
	return ncount, mu.Insert(ctx, ActionCountKey(addr), binary.BigEndian.AppendUint64(nil, ncount))
}
