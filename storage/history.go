// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/state"
)

// Record is a single entry of the bounded history log, serialized with borsh.
type Record struct {
	Action    string        `json:"action"`
	Value     uint64        `json:"value"`
	Timestamp int64         `json:"timestamp"`
	Actor     codec.Address `json:"actor"`
}

func HistoryMetaKey() []byte {
	return []byte{historyMetaPrefix}
}

// HistoryEntriesPrefix covers every slot key of the log. Actions declare it
// in StateKeys since the slots they touch depend on the log metadata.
func HistoryEntriesPrefix() []byte {
	return []byte{historyPrefix}
}

// [historyPrefix] + [slot]
func HistoryEntryKey(slot uint64) []byte {
	k := make([]byte, consts.ByteLen+consts.Uint64Len)
	k[0] = historyPrefix
	binary.BigEndian.PutUint64(k[1:], slot)
	return k
}

// The log is a ring buffer over the KV store: [start] is the slot holding the
// oldest record and [count] the number of live records. Eviction is O(1) and
// preserves the chronological order of every surviving record.
func getHistoryMeta(ctx context.Context, im state.Immutable) (uint64, uint64, error) {
	v, err := im.GetValue(ctx, HistoryMetaKey())
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

func setHistoryMeta(ctx context.Context, mu state.Mutable, start uint64, count uint64) error {
	v := make([]byte, 0, 2*consts.Uint64Len)
	v = binary.BigEndian.AppendUint64(v, start)
	v = binary.BigEndian.AppendUint64(v, count)
	return mu.Insert(ctx, HistoryMetaKey(), v)
}

// AppendHistory writes [record] as the newest entry of the log. Once
// [capacity] records exist, the oldest record is evicted to admit the new
// one.
func AppendHistory(
	ctx context.Context,
	mu state.Mutable,
	record Record,
	capacity uint64,
) error {
	if capacity == 0 {
		return nil
	}
	start, count, err := getHistoryMeta(ctx, mu)
	if err != nil {
		return err
	}
	raw, err := borsh.Serialize(record)
	if err != nil {
		return fmt.Errorf("could not serialize history record: %w", err)
	}
	var slot uint64
	if count == capacity {
		// Full: the new record overwrites the oldest slot, which then
		// becomes the newest position in the ring.
		slot = start
		start = (start + 1) % capacity
	} else {
		slot = (start + count) % capacity
		count++
	}
	if err := mu.Insert(ctx, HistoryEntryKey(slot), raw); err != nil {
		return err
	}
	return setHistoryMeta(ctx, mu, start, count)
}

// GetHistoryRange returns up to [limit] records starting at chronological
// position [offset] (0 = oldest surviving record), oldest first.
func GetHistoryRange(
	ctx context.Context,
	im state.Immutable,
	offset uint64,
	limit uint64,
	capacity uint64,
) ([]Record, error) {
	start, count, err := getHistoryMeta(ctx, im)
	if err != nil {
		return nil, err
	}
	if offset >= count || capacity == 0 {
		return nil, nil
	}
	if remaining := count - offset; limit > remaining {
		limit = remaining
	}
	records := make([]Record, 0, limit)
	for i := uint64(0); i < limit; i++ {
		slot := (start + offset + i) % capacity
		raw, err := im.GetValue(ctx, HistoryEntryKey(slot))
		if err != nil {
			return nil, err
		}
		var record Record
		if err := borsh.Deserialize(&record, raw); err != nil {
			return nil, fmt.Errorf("could not deserialize history record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// GetRecentHistory returns the most recent [limit] records, oldest first.
func GetRecentHistory(
	ctx context.Context,
	im state.Immutable,
	limit uint64,
	capacity uint64,
) ([]Record, error) {
	_, count, err := getHistoryMeta(ctx, im)
	if err != nil {
		return nil, err
	}
	if limit > count {
		limit = count
	}
	return GetHistoryRange(ctx, im, count-limit, limit, capacity)
}

// HistoryLength returns the number of live records in the log.
func HistoryLength(ctx context.Context, im state.Immutable) (uint64, error) {
	_, count, err := getHistoryMeta(ctx, im)
	return count, err
}

// ClearHistory removes every record and the log metadata. Gating is the
// caller's responsibility.
func ClearHistory(ctx context.Context, mu state.Mutable, capacity uint64) error {
	start, count, err := getHistoryMeta(ctx, mu)
	if err != nil {
		return err
	}
	if capacity == 0 {
		return nil
	}
	for i := uint64(0); i < count; i++ {
		if err := mu.Remove(ctx, HistoryEntryKey((start+i)%capacity)); err != nil {
			return err
		}
	}
	return mu.Remove(ctx, HistoryMetaKey())
}
