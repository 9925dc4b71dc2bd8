// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import "github.com/ava-labs/countervm/codec"

const (
	CounterUpdatedID   uint8 = 0
	ResetID            uint8 = 1
	AuthorityUpdatedID uint8 = 2
	FlippedID          uint8 = 3
)

var (
	_ codec.Typed = (*CounterUpdated)(nil)
	_ codec.Typed = (*Reset)(nil)
	_ codec.Typed = (*AuthorityUpdated)(nil)
	_ codec.Typed = (*Flipped)(nil)
)

// CounterUpdated is emitted whenever the counter value changes.
type CounterUpdated struct {
	NewValue  uint64 `json:"newValue"`
	Timestamp int64  `json:"timestamp"`
}

func (*CounterUpdated) GetTypeID() uint8 {
	return CounterUpdatedID
}

// Reset is emitted when the counter is reset to zero.
type Reset struct {
	By        codec.Address `json:"by"`
	Timestamp int64         `json:"timestamp"`
}

func (*Reset) GetTypeID() uint8 {
	return ResetID
}

// AuthorityUpdated is emitted when ownership is transferred.
type AuthorityUpdated struct {
	Old       codec.Address `json:"old"`
	New       codec.Address `json:"new"`
	Timestamp int64         `json:"timestamp"`
}

func (*AuthorityUpdated) GetTypeID() uint8 {
	return AuthorityUpdatedID
}

// Flipped is emitted when the flip value toggles.
type Flipped struct {
	By        codec.Address `json:"by"`
	NewValue  bool          `json:"newValue"`
	FlipCount uint64        `json:"flipCount"`
}

func (*Flipped) GetTypeID() uint8 {
	return FlippedID
}
