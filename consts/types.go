// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Action TypeIDs
	IncrementID         uint8 = 0
	DecrementID         uint8 = 1
	ResetID             uint8 = 2
	SetValueID          uint8 = 3
	TransferOwnershipID uint8 = 4
	ClearHistoryID      uint8 = 5
	FlipID              uint8 = 6
)

const (
	ByteLen   = 1
	Uint64Len = 8
)
