// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// State
// 0x0/ (counter value)
// 0x1/ (owner)
// 0x2/ (totals)
//   -> [increments] [decrements]
// 0x3/ (initialized marker)
// 0x4/ (action counts)
//   -> [actor] => count
// 0x5/ (history metadata)
//   -> [start] [count]
// 0x6/ (history entries)
//   -> [slot] => borsh(Record)
// 0x7/ (flip value)
// 0x8/ (total flips)
// 0x9/ (flip counts)
//   -> [actor] => count
const (
	counterPrefix     byte = 0x0
	ownerPrefix       byte = 0x1
	totalsPrefix      byte = 0x2
	initializedPrefix byte = 0x3
	actionCountPrefix byte = 0x4
	historyMetaPrefix byte = 0x5
	historyPrefix     byte = 0x6
	flipPrefix        byte = 0x7
	totalFlipsPrefix  byte = 0x8
	flipCountPrefix   byte = 0x9
)

// MaxHistoryEntries bounds the history log. Appending beyond this capacity
// evicts the oldest record.
const MaxHistoryEntries uint64 = 1_000

// Action tags recorded in the history log.
const (
	IncrementTag = "increment"
	DecrementTag = "decrement"
	ResetTag     = "reset"
	TransferTag  = "transfer_ownership"
	FlipTag      = "flip"
)
