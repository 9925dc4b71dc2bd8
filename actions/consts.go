// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Operation names. The gating policy table and metrics are keyed by these.
const (
	OpIncrement         = "increment"
	OpDecrement         = "decrement"
	OpReset             = "reset"
	OpSetValue          = "set_value"
	OpTransferOwnership = "transfer_ownership"
	OpClearHistory      = "clear_history"
	OpFlip              = "flip"
)
