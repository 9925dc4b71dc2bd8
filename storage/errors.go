// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized: actor is not the owner")
	ErrOverflow           = errors.New("counter overflow")
	ErrUnderflow          = errors.New("counter underflow")
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrInvalidValue       = errors.New("invalid stored value")
)
