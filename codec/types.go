// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by any value that carries a type identifier, most
// notably action results. The ID namespaces results so external observers
// can decode them without guessing.
type Typed interface {
	GetTypeID() uint8
}
