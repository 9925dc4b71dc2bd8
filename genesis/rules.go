// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/countervm/chain"
)

var (
	_ chain.Rules       = (*Rules)(nil)
	_ chain.RuleFactory = (*ImmutableRuleFactory)(nil)
)

type Rules struct {
	*Genesis

	networkID uint32
	chainID   ids.ID
}

func NewRules(g *Genesis, networkID uint32, chainID ids.ID) *Rules {
	return &Rules{g, networkID, chainID}
}

func (r *Rules) GetNetworkID() uint32 {
	return r.networkID
}

func (r *Rules) GetChainID() ids.ID {
	return r.chainID
}

func (r *Rules) GetMaxHistoryEntries() uint64 {
	return r.MaxHistoryEntries
}

func (r *Rules) RequiresOwner(operation string) bool {
	return r.OwnerGated[operation]
}

func (r *Rules) LogOwnershipTransfers() bool {
	return r.Genesis.LogOwnershipTransfers
}

func (*Rules) FetchCustom(string) (any, bool) {
	return nil, false
}

// ImmutableRuleFactory returns the same rules regardless of timestamp.
type ImmutableRuleFactory struct {
	Rules chain.Rules
}

func (i *ImmutableRuleFactory) GetRules(int64) chain.Rules {
	return i.Rules
}
