// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/storage"
	"github.com/ava-labs/countervm/vm"
)

type JSONRPCClient struct {
	requester rpc.EndpointRequester

	g *genesis.Genesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{requester: rpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) call(ctx context.Context, method string, args any, reply any) error {
	return cli.requester.SendRequest(ctx, consts.Name+"."+method, args, reply)
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.Genesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}
	resp := new(GenesisReply)
	if err := cli.call(ctx, "genesis", nil, resp); err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) Value(ctx context.Context) (uint64, error) {
	resp := new(ValueReply)
	if err := cli.call(ctx, "value", nil, resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (cli *JSONRPCClient) Owner(ctx context.Context) (codec.Address, error) {
	resp := new(OwnerReply)
	if err := cli.call(ctx, "owner", nil, resp); err != nil {
		return codec.EmptyAddress, err
	}
	return resp.Owner, nil
}

func (cli *JSONRPCClient) IsOwner(ctx context.Context, addr codec.Address) (bool, error) {
	resp := new(IsOwnerReply)
	if err := cli.call(ctx, "isOwner", &IsOwnerArgs{Address: addr}, resp); err != nil {
		return false, err
	}
	return resp.IsOwner, nil
}

func (cli *JSONRPCClient) Totals(ctx context.Context) (uint64, uint64, error) {
	resp := new(TotalsReply)
	if err := cli.call(ctx, "totals", nil, resp); err != nil {
		return 0, 0, err
	}
	return resp.Increments, resp.Decrements, nil
}

func (cli *JSONRPCClient) ActionCount(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(ActionCountReply)
	if err := cli.call(ctx, "actionCount", &ActionCountArgs{Address: addr}, resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (cli *JSONRPCClient) History(ctx context.Context, limit uint64) ([]storage.Record, uint64, error) {
	resp := new(HistoryReply)
	if err := cli.call(ctx, "history", &HistoryArgs{Limit: limit}, resp); err != nil {
		return nil, 0, err
	}
	return resp.Records, resp.Length, nil
}

func (cli *JSONRPCClient) HistoryRange(ctx context.Context, offset uint64, limit uint64) ([]storage.Record, uint64, error) {
	resp := new(HistoryReply)
	if err := cli.call(ctx, "historyRange", &HistoryRangeArgs{Offset: offset, Limit: limit}, resp); err != nil {
		return nil, 0, err
	}
	return resp.Records, resp.Length, nil
}

func (cli *JSONRPCClient) Flipped(ctx context.Context) (bool, error) {
	resp := new(FlippedReply)
	if err := cli.call(ctx, "flipped", nil, resp); err != nil {
		return false, err
	}
	return resp.Value, nil
}

func (cli *JSONRPCClient) FlipCount(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(FlipCountReply)
	if err := cli.call(ctx, "flipCount", &FlipCountArgs{Address: addr}, resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (cli *JSONRPCClient) TotalFlips(ctx context.Context) (uint64, error) {
	resp := new(TotalFlipsReply)
	if err := cli.call(ctx, "totalFlips", nil, resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (cli *JSONRPCClient) Stats(ctx context.Context) (*vm.Stats, error) {
	resp := new(StatsReply)
	if err := cli.call(ctx, "stats", nil, resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

func (cli *JSONRPCClient) Increment(ctx context.Context, actor codec.Address, amount uint64) (uint64, error) {
	resp := new(IncrementReply)
	if err := cli.call(ctx, "increment", &IncrementArgs{Actor: actor, Amount: &amount}, resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (cli *JSONRPCClient) Decrement(ctx context.Context, actor codec.Address) (uint64, error) {
	resp := new(DecrementReply)
	if err := cli.call(ctx, "decrement", &DecrementArgs{Actor: actor}, resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (cli *JSONRPCClient) Reset(ctx context.Context, actor codec.Address) error {
	return cli.call(ctx, "reset", &ResetArgs{Actor: actor}, &struct{}{})
}

func (cli *JSONRPCClient) SetValue(ctx context.Context, actor codec.Address, value uint64) error {
	return cli.call(ctx, "setValue", &SetValueArgs{Actor: actor, Value: value}, &struct{}{})
}

func (cli *JSONRPCClient) TransferOwnership(ctx context.Context, actor codec.Address, newOwner codec.Address) error {
	return cli.call(ctx, "transferOwnership", &TransferOwnershipArgs{Actor: actor, NewOwner: newOwner}, &struct{}{})
}

func (cli *JSONRPCClient) ClearHistory(ctx context.Context, actor codec.Address) (uint64, error) {
	resp := new(ClearHistoryReply)
	if err := cli.call(ctx, "clearHistory", &ClearHistoryArgs{Actor: actor}, resp); err != nil {
		return 0, err
	}
	return resp.Cleared, nil
}

func (cli *JSONRPCClient) Flip(ctx context.Context, actor codec.Address) (bool, error) {
	resp := new(FlipReply)
	if err := cli.call(ctx, "flip", &FlipArgs{Actor: actor}, resp); err != nil {
		return false, err
	}
	return resp.Value, nil
}
