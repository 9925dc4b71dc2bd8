// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"

	"github.com/ava-labs/countervm/actions"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/storage"
	"github.com/ava-labs/countervm/vm"
)

const JSONRPCEndpoint = "/countervm"

type JSONRPCServer struct {
	c Controller
}

func NewJSONRPCServer(c Controller) *JSONRPCServer {
	return &JSONRPCServer{c}
}

type GenesisReply struct {
	Genesis *genesis.Genesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) error {
	reply.Genesis = j.c.Genesis()
	return nil
}

type ValueReply struct {
	Value uint64 `json:"value"`
}

func (j *JSONRPCServer) Value(req *http.Request, _ *struct{}, reply *ValueReply) error {
	value, err := j.c.Value(req.Context())
	if err != nil {
		return err
	}
	reply.Value = value
	return nil
}

type OwnerReply struct {
	Owner codec.Address `json:"owner"`
}

func (j *JSONRPCServer) Owner(req *http.Request, _ *struct{}, reply *OwnerReply) error {
	owner, err := j.c.Owner(req.Context())
	if err != nil {
		return err
	}
	reply.Owner = owner
	return nil
}

type IsOwnerArgs struct {
	Address codec.Address `json:"address"`
}

type IsOwnerReply struct {
	IsOwner bool `json:"isOwner"`
}

func (j *JSONRPCServer) IsOwner(req *http.Request, args *IsOwnerArgs, reply *IsOwnerReply) error {
	isOwner, err := j.c.IsOwner(req.Context(), args.Address)
	if err != nil {
		return err
	}
	reply.IsOwner = isOwner
	return nil
}

type TotalsReply struct {
	Increments uint64 `json:"increments"`
	Decrements uint64 `json:"decrements"`
}

func (j *JSONRPCServer) Totals(req *http.Request, _ *struct{}, reply *TotalsReply) error {
	incs, decs, err := j.c.Totals(req.Context())
	if err != nil {
		return err
	}
	reply.Increments = incs
	reply.Decrements = decs
	return nil
}

type ActionCountArgs struct {
	Address codec.Address `json:"address"`
}

type ActionCountReply struct {
	Count uint64 `json:"count"`
}

func (j *JSONRPCServer) ActionCount(req *http.Request, args *ActionCountArgs, reply *ActionCountReply) error {
	count, err := j.c.ActionCount(req.Context(), args.Address)
	if err != nil {
		return err
	}
	reply.Count = count
	return nil
}

type HistoryArgs struct {
	// Limit bounds the number of most recent records returned. 0 means all
	// surviving records.
	Limit uint64 `json:"limit"`
}

type HistoryReply struct {
	Records []storage.Record `json:"records"`
	Length  uint64           `json:"length"`
}

func (j *JSONRPCServer) History(req *http.Request, args *HistoryArgs, reply *HistoryReply) error {
	length, err := j.c.HistoryLength(req.Context())
	if err != nil {
		return err
	}
	limit := args.Limit
	if limit == 0 {
		limit = length
	}
	records, err := j.c.History(req.Context(), limit)
	if err != nil {
		return err
	}
	reply.Records = records
	reply.Length = length
	return nil
}

type HistoryRangeArgs struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

func (j *JSONRPCServer) HistoryRange(req *http.Request, args *HistoryRangeArgs, reply *HistoryReply) error {
	length, err := j.c.HistoryLength(req.Context())
	if err != nil {
		return err
	}
	records, err := j.c.HistoryRange(req.Context(), args.Offset, args.Limit)
	if err != nil {
		return err
	}
	reply.Records = records
	reply.Length = length
	return nil
}

type FlippedReply struct {
	Value bool `json:"value"`
}

func (j *JSONRPCServer) Flipped(req *http.Request, _ *struct{}, reply *FlippedReply) error {
	value, err := j.c.Flipped(req.Context())
	if err != nil {
		return err
	}
	reply.Value = value
	return nil
}

type FlipCountArgs struct {
	Address codec.Address `json:"address"`
}

type FlipCountReply struct {
	Count uint64 `json:"count"`
}

func (j *JSONRPCServer) FlipCount(req *http.Request, args *FlipCountArgs, reply *FlipCountReply) error {
	count, err := j.c.FlipCount(req.Context(), args.Address)
	if err != nil {
		return err
	}
	reply.Count = count
	return nil
}

type TotalFlipsReply struct {
	Count uint64 `json:"count"`
}

func (j *JSONRPCServer) TotalFlips(req *http.Request, _ *struct{}, reply *TotalFlipsReply) error {
	count, err := j.c.TotalFlips(req.Context())
	if err != nil {
		return err
	}
	reply.Count = count
	return nil
}

type StatsReply struct {
	Stats *vm.Stats `json:"stats"`
}

func (j *JSONRPCServer) Stats(req *http.Request, _ *struct{}, reply *StatsReply) error {
	stats, err := j.c.Stats(req.Context())
	if err != nil {
		return err
	}
	reply.Stats = stats
	return nil
}

type IncrementArgs struct {
	Actor codec.Address `json:"actor"`
	// Amount defaults to 1 when omitted.
	Amount *uint64 `json:"amount"`
}

type IncrementReply struct {
	Value       uint64 `json:"value"`
	ActionCount uint64 `json:"actionCount"`
}

func (j *JSONRPCServer) Increment(req *http.Request, args *IncrementArgs, reply *IncrementReply) error {
	if args.Actor == codec.EmptyAddress {
		return ErrMissingActor
	}
	amount := uint64(1)
	if args.Amount != nil {
		amount = *args.Amount
	}
	result, err := j.c.Submit(req.Context(), args.Actor, &actions.Increment{Amount: amount})
	if err != nil {
		return err
	}
	out := result.(*actions.IncrementResult)
	reply.Value = out.Value
	reply.ActionCount = out.ActionCount
	return nil
}

type DecrementArgs struct {
	Actor codec.Address `json:"actor"`
}

type DecrementReply struct {
	Value       uint64 `json:"value"`
	ActionCount uint64 `json:"actionCount"`
}

func (j *JSONRPCServer) Decrement(req *http.Request, args *DecrementArgs, reply *DecrementReply) error {
	if args.Actor == codec.EmptyAddress {
		return ErrMissingActor
	}
	result, err := j.c.Submit(req.Context(), args.Actor, &actions.Decrement{})
	if err != nil {
		return err
	}
	out := result.(*actions.DecrementResult)
	reply.Value = out.Value
	reply.ActionCount = out.ActionCount
	return nil
}

type ResetArgs struct {
	Actor codec.Address `json:"actor"`
}

func (j *JSONRPCServer) Reset(req *http.Request, args *ResetArgs, _ *struct{}) error {
	if args.Actor == codec.EmptyAddress {
		return ErrMissingActor
	}
	_, err := j.c.Submit(req.Context(), args.Actor, &actions.Reset{})
	return err
}

type SetValueArgs struct {
	Actor codec.Address `json:"actor"`
	Value uint64        `json:"value"`
}

func (j *JSONRPCServer) SetValue(req *http.Request, args *SetValueArgs, _ *struct{}) error {
	if args.Actor == codec.EmptyAddress {
		return ErrMissingActor
	}
	_, err := j.c.Submit(req.Context(), args.Actor, &actions.SetValue{Value: args.Value})
	return err
}

type TransferOwnershipArgs struct {
	Actor    codec.Address `json:"actor"`
	NewOwner codec.Address `json:"newOwner"`
}

func (j *JSONRPCServer) TransferOwnership(req *http.Request, args *TransferOwnershipArgs, _ *struct{}) error {
	if args.Actor == codec.EmptyAddress {
		return ErrMissingActor
	}
	_, err := j.c.Submit(req.Context(), args.Actor, &actions.TransferOwnership{NewOwner: args.NewOwner})
	return err
}

type ClearHistoryArgs struct {
	Actor codec.Address `json:"actor"`
}

type ClearHistoryReply struct {
	Cleared uint64 `json:"cleared"`
}

func (j *JSONRPCServer) ClearHistory(req *http.Request, args *ClearHistoryArgs, reply *ClearHistoryReply) error {
	if args.Actor == codec.EmptyAddress {
		return ErrMissingActor
	}
	result, err := j.c.Submit(req.Context(), args.Actor, &actions.ClearHistory{})
	if err != nil {
		return err
	}
	reply.Cleared = result.(*actions.ClearHistoryResult).Cleared
	return nil
}

type FlipArgs struct {
	Actor codec.Address `json:"actor"`
}

type FlipReply struct {
	Value     bool   `json:"value"`
	FlipCount uint64 `json:"flipCount"`
}

func (j *JSONRPCServer) Flip(req *http.Request, args *FlipArgs, reply *FlipReply) error {
	if args.Actor == codec.EmptyAddress {
		return ErrMissingActor
	}
	result, err := j.c.Submit(req.Context(), args.Actor, &actions.Flip{})
	if err != nil {
		return err
	}
	out := result.(*actions.FlipResult)
	reply.Value = out.Value
	reply.FlipCount = out.FlipCount
	return nil
}
