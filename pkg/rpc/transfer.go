// Copyright (C) 2025 OneChain Labs
//
// This file is part of onechain-wallet-go.
//
// onechain-wallet-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// onechain-wallet-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with onechain-wallet-go.  If not, see <https://www.gnu.org/licenses/>.

package rpc

import (
	"context"
	"net/http"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
)

// TransferBasePath is the base path of the transfer endpoints.
const TransferBasePath = "/transfer"

// CreateOrder opens a transfer order. The returned transaction hash
// identifies the order in SendTx and the query endpoints.
func CreateOrder(ctx context.Context, c Caller, req *protocol.TransferOrderReq) (*protocol.Response[protocol.CreateOrderResp], error) {
	return call[protocol.CreateOrderResp](ctx, c, http.MethodPost, TransferBasePath+"/createOrder", req)
}

// SendTx submits the signed transaction bytes for a previously created
// order.
func SendTx(ctx context.Context, c Caller, req *protocol.TransferOrderTxReq) (*protocol.Response[protocol.TransferOrderTxResponse], error) {
	return call[protocol.TransferOrderTxResponse](ctx, c, http.MethodPost, TransferBasePath+"/sendTx", req)
}

// PageList pages through the user's transfer orders matching the filter.
func PageList(ctx context.Context, c Caller, req *protocol.TransferOrderQueryPageReq) (*protocol.Response[protocol.PageResult[protocol.TransferOrderResp]], error) {
	return call[protocol.PageResult[protocol.TransferOrderResp]](ctx, c, http.MethodPost, TransferBasePath+"/pageList", req)
}

// QueryOrder fetches a single transfer order by transaction hash.
func QueryOrder(ctx context.Context, c Caller, req *protocol.TransferOrderQueryReq) (*protocol.Response[protocol.TransferOrderResp], error) {
	return call[protocol.TransferOrderResp](ctx, c, http.MethodPost, TransferBasePath+"/queryOrder", req)
}

// BuildSponsorTx asks the service to build a gas-sponsored transaction for
// the order. The caller signs the returned transaction bytes and submits
// them through SendTx.
func BuildSponsorTx(ctx context.Context, c Caller, req *protocol.BuildSponsorTxReq) (*protocol.Response[protocol.GasTxBuilderResponse], error) {
	return call[protocol.GasTxBuilderResponse](ctx, c, http.MethodPost, TransferBasePath+"/buildSponsorTransaction", req)
}

// DoProxyPayTx executes a proxy payment on behalf of the user.
func DoProxyPayTx(ctx context.Context, c Caller, req *protocol.ProxyPayTxReq) (*protocol.Response[protocol.ProxyPayTxResp], error) {
	return call[protocol.ProxyPayTxResp](ctx, c, http.MethodPost, TransferBasePath+"/doProxyPayTx", req)
}
