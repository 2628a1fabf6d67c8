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

// WalletBasePath is the base path of the wallet query endpoints.
const WalletBasePath = "/wallet"

// QueryChainCurrencyForList lists the currencies supported per chain. The
// call takes no parameters; the session token in the global headers scopes
// the result.
func QueryChainCurrencyForList(ctx context.Context, c Caller) (*protocol.Response[[]protocol.CurrencyChainResp], error) {
	return call[[]protocol.CurrencyChainResp](ctx, c, http.MethodPost, WalletBasePath+"/queryChainCurrencyForList", nil)
}

// QueryUserWalletForList lists the user's wallets with balances, optionally
// filtered by chain and currency.
func QueryUserWalletForList(ctx context.Context, c Caller, req *protocol.QueryWalletReq) (*protocol.Response[[]protocol.UserWalletResp], error) {
	return call[[]protocol.UserWalletResp](ctx, c, http.MethodPost, WalletBasePath+"/queryUserWalletForList", req)
}
