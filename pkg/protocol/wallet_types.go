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

package protocol

import "github.com/shopspring/decimal"

// CurrencyChainResp groups the currencies supported on one chain.
type CurrencyChainResp struct {
	// Chain is the chain identifier
	Chain string `json:"chain"`

	// CurrencyList holds the currencies available on this chain
	CurrencyList []CurrencyInfo `json:"currencyList"`
}

// CurrencyInfo describes one supported currency.
type CurrencyInfo struct {
	// CurrencyType is 1 for fiat, 2 for digital currency
	CurrencyType int32 `json:"currencyType"`

	// Currency is the currency code
	Currency string `json:"currency"`

	// Name is the display name
	Name string `json:"name"`

	// Pic is the icon URL
	Pic string `json:"pic"`

	// ExchangeRate is the USD exchange rate
	ExchangeRate decimal.Decimal `json:"exchangeRate"`

	// DisplayDecimals is the display precision
	DisplayDecimals int32 `json:"displayDecimals"`

	// CalculateDecimals is the calculation precision
	CalculateDecimals int32 `json:"calculateDecimals"`

	// CreateTime is the creation time
	CreateTime int64 `json:"createTime"`

	// UpdateTime is the last update time
	UpdateTime int64 `json:"updateTime"`

	// Symbol is the currency symbol
	Symbol string `json:"symbol"`

	// CoinType is the on-chain coin type identifier
	CoinType string `json:"coinType"`
}

// QueryWalletReq filters user wallets. Pass either the DID or the wallet
// address.
type QueryWalletReq struct {
	// DID is the user's decentralized identifier, optional
	DID string `json:"did,omitempty"`

	// Address is the user wallet address
	Address string `json:"address"`
}

// UserWalletResp is one wallet owned by a user.
type UserWalletResp struct {
	// DID is the user's decentralized identifier, optional
	DID string `json:"did,omitempty"`

	// UserNo is the login user number
	UserNo string `json:"userNo"`

	// Address is the wallet address
	Address string `json:"address"`

	// Chain is the chain the wallet lives on
	Chain string `json:"chain"`

	// Account is the account number
	Account string `json:"account"`

	// AccountName is the account name
	AccountName string `json:"accountName"`

	// WalletType is the wallet type
	WalletType string `json:"walletType"`

	// AliasName is the user-set alias, optional
	AliasName string `json:"aliasName,omitempty"`
}
