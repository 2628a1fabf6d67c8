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

// TransferOrderReq creates a transfer order.
type TransferOrderReq struct {
	// FromAddress is the sender address
	FromAddress string `json:"fromAddress"`

	// ToAddress is the recipient address
	ToAddress string `json:"toAddress"`

	// CoinType is the on-chain coin type to transfer
	CoinType string `json:"coinType"`

	// Amount is the transfer amount
	Amount decimal.Decimal `json:"amount"`

	// Remark is an optional note attached to the order
	Remark string `json:"remark,omitempty"`
}

// CreateOrderResp is returned when a transfer order is created.
type CreateOrderResp struct {
	// Hash is the transaction hash
	Hash string `json:"hash"`

	// RawTransaction is the raw transaction data to be signed
	RawTransaction string `json:"rawTransaction"`
}

// TransferOrderTxReq submits a signed transfer transaction.
type TransferOrderTxReq struct {
	// Hash is the transaction hash from order creation
	Hash string `json:"hash"`

	// TxBytes is the raw transaction content
	TxBytes string `json:"txBytes"`

	// UserSig is the user's signature over the transaction
	UserSig string `json:"userSig"`
}

// TransferOrderTxResponse reports the submission outcome.
type TransferOrderTxResponse struct {
	// Status is one of UN_PAY, RUNNING, SUCCESS, FAIL, CANCEL, TIMEOUT
	Status string `json:"status"`

	// Hash is the transaction hash
	Hash string `json:"hash"`
}

// TransferOrderQueryReq looks up a single transfer order.
type TransferOrderQueryReq struct {
	// Hash is the transaction hash
	Hash string `json:"hash"`

	// ToAddress is the recipient address
	ToAddress string `json:"toAddress"`

	// Currency is the transfer currency
	Currency string `json:"currency"`

	// StatusList filters by order status, optional
	StatusList []string `json:"statusList,omitempty"`

	// BeginTime filters by initiation time, optional
	BeginTime int64 `json:"beginTime,omitempty"`

	// EndTime filters by initiation time, optional
	EndTime int64 `json:"endTime,omitempty"`

	// CompleteBeginTime filters by completion time, optional
	CompleteBeginTime int64 `json:"completeBeginTime,omitempty"`

	// CompleteEndTime filters by completion time, optional
	CompleteEndTime int64 `json:"completeEndTime,omitempty"`
}

// TransferOrderQueryPageReq queries transfer orders with pagination.
type TransferOrderQueryPageReq struct {
	// DID is the user's decentralized identifier, optional
	DID string `json:"did,omitempty"`

	// Address is the user address
	Address string `json:"address"`

	// OrderID filters by order ID, optional
	OrderID string `json:"orderId,omitempty"`

	// TradeHash filters by transaction hash, optional
	TradeHash string `json:"tradeHash,omitempty"`

	// ToDID filters by recipient DID, optional
	ToDID string `json:"toDid,omitempty"`

	// ToAddress filters by recipient address, optional
	ToAddress string `json:"toAddress,omitempty"`

	// MinAmount filters by amount lower bound, optional
	MinAmount *decimal.Decimal `json:"minAmount,omitempty"`

	// MaxAmount filters by amount upper bound, optional
	MaxAmount *decimal.Decimal `json:"maxAmount,omitempty"`

	// Currency filters by transfer currency, optional
	Currency string `json:"currency,omitempty"`

	// TransferMethod is one of DID, ADDRESS, NAME, optional
	TransferMethod string `json:"transferMethod,omitempty"`

	// StatusList filters by order status, optional
	StatusList []string `json:"statusList,omitempty"`

	// BeginTime filters by initiation time, optional
	BeginTime int64 `json:"beginTime,omitempty"`

	// EndTime filters by initiation time, optional
	EndTime int64 `json:"endTime,omitempty"`

	// QueryType is the direction filter: 0 in, 1 out, 2 in or out,
	// 3 both in and out, optional
	QueryType string `json:"queryType,omitempty"`

	// CompleteBeginTime filters by completion time, optional
	CompleteBeginTime int64 `json:"completeBeginTime,omitempty"`

	// CompleteEndTime filters by completion time, optional
	CompleteEndTime int64 `json:"completeEndTime,omitempty"`

	// PageIndex is the page to fetch
	PageIndex int64 `json:"pageIndex"`

	// PageSize is the page size
	PageSize int64 `json:"pageSize"`
}

// TransferOrderResp is one transfer order.
type TransferOrderResp struct {
	// Hash is the transaction hash
	Hash string `json:"hash"`

	// DID is the sender's decentralized identifier, optional
	DID string `json:"did,omitempty"`

	// NickName is the sender's nickname, optional
	NickName string `json:"nickName,omitempty"`

	// Address is the sender account
	Address string `json:"address"`

	// AddressName is the sender's account name, optional
	AddressName string `json:"addressName,omitempty"`

	// MerchantID is the sender's merchant
	MerchantID string `json:"merchantId"`

	// MerchantName is the sender's merchant name
	MerchantName string `json:"merchantName"`

	// TransferMethod is the transfer type
	TransferMethod string `json:"transferMethod"`

	// ToDID is the recipient's decentralized identifier, optional
	ToDID string `json:"toDid,omitempty"`

	// ToNickName is the recipient's nickname, optional
	ToNickName string `json:"toNickName,omitempty"`

	// ToAddress is the recipient account
	ToAddress string `json:"toAddress"`

	// ToAddressName is the recipient's account name, optional
	ToAddressName string `json:"toAddressName,omitempty"`

	// ToMerchantID is the recipient's merchant
	ToMerchantID string `json:"toMerchantId"`

	// ToMerchantName is the recipient's merchant name
	ToMerchantName string `json:"toMerchantName"`

	// Currency is the transfer currency
	Currency string `json:"currency"`

	// Amount is the transfer amount
	Amount decimal.Decimal `json:"amount"`

	// Status is the order status
	Status string `json:"status"`

	// CreateTime is the initiation time
	CreateTime int64 `json:"createTime"`

	// CompleteTime is the completion time
	CompleteTime int64 `json:"completeTime"`

	// Remark is the note attached to the order
	Remark string `json:"remark"`

	// Sender is the sender display name per transfer method
	Sender string `json:"sender"`

	// Receiver is the recipient display name per transfer method
	Receiver string `json:"receiver"`
}

// BuildSponsorTxReq builds a gas-sponsored transaction.
type BuildSponsorTxReq struct {
	// Address is the sender address
	Address string `json:"address"`

	// RawTransaction is the unsigned transaction, base64
	RawTransaction string `json:"rawTransaction"`

	// OnlyTransactionKind builds offline when true
	OnlyTransactionKind bool `json:"onlyTransactionKind"`

	// GasBudget is the gas limit, optional
	GasBudget *decimal.Decimal `json:"gasBudget,omitempty"`
}

// GasTxBuilderResponse is the built sponsored transaction.
type GasTxBuilderResponse struct {
	// Hash is the transaction hash
	Hash string `json:"hash"`

	// RawTransaction is the transaction to be signed
	RawTransaction string `json:"rawTransaction"`

	// Expiration is the transaction expiration time
	Expiration int64 `json:"expiration"`

	// Sponsor is the fee sponsorship address
	Sponsor string `json:"sponsor"`

	// ReservationID identifies the gas reservation
	ReservationID string `json:"reservationId"`
}

// ProxyPayTxReq submits a sponsored transaction for proxy payment.
type ProxyPayTxReq struct {
	// UserSig is the user's signature over the transaction
	UserSig string `json:"userSig"`

	// TxBytes is the raw transaction data
	TxBytes string `json:"txBytes"`

	// ReservationID is the gas reservation from the build step
	ReservationID string `json:"reservationId"`
}

// ProxyPayTxResp reports the proxy payment outcome.
type ProxyPayTxResp struct {
	Hash   string `json:"hash"`
	Status bool   `json:"status"`
}
