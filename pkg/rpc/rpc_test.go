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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
)

// mockCaller records the last call and plays back a canned envelope.
type mockCaller struct {
	lastMethod string
	lastPath   string
	lastSigned bool
	lastReq    any

	response *protocol.Response[json.RawMessage]
	err      error
}

func (m *mockCaller) Call(ctx context.Context, method, path string, header map[string]string, req any) (*protocol.Response[json.RawMessage], error) {
	m.lastMethod, m.lastPath, m.lastSigned, m.lastReq = method, path, false, req
	return m.response, m.err
}

func (m *mockCaller) SignCall(ctx context.Context, method, path string, header map[string]string, req any) (*protocol.Response[json.RawMessage], error) {
	m.lastMethod, m.lastPath, m.lastSigned, m.lastReq = method, path, true, req
	return m.response, m.err
}

func successEnvelope(t *testing.T, data string) *protocol.Response[json.RawMessage] {
	t.Helper()
	raw := json.RawMessage(data)
	return &protocol.Response[json.RawMessage]{
		Code:       protocol.SuccessCode,
		Message:    protocol.SuccessMessage,
		Data:       &raw,
		Success:    true,
		TraceID:    "trace-1",
		SystemTime: 1700000000000,
	}
}

func TestSendCode_IsSigned(t *testing.T) {
	c := &mockCaller{response: successEnvelope(t, `"code-id-1"`)}

	resp, err := SendCode(context.Background(), c, &protocol.SmsCodeSendReq{
		Mobile:       "123123123",
		MobilePrefix: "855",
		Provider:     "huione",
	})
	require.NoError(t, err)

	assert.True(t, c.lastSigned)
	assert.Equal(t, http.MethodPost, c.lastMethod)
	assert.Equal(t, "/did/sendCode", c.lastPath)

	code, err := resp.Result()
	require.NoError(t, err)
	assert.Equal(t, "code-id-1", code)
}

func TestAuthenticateSms_IsUnsigned(t *testing.T) {
	c := &mockCaller{response: successEnvelope(t, `{"code":"auth-1"}`)}

	resp, err := AuthenticateSms(context.Background(), c, &protocol.SmsAuthenticateReq{})
	require.NoError(t, err)

	assert.False(t, c.lastSigned)
	assert.Equal(t, "/did/authenticateSms", c.lastPath)

	auth, err := resp.Result()
	require.NoError(t, err)
	assert.Equal(t, "auth-1", auth.Code)
}

func TestQueryChainCurrencyForList_SendsNoBody(t *testing.T) {
	c := &mockCaller{response: successEnvelope(t, `[{"chain":"one"}]`)}

	resp, err := QueryChainCurrencyForList(context.Background(), c)
	require.NoError(t, err)

	assert.False(t, c.lastSigned)
	assert.Equal(t, "/wallet/queryChainCurrencyForList", c.lastPath)
	assert.Nil(t, c.lastReq)

	list, err := resp.Result()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPageList_DecodesPagedResult(t *testing.T) {
	c := &mockCaller{response: successEnvelope(t,
		`{"rows":[{"hash":"0xabc","status":"SUCCESS"}],"totalNum":1,"pageSize":10,"pageIndex":1}`)}

	resp, err := PageList(context.Background(), c, &protocol.TransferOrderQueryPageReq{
		Address:   "0xsender",
		PageIndex: 1,
		PageSize:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, "/transfer/pageList", c.lastPath)

	page, err := resp.Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalNum)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "0xabc", page.Rows[0].Hash)
	assert.Equal(t, "SUCCESS", page.Rows[0].Status)
}

func TestBuildSponsorTx_Path(t *testing.T) {
	c := &mockCaller{response: successEnvelope(t, `{"hash":"0xabc","reservationId":"r1"}`)}

	resp, err := BuildSponsorTx(context.Background(), c, &protocol.BuildSponsorTxReq{
		Address:        "0xsender",
		RawTransaction: "dHg=",
	})
	require.NoError(t, err)
	assert.Equal(t, "/transfer/buildSponsorTransaction", c.lastPath)

	built, err := resp.Result()
	require.NoError(t, err)
	assert.Equal(t, "r1", built.ReservationID)
}

// A failed envelope decodes without touching its data; Result surfaces
// the application error.
func TestDecode_FailedEnvelopeKeepsDataInaccessible(t *testing.T) {
	raw := json.RawMessage(`{"partial":`)
	c := &mockCaller{response: &protocol.Response[json.RawMessage]{
		Code:    "100001",
		Message: "rejected",
		Data:    &raw,
		Success: false,
		TraceID: "trace-2",
	}}

	resp, err := GetToken(context.Background(), c, &protocol.AuthorizeTokenProfileReq{})
	require.NoError(t, err)

	assert.Nil(t, resp.Data)

	_, err = resp.Result()
	require.Error(t, err)

	var apiErr *protocol.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "100001", apiErr.Code)
	assert.Equal(t, "trace-2", apiErr.TraceID)
}

func TestDecode_MalformedSuccessDataFails(t *testing.T) {
	c := &mockCaller{response: successEnvelope(t, `{"broken":`)}

	_, err := GetToken(context.Background(), c, &protocol.AuthorizeTokenProfileReq{})
	assert.ErrorContains(t, err, "decode response data")
}

func TestDecode_NullDataOnSuccess(t *testing.T) {
	c := &mockCaller{response: successEnvelope(t, `null`)}

	resp, err := QueryOrder(context.Background(), c, &protocol.TransferOrderQueryReq{Hash: "0xabc"})
	require.NoError(t, err)
	assert.Nil(t, resp.Data)
}

func TestEndpoints_PropagateTransportErrors(t *testing.T) {
	c := &mockCaller{err: assert.AnError}

	_, err := SendCode(context.Background(), c, &protocol.SmsCodeSendReq{})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = QueryUserWalletForList(context.Background(), c, &protocol.QueryWalletReq{})
	assert.ErrorIs(t, err, assert.AnError)
}
