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

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseRequest(t *testing.T) {
	before := time.Now().UnixMilli()
	env := NewBaseRequest("1000000", map[string]string{"mobile": "123"})
	after := time.Now().UnixMilli()

	assert.Equal(t, "1000000", env.MerchantID)
	assert.Empty(t, env.MerchantSign)
	assert.GreaterOrEqual(t, env.Timestamp, before)
	assert.LessOrEqual(t, env.Timestamp, after)
}

func TestBaseRequest_MarshalFlattensBody(t *testing.T) {
	env := &BaseRequest{
		Timestamp:  1700000000000,
		MerchantID: "1000000",
		Body: map[string]any{
			"mobile":       "123123123",
			"mobilePrefix": "855",
		},
	}
	env.SetSignature("SIG==")

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))

	// Body fields and envelope fields share one level
	assert.Equal(t, "123123123", flat["mobile"])
	assert.Equal(t, "855", flat["mobilePrefix"])
	assert.Equal(t, "1000000", flat["merchantId"])
	assert.Equal(t, "SIG==", flat["merchantSign"])
	assert.EqualValues(t, 1700000000000, flat["timestamp"])

	// No nested body key
	_, hasBody := flat["Body"]
	assert.False(t, hasBody)
}

func TestBaseRequest_MarshalNilBody(t *testing.T) {
	env := &BaseRequest{Timestamp: 1, MerchantID: "m"}

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Len(t, flat, 3)
}

func TestBaseRequest_MarshalRejectsNonObjectBody(t *testing.T) {
	env := &BaseRequest{Timestamp: 1, MerchantID: "m", Body: []int{1, 2}}

	_, err := json.Marshal(env)
	assert.ErrorContains(t, err, "must serialize to a JSON object")
}

func TestBaseRequest_EnvelopeFieldsWinOnCollision(t *testing.T) {
	env := &BaseRequest{
		Timestamp:  42,
		MerchantID: "real",
		Body:       map[string]any{"merchantId": "spoofed", "timestamp": 1},
	}

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "real", flat["merchantId"])
	assert.EqualValues(t, 42, flat["timestamp"])
}

func TestBaseRequest_RoundTrip(t *testing.T) {
	env := &BaseRequest{
		Timestamp:  1700000000000,
		MerchantID: "1000000",
		Body:       map[string]string{"orderNo": "T100"},
	}
	env.SetSignature("SIG==")

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var back BaseRequest
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, env.Timestamp, back.Timestamp)
	assert.Equal(t, env.MerchantID, back.MerchantID)
	assert.Equal(t, env.MerchantSign, back.MerchantSign)

	body, ok := back.Body.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"orderNo":"T100"}`, string(body))
}

func TestBaseRequest_UnmarshalEmptyBody(t *testing.T) {
	var env BaseRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"timestamp":1,"merchantSign":"s","merchantId":"m"}`), &env))
	assert.Nil(t, env.Body)
}
