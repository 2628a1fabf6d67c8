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

package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
)

func TestLinkString_SortsKeysByteWise(t *testing.T) {
	link, err := LinkString(map[string]any{
		"zeta":  "1",
		"alpha": "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "alpha=2&zeta=1", link)
}

func TestLinkString_Deterministic(t *testing.T) {
	obj := map[string]any{
		"b": "two",
		"a": "one",
		"c": 3,
	}

	first, err := LinkString(obj)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := LinkString(obj)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLinkString_IgnoreFields(t *testing.T) {
	obj := map[string]any{
		"a": "1",
		"b": "2",
		"c": "3",
	}

	link, err := LinkString(obj, "b")
	require.NoError(t, err)
	assert.Equal(t, "a=1&c=3", link)
}

func TestLinkString_DropsEmptyStringsKeepsZero(t *testing.T) {
	link, err := LinkString(map[string]any{
		"empty":  "",
		"zero":   "0",
		"amount": 0,
	})
	require.NoError(t, err)

	// "" disappears but the string "0" and the number 0 stay
	assert.Equal(t, "amount=0&zero=0", link)
}

func TestLinkString_BoolAndNumberRendering(t *testing.T) {
	link, err := LinkString(map[string]any{
		"enabled":  true,
		"disabled": false,
		"count":    42,
		"rate":     1.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "count=42&disabled=false&enabled=true&rate=1.5", link)
}

func TestLinkString_StringsNotQuoted(t *testing.T) {
	link, err := LinkString(map[string]any{"mobile": "123123123"})
	require.NoError(t, err)

	// The decoded string goes in, not its JSON form with quotes
	assert.Equal(t, "mobile=123123123", link)
}

func TestLinkString_NestedObjectCompactForm(t *testing.T) {
	type inner struct {
		B string `json:"b"`
		A string `json:"a"`
	}
	obj := map[string]any{
		"outer": inner{B: "2", A: "1"},
	}

	link, err := LinkString(obj)
	require.NoError(t, err)

	// Nested keys keep their serialized order, only the top level sorts
	assert.Equal(t, `outer={"b":"2","a":"1"}`, link)
}

func TestLinkString_OmitsArraysAndNulls(t *testing.T) {
	link, err := LinkString(map[string]any{
		"list": []string{"a", "b"},
		"gone": nil,
		"kept": "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "kept=x", link)
}

func TestLinkString_RejectsNonObjects(t *testing.T) {
	for _, v := range []any{"a string", 42, []int{1, 2}, true, nil} {
		_, err := LinkString(v)
		assert.ErrorIs(t, err, ErrNotObject, "value %v should be rejected", v)
	}
}

func TestLinkString_StructInput(t *testing.T) {
	type req struct {
		Mobile       string `json:"mobile"`
		MobilePrefix string `json:"mobilePrefix"`
		Provider     string `json:"provider"`
	}

	link, err := LinkString(req{
		Mobile:       "123123123",
		MobilePrefix: "855",
		Provider:     "huione",
	})
	require.NoError(t, err)
	assert.Equal(t, "mobile=123123123&mobilePrefix=855&provider=huione", link)
}

// The reference vector of the signing flow: a full envelope around an SMS
// request canonicalizes with merchantSign excluded and the body fields
// interleaved with the envelope fields in byte order.
func TestLinkString_SignedEnvelope(t *testing.T) {
	env := &protocol.BaseRequest{
		Timestamp:  1700000000000,
		MerchantID: "1000000",
		Body: map[string]string{
			"mobile":       "123123123",
			"mobilePrefix": "855",
			"provider":     "huione",
		},
	}

	link, err := LinkString(env, protocol.FieldMerchantSign)
	require.NoError(t, err)
	assert.Equal(t,
		"merchantId=1000000&mobile=123123123&mobilePrefix=855&provider=huione&timestamp=1700000000000",
		link)
}

// An unsigned envelope canonicalizes to the same string whether the empty
// signature is excluded or dropped by the empty-string rule, but the
// exclusion must hold once a signature is present.
func TestLinkString_MerchantSignNeverSignsItself(t *testing.T) {
	env := &protocol.BaseRequest{
		Timestamp:  1700000000000,
		MerchantID: "1000000",
		Body:       map[string]string{"provider": "huione"},
	}

	before, err := LinkString(env, protocol.FieldMerchantSign)
	require.NoError(t, err)

	env.SetSignature("SOMEBASE64SIG==")
	after, err := LinkString(env, protocol.FieldMerchantSign)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}
