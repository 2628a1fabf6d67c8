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

package zklogin

import (
	"crypto/ed25519"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEphemeralKey(t *testing.T) {
	key, err := GenerateEphemeralKey()
	require.NoError(t, err)
	require.Len(t, key.PublicKey, ed25519.PublicKeySize)
	require.Len(t, key.PrivateKey, ed25519.PrivateKeySize)

	// Two keys must differ
	other, err := GenerateEphemeralKey()
	require.NoError(t, err)
	assert.NotEqual(t, key.PublicKey, other.PublicKey)
}

func TestExtendedPublicKey(t *testing.T) {
	key, err := GenerateEphemeralKey()
	require.NoError(t, err)

	extended := key.ExtendedPublicKey()

	// Decimal value of 0x00 || pubkey
	want := new(big.Int).SetBytes(append([]byte{0x00}, key.PublicKey...))
	assert.Equal(t, want.String(), extended)
}

func TestGenerateRandomness(t *testing.T) {
	r1, err := GenerateRandomness()
	require.NoError(t, err)
	r2, err := GenerateRandomness()
	require.NoError(t, err)

	assert.NotEqual(t, r1, r2)

	// Must parse back as a decimal integer
	_, ok := new(big.Int).SetString(r1, 10)
	assert.True(t, ok)
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   "https://accounts.example.com",
		"sub":   "user-12345",
		"aud":   "wallet-app",
		"nonce": "abcdef",
		"exp":   exp.Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := ParseClaims(raw)
	require.NoError(t, err)

	assert.Equal(t, "https://accounts.example.com", claims.Issuer)
	assert.Equal(t, "user-12345", claims.Subject)
	assert.Equal(t, "wallet-app", claims.Audience)
	assert.Equal(t, "abcdef", claims.Nonce)
	assert.Equal(t, exp.Unix(), claims.Expiry)
}

func TestParseClaims_MissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "https://accounts.example.com",
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseClaims(raw)
	assert.ErrorContains(t, err, "no subject claim")
}

func TestParseClaims_NotAJWT(t *testing.T) {
	_, err := ParseClaims("definitely not a jwt")
	assert.Error(t, err)
}
