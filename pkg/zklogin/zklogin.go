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
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/golang-jwt/jwt/v5"
)

// EphemeralKey is a short-lived Ed25519 keypair bound to one zk-login
// session. The extended public key goes into the proof request; the
// private key signs transactions until maxEpoch passes.
type EphemeralKey struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// GenerateEphemeralKey creates a fresh session keypair.
func GenerateEphemeralKey() (*EphemeralKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ephemeral key: %w", err)
	}
	return &EphemeralKey{PublicKey: pub, PrivateKey: priv}, nil
}

// ExtendedPublicKey returns the key in the form the proof service expects:
// the decimal value of the scheme byte (0x00 for Ed25519) followed by the
// raw public key bytes.
func (k *EphemeralKey) ExtendedPublicKey() string {
	extended := make([]byte, 0, 1+ed25519.PublicKeySize)
	extended = append(extended, 0x00)
	extended = append(extended, k.PublicKey...)
	return new(big.Int).SetBytes(extended).String()
}

// GenerateRandomness returns the decimal jwt randomness for a proof
// request: 16 random bytes as a decimal string.
func GenerateRandomness() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate randomness: %w", err)
	}
	return new(big.Int).SetBytes(buf).String(), nil
}

// Claims are the zk-login relevant claims of the identity provider's JWT.
type Claims struct {
	Issuer   string
	Subject  string
	Audience string
	Nonce    string
	Expiry   int64
}

// ParseClaims extracts the zk-login claims from a JWT without verifying
// its signature. The token's authenticity is established by the zk proof,
// not locally; parsing here only feeds the proof request.
func ParseClaims(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse jwt: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected jwt claims type %T", parsed.Claims)
	}

	claims := &Claims{}
	if iss, err := mapClaims.GetIssuer(); err == nil {
		claims.Issuer = iss
	}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if aud, err := mapClaims.GetAudience(); err == nil && len(aud) > 0 {
		claims.Audience = aud[0]
	}
	if nonce, ok := mapClaims["nonce"].(string); ok {
		claims.Nonce = nonce
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.Expiry = exp.Unix()
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("jwt carries no subject claim")
	}
	return claims, nil
}
