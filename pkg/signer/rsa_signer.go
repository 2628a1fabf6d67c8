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
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
)

// RSASigner signs canonical link-strings with a merchant RSA private key.
// The key is parsed once at construction; the zero value is not usable.
type RSASigner struct {
	key *rsa.PrivateKey
}

// NewRSASigner parses a base64-encoded PKCS#8 DER RSA private key, the
// form merchant keys are issued in. It fails when the blob is not valid
// base64, not valid PKCS#8, or not an RSA key.
func NewRSASigner(b64der string) (*RSASigner, error) {
	der, err := base64.StdEncoding.DecodeString(b64der)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key base64: %w", err)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PKCS#8 private key: %w", err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, expected an RSA key", parsed)
	}

	return &RSASigner{key: key}, nil
}

// Sign canonicalizes obj, skipping ignoreFields, and returns the base64
// signature over the resulting link-string.
func (s *RSASigner) Sign(obj any, ignoreFields ...string) (string, error) {
	link, err := LinkString(obj, ignoreFields...)
	if err != nil {
		return "", err
	}
	return s.SignBytes([]byte(link))
}

// SignBytes signs raw canonical bytes with RSA-PSS over SHA-256. PSS
// padding is randomized: signing the same bytes twice yields different
// signatures, both of which verify against the same public key.
func (s *RSASigner) SignBytes(message []byte) (string, error) {
	digest := sha256.Sum256(message)
	sig, err := rsa.SignPSS(rand.Reader, s.key, crypto.SHA256, digest[:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// PublicKey returns the verification key matching this signer.
func (s *RSASigner) PublicKey() *rsa.PublicKey {
	return &s.key.PublicKey
}
