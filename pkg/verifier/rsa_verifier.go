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

package verifier

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
	"github.com/onechain-labs/onechain-wallet-go/pkg/signer"
)

// ErrInvalidSignature is returned when a signature does not verify against
// the canonical string and the configured public key.
var ErrInvalidSignature = errors.New("merchant signature verification failed")

// RSAVerifier verifies RSA-PSS merchant signatures. The key is parsed once
// at construction; the zero value is not usable.
type RSAVerifier struct {
	pub *rsa.PublicKey
}

// NewRSAVerifier parses a base64-encoded PKIX DER RSA public key, the form
// merchant public keys are distributed in.
func NewRSAVerifier(b64der string) (*RSAVerifier, error) {
	der, err := base64.StdEncoding.DecodeString(b64der)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key base64: %w", err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, expected an RSA key", parsed)
	}

	return &RSAVerifier{pub: pub}, nil
}

// NewRSAVerifierFromKey wraps an already parsed RSA public key.
func NewRSAVerifierFromKey(pub *rsa.PublicKey) *RSAVerifier {
	return &RSAVerifier{pub: pub}
}

// Verify canonicalizes obj, skipping ignoreFields, and checks the base64
// signature over the resulting link-string.
func (v *RSAVerifier) Verify(obj any, signature string, ignoreFields ...string) error {
	link, err := signer.LinkString(obj, ignoreFields...)
	if err != nil {
		return err
	}
	return v.VerifyBytes([]byte(link), signature)
}

// VerifyBytes checks the base64 RSA-PSS signature over raw canonical bytes.
func (v *RSAVerifier) VerifyBytes(message []byte, signature string) error {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("failed to decode signature base64: %w", err)
	}

	digest := sha256.Sum256(message)
	if err := rsa.VerifyPSS(v.pub, crypto.SHA256, digest[:], sig, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return nil
}

// VerifyEnvelope checks the merchant signature carried inside a signing
// envelope. The signature field itself is excluded from the canonical
// string, matching how the envelope was signed.
func (v *RSAVerifier) VerifyEnvelope(env *protocol.BaseRequest) error {
	if env.MerchantSign == "" {
		return fmt.Errorf("%w: envelope carries no signature", ErrInvalidSignature)
	}
	return v.Verify(env, env.MerchantSign, protocol.FieldMerchantSign)
}
