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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
	"github.com/onechain-labs/onechain-wallet-go/pkg/signer"
	"github.com/onechain-labs/onechain-wallet-go/pkg/transport"
)

// WalletService is the merchant-facing facade over the wallet API: one
// value holding the merchant identity, the signing key, and the HTTP
// transport. It implements rpc.Caller, so every endpoint group in pkg/rpc
// works against it. Safe for concurrent use.
type WalletService struct {
	merchantID string
	signer     signer.RequestSigner
	transport  *transport.HTTPTransport
	log        *zap.Logger
}

// Option configures a WalletService.
type Option func(*options)

type options struct {
	log           *zap.Logger
	transportOpts []transport.Option
}

// WithLogger attaches a structured logger to the service and its transport
// (no-op logger otherwise).
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithHTTPClient replaces the transport's underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.transportOpts = append(o.transportOpts, transport.WithHTTPClient(client))
	}
}

// WithRetryPolicy replaces the transport's default retry schedule.
func WithRetryPolicy(policy transport.RetryPolicy) Option {
	return func(o *options) {
		o.transportOpts = append(o.transportOpts, transport.WithRetryPolicy(policy))
	}
}

// NewWalletService creates a service facade for the given API host. The
// private key is the base64 PKCS#8 DER RSA key issued to the merchant; it
// is parsed once here, so a malformed key fails construction rather than
// the first signed call.
func NewWalletService(host, privateKey, merchantID string, opts ...Option) (*WalletService, error) {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	rsaSigner, err := signer.NewRSASigner(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create merchant signer: %w", err)
	}

	transportOpts := append([]transport.Option{transport.WithLogger(o.log)}, o.transportOpts...)
	httpTransport, err := transport.NewHTTPTransport(host, transportOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	return &WalletService{
		merchantID: merchantID,
		signer:     rsaSigner,
		transport:  httpTransport,
		log:        o.log,
	}, nil
}

// Call issues an unsigned wallet API call.
func (s *WalletService) Call(
	ctx context.Context,
	method, path string,
	header map[string]string,
	req any,
) (*protocol.Response[json.RawMessage], error) {
	return s.transport.Call(ctx, method, path, header, req)
}

// SignCall wraps req in a fresh signing envelope, signs it with the
// merchant key, and sends it. The envelope is built per call: each signed
// request carries its own timestamp and its own signature, so a captured
// envelope cannot be replayed as a different request.
func (s *WalletService) SignCall(
	ctx context.Context,
	method, path string,
	header map[string]string,
	req any,
) (*protocol.Response[json.RawMessage], error) {
	env := protocol.NewBaseRequest(s.merchantID, req)

	sig, err := s.signer.Sign(env, protocol.FieldMerchantSign)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}
	env.SetSignature(sig)

	return s.transport.Call(ctx, method, path, header, env)
}

// Sign exposes the merchant signature over an arbitrary payload, for
// callers that need a detached signature outside the envelope flow.
// FieldMerchantSign is always excluded from the canonical string.
func (s *WalletService) Sign(obj any, ignoreFields ...string) (string, error) {
	return s.signer.Sign(obj, append(ignoreFields, protocol.FieldMerchantSign)...)
}

// SetHeader records a global header attached to all subsequent calls. The
// usual use is installing the ACCESS_TOKEN and TOKEN_ID headers after the
// authentication flow completes.
func (s *WalletService) SetHeader(key, value string) {
	s.transport.SetHeader(key, value)
}

// MerchantID returns the merchant identity this service signs as.
func (s *WalletService) MerchantID() string {
	return s.merchantID
}
