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
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
)

// Caller is the capability every endpoint group is written against: a
// value able to issue unsigned and merchant-signed wallet API calls.
type Caller interface {
	// Call sends req as-is, without a signature envelope
	Call(ctx context.Context, method, path string, header map[string]string, req any) (*protocol.Response[json.RawMessage], error)

	// SignCall wraps req in a freshly signed envelope before sending
	SignCall(ctx context.Context, method, path string, header map[string]string, req any) (*protocol.Response[json.RawMessage], error)
}

// call sends an unsigned call and decodes the data payload into Resp.
func call[Resp any](ctx context.Context, c Caller, method, path string, req any) (*protocol.Response[Resp], error) {
	raw, err := c.Call(ctx, method, path, nil, req)
	if err != nil {
		return nil, err
	}
	return decode[Resp](raw)
}

// signCall sends a merchant-signed call and decodes the data payload into
// Resp.
func signCall[Resp any](ctx context.Context, c Caller, method, path string, req any) (*protocol.Response[Resp], error) {
	raw, err := c.SignCall(ctx, method, path, nil, req)
	if err != nil {
		return nil, err
	}
	return decode[Resp](raw)
}

// decode converts a raw envelope into a typed one. The data payload is
// decoded only when the envelope reports success; a failed envelope keeps
// its data inaccessible.
func decode[Resp any](raw *protocol.Response[json.RawMessage]) (*protocol.Response[Resp], error) {
	out := &protocol.Response[Resp]{
		Code:       raw.Code,
		Message:    raw.Message,
		Success:    raw.Success,
		TraceID:    raw.TraceID,
		SystemTime: raw.SystemTime,
	}

	if raw.Success && raw.Data != nil && !bytes.Equal(*raw.Data, []byte("null")) {
		var data Resp
		if err := json.Unmarshal(*raw.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
		out.Data = &data
	}

	return out, nil
}
