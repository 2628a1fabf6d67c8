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
	"fmt"
	"time"
)

const (
	// HeaderAccessToken is the global header carrying the session access
	// token obtained from the /did/getToken step
	HeaderAccessToken = "ACCESS_TOKEN"

	// HeaderTokenID is the global header carrying the token identifier
	HeaderTokenID = "TOKEN_ID"
)

// Envelope field names on the wire. FieldMerchantSign is always part of the
// ignore list when the envelope is canonicalized for signing, since a field
// cannot sign over itself.
const (
	FieldTimestamp    = "timestamp"
	FieldMerchantSign = "merchantSign"
	FieldMerchantID   = "merchantId"
)

// BaseRequest is the outer envelope of a signed call. The body payload is
// flattened into the same JSON object as the envelope's own fields, both on
// the wire and in the canonical string the merchant signature covers.
type BaseRequest struct {
	// Timestamp is the request creation time in milliseconds since epoch
	Timestamp int64

	// MerchantSign is the base64 merchant signature over the canonical
	// string of this envelope. Empty until SetSignature is called.
	MerchantSign string

	// MerchantID identifies the calling merchant
	MerchantID string

	// Body is the business payload. It must serialize to a JSON object
	// (or be nil for body-less calls).
	Body any
}

// NewBaseRequest builds a fresh envelope for one outgoing call: current
// wall-clock timestamp in milliseconds, empty signature placeholder, and
// the caller's payload. Envelopes are single-use; the signature computed
// for one envelope is never valid for another.
func NewBaseRequest(merchantID string, body any) *BaseRequest {
	return &BaseRequest{
		Timestamp:  time.Now().UnixMilli(),
		MerchantID: merchantID,
		Body:       body,
	}
}

// SetSignature injects the computed merchant signature into the envelope.
// No validation happens here; the server verifies the signature.
func (r *BaseRequest) SetSignature(signature string) {
	r.MerchantSign = signature
}

// MarshalJSON flattens the body fields and the envelope fields into a
// single JSON object. The envelope fields win on a name collision.
func (r BaseRequest) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage)

	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("request body must serialize to a JSON object: %w", err)
		}
	}

	for name, value := range map[string]any{
		FieldTimestamp:    r.Timestamp,
		FieldMerchantSign: r.MerchantSign,
		FieldMerchantID:   r.MerchantID,
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal envelope field %s: %w", name, err)
		}
		out[name] = raw
	}

	return json.Marshal(out)
}

// UnmarshalJSON splits a flattened envelope back into its envelope fields
// and the remaining body fields. The body is preserved as raw JSON.
func (r *BaseRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("request envelope must be a JSON object: %w", err)
	}

	if raw, ok := fields[FieldTimestamp]; ok {
		if err := json.Unmarshal(raw, &r.Timestamp); err != nil {
			return fmt.Errorf("invalid timestamp field: %w", err)
		}
		delete(fields, FieldTimestamp)
	}
	if raw, ok := fields[FieldMerchantSign]; ok {
		if err := json.Unmarshal(raw, &r.MerchantSign); err != nil {
			return fmt.Errorf("invalid merchantSign field: %w", err)
		}
		delete(fields, FieldMerchantSign)
	}
	if raw, ok := fields[FieldMerchantID]; ok {
		if err := json.Unmarshal(raw, &r.MerchantID); err != nil {
			return fmt.Errorf("invalid merchantId field: %w", err)
		}
		delete(fields, FieldMerchantID)
	}

	if len(fields) == 0 {
		r.Body = nil
		return nil
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to re-assemble request body: %w", err)
	}
	r.Body = json.RawMessage(body)
	return nil
}
