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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotObject is returned when the value to canonicalize does not
// serialize to a JSON object.
var ErrNotObject = errors.New("value does not serialize to a JSON object")

// LinkString builds the canonical string a merchant signature covers.
//
// The value is serialized to JSON and must resolve to a top-level object.
// Its keys are sorted ascending in byte order and emitted as key=value
// pairs joined by '&', where:
//
//   - keys listed in ignoreFields are dropped entirely
//   - string values are rendered verbatim; empty strings are dropped
//   - booleans and numbers are rendered in their canonical JSON text
//   - nested objects are rendered as their compact serialized form
//     (nested keys are not re-sorted; only the top level is sorted)
//   - arrays and nulls are omitted
//
// The output is byte-identical for identical input, which is the property
// the signature scheme depends on. LinkString is pure.
func LinkString(v any, ignoreFields ...string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal value for signing: %w", err)
	}
	if bytes.Equal(data, []byte("null")) {
		return "", fmt.Errorf("%w: null", ErrNotObject)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("%w: %T", ErrNotObject, v)
	}

	ignored := make(map[string]struct{}, len(ignoreFields))
	for _, f := range ignoreFields {
		ignored[f] = struct{}{}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, skip := ignored[k]; !skip {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	tokens := make([]string, 0, len(keys))
	for _, k := range keys {
		raw := fields[k]
		if len(raw) == 0 {
			continue
		}
		switch raw[0] {
		case '"':
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return "", fmt.Errorf("failed to decode string field %s: %w", k, err)
			}
			if s == "" {
				continue
			}
			tokens = append(tokens, k+"="+s)
		case '{', 't', 'f':
			tokens = append(tokens, k+"="+string(raw))
		case 'n', '[':
			// nulls and arrays have no canonical text form and are omitted
		default:
			// number, rendered exactly as serialized
			tokens = append(tokens, k+"="+string(raw))
		}
	}

	return strings.Join(tokens, "&"), nil
}
