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

// Package transport sends wallet API requests over HTTP and decodes the
// uniform response envelope.
//
// # Retry Behavior
//
// Transient failures (network errors, HTTP 408/429/5xx) are retried with
// exponential backoff: base factor 2, per-attempt wait between 1s and 11s
// with bounded jitter, and a total retry budget of 23.721s, after which the
// last transient error is surfaced. Application-level 4xx responses and
// envelope decode failures are never retried. The schedule is configurable
// through RetryPolicy.
//
// # Headers
//
// Each transport carries a process-wide global header map (typically the
// session access token recorded after authentication) plus per-call
// headers. Global headers are applied first and per-call headers second,
// so per-call headers win on a name collision. The global map is guarded
// by a mutex and snapshotted at the start of each call: an in-flight
// request always serializes a consistent view, and concurrent SetHeader
// calls are last-write-wins.
//
// Every logical call also carries an X-Request-Id header, stable across
// retry attempts, for server-side correlation.
//
// # Usage
//
//	t, err := transport.NewHTTPTransport("https://api.onechain.example")
//	if err != nil {
//	    return err
//	}
//
//	resp, err := t.Call(ctx, http.MethodPost, "/wallet/queryChainCurrencyForList", nil, nil)
//	if err != nil {
//	    return err
//	}
package transport
