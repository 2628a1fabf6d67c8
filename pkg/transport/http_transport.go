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

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
)

// HTTPTransport issues wallet API calls over HTTP/JSON with retry on
// transient failures. It is safe for concurrent use.
type HTTPTransport struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *zap.Logger
	policy     RetryPolicy

	mu            sync.RWMutex
	globalHeaders map[string]string
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient replaces the underlying HTTP client
// (http.DefaultClient otherwise).
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// WithLogger attaches a structured logger (no-op logger otherwise).
func WithLogger(log *zap.Logger) Option {
	return func(t *HTTPTransport) {
		if log != nil {
			t.log = log
		}
	}
}

// WithRetryPolicy replaces the default retry schedule.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(t *HTTPTransport) {
		t.policy = policy
	}
}

// NewHTTPTransport creates a transport for the given base URL. It fails
// when the base URL does not parse to an absolute URL.
func NewHTTPTransport(host string, opts ...Option) (*HTTPTransport, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", host, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", host)
	}

	t := &HTTPTransport{
		baseURL:       base,
		httpClient:    http.DefaultClient,
		log:           zap.NewNop(),
		policy:        DefaultRetryPolicy(),
		globalHeaders: make(map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// SetHeader records a global header attached to all subsequent calls,
// typically the session access token obtained after authentication.
// Concurrent SetHeader calls are last-write-wins; in-flight calls keep the
// snapshot they took at call start.
func (t *HTTPTransport) SetHeader(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.globalHeaders[key] = value
}

// Headers returns a copy of the current global headers.
func (t *HTTPTransport) Headers() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]string, len(t.globalHeaders))
	for k, v := range t.globalHeaders {
		out[k] = v
	}
	return out
}

// mergedHeaders snapshots the global headers and overlays the per-call
// headers. Per-call headers win on a name collision.
func (t *HTTPTransport) mergedHeaders(header map[string]string) map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	merged := make(map[string]string, len(t.globalHeaders)+len(header))
	for k, v := range t.globalHeaders {
		merged[k] = v
	}
	for k, v := range header {
		merged[k] = v
	}
	return merged
}

// Call resolves path against the base URL and sends req as JSON, retrying
// transient failures per the transport's RetryPolicy. The response body is
// decoded into the uniform envelope with the data payload left raw; a
// decode failure is a hard error and is not retried. A nil req sends no
// body.
func (t *HTTPTransport) Call(
	ctx context.Context,
	method, path string,
	header map[string]string,
	req any,
) (*protocol.Response[json.RawMessage], error) {
	u, err := t.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	var body []byte
	if req != nil {
		body, err = json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	headers := t.mergedHeaders(header)

	// One request ID per logical call, stable across retry attempts.
	requestID := uuid.NewString()

	log := t.log.With(
		zap.String("method", method),
		zap.String("url", u.String()),
		zap.String("request-id", requestID),
	)

	var result *protocol.Response[json.RawMessage]
	attempts := 0
	operation := func() error {
		attempts++
		env, err := t.roundTrip(ctx, method, u.String(), headers, requestID, body)
		if err != nil {
			log.Debug("request attempt failed",
				zap.Int("attempt", attempts),
				zap.Error(err),
			)
			return err
		}
		result = env
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(t.policy.newBackOff(), ctx)); err != nil {
		log.Error("request failed",
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("request completed",
		zap.Int("attempts", attempts),
		zap.String("code", result.Code),
		zap.Bool("success", result.Success),
		zap.String("trace-id", result.TraceID),
	)
	return result, nil
}

func (t *HTTPTransport) roundTrip(
	ctx context.Context,
	method, url string,
	headers map[string]string,
	requestID string,
	body []byte,
) (*protocol.Response[json.RawMessage], error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Request-Id", requestID)
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		// Network failure, transient.
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if isTransientStatus(resp.StatusCode) {
		return nil, fmt.Errorf("transient http error: %d %s", resp.StatusCode, resp.Status)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, backoff.Permanent(fmt.Errorf("http error: %d %s: %s", resp.StatusCode, resp.Status, data))
	}

	var env protocol.Response[json.RawMessage]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode response envelope: %w", err))
	}
	return &env, nil
}
