package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
	"github.com/onechain-labs/onechain-wallet-go/pkg/verifier"
)

type contextKey string

const merchantIDKey contextKey = "merchant_id"

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// CallbackAuthMiddleware verifies the merchant signature carried in the
// body of callback requests from the wallet service. The body is a
// flattened signing envelope; the middleware checks merchantSign before
// the wrapped handler runs.
type CallbackAuthMiddleware struct {
	verifier     verifier.MerchantVerifier
	errorHandler ErrorHandler
	optional     bool
}

// NewCallbackAuthMiddleware creates middleware verifying with the given
// merchant verifier.
func NewCallbackAuthMiddleware(v verifier.MerchantVerifier) *CallbackAuthMiddleware {
	return &CallbackAuthMiddleware{
		verifier:     v,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler
func (m *CallbackAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without a signature are allowed to pass through.
func (m *CallbackAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with callback signature verification.
func (m *CallbackAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		// Read body to preserve it for the handler
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var env protocol.BaseRequest
		if err := json.Unmarshal(bodyBytes, &env); err != nil {
			m.errorHandler(w, r, fmt.Errorf("invalid callback envelope: %w", err))
			return
		}

		if env.MerchantSign == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing merchant signature"))
			return
		}

		if err := m.verifier.Verify(env, env.MerchantSign, protocol.FieldMerchantSign); err != nil {
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}

		// Restore body for the handler
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.WithValue(r.Context(), merchantIDKey, env.MerchantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetMerchantIDFromContext extracts the verified merchant ID from the
// request context.
func GetMerchantIDFromContext(ctx context.Context) (string, bool) {
	merchantID, ok := ctx.Value(merchantIDKey).(string)
	return merchantID, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
