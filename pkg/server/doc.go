// Package server provides HTTP middleware for merchant callback
// verification.
//
// The wallet service notifies merchant backends of order and transfer
// events by POSTing a flattened signing envelope: the business payload
// plus timestamp, merchantId, and merchantSign in one JSON object. The
// middleware verifies merchantSign before the wrapped handler runs, so
// handlers only ever see authenticated callbacks.
//
// # Basic Usage
//
//	v, _ := verifier.NewRSAVerifier(walletServicePublicKeyBase64)
//	middleware := server.NewCallbackAuthMiddleware(v)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    merchantID, ok := server.GetMerchantIDFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    // Process authenticated callback...
//	    _ = merchantID
//	})
//
//	http.Handle("/callbacks/", middleware.Wrap(handler))
//
// # Optional Verification
//
//	// Allow unsigned requests to pass through
//	middleware.SetOptional(true)
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("callback auth failed: %v", err)
//	    http.Error(w, "Forbidden", http.StatusForbidden)
//	})
//
// # How It Works
//
// For each request the middleware:
//
//  1. Skips verification for OPTIONS requests (CORS preflight)
//  2. Buffers the body and decodes the signing envelope
//  3. Verifies merchantSign over the envelope's canonical link-string,
//     with the signature field itself excluded
//  4. Restores the body and adds the verified merchant ID to the context
//  5. Calls the next handler
//
// If verification fails, the middleware returns 401 Unauthorized and does
// not call the next handler. The body is buffered in memory during
// verification and restored before the handler runs, so handlers read it
// normally.
//
// The middleware is safe for concurrent use and can be shared across
// multiple HTTP servers.
package server
