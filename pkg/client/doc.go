// Package client provides the WalletService facade: merchant identity,
// signing key, and transport bundled behind the rpc.Caller capability.
//
//	svc, err := client.NewWalletService(
//	    "https://api.example.com",
//	    merchantPrivateKeyBase64,
//	    "1000000",
//	    client.WithLogger(log),
//	)
//
// Unsigned calls pass the request through as-is; signed calls wrap it in a
// BaseRequest envelope and attach an RSA-PSS merchant signature over the
// envelope's canonical link-string. After the authentication flow, record
// the session token with SetHeader so subsequent calls carry it:
//
//	svc.SetHeader(protocol.HeaderAccessToken, token.AccessToken)
//	svc.SetHeader(protocol.HeaderTokenID, token.TokenID)
package client
