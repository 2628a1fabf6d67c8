package signer

// RequestSigner produces a merchant signature over a request object.
// Anything able to canonicalize a request and sign the resulting bytes can
// serve every endpoint group of the SDK.
type RequestSigner interface {
	// Sign canonicalizes obj into its link-string, skipping ignoreFields,
	// and returns the base64-encoded signature over that string
	Sign(obj any, ignoreFields ...string) (string, error)
}
