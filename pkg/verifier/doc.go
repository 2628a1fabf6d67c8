// Package verifier checks merchant signatures, the server-side counterpart
// of pkg/signer. A merchant backend receiving callback notifications from
// the wallet service verifies the carried merchantSign before trusting the
// payload; the signature covers the same canonical link-string the signer
// produced, with the signature field excluded.
package verifier
