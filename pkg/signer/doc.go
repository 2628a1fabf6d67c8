// Package signer produces the merchant signatures that authenticate
// OneChain Wallet requests.
//
// A signed call covers a deterministic canonical form of the request
// envelope, the link-string: the envelope is serialized to JSON, its
// top-level keys are sorted, ignored and empty fields are dropped, and the
// remainder is joined as key=value pairs with '&'. The server rebuilds the
// exact same string, so any byte difference invalidates the signature.
//
// # Signing a Request
//
//	s, err := signer.NewRSASigner(base64PKCS8Key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req := protocol.NewBaseRequest("1000000", payload)
//	sig, err := s.Sign(req, protocol.FieldMerchantSign)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	req.SetSignature(sig)
//
// The merchantSign field is always part of the ignore list: a field cannot
// sign over itself.
//
// # Canonical Link-String
//
// LinkString applies these rules to the top-level JSON object:
//
//   - keys sorted ascending in byte order
//   - keys in the ignore list dropped entirely
//   - string values rendered verbatim; empty strings dropped
//   - booleans and numbers rendered in their canonical JSON text
//   - nested objects rendered as their compact serialized form,
//     without re-sorting their keys
//   - arrays and nulls omitted
//
// Canonicalizing anything that does not serialize to a JSON object fails
// with ErrNotObject.
//
// # Signature Scheme
//
// Signatures are RSA-PSS over the SHA-256 digest of the link-string,
// base64-encoded for transmission. PSS padding is randomized: signing the
// same bytes twice yields different signatures, both of which verify.
// Verification of inbound (callback) signatures lives in the verifier
// package.
package signer
