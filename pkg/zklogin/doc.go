// Package zklogin holds the client-side helpers of the zk-login flow:
// generating the ephemeral session keypair and jwt randomness that go into
// a proof request, and extracting the relevant claims from the identity
// provider's JWT. The proof itself is produced by the wallet service via
// rpc.GetZkProofs; nothing here verifies JWTs or builds proofs locally.
package zklogin
