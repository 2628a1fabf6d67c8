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

package verifier

// MerchantVerifier checks merchant signatures over canonical link-strings,
// the counterpart of signer.RequestSigner. It is what a merchant backend
// uses to authenticate callback requests from the wallet service.
type MerchantVerifier interface {
	// Verify canonicalizes obj, skipping ignoreFields, and checks the
	// base64 signature over the resulting link-string
	Verify(obj any, signature string, ignoreFields ...string) error

	// VerifyBytes checks the base64 signature over raw canonical bytes
	VerifyBytes(message []byte, signature string) error
}
