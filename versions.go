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

// Package onewallet provides version information for onechain-wallet-go.
package onewallet

const (
	// Version is the current version of onechain-wallet-go
	Version = "1.1.0"

	// WalletAPIVersion is the OneChain Wallet open API version this SDK targets
	WalletAPIVersion = "1.0"

	// SignatureScheme identifies the merchant signature scheme used on
	// signed calls (canonical link-string, SHA-256, RSA-PSS, base64)
	SignatureScheme = "RSA-PSS-SHA256"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SDKVersion       string
	WalletAPIVersion string
	SignatureScheme  string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SDKVersion:       Version,
		WalletAPIVersion: WalletAPIVersion,
		SignatureScheme:  SignatureScheme,
	}
}
