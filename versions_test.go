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

package onewallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionConstants(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, WalletAPIVersion, "WalletAPIVersion should not be empty")
	assert.NotEmpty(t, SignatureScheme, "SignatureScheme should not be empty")

	assert.Equal(t, "1.1.0", Version)
	assert.Equal(t, "1.0", WalletAPIVersion)
	assert.Equal(t, "RSA-PSS-SHA256", SignatureScheme)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	assert.Equal(t, Version, info.SDKVersion)
	assert.Equal(t, WalletAPIVersion, info.WalletAPIVersion)
	assert.Equal(t, SignatureScheme, info.SignatureScheme)
}
