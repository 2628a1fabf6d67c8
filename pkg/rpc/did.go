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

package rpc

import (
	"context"
	"net/http"

	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
)

// DIDBasePath is the base path of the identity endpoints.
const DIDBasePath = "/did"

// SendCode sends an SMS verification code, the first step of the user
// authentication flow. This is a merchant-signed call; on success the data
// field carries the code identifier consumed by AuthenticateSms.
func SendCode(ctx context.Context, c Caller, req *protocol.SmsCodeSendReq) (*protocol.Response[string], error) {
	return signCall[string](ctx, c, http.MethodPost, DIDBasePath+"/sendCode", req)
}

// AuthenticateSms verifies the SMS code the user received, the second step
// of the flow. On success the data field carries the authentication number
// consumed by GetToken.
func AuthenticateSms(ctx context.Context, c Caller, req *protocol.SmsAuthenticateReq) (*protocol.Response[protocol.AuthenticateUserResp], error) {
	return call[protocol.AuthenticateUserResp](ctx, c, http.MethodPost, DIDBasePath+"/authenticateSms", req)
}

// GetToken exchanges an authentication number for the access/session token
// and the zk-login JWT, the third step of the flow. Record the access
// token as the ACCESS_TOKEN global header for subsequent calls.
func GetToken(ctx context.Context, c Caller, req *protocol.AuthorizeTokenProfileReq) (*protocol.Response[protocol.AuthorizeTokenProfileResp], error) {
	return call[protocol.AuthorizeTokenProfileResp](ctx, c, http.MethodPost, DIDBasePath+"/getToken", req)
}

// RefreshJwtToken refreshes a JWT token about to expire.
func RefreshJwtToken(ctx context.Context, c Caller, req *protocol.RefreshJwtTokenReq) (*protocol.Response[protocol.AuthorizeTokenProfileResp], error) {
	return call[protocol.AuthorizeTokenProfileResp](ctx, c, http.MethodPost, DIDBasePath+"/refreshJwtToken", req)
}

// GetTokenUserProfile returns the user detail bound to a session token.
func GetTokenUserProfile(ctx context.Context, c Caller, req *protocol.AuthorizeTokenReq) (*protocol.Response[protocol.UserTokenProfile], error) {
	return call[protocol.UserTokenProfile](ctx, c, http.MethodPost, DIDBasePath+"/getTokenUserProfile", req)
}

// GetZkProofs fetches the zero-knowledge proof materials for zk-login, the
// final step of the flow. The materials feed the caller's zk-login
// authenticator; the SDK does not interpret them.
func GetZkProofs(ctx context.Context, c Caller, req *protocol.ZkProofsReq) (*protocol.Response[protocol.ZkLoginProofs], error) {
	return call[protocol.ZkLoginProofs](ctx, c, http.MethodPost, DIDBasePath+"/getZkProofs", req)
}
