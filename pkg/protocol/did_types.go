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

package protocol

// SmsCodeSendReq requests an SMS verification code, the first step of the
// user authentication flow.
type SmsCodeSendReq struct {
	// Mobile is the phone number, required
	Mobile string `json:"mobile"`

	// MobilePrefix is the country prefix, required
	MobilePrefix string `json:"mobilePrefix"`

	// Provider is the access channel, defaults to "huione"
	Provider string `json:"provider"`
}

// SmsAuthenticateReq verifies the SMS code the user received, the second
// step of the authentication flow.
type SmsAuthenticateReq struct {
	// MobilePrefix is the country prefix, required
	MobilePrefix string `json:"mobilePrefix"`

	// Mobile is the phone number, required
	Mobile string `json:"mobile"`

	// Code is the identifier returned by the send-code step, required
	Code string `json:"code"`

	// SmsCode is the verification code the user received, required
	SmsCode string `json:"smsCode"`

	// Provider is the access channel
	Provider string `json:"provider"`
}

// AuthenticateUserResp carries the authentication number returned by a
// successful SMS authentication.
type AuthenticateUserResp struct {
	// Code is the authentication number used to obtain a token
	Code string `json:"code"`
}

// AuthorizeTokenProfileReq exchanges an authentication number for an
// access/session token, the third step of the authentication flow.
type AuthorizeTokenProfileReq struct {
	// Code is the authentication number, required
	Code string `json:"code"`

	// Nonce is the zk-login nonce bound to the ephemeral key, required
	Nonce string `json:"nonce"`

	// Provider is the access channel, defaults to "huione"
	Provider string `json:"provider"`

	// LoginType is the authentication mechanism, for example "sms"
	LoginType string `json:"loginType"`
}

// AccessTokenProfile describes the issued token.
type AccessTokenProfile struct {
	// Iss is the issuer
	Iss string `json:"iss"`

	// Azp is the authorized party
	Azp string `json:"azp"`

	// Aud is the audience
	Aud string `json:"aud"`

	// Sub is the subject
	Sub string `json:"sub"`

	// Nonce is the random value bound at issuance
	Nonce string `json:"nonce"`

	// Nbf is the not-before time
	Nbf int64 `json:"nbf"`

	// Iat is the issuance time
	Iat int64 `json:"iat"`

	// Exp is the expiration time
	Exp int64 `json:"exp"`

	// Jti is the token's unique identifier
	Jti string `json:"jti"`
}

// AuthorizeTokenProfileResp is returned by the token exchange.
type AuthorizeTokenProfileResp struct {
	// AccessTokenProfile describes the issued token
	AccessTokenProfile AccessTokenProfile `json:"accessTokenProfile"`

	// AccessToken is the session token; record it as the ACCESS_TOKEN
	// global header for subsequent calls
	AccessToken string `json:"accessToken"`

	// JwtToken is the JWT used for zk-login material
	JwtToken string `json:"jwtToken"`

	// SettingPayPassword reports whether a payment password is set
	SettingPayPassword bool `json:"settingPayPassword"`

	// AvatarURL is the user avatar, optional
	AvatarURL string `json:"avatarUrl,omitempty"`

	// Nickname is the user display name, optional
	Nickname string `json:"nickname,omitempty"`

	// DID is the user's decentralized identifier, optional
	DID string `json:"did,omitempty"`

	// Salt is the user salt for the zk-login address seed
	Salt string `json:"salt"`

	// Anonymous reports whether the user is anonymous
	Anonymous bool `json:"anonymous"`
}

// RefreshJwtTokenReq refreshes a JWT token about to expire.
type RefreshJwtTokenReq struct {
	// Nonce is the zk-login nonce for the refreshed token, required
	Nonce string `json:"nonce"`
}

// AuthorizeTokenReq queries the user profile bound to a session token.
type AuthorizeTokenReq struct {
	// AccessToken is the session token to look up, required
	AccessToken string `json:"accessToken"`
}

// UserTokenProfile is the user detail returned for a session token.
type UserTokenProfile struct {
	// ExpireTime is the token expiration time
	ExpireTime int64 `json:"expireTime"`

	// UserName is the login name
	UserName string `json:"userName"`

	// Avatar is the avatar URL
	Avatar string `json:"avatar"`

	// ID is the internal user ID
	ID int64 `json:"id"`

	// ChannelUserNo is the channel-side user number
	ChannelUserNo string `json:"channelUserNo"`

	// UserNo is the user number
	UserNo string `json:"userNo"`

	// AccessToken is the session token
	AccessToken string `json:"accessToken"`

	// Provider is the access channel
	Provider string `json:"provider"`

	// DID is the user's decentralized identifier
	DID string `json:"did"`
}

// ZkProofsReq requests the zero-knowledge proof materials for zk-login.
// All fields are required.
type ZkProofsReq struct {
	// MaxEpoch is the last epoch the ephemeral key stays valid for
	MaxEpoch int64 `json:"maxEpoch"`

	// JwtRandomness is the randomness committed into the nonce
	JwtRandomness string `json:"jwtRandomness"`

	// ExtendedEphemeralPublicKey is the flag-prefixed ephemeral public key
	// as a decimal string
	ExtendedEphemeralPublicKey string `json:"extendedEphemeralPublicKey"`

	// Jwt is the JWT obtained from the token exchange
	Jwt string `json:"jwt"`

	// Salt is the user salt
	Salt string `json:"salt"`

	// KeyClaimName is the JWT claim identifying the user, usually "sub"
	KeyClaimName string `json:"keyClaimName"`
}

// ZkLoginProofs is the prover output consumed by zk-login authenticators.
// The SDK treats it as opaque material; assembling an authenticator from it
// is the job of the caller's blockchain library.
type ZkLoginProofs struct {
	ProofPoints      ProofPoints `json:"proofPoints"`
	IssBase64Details ZkClaim     `json:"issBase64Details"`
	HeaderBase64     string      `json:"headerBase64"`
}

// ProofPoints are the Groth16 proof points of a zk-login proof.
type ProofPoints struct {
	A []string   `json:"a"`
	B [][]string `json:"b"`
	C []string   `json:"c"`
}

// ZkClaim is a claim slice with its base64 alignment offset.
type ZkClaim struct {
	Value     string `json:"value"`
	IndexMod4 int    `json:"indexMod4"`
}
