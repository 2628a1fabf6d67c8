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

// The auth-flow example walks the full user authentication flow: send an
// SMS code, verify it, exchange it for a session token, install the token
// as a global header, and fetch zk-login proof materials.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/onechain-labs/onechain-wallet-go/pkg/client"
	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
	"github.com/onechain-labs/onechain-wallet-go/pkg/rpc"
	"github.com/onechain-labs/onechain-wallet-go/pkg/zklogin"
)

func main() {
	fmt.Println("OneChain Wallet Go - Authentication Flow Example")
	fmt.Println("================================================")

	host := os.Getenv("WALLET_API_HOST")
	privateKey := os.Getenv("WALLET_MERCHANT_KEY")
	merchantID := os.Getenv("WALLET_MERCHANT_ID")
	mobile := os.Getenv("WALLET_TEST_MOBILE")
	prefix := os.Getenv("WALLET_TEST_PREFIX")
	if host == "" || privateKey == "" || merchantID == "" || mobile == "" || prefix == "" {
		log.Fatal("set WALLET_API_HOST, WALLET_MERCHANT_KEY, WALLET_MERCHANT_ID, WALLET_TEST_MOBILE and WALLET_TEST_PREFIX first")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	svc, err := client.NewWalletService(host, privateKey, merchantID,
		client.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create wallet service: %v", err)
	}

	// Step 1: send the SMS code (signed call)
	fmt.Println("\n1. Sending SMS verification code...")
	sendResp, err := rpc.SendCode(ctx, svc, &protocol.SmsCodeSendReq{
		Mobile:       mobile,
		MobilePrefix: prefix,
		Provider:     "huione",
	})
	if err != nil {
		log.Fatalf("sendCode failed: %v", err)
	}
	codeID, err := sendResp.Result()
	if err != nil {
		log.Fatalf("sendCode rejected: %v", err)
	}

	// Step 2: verify the code the user received
	fmt.Print("\n2. Enter the SMS code you received: ")
	smsCode := readLine()

	authResp, err := rpc.AuthenticateSms(ctx, svc, &protocol.SmsAuthenticateReq{
		Mobile:       mobile,
		MobilePrefix: prefix,
		Code:         codeID,
		SmsCode:      smsCode,
		Provider:     "huione",
	})
	if err != nil {
		log.Fatalf("authenticateSms failed: %v", err)
	}
	auth, err := authResp.Result()
	if err != nil {
		log.Fatalf("authenticateSms rejected: %v", err)
	}

	// Step 3: prepare the zk-login session key and exchange for a token
	fmt.Println("\n3. Exchanging authentication number for a session token...")
	ephemeralKey, err := zklogin.GenerateEphemeralKey()
	if err != nil {
		log.Fatalf("Failed to generate ephemeral key: %v", err)
	}
	randomness, err := zklogin.GenerateRandomness()
	if err != nil {
		log.Fatalf("Failed to generate randomness: %v", err)
	}

	tokenResp, err := rpc.GetToken(ctx, svc, &protocol.AuthorizeTokenProfileReq{
		Code:      auth.Code,
		Nonce:     randomness,
		Provider:  "huione",
		LoginType: "sms",
	})
	if err != nil {
		log.Fatalf("getToken failed: %v", err)
	}
	token, err := tokenResp.Result()
	if err != nil {
		log.Fatalf("getToken rejected: %v", err)
	}

	// Step 4: install the session token for subsequent calls
	svc.SetHeader(protocol.HeaderAccessToken, token.AccessToken)
	svc.SetHeader(protocol.HeaderTokenID, token.AccessTokenProfile.Jti)
	fmt.Printf("   Session established for %s\n", token.Nickname)

	// Step 5: fetch the zk-login proof materials
	fmt.Println("\n4. Fetching zk-login proof materials...")
	claims, err := zklogin.ParseClaims(token.JwtToken)
	if err != nil {
		log.Fatalf("Failed to parse jwt: %v", err)
	}
	logger.Info("jwt claims parsed",
		zap.String("iss", claims.Issuer),
		zap.String("sub", claims.Subject),
	)

	proofResp, err := rpc.GetZkProofs(ctx, svc, &protocol.ZkProofsReq{
		MaxEpoch:                   10,
		JwtRandomness:              randomness,
		ExtendedEphemeralPublicKey: ephemeralKey.ExtendedPublicKey(),
		Jwt:                        token.JwtToken,
		Salt:                       token.Salt,
		KeyClaimName:               "sub",
	})
	if err != nil {
		log.Fatalf("getZkProofs failed: %v", err)
	}
	proofs, err := proofResp.Result()
	if err != nil {
		log.Fatalf("getZkProofs rejected: %v", err)
	}
	fmt.Printf("   Proof header: %s\n", proofs.HeaderBase64)

	// Step 6: an authenticated query using the installed token
	fmt.Println("\n5. Listing supported currencies...")
	currencies, err := rpc.QueryChainCurrencyForList(ctx, svc)
	if err != nil {
		log.Fatalf("queryChainCurrencyForList failed: %v", err)
	}
	list, err := currencies.Result()
	if err != nil {
		log.Fatalf("queryChainCurrencyForList rejected: %v", err)
	}
	for _, chain := range list {
		fmt.Printf("   %s: %d currencies\n", chain.Chain, len(chain.CurrencyList))
	}

	fmt.Println("\nAuthentication flow completed.")
}

func readLine() string {
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
