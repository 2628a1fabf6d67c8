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

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/onechain-labs/onechain-wallet-go/pkg/client"
	"github.com/onechain-labs/onechain-wallet-go/pkg/protocol"
	"github.com/onechain-labs/onechain-wallet-go/pkg/rpc"
)

func main() {
	fmt.Println("OneChain Wallet Go - Simple Client Example")
	fmt.Println("==========================================")

	host := os.Getenv("WALLET_API_HOST")
	privateKey := os.Getenv("WALLET_MERCHANT_KEY")
	merchantID := os.Getenv("WALLET_MERCHANT_ID")
	if host == "" || privateKey == "" || merchantID == "" {
		log.Fatal("set WALLET_API_HOST, WALLET_MERCHANT_KEY and WALLET_MERCHANT_ID first")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	fmt.Println("\n1. Creating wallet service...")
	svc, err := client.NewWalletService(host, privateKey, merchantID,
		client.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create wallet service: %v", err)
	}
	fmt.Printf("   Merchant: %s\n", svc.MerchantID())

	// Signed call: send an SMS verification code
	fmt.Println("\n2. Sending SMS verification code (signed call)...")
	resp, err := rpc.SendCode(ctx, svc, &protocol.SmsCodeSendReq{
		Mobile:       "123123123",
		MobilePrefix: "855",
		Provider:     "huione",
	})
	if err != nil {
		log.Fatalf("sendCode failed: %v", err)
	}

	codeID, err := resp.Result()
	if err != nil {
		log.Fatalf("sendCode rejected: %v", err)
	}
	fmt.Printf("   Code identifier: %s (trace %s)\n", codeID, resp.TraceID)

	fmt.Println("\nNext: run the auth-flow example to exchange the code for a session token.")
}
