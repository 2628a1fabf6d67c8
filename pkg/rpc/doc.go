// Package rpc defines the wallet API endpoint groups.
//
// Every endpoint is a free function generic over the Caller capability:
// anything able to issue unsigned and merchant-signed calls (in practice
// the client.WalletService facade) can serve every endpoint group. There
// is no per-group client type to construct.
//
//	svc, _ := client.NewWalletService(host, key, merchantID)
//
//	resp, err := rpc.SendCode(ctx, svc, &protocol.SmsCodeSendReq{
//	    Mobile:       "123123123",
//	    MobilePrefix: "855",
//	    Provider:     "huione",
//	})
//	if err != nil {
//	    return err
//	}
//	code, err := resp.Result()
//
// The groups mirror the service's URL layout: /did (authentication and
// zk-login materials), /wallet (currency and wallet queries), /transfer
// (orders and sponsored transactions).
//
// The multi-step authentication flow (send code, authenticate, exchange
// for a token, record the token as a global header, fetch zk proofs) is
// caller-driven: each step is an independent call and a failed flow is
// restarted from the failed step, not resumed.
package rpc
