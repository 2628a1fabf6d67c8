// Package protocol defines the wire types of the OneChain Wallet open API.
//
// Every signed call travels inside a BaseRequest envelope that carries the
// request timestamp, the merchant ID and the merchant signature alongside
// the flattened business payload. Every response arrives inside a uniform
// envelope, modeled here as the generic Response type.
//
// # Request Envelope
//
// BaseRequest flattens its body into the same JSON object as the envelope
// fields, so a payload {"mobile": "123"} signed by merchant "m1" is sent as:
//
//	{"timestamp": 1700000000000, "merchantSign": "...", "merchantId": "m1", "mobile": "123"}
//
// A fresh envelope is built for every outgoing call; the timestamp changes
// each time, so a merchant signature is never valid for more than one call.
//
// # Response Envelope
//
//	{"code": "000000", "msg": "success", "data": ..., "success": true, "traceId": "...", "systemTime": ...}
//
// Response data is only reachable through Result, which fails when the
// envelope reports an application error. Callers must not assume the data
// field is usable unless success is true.
//
// The remaining files declare the request and response payloads of the
// /did, /wallet and /transfer endpoint groups.
package protocol
