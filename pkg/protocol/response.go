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

import "fmt"

const (
	// SuccessCode is the response code the wallet service returns on success
	SuccessCode = "000000"

	// SuccessMessage is the response message accompanying SuccessCode
	SuccessMessage = "success"
)

// Response is the uniform envelope every wallet API response arrives in.
// The data field is meaningful only when Success is true; use Result to
// access it.
type Response[T any] struct {
	// Code is the application status code ("000000" on success)
	Code string `json:"code"`

	// Message is the human-readable status message
	Message string `json:"msg"`

	// Data is the response payload, present only on success
	Data *T `json:"data"`

	// Success reports whether the call succeeded at the application level,
	// independent of the HTTP status code
	Success bool `json:"success"`

	// TraceID identifies this request in the service's tracing system
	TraceID string `json:"traceId"`

	// SystemTime is the server clock at response time, milliseconds
	SystemTime int64 `json:"systemTime"`
}

// Result returns the response data. It fails with an *APIError when the
// envelope reports an application failure, and when the envelope claims
// success but carries no data, so a failed response can never leak a
// zero-value payload to the caller.
func (r *Response[T]) Result() (T, error) {
	var zero T
	if !r.Success {
		return zero, r.apiError()
	}
	if r.Data == nil {
		return zero, &APIError{Code: r.Code, Message: "response data is missing", TraceID: r.TraceID}
	}
	return *r.Data, nil
}

// Err returns the application error carried by a failed envelope, or nil
// when the envelope reports success.
func (r *Response[T]) Err() error {
	if r.Success {
		return nil
	}
	return r.apiError()
}

func (r *Response[T]) apiError() *APIError {
	return &APIError{Code: r.Code, Message: r.Message, TraceID: r.TraceID}
}

// APIError is an application-level rejection from the wallet service,
// surfaced whenever a response envelope has success=false.
type APIError struct {
	Code    string
	Message string
	TraceID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wallet api error: code=%s msg=%q trace=%s", e.Code, e.Message, e.TraceID)
}

// PageResult is the payload shape of paged query endpoints.
type PageResult[T any] struct {
	// Rows holds the page of results
	Rows []T `json:"rows"`

	// TotalNum is the total number of matching records
	TotalNum int64 `json:"totalNum"`

	// PageSize is the requested page size
	PageSize int64 `json:"pageSize"`

	// PageIndex is the current page index
	PageIndex int64 `json:"pageIndex"`
}
