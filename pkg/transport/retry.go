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

package transport

import (
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy controls how the transport retries transient failures.
// Retries happen entirely within one logical call; once MaxElapsedTime is
// exceeded the last transient error is returned.
type RetryPolicy struct {
	// InitialInterval is the wait before the first retry
	InitialInterval time.Duration

	// MaxInterval caps the wait between any two attempts
	MaxInterval time.Duration

	// Multiplier grows the wait between attempts
	Multiplier float64

	// RandomizationFactor bounds the jitter applied around each wait
	RandomizationFactor float64

	// MaxElapsedTime is the total retry budget for one call
	MaxElapsedTime time.Duration
}

// DefaultRetryPolicy is the wallet service's reference schedule: factor 2,
// waits between 1s and 11s with bounded jitter, 23.721s total budget.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval:     time.Second,
		MaxInterval:         11 * time.Second,
		Multiplier:          2,
		RandomizationFactor: 0.5,
		MaxElapsedTime:      23721 * time.Millisecond,
	}
}

func (p RetryPolicy) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = p.RandomizationFactor
	b.MaxElapsedTime = p.MaxElapsedTime
	b.Reset()
	return b
}

// isTransientStatus reports whether an HTTP status is worth a retry.
// Application-level 4xx rejections are not.
func isTransientStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return status >= http.StatusInternalServerError
}
