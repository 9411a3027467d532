// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package values

import (
	"os"
	"strconv"
	"time"
)

const (
	// Environment variable name providing the base backoff interval
	// in milliseconds
	BackoffBaseMsEnv = "BACKOFF_BASE_MS"

	// Default base backoff interval
	DefaultBackoffBase = 500 * time.Millisecond

	// Environment variable name providing the ceiling of the backoff
	// interval in milliseconds
	BackoffMaxMsEnv = "BACKOFF_MAX_MS"

	// Default ceiling of the backoff interval
	DefaultBackoffMax = 4 * time.Second
)

func lookupMs(env string, def time.Duration) time.Duration {
	val, ok := os.LookupEnv(env)
	if !ok {
		return def
	}
	ms, err := strconv.Atoi(val)
	if err != nil || ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// Get configured backoff base interval and ceiling, a ceiling below
// the base falls back to the defaults for both
func GetBackoffIntervals() (time.Duration, time.Duration) {
	base := lookupMs(BackoffBaseMsEnv, DefaultBackoffBase)
	max := lookupMs(BackoffMaxMsEnv, DefaultBackoffMax)
	if max < base {
		return DefaultBackoffBase, DefaultBackoffMax
	}
	return base, max
}
