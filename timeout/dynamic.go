// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package timeout

import (
	"context"
	"time"

	"github.com/go-core-stack/embedcore/values"
)

const (
	// default interval at which Retry polls for an answer
	defaultPollInterval = 10 * time.Millisecond

	// smallest base interval accepted, a zero interval would expire
	// on every check
	minBase = time.Millisecond
)

// Dynamic is a timeout that grows by one base interval every time it
// expires, wrapping back to the base interval once it exceeds the
// configured ceiling.
//
// Typical request loop:
//
//	for !answered {
//		send()
//		for !d.Expired() {
//			if received() {
//				answered = true
//				break
//			}
//		}
//	}
//
// A Dynamic is not safe for concurrent use.
type Dynamic struct {
	begin   time.Time
	base    time.Duration
	timeout time.Duration
	max     time.Duration
	now     func() time.Time
	poll    time.Duration
}

// Option configures a Dynamic timeout
type Option func(*Dynamic)

// WithClock sets the time source, mainly meant for tests
func WithClock(now func() time.Time) Option {
	return func(d *Dynamic) {
		d.now = now
	}
}

// WithPollInterval sets how often Retry checks for an answer
func WithPollInterval(poll time.Duration) Option {
	return func(d *Dynamic) {
		d.poll = poll
	}
}

// NewDynamic creates a timeout starting at base, growing up to max.
// A base below one millisecond is raised to it, and a max below base
// is raised to base. The timeout is Reset before being returned.
func NewDynamic(base, max time.Duration, opts ...Option) *Dynamic {
	if base < minBase {
		base = minBase
	}
	if max < base {
		max = base
	}
	d := &Dynamic{
		base: base,
		max:  max,
		now:  time.Now,
		poll: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Reset()
	return d
}

// NewDynamicFromEnv creates a timeout using the backoff intervals
// configured in the environment
func NewDynamicFromEnv(opts ...Option) *Dynamic {
	base, max := values.GetBackoffIntervals()
	return NewDynamic(base, max, opts...)
}

// Reset sets the begin time to now and the timeout to the base interval
func (d *Dynamic) Reset() {
	d.begin = d.now()
	d.timeout = d.base
}

// Timeout returns the current timeout
func (d *Dynamic) Timeout() time.Duration {
	return d.timeout
}

// Expired reports whether the current timeout elapsed since the begin
// time. When it did, the timeout grows by one base interval, wrapping
// to the base interval past the ceiling, and the begin time moves to
// now.
func (d *Dynamic) Expired() bool {
	now := d.now()
	if now.Sub(d.begin) <= d.timeout {
		return false
	}
	d.timeout += d.base
	if d.timeout > d.max {
		d.timeout = d.base
	}
	d.begin = now
	return true
}

// Retry calls send, then polls answered until it reports true or the
// timeout expires, in which case send is called again. It returns nil
// once answered, the error of send if it fails, or the context error.
func Retry(ctx context.Context, d *Dynamic, send func() error, answered func() bool) error {
	d.Reset()
	ticker := time.NewTicker(d.poll)
	defer ticker.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := send(); err != nil {
			return err
		}
		for !d.Expired() {
			if answered() {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
}
