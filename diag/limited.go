// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package diag

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimitedSink passes messages to the underlying sink at a bounded rate,
// dropping the excess. The number of dropped messages is prefixed to the
// next message that gets through.
type LimitedSink struct {
	sink    Sink
	limiter *rate.Limiter
	mu      sync.Mutex // protects dropped and total
	dropped int        // dropped since the last message that passed
	total   int        // dropped over the lifetime of the sink
}

// NewLimitedSink allows one message every interval with the given burst
// on top of sink
func NewLimitedSink(sink Sink, every time.Duration, burst int) *LimitedSink {
	if burst < 1 {
		burst = 1
	}
	return &LimitedSink{
		sink:    sink,
		limiter: rate.NewLimiter(rate.Every(every), burst),
	}
}

func (s *LimitedSink) Printf(format string, args ...any) {
	s.mu.Lock()
	if !s.limiter.Allow() {
		s.dropped++
		s.total++
		s.mu.Unlock()
		return
	}
	dropped := s.dropped
	s.dropped = 0
	s.mu.Unlock()

	if dropped > 0 {
		format = fmt.Sprintf("(%d dropped) %s", dropped, format)
	}
	Printf(s.sink, format, args...)
}

// Dropped returns the number of messages dropped so far
func (s *LimitedSink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}
