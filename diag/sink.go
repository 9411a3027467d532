// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package diag

import (
	"log"
)

// Sink receives diagnostic messages
type Sink interface {
	Printf(format string, args ...any)
}

type discardSink struct{}

func (discardSink) Printf(string, ...any) {}

// Discard is a Sink that drops every message
var Discard Sink = discardSink{}

type logSink struct {
	logger *log.Logger
}

func (s *logSink) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// NewLogSink returns a Sink writing to the given logger, falling back
// to the standard logger if nil is passed
func NewLogSink(logger *log.Logger) Sink {
	if logger == nil {
		logger = log.Default()
	}
	return &logSink{
		logger: logger,
	}
}

// Printf writes the message to the sink, if there is one
func Printf(sink Sink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Printf(format, args...)
}
