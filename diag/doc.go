// Package diag provides the diagnostic sink used by the library components
// to report recoverable conditions, such as an exhausted host heap or an
// identifier released outside the managed range.
//
// # Overview
//
// A Sink only receives human readable warnings. Its presence or absence
// never changes the behavior of the component writing to it, so a
// production build can pass Discard and lose nothing but the messages.
//
// # Sinks
//
//   - Discard: drops every message
//   - NewLogSink: writes through the standard log package
//   - NewLimitedSink: throttles another sink, useful when the debug channel
//     is a slow serial console
//
// # Example Usage
//
//	sink := diag.NewLimitedSink(diag.NewLogSink(nil), time.Second, 5)
//	ids := resource.NewIdAllocator(100, resource.WithDiagnostics(sink))
package diag
