// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. The CLI configures one logger per run and
//              tags it with a correlation id; library code only logs
//              through the default logger, which stays at warn level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-02-11 v0.2.0: Trimmed for the textkit CLI and pipeline
//
// Usage:
//
//	import mdwlog "github.com/msto63/textkit/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithCorrelationID(runID)
//
//	timer := logger.StartTimer("url-encode")
//	out, err := step.Apply(ctx, in)
//	if err != nil {
//		timer.StopWithError(err)
//	} else {
//		timer.Stop()
//	}
package log
