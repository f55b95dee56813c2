// Package error provides the structured error type shared by textkit.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: This package implements a structured error with a code, a
//              severity, the offending input, its byte position and a stack
//              trace. Every conversion in textkit reports failures through
//              it so callers can classify them without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-02-11 v0.2.0: Input/position tracking, exit status mapping
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("invalid digit").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithOperation("numx.ParseInt").
//		WithInput("12a").
//		WithPosition(2)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		// report the bad character
//	}
package error
