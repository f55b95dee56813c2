// Package errors provides the standard error constructors for all textkit
// packages.
//
// Package: errors
// Title: Standard Error Handling API for textkit
// Description: Wraps the core error type with module-aware constructors and
//              the Kind taxonomy (range, format, invalid argument, encoding)
//              that conversion callers switch on.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-02-11 v0.2.0: Kind taxonomy and conversion constructors
//
// Every conversion in textkit returns its value together with an error.
// Callers that only care about the class of failure use KindOf:
//
//	n, err := numx.ParseInt[int32]("99999999999", numx.ParseOptions{}, 10)
//	switch errors.KindOf(err) {
//	case errors.KindNone:
//		use(n)
//	case errors.KindRange:
//		// too large for int32
//	case errors.KindFormat:
//		pos := errors.GetErrorPosition(err)
//		_ = pos
//	}
//
// Packages build their errors with the shared constructors so that module,
// operation, input and position are always recorded the same way:
//
//	return 0, errors.FormatErrorAt(errors.ModuleNumx, "ParseInt", s, i, "invalid digit")
package errors
