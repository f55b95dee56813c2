// Package numx converts integers, floating point numbers and data sizes
// to and from text.
//
// Package: numx
// Title: Numeric Conversion for textkit
// Description: Parses and formats integers in any base from 2 to 36,
//              floating point values with NaN/Inf and locale decimal point
//              support, and data sizes such as "1.5 GiB". Behaviour is
//              selected through ParseOptions and FormatOptions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-01
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-01 v0.1.0: Initial implementation
//
// Every parser returns the zero value together with an error from
// foundation/core/errors. The error kind tells the cases apart:
// KindFormat for text that is not a number (including empty input),
// KindRange for a number that does not fit, KindInvalidArgument for an
// unusable base or digit count. Must* variants panic instead.
//
// Usage:
//
//	n, err := numx.ParseInt[int32]("1,234,567", numx.ParseOptions{AllowCommas: true}, 10)
//	s, _ := numx.FormatInt(uint16(255), numx.FormatOptions{WithRadix: true}, 16) // "0xFF"
//	size, _ := numx.FormatDataSize(1024, numx.FormatOptions{Binary: true}, 3)    // "1.00KiB"
package numx
