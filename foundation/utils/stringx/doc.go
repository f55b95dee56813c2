// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides byte-oriented string comparison,
//              searching, glob matching and in-place style transforms.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-02-07
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-02-07 v0.3.0: Comparison, search, mask matching, trim and replace

// Package stringx provides extended string operations for textkit.
//
// Package: stringx
// Title: Extended String Operations for textkit
// Description: Case sensitive and case insensitive comparison, nth
//              occurrence and whole word search, glob style mask matching,
//              ASCII case conversion, trimming, counted replacement,
//              sanitizing and quoting.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-02-07
//
// Overview
//
// Everything in this package works on bytes. Case insensitive operations
// fold the ASCII letters a-z and A-Z only; all other bytes, including
// UTF-8 sequences, compare exactly. Language aware case mapping lives in
// utf8x.
//
// Positions are byte offsets. Searches report NotFound (-1) when there is
// no match.
//
// Usage Examples
//
//	stringx.CompareNocase("ABC", "abc")                        // 0
//	stringx.Find("a.b.c", ".", stringx.FindOptions{Direction: stringx.Reverse}) // 3
//	stringx.MatchesMask("report_final.txt", "*_final.*", stringx.CaseSensitive) // true
//	out, n := stringx.Replace("a-b-c", "-", "+", stringx.ReplaceOptions{MaxReplace: 1})
//
// Error Handling
//
// Functions that can reject their arguments have an E suffix or return an
// error from foundation/core/errors; Must variants panic instead.
package stringx
