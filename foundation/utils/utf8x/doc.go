// Package utf8x provides a strict UTF-8 codec and conversions between
// UTF-8, fixed width code units and single-byte encodings.
//
// Package: utf8x
// Title: UTF-8 Codec for textkit
// Description: Validates, measures and decodes UTF-8 with byte-exact error
//              positions, converts to and from UCS-2/UCS-4 code units with a
//              substitute-or-fail policy and round-trips Latin-1 and
//              Windows-1252 through code points.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation
//
// Decoding follows RFC 3629: overlong forms, surrogates and code points
// above U+10FFFF are rejected. Functions that validate report a
// KindEncoding error carrying the byte offset of the offending byte;
// ValidBytesCount and ValidSymbolCount never fail.
//
// Usage:
//
//	n := utf8x.ValidBytesCount(buf)          // length of the valid prefix
//	units, err := utf8x.ToUCS2(s, utf8x.Substitute("?"))
//	latin, err := utf8x.FromUTF8(s, utf8x.EncodingISO8859_1, utf8x.Fail())
package utf8x
