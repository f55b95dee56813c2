// Package encodex encodes and decodes text for embedding in C and
// JavaScript literals, URLs, HTML, XML, JSON, shell commands and SQL.
//
// Package: encodex
// Title: Text Encoders for textkit
// Description: Pure string to string transforms. Encoders never fail
//              unless a policy asks them to; decoders report malformed
//              input as KindFormat errors carrying the byte position.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation
//
// Usage:
//
//	encodex.URLEncode("a b&c", encodex.URLSkipMarkChars)      // "a+b%26c"
//	encodex.PrintableString("tab\there", encodex.PrintableMode{}) // `tab\there`
//	s, err := encodex.ParseEscapes(`\x41\102C`, encodex.RangeFail, 0) // "ABC"
//	encodex.ShellEncode("it's")                                // 'it'\''s'
package encodex
