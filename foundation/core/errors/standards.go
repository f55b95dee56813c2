// File: standards.go
// Title: Error Standards for textkit
// Description: Module identifiers, the error kind taxonomy shared by all
//              conversion packages and helpers for classifying errors
//              without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-02-11 v0.2.0: Kind taxonomy for range/format/argument/encoding errors

package errors

import (
	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleNumx     = "numx"
	ModuleStringx  = "stringx"
	ModuleSplitx   = "splitx"
	ModuleEncodex  = "encodex"
	ModuleUtf8x    = "utf8x"
	ModuleWrapx    = "wrapx"
	ModulePipeline = "pipeline"
	ModuleConfig   = "config"
	ModuleCLI      = "cli"
)

// Kind is the coarse classification every conversion error falls into.
type Kind int

const (
	// KindNone is reported for a nil error.
	KindNone Kind = iota
	// KindRange: the text is well formed but the value does not fit.
	KindRange
	// KindFormat: the text does not follow the expected grammar.
	KindFormat
	// KindInvalidArgument: a base, width or flag combination is unusable.
	KindInvalidArgument
	// KindEncoding: bytes are not valid in the source encoding, or a code
	// point has no representation in the target encoding.
	KindEncoding
	// KindOther covers everything not produced by a conversion.
	KindOther
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRange:
		return "range"
	case KindFormat:
		return "format"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindEncoding:
		return "encoding"
	default:
		return "other"
	}
}

// KindOf classifies err by the code of the first *mdwerror.Error in its chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	switch mdwerror.GetCode(err) {
	case mdwerror.CodeValueOutOfRange:
		return KindRange
	case mdwerror.CodeInvalidFormat, mdwerror.CodeUnbalancedQuote:
		return KindFormat
	case mdwerror.CodeInvalidArgument, mdwerror.CodeInvalidInput:
		return KindInvalidArgument
	case mdwerror.CodeInvalidEncoding:
		return KindEncoding
	default:
		return KindOther
	}
}

// IsRange reports whether err is a range error
func IsRange(err error) bool { return KindOf(err) == KindRange }

// IsFormat reports whether err is a format error
func IsFormat(err error) bool { return KindOf(err) == KindFormat }

// IsInvalidArgument reports whether err is an invalid-argument error
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }

// IsEncoding reports whether err is an encoding error
func IsEncoding(err error) bool { return KindOf(err) == KindEncoding }

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	return detailString(err, "module")
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	return detailString(err, "operation")
}

// GetErrorPosition returns the byte offset recorded on err, or
// mdwerror.NoPosition.
func GetErrorPosition(err error) int {
	if e, ok := mdwerror.As(err); ok {
		return e.Position()
	}
	return mdwerror.NoPosition
}

func detailString(err error, key string) string {
	e, ok := mdwerror.As(err)
	if !ok {
		return ""
	}
	if s, ok := e.Details()[key].(string); ok {
		return s
	}
	return ""
}
