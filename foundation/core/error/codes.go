// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across textkit. Codes classify
//              every failure a conversion, encoder or tool can report and map
//              onto CLI exit statuses.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-02-11 v0.2.0: Text processing codes, exit status mapping

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"
	CodeCanceled Code = "CANCELED"

	// Argument problems: a caller passed a base, width or mode that can
	// never succeed regardless of input.
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Conversion failures
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidEncoding Code = "INVALID_ENCODING"
	CodeUnbalancedQuote Code = "UNBALANCED_QUOTE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeCanceled,
		CodeInvalidInput, CodeInvalidArgument,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidEncoding, CodeUnbalancedQuote,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidFormat, CodeValueOutOfRange, CodeUnbalancedQuote:
		return "conversion"
	case CodeInvalidEncoding:
		return "encoding"
	case CodeInvalidInput, CodeInvalidArgument:
		return "argument"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// ExitStatus returns the process exit status the CLI uses for this code.
// The values follow the BSD sysexits conventions.
func (c Code) ExitStatus() int {
	switch c {
	case CodeInvalidInput, CodeInvalidArgument:
		return 64 // EX_USAGE
	case CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidEncoding,
		CodeUnbalancedQuote, CodeValidationFailed, CodeInvalidLength:
		return 65 // EX_DATAERR
	case CodeNotFound:
		return 66 // EX_NOINPUT
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 78 // EX_CONFIG
	case CodeInternal:
		return 70 // EX_SOFTWARE
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
