// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors. The logger uses them to choose
//              the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-02-11 v0.2.0: Severity mapping for text processing codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is bad input: the caller can fix it and retry.
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors.
	SeverityMedium

	// SeverityHigh is a broken configuration or a failed tool run.
	SeverityHigh

	// SeverityCritical is an internal invariant violation.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be surfaced
// even when the logger runs quietly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidArgument, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidEncoding, CodeUnbalancedQuote, CodeValidationFailed, CodeInvalidLength,
		CodeNotFound, CodeCanceled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
