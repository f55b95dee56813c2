// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder and the standard constructors used by
//              every textkit package to report range, format, argument and
//              encoding failures with the offending input attached.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function
// - 2025-02-11 v0.2.0: Conversion constructors with input and position

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
	input     *string
	position  int
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
		position: mdwerror.NoPosition,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Input records the text that failed to convert
func (eb *ErrorBuilder) Input(input string) *ErrorBuilder {
	eb.input = &input
	return eb
}

// Position records the byte offset of the failure
func (eb *ErrorBuilder) Position(pos int) *ErrorBuilder {
	eb.position = pos
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeUnknown
	}
	if eb.message == "" {
		eb.message = "operation failed"
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details).WithSeverity(eb.severity)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.input != nil {
		err = err.WithInput(*eb.input)
	}
	if eb.position != mdwerror.NoPosition {
		err = err.WithPosition(eb.position)
	}
	return err
}

// RangeError reports a well-formed value that does not fit the target.
func RangeError(module, operation, input string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("value out of range").
		Code(mdwerror.CodeValueOutOfRange).
		Input(input).
		Severity(mdwerror.SeverityLow).
		Build()
}

// FormatErrorAt reports text that violates the expected grammar at pos.
func FormatErrorAt(module, operation, input string, pos int, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(mdwerror.CodeInvalidFormat).
		Input(input).
		Position(pos).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ArgumentError reports an argument that can never produce a result,
// such as base 37 or a maximum digit count below three.
func ArgumentError(module, operation, name string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid %s %v: expected %s", name, value, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("argument", name).
		Detail("value", value).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// EncodingError reports malformed source bytes or an unrepresentable
// code point at pos.
func EncodingError(module, operation, input string, pos int, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(mdwerror.CodeInvalidEncoding).
		Input(input).
		Position(pos).
		Severity(mdwerror.SeverityLow).
		Build()
}

// UnbalancedQuote reports a quote opened at pos and never closed.
func UnbalancedQuote(module, operation, input string, pos int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("unbalanced quote").
		Code(mdwerror.CodeUnbalancedQuote).
		Input(input).
		Position(pos).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Message("operation failed").
		Cause(cause).
		Severity(mdwerror.SeverityHigh)
	if mdwerror.GetCode(cause) != mdwerror.CodeUnknown {
		b.Code(mdwerror.GetCode(cause))
	} else {
		b.Code(mdwerror.CodeInternal)
	}
	return b.Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ConfigError reports an unusable configuration value.
func ConfigError(operation, key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("invalid value %v for %s: %s", value, key, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Severity(mdwerror.SeverityHigh).
		Build()
}
