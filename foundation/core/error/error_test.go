// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severities, input
//              and position tracking and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-02-11 v0.2.0: Input/position and exit status coverage

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Position() != NoPosition {
		t.Errorf("Position() = %d, want %d", err.Position(), NoPosition)
	}
	if _, ok := err.Input(); ok {
		t.Error("Input() reported an input on a fresh error")
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original"),
			message: "wrapper",
			wantMsg: "wrapper: original",
		},
		{
			name:    "wrap structured error",
			err:     New("bad digit").WithCode(CodeInvalidFormat).WithInput("1x").WithPosition(1),
			message: "wrapper",
			wantMsg: "wrapper: bad digit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if inner, ok := tt.err.(*Error); ok {
				if wrapped.Code() != inner.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
				}
				if wrapped.Position() != inner.Position() {
					t.Errorf("Position() = %d, want %d", wrapped.Position(), inner.Position())
				}
				in, _ := wrapped.Input()
				want, _ := inner.Input()
				if in != want {
					t.Errorf("Input() = %q, want %q", in, want)
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	root := errors.New("root cause")
	middle := Wrap(root, "middle layer")
	top := Wrap(middle, "top layer")

	if got, want := top.Error(), "top layer: middle layer: root cause"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(top, root) {
		t.Error("errors.Is(top, root) = false")
	}
	if top.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), root)
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = New("root").WithCode(CodeInvalidFormat)
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}
	e, ok := As(err)
	if !ok {
		t.Fatal("As() found no *Error")
	}
	if chainDepth(err) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(err), MaxErrorChainDepth+1)
	}
	if e.Code() != CodeInvalidFormat {
		t.Errorf("Code() = %v, want %v", e.Code(), CodeInvalidFormat)
	}
}

func TestOperationPrefix(t *testing.T) {
	err := New("no digits").WithOperation("numx.ParseInt")
	if got, want := err.Error(), "numx.ParseInt: no digits"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Message() != "no digits" {
		t.Errorf("Message() = %q, want %q", err.Message(), "no digits")
	}
}

func TestCodeLookupThroughFmtWrap(t *testing.T) {
	inner := New("bad").WithCode(CodeValueOutOfRange)
	outer := fmt.Errorf("converting field: %w", inner)

	if !HasCode(outer, CodeValueOutOfRange) {
		t.Error("HasCode() = false through fmt.Errorf wrapping")
	}
	if GetSeverity(outer) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(outer), SeverityLow)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode(plain) should be CodeUnknown")
	}
}

func TestIsMatchesCode(t *testing.T) {
	sentinel := New("range").WithCode(CodeValueOutOfRange)
	err := New("overflow").WithCode(CodeValueOutOfRange)

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should match on code")
	}
	if errors.Is(err, New("other").WithCode(CodeInvalidFormat)) {
		t.Error("errors.Is() matched a different code")
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
		severity Severity
	}{
		{CodeInvalidArgument, true, "argument", 64, SeverityLow},
		{CodeInvalidFormat, true, "conversion", 65, SeverityLow},
		{CodeValueOutOfRange, true, "conversion", 65, SeverityLow},
		{CodeInvalidEncoding, true, "encoding", 65, SeverityLow},
		{CodeInvalidConfig, true, "configuration", 78, SeverityHigh},
		{CodeInternal, true, "generic", 70, SeverityCritical},
		{Code("SOMETHING_ELSE"), false, "generic", 1, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitStatus(); got != tt.exit {
				t.Errorf("ExitStatus() = %d, want %d", got, tt.exit)
			}
			if got := GetSeverityFromCode(tt.code); got != tt.severity {
				t.Errorf("GetSeverityFromCode() = %v, want %v", got, tt.severity)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q; want %q", tt.severity, got, tt.want)
		}
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() threshold should be SeverityHigh")
	}
}

func TestExplicitSeverityWins(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidFormat)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestString(t *testing.T) {
	err := New("bad digit").
		WithCode(CodeInvalidFormat).
		WithOperation("numx.ParseInt").
		WithInput("12z").
		WithPosition(2).
		WithDetail("base", 10)

	s := err.String()
	for _, want := range []string{
		"Error: bad digit",
		"Code: INVALID_FORMAT",
		"Operation: numx.ParseInt",
		`Input: "12z"`,
		"Position: 2",
		"Details: {base=10}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad digit").
		WithCode(CodeInvalidFormat).
		WithInput("12z").
		WithPosition(2)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var got map[string]interface{}
	if jerr := json.Unmarshal(data, &got); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if got["code"] != "INVALID_FORMAT" {
		t.Errorf("code = %v, want INVALID_FORMAT", got["code"])
	}
	if got["input"] != "12z" {
		t.Errorf("input = %v, want 12z", got["input"])
	}
	if got["position"] != float64(2) {
		t.Errorf("position = %v, want 2", got["position"])
	}
	if _, ok := got["cause"]; ok {
		t.Error("cause should be omitted when there is none")
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1})
	d := err.Details()
	d["a"] = 2
	if err.Details()["a"] != 1 {
		t.Error("Details() returned the internal map")
	}
}
