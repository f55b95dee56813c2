// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for textkit's structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2025-02-11 v0.2.0: Conversion error examples

package error

import (
	"fmt"
	"strconv"
)

func ExampleNew() {
	err := New("invalid digit").
		WithCode(CodeInvalidFormat).
		WithInput("12z").
		WithPosition(2)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())
	fmt.Println("Position:", err.Position())

	// Output:
	// Error: invalid digit
	// Code: INVALID_FORMAT
	// Severity: low
	// Position: 2
}

func ExampleWrap() {
	_, perr := strconv.Atoi("x")

	err := Wrap(perr, "reading width").
		WithCode(CodeInvalidArgument).
		WithOperation("wrap")

	fmt.Println(err.Error())
	fmt.Println(err.Code().ExitStatus())

	// Output:
	// wrap: reading width: strconv.Atoi: parsing "x": invalid syntax
	// 64
}
