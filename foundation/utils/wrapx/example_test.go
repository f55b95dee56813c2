// File: example_test.go
// Title: wrapx Examples
// Description: Example usage of Wrap and Justify.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial examples

package wrapx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/utils/wrapx"
)

func ExampleWrap() {
	first := "Note: "
	lines, _ := wrapx.Wrap("wrapping keeps every line within the width", 20,
		wrapx.Options{Prefix: "      ", FirstPrefix: &first})
	for _, l := range lines {
		fmt.Println(l)
	}

	// Output:
	// Note: wrapping keeps
	//       every line
	//       within the
	//       width
}

func ExampleJustify() {
	lines, _ := wrapx.Justify("the quick brown fox jumps over the lazy dog", 15, "", nil)
	for _, l := range lines {
		fmt.Printf("|%s|\n", l)
	}

	// Output:
	// |the quick brown|
	// |fox  jumps over|
	// |the lazy dog|
}
