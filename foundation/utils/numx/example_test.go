// File: example_test.go
// Title: numx Examples
// Description: Example usage of the numeric conversions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial examples

package numx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/numx"
)

func ExampleParseInt() {
	n, err := numx.ParseInt[int32]("1,234,567", numx.ParseOptions{AllowCommas: true}, 10)
	fmt.Println(n, err)

	_, err = numx.ParseInt[int8]("300", numx.ParseOptions{}, 10)
	fmt.Println(errors.KindOf(err))

	_, err = numx.ParseInt[int8]("", numx.ParseOptions{}, 10)
	fmt.Println(errors.KindOf(err))

	// Output:
	// 1234567 <nil>
	// range
	// format
}

func ExampleFormatInt() {
	s, _ := numx.FormatInt(uint16(255), numx.FormatOptions{WithRadix: true}, 16)
	fmt.Println(s)

	// Output:
	// 0xFF
}

func ExampleFormatDataSize() {
	for _, opts := range []numx.FormatOptions{{}, {Binary: true}, {Binary: true, ShortSuffix: true, PutSpaceBeforeSuffix: true}} {
		s, _ := numx.FormatDataSize(1024, opts, 3)
		fmt.Println(s)
	}

	// Output:
	// 1.02KB
	// 1.00KiB
	// 1.00 K
}
