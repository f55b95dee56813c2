// File: example_test.go
// Title: Example Tests for stringx Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-07
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2025-02-07 v0.2.0: Search, mask and replace examples

package stringx_test

import (
	"fmt"

	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func ExampleFind() {
	path := "usr/local/share/doc"
	fmt.Println(mdwstringx.Find(path, "/", mdwstringx.FindOptions{}))
	fmt.Println(mdwstringx.Find(path, "/", mdwstringx.FindOptions{Occurrence: 1}))
	fmt.Println(mdwstringx.Find(path, "/", mdwstringx.FindOptions{Direction: mdwstringx.Reverse}))
	// Output:
	// 3
	// 9
	// 15
}

func ExampleMatchesMask() {
	fmt.Println(mdwstringx.MatchesMask("report_final.txt", "*_final.*", mdwstringx.CaseSensitive))
	fmt.Println(mdwstringx.MatchesMask("report.txt", "*_final.*", mdwstringx.CaseSensitive))
	fmt.Println(mdwstringx.MatchesMask("IMG_0042.JPG", "img_[0-9][0-9][0-9][0-9].jpg", mdwstringx.NoCase))
	// Output:
	// true
	// false
	// true
}

func ExampleReplace() {
	out, n := mdwstringx.Replace("a-b-c-d", "-", "+", mdwstringx.ReplaceOptions{StartPos: 2, MaxReplace: 1})
	fmt.Println(out, n)
	// Output:
	// a-b+c-d 1
}
