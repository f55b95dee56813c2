// File: misc.go
// Title: Boolean and Digit Helpers
// Description: Lenient boolean parsing and single hex digit decoding.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation

package numx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// ParseBool accepts true/t/yes/y/1 and false/f/no/n/0 in any letter case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y", "1":
		return true, nil
	case "false", "f", "no", "n", "0":
		return false, nil
	}
	return false, errors.FormatErrorAt(errors.ModuleNumx, "ParseBool", s, 0, "not a boolean")
}

// FormatBool returns "true" or "false".
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// HexDigit returns the value of a hexadecimal digit, or -1.
func HexDigit(c byte) int {
	if v := digitValue(c); v < 16 {
		return v
	}
	return -1
}
