// File: options.go
// Title: Conversion Options
// Description: Named option sets controlling how text is accepted by the
//              parsers and how values are rendered by the formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-01
// Modified: 2025-02-01
//
// Change History:
// - 2025-02-01 v0.1.0: Initial implementation

package numx

// Signed is satisfied by every signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by every unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is satisfied by every integer type.
type Integer interface {
	Signed | Unsigned
}

// DecimalMode selects which characters act as the decimal point.
type DecimalMode int

const (
	// DecimalPosix accepts only '.'.
	DecimalPosix DecimalMode = iota
	// DecimalPosixOrLocal accepts '.' and falls back to LocalDecimalPoint.
	DecimalPosixOrLocal
)

// DefaultLocalDecimalPoint is used when ParseOptions.LocalDecimalPoint is 0.
const DefaultLocalDecimalPoint = ','

// ParseOptions controls what text the parsers accept. The zero value is
// strict: optional sign, no white space, no grouping commas.
type ParseOptions struct {
	MandatorySign        bool
	AllowCommas          bool
	AllowLeadingSpaces   bool
	AllowLeadingSymbols  bool
	AllowTrailingSpaces  bool
	AllowTrailingSymbols bool

	Decimal           DecimalMode
	LocalDecimalPoint byte
	// PosixFinite clamps overflow to ±MaxFloat64 and underflow of a non-zero
	// value to ±SmallestNormal instead of failing.
	PosixFinite bool

	// Data size parsing only.
	ForceBinary               bool
	ProhibitFractions         bool
	ProhibitSpaceBeforeSuffix bool
}

// AllowSpaces returns a copy of o accepting white space on both ends.
func (o ParseOptions) AllowSpaces() ParseOptions {
	o.AllowLeadingSpaces = true
	o.AllowTrailingSpaces = true
	return o
}

func (o ParseOptions) localPoint() byte {
	if o.LocalDecimalPoint == 0 {
		return DefaultLocalDecimalPoint
	}
	return o.LocalDecimalPoint
}

// Notation selects the floating point rendering.
type Notation int

const (
	NotationGeneral Notation = iota
	NotationFixed
	NotationScientific
)

// String returns the name of the notation
func (n Notation) String() string {
	switch n {
	case NotationFixed:
		return "fixed"
	case NotationScientific:
		return "scientific"
	default:
		return "general"
	}
}

// FormatOptions controls how values are rendered.
type FormatOptions struct {
	UseLowercase bool
	WithRadix    bool
	WithSign     bool
	WithCommas   bool
	Notation     Notation

	// Data size formatting only.
	Binary               bool
	NoDecimalPoint       bool
	PutSpaceBeforeSuffix bool
	ShortSuffix          bool
	PutBSuffixToo        bool
}
