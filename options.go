// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// Format is a bitmask describing which numeric literal shapes ParseFloat
// accepts. The bit layout mirrors fast_float's chars_format: general is the
// union of scientific and fixed, and the json/fortran dialects are unions of
// a dialect-private bit with general (plus, for json, no_infnan).
type Format uint16

const (
	FormatScientific Format = 1 << 0
	FormatFixed      Format = 1 << 1
	FormatGeneral           = FormatFixed | FormatScientific
	FormatNoInfNaN   Format = 1 << 3

	formatBasicJSON    Format = 1 << 4
	formatBasicFortran Format = 1 << 5

	// FormatAllowLeadingPlus permits a leading '+' sign on the mantissa.
	FormatAllowLeadingPlus Format = 1 << 6
	// FormatSkipWhitespace skips leading ASCII space/tab/newline/etc. before parsing.
	FormatSkipWhitespace Format = 1 << 7

	// FormatJSON implements RFC 8259 §6: no leading '+', no bare ".5", no
	// leading zeros, inf/nan forbidden.
	FormatJSON = formatBasicJSON | FormatGeneral | FormatNoInfNaN
	// FormatJSONOrInfNaN is FormatJSON but additionally allows inf/nan, an
	// extension some JSON-adjacent formats (e.g. relaxed config languages) use.
	FormatJSONOrInfNaN = formatBasicJSON | FormatGeneral
	// FormatFortran additionally accepts a 'd'/'D' exponent marker and a bare
	// signed exponent with no 'e'/'d' marker.
	FormatFortran = formatBasicFortran | FormatGeneral
)

func (f Format) has(bit Format) bool { return f&bit != 0 }

// RoundingMode is the ambient IEEE rounding mode under which ParseFloat
// produces its result. The C++ reference probes the hardware FPU control
// word for this; Go exposes no such register (all native Go float
// arithmetic is defined to round to nearest, ties-to-even), so the ambient
// mode is instead an explicit, caller-supplied option.
type RoundingMode uint8

const (
	// ToNearestEven is the IEEE-754 default and the only mode under which
	// the conventional Clinger fast path (a single exact multiply or divide)
	// is valid in both directions.
	ToNearestEven RoundingMode = iota
	TowardZero
	TowardPositive
	TowardNegative
)

// Options controls how ParseFloat interprets its input.
type Options struct {
	// Format selects which literal shapes are accepted.
	Format Format
	// DecimalPoint overrides the default '.' decimal point character.
	DecimalPoint byte
	// RoundingMode is the ambient rounding mode to round under; see RoundingMode.
	RoundingMode RoundingMode
}

// DefaultOptions is general format, '.' decimal point, round-to-nearest-even.
func DefaultOptions() Options {
	return Options{Format: FormatGeneral, DecimalPoint: '.', RoundingMode: ToNearestEven}
}

func (o Options) decimalPoint() byte {
	if o.DecimalPoint == 0 {
		return '.'
	}
	return o.DecimalPoint
}
