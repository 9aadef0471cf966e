// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

type atofTest struct {
	in  string
	out string // strconv.FormatFloat(got, 'g', -1, 64), or "" when err is checked only
	err error  // ErrSyntax, ErrRange, or nil
}

var atof64Tests = []atofTest{
	{"", "0", ErrSyntax},
	{"1", "1", nil},
	{"+1", "0", ErrSyntax}, // leading '+' needs FormatAllowLeadingPlus
	{"1x", "1", nil},       // prefix parse: consumed stops before 'x'
	{"1.1.", "1.1", nil},
	{"1e23", "1e+23", nil},
	{"1E23", "1e+23", nil},
	{"100000000000000000000000", "1e+23", nil},
	{"1e-100", "1e-100", nil},
	{"123456700", "1.234567e+08", nil},
	{"99999999999999974834176", "9.999999999999997e+22", nil},
	{"100000000000000000000001", "1.0000000000000001e+23", nil},
	{"-1", "-1", nil},
	{"-0.1", "-0.1", nil},
	{"-0", "-0", nil},
	{"1e-20", "1e-20", nil},
	{"625e-3", "0.625", nil},

	{"0", "0", nil},
	{"0e0", "0", nil},
	{"-0e0", "-0", nil},
	{"0e+01234567890123456789", "0", nil},
	{"0e9999999999999999999999999999", "0", nil},

	{"nan", "NaN", nil},
	{"NaN", "NaN", nil},
	{"NAN", "NaN", nil},

	{"inf", "+Inf", nil},
	{"-Inf", "-Inf", nil},
	{"+INF", "0", ErrSyntax},
	{"-Infinity", "-Inf", nil},
	{"Infinity", "+Inf", nil},

	// largest float64
	{"1.7976931348623157e308", "1.7976931348623157e+308", nil},
	{"-1.7976931348623157e308", "-1.7976931348623157e+308", nil},
	// next float64 - too large
	{"1.7976931348623159e308", "+Inf", ErrRange},
	{"-1.7976931348623159e308", "-Inf", ErrRange},

	{"1e308", "1e+308", nil},
	{"2e308", "+Inf", ErrRange},
	{"1.8e308", "+Inf", ErrRange},
	{"1e309", "+Inf", ErrRange},
	{"1e400", "+Inf", ErrRange},
	{"-1e400", "-Inf", ErrRange},

	// denormalized / subnormal boundary (spec.md §8)
	{"2.2250738585072014e-308", "2.2250738585072014e-308", nil}, // smallest normal
	{"2.2250738585072009e-308", "2.225073858507201e-308", nil},  // largest subnormal
	{"4.9406564584124654e-324", "5e-324", nil},                  // minimum positive subnormal
	{"2e-324", "0", nil},

	// too small
	{"1e-350", "0", nil},
	{"1e-400000", "0", nil},

	// exponent overflow policy
	{"1e-4294967296", "0", nil},
	{"1e+4294967296", "+Inf", ErrRange},

	// malformed exponent: the 'e' is not part of the literal, which ends at "1"
	{"1e", "1", nil},
	{"1e-", "1", nil},
	// malformed
	{".e-1", "0", ErrSyntax},

	// round to even (exactly halfway between 1 and nextafter(1,2))
	{"1.00000000000000011102230246251565404236316680908203125", "1", nil},
	{"1.00000000000000011102230246251565404236316680908203124", "1", nil},
	{"1.00000000000000011102230246251565404236316680908203126", "1.0000000000000002", nil},

	// the digitComp big-integer path: exact halfway ties resolved exactly
	{"4503599627370496.5", "4.503599627370496e+15", nil}, // round to even (down)
	{"4503599627370497.5", "4.503599627370498e+15", nil}, // round to even (up)
}

var atof32Tests = []atofTest{
	{"1.000000059604644775390625", "1", nil},
	{"1.000000059604644775390624", "1", nil},
	{"1.000000059604644775390626", "1.0000001", nil},

	{"340282346638528859811704183484516925440", "3.4028235e+38", nil},
	{"3.4028236e38", "+Inf", ErrRange},
	{"3.4028234664e38", "3.4028235e+38", nil},
	{"3.4028234666e38", "3.4028235e+38", nil},

	{"7.0060e-46", "0", nil},
	{"1e-38", "1e-38", nil},
	{"1e-45", "1e-45", nil},
	{"2e-45", "1e-45", nil},
}

func formatG(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func asNumErr(fn, in string, err error) error {
	if err == nil {
		return nil
	}
	return &NumError{fn, in, err}
}

func TestParseFloat64(t *testing.T) {
	opts := DefaultOptions()
	for _, test := range atof64Tests {
		want := asNumErr("ParseFloat", test.in, test.err)
		got, _, err := ParseFloat([]byte(test.in), 64, opts)
		gotStr := formatG(got)
		if gotStr != test.out || !errorsEqual(err, want) {
			t.Errorf("ParseFloat(%q, 64) = %v, %v; want %v, %v", test.in, got, err, test.out, want)
		}
	}
}

func TestParseFloat32(t *testing.T) {
	opts := DefaultOptions()
	for _, test := range atof32Tests {
		got, _, err := ParseFloat([]byte(test.in), 32, opts)
		got32 := float32(got)
		gotStr := strconv.FormatFloat(float64(got32), 'g', -1, 32)
		want := asNumErr("ParseFloat", test.in, test.err)
		if gotStr != test.out || !errorsEqual(err, want) {
			t.Errorf("ParseFloat(%q, 32) = %v, %v; want %v, %v", test.in, got32, err, test.out, want)
		}
	}
}

func errorsEqual(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	ae, aok := a.(*NumError)
	be, bok := b.(*NumError)
	if !aok || !bok {
		return errors.Is(a, b)
	}
	return ae.Func == be.Func && ae.Num == be.Num && errors.Is(ae.Err, be.Err)
}

func TestParseFloatSign(t *testing.T) {
	_, _, err := ParseFloat([]byte("+1"), 64, Options{Format: FormatGeneral})
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("leading '+' without FormatAllowLeadingPlus: got err=%v, want ErrSyntax", err)
	}
	_, _, err = ParseFloat([]byte("+1"), 64, Options{Format: FormatGeneral | FormatAllowLeadingPlus})
	if err != nil {
		t.Errorf("leading '+' with FormatAllowLeadingPlus: got err=%v, want nil", err)
	}
}

func TestParseFloatJSON(t *testing.T) {
	opts := Options{Format: FormatJSON}
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"0", false},
		{"0.5", false},
		{"-0.5", false},
		{"01", true},  // leading zero
		{"+1", true},  // leading plus forbidden
		{".5", true},  // bare fraction forbidden
		{"1.", true},  // no digits after point
		{"nan", true}, // inf/nan forbidden
	}
	for _, c := range cases {
		_, _, err := ParseFloat([]byte(c.in), 64, opts)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseFloat(%q, JSON) err=%v, wantErr=%v", c.in, err, c.wantErr)
		}
	}
}

func TestParseFloatFortran(t *testing.T) {
	opts := Options{Format: FormatFortran}
	f, _, err := ParseFloat([]byte("1.5d2"), 64, opts)
	if err != nil || f != 150 {
		t.Errorf("ParseFloat(1.5d2, Fortran) = %v, %v; want 150, nil", f, err)
	}
	f, _, err = ParseFloat([]byte("1.5-2"), 64, opts)
	if err != nil || f != 0.015 {
		t.Errorf("ParseFloat(1.5-2, Fortran) = %v, %v; want 0.015, nil", f, err)
	}
}

func TestParseFloatWhitespace(t *testing.T) {
	opts := Options{Format: FormatGeneral | FormatSkipWhitespace}
	f, consumed, err := ParseFloat([]byte("  \t1.5"), 64, opts)
	if err != nil || f != 1.5 || consumed != 6 {
		t.Errorf("ParseFloat(%q) = %v, %v, %v; want 1.5, 6, nil", "  \t1.5", f, consumed, err)
	}
}

func TestParseFloatBitSizeError(t *testing.T) {
	_, _, err := ParseFloat([]byte("1"), 16, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for bitSize 16")
	}
}

func TestParseFloatBoundarySymmetry(t *testing.T) {
	opts := DefaultOptions()
	inputs := []string{"1.5", "123456789.987654321", "2.2250738585072014e-308", "1e300", "0.00001"}
	for _, in := range inputs {
		pos, _, err1 := ParseFloat([]byte(in), 64, opts)
		neg, _, err2 := ParseFloat([]byte("-"+in), 64, opts)
		if err1 != nil || err2 != nil {
			t.Fatalf("ParseFloat(%q) errors: %v, %v", in, err1, err2)
		}
		if pos != -neg {
			t.Errorf("ParseFloat(%q)=%v, ParseFloat(-%q)=%v; not negations", in, pos, in, neg)
		}
	}
}

func TestParseFloatMonotone(t *testing.T) {
	opts := DefaultOptions()
	pairs := [][2]string{
		{"1.0000000001", "1.0000000002"},
		{"1e10", "1e11"},
		{"0.00001", "0.00002"},
		{"1.23456789012345e100", "1.23456789012346e100"},
	}
	for _, p := range pairs {
		a, _, _ := ParseFloat([]byte(p[0]), 64, opts)
		b, _, _ := ParseFloat([]byte(p[1]), 64, opts)
		if !(a <= b) {
			t.Errorf("monotonicity violated: parse(%q)=%v > parse(%q)=%v", p[0], a, p[1], b)
		}
	}
}

// TestFastSlowAgree forces a long-digit-string input through the scanner's
// truncation path (too_many_digits) and checks that it agrees with the
// value produced from the same magnitude expressed with fewer digits.
func TestFastSlowAgree(t *testing.T) {
	opts := DefaultOptions()
	short := "22.22222222222222"
	long := "2." + strings.Repeat("2", 4000) + "e+1"
	a, _, err1 := ParseFloat([]byte(short), 64, opts)
	b, _, err2 := ParseFloat([]byte(long), 64, opts)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if a != b {
		t.Errorf("ParseFloat(%q)=%v != ParseFloat(long repeating digits)=%v", short, a, b)
	}
}

func TestParseFloatRandomRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	bits := []uint64{
		0x3FF0000000000000, // 1.0
		0x4000000000000000, // 2.0
		0x3FD5555555555555, // 1/3-ish
		0x7FEFFFFFFFFFFFFF, // max finite
		0x0010000000000000, // smallest normal
		0x000FFFFFFFFFFFFF, // largest subnormal
		0x0000000000000001, // smallest subnormal
	}
	for _, b := range bits {
		want := math.Float64frombits(b)
		s := strconv.FormatFloat(want, 'g', 17, 64)
		got, _, err := ParseFloat([]byte(s), 64, opts)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error: %v", s, err)
		}
		if got != want {
			t.Errorf("round-trip failed: %s -> %v, want %v (bits %#x)", s, got, want, b)
		}
	}
}
