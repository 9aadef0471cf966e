// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastfloat implements a correctly-rounded decimal-to-binary
// floating-point parser.
//
// ParseFloat converts a decimal literal to the nearest binary32 or binary64
// value, rounding according to Options.RoundingMode (round-to-nearest-even
// by default):
//
//	f, n, err := fastfloat.ParseFloat([]byte("3.1415926535"), 64, fastfloat.DefaultOptions())
//
// Options.Format selects which literal shapes are accepted — plain
// scientific/fixed notation, or the stricter JSON dialect (FormatJSON) or
// the Fortran dialect (FormatFortran, 'd'/'D' exponent marker and bare
// signed exponents). See Options and Format.
//
// Internally, ParseFloat tries three increasingly thorough strategies in
// sequence: a constant-time fast path for mantissas and exponents that fit
// exact floating-point arithmetic; failing that, the Eisel-Lemire
// algorithm, a 128-bit fixed-point approximation that resolves the large
// majority of remaining inputs in constant time; and, only for the rare
// input where that approximation is itself ambiguous, an exact
// arbitrary-precision comparison against the input's decimal digits. All
// three agree on every input; they differ only in how quickly they reach
// the correctly rounded answer.
//
// ParseInt, ParseUint, Batoi, ParseBool, FormatBool and AppendBool are
// carried alongside ParseFloat as conventional, non-floating-point
// conversions; their semantics are ordinary and not specific to this
// package's float parser.
package fastfloat
