// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math"

// assemble64 is spec.md §4.F: combine sign, mantissa, and biased exponent
// into the binary64 bit pattern and reinterpret it as a float64.
func assemble64(negative bool, am adjustedMantissa) float64 {
	bits := am.mantissa & (uint64(1)<<52 - 1)
	bits |= uint64(am.power2&0x7FF) << 52
	if negative {
		bits |= uint64(1) << 63
	}
	return math.Float64frombits(bits)
}

// assemble32 is the binary32 analogue of assemble64.
func assemble32(negative bool, am adjustedMantissa) float32 {
	bits := uint32(am.mantissa) & (uint32(1)<<23 - 1)
	bits |= uint32(am.power2&0xFF) << 23
	if negative {
		bits |= uint32(1) << 31
	}
	return math.Float32frombits(bits)
}
