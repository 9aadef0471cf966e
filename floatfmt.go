// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// floatInfo is the compile-time-resolvable trait record spec.md §3 calls
// BinaryFormat<T>: every format-specific constant needed by the fast path,
// the Eisel-Lemire core, and the assembler, gathered so that no per-call
// type switch occurs once the caller has picked float32info or float64info.
type floatInfo struct {
	mantbits uint // explicit (stored) mantissa bits, excluding the hidden bit
	expbits  uint // exponent field width
	bias     int  // exponent bias: biased_exponent = real_exponent + bias, for normals

	minExponentFastPath int // smallest decimal exponent usable by the conventional fast path
	maxExponentFastPath int // largest decimal exponent usable by the conventional fast path

	smallestPowerOfTen int // lower bound of the 128-bit approximation table's domain
	largestPowerOfTen  int // upper bound of the 128-bit approximation table's domain

	maxDigits int // limb-array capacity needed for the big-integer comparer
}

var float64info = floatInfo{
	mantbits:            52,
	expbits:             11,
	bias:                -1023,
	minExponentFastPath: -22,
	maxExponentFastPath: 22,
	smallestPowerOfTen:  -342,
	largestPowerOfTen:   308,
	maxDigits:           769,
}

var float32info = floatInfo{
	mantbits:            23,
	expbits:             8,
	bias:                -127,
	minExponentFastPath: -10,
	maxExponentFastPath: 10,
	smallestPowerOfTen:  -64,
	largestPowerOfTen:   38,
	maxDigits:           114,
}

// infinitePower is the biased exponent value reserved for Inf/NaN.
func (f *floatInfo) infinitePower() int { return 1<<f.expbits - 1 }

// minimumExponent is the most negative *unbiased* exponent a normal value
// can carry; one less than this and the value is subnormal or zero.
func (f *floatInfo) minimumExponent() int { return -(1 << (f.expbits - 1)) + 2 }

// maxMantissaFastPath is the Clinger bound: the largest mantissa exactly
// representable in the target's precision (2^(mantbits+1), i.e. 2^53 for
// binary64, 2^24 for binary32).
func (f *floatInfo) maxMantissaFastPath() uint64 {
	return uint64(2) << f.mantbits
}
