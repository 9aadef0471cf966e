// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// fastPath64 is spec.md §4.C's Clinger fast path for binary64: when the
// mantissa and exponent both fit the exact-arithmetic window, a single cast
// plus a single exact multiply or divide is correctly rounded.
func fastPath64(pn *parsedNumber, rm RoundingMode) (float64, bool) {
	if pn.tooManyDigits {
		return 0, false
	}
	return fastPathGeneric(pn, rm, float64info.minExponentFastPath, float64info.maxExponentFastPath,
		float64info.maxMantissaFastPath(),
		func(m uint64) float64 { return float64(m) },
		func(v float64, e int) float64 { return v * float64pow10[e] },
		func(v float64, e int) float64 { return v / float64pow10[e] },
		func(e int) uint64 { return float64maxMantissaFastPath[e] },
	)
}

// fastPath32 is the binary32 analogue of fastPath64.
func fastPath32(pn *parsedNumber, rm RoundingMode) (float32, bool) {
	if pn.tooManyDigits {
		return 0, false
	}
	return fastPathGeneric(pn, rm, float32info.minExponentFastPath, float32info.maxExponentFastPath,
		float32info.maxMantissaFastPath(),
		func(m uint64) float32 { return float32(m) },
		func(v float32, e int) float32 { return v * float32pow10[e] },
		func(v float32, e int) float32 { return v / float32pow10[e] },
		func(e int) uint64 { return float32maxMantissaFastPath[e] },
	)
}

// fastPathGeneric holds the logic shared by fastPath64/fastPath32, varying
// only in the concrete float type and its tables, supplied as closures.
//
// Under round-to-nearest (the common case), the conventional Clinger fast
// path applies: one exact cast, one exact multiply (exponent >= 0) or divide
// (exponent < 0). Under a directed rounding mode, division is unsafe (it can
// round the wrong way relative to the caller's requested direction), so only
// the modified, multiply-only, nonnegative-exponent path (spec.md §4.C) is
// used, gated on the per-exponent mantissa bound rather than the flat one.
func fastPathGeneric[T float32 | float64](
	pn *parsedNumber,
	rm RoundingMode,
	minExp, maxExp int,
	maxMantissa uint64,
	cast func(uint64) T,
	mul func(T, int) T,
	div func(T, int) T,
	maxMantissaForExp func(int) uint64,
) (T, bool) {
	if rm == ToNearestEven {
		if minExp <= pn.exponent && pn.exponent <= maxExp && pn.mantissa <= maxMantissa {
			v := cast(pn.mantissa)
			if pn.exponent < 0 {
				v = div(v, -pn.exponent)
			} else {
				v = mul(v, pn.exponent)
			}
			if pn.negative {
				v = -v
			}
			return v, true
		}
		return cast(0), false
	}

	if pn.exponent >= 0 && pn.exponent <= maxExp && pn.mantissa <= maxMantissaForExp(pn.exponent) {
		v := cast(pn.mantissa)
		v = mul(v, pn.exponent)
		if pn.negative {
			v = -v
		}
		return v, true
	}
	return cast(0), false
}
