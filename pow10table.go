// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math/big"

// Exact powers of ten for the Clinger fast path (component C). Every entry
// below is the exactly-representable IEEE value of 10^k; ported from the
// teacher's float64pow10/float32pow10 tables (batof.go).
var float64pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

var float32pow10 = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// Largest mantissa v such that 5^k * v still fits in the target's exact
// integer range (2^53 for double, 2^24 for float), one entry per k in
// [0, maxExponentFastPath]. Used by the rounding-mode-aware fast path (§4.C)
// where only multiplies (never divides) are permitted; the entry for the
// requested exponent bounds the mantissa.
var float64maxMantissaFastPath [23]uint64
var float32maxMantissaFastPath [11]uint64

func init() {
	p5 := big.NewInt(1)
	five := big.NewInt(5)
	lim64 := new(big.Int).Lsh(big.NewInt(1), 53)
	lim32 := new(big.Int).Lsh(big.NewInt(1), 24)
	q := new(big.Int)
	for k := 0; k < len(float64maxMantissaFastPath); k++ {
		if k > 0 {
			p5.Mul(p5, five)
		}
		q.Div(lim64, p5)
		float64maxMantissaFastPath[k] = q.Uint64()
	}
	p5.SetInt64(1)
	for k := 0; k < len(float32maxMantissaFastPath); k++ {
		if k > 0 {
			p5.Mul(p5, five)
		}
		q.Div(lim32, p5)
		float32maxMantissaFastPath[k] = q.Uint64()
	}
}

// pow10Approx is a 128-bit approximation of 10^k, scaled so that its top bit
// (bit 127 of the pair) is set, per spec §4.B. high holds the top 64 bits of
// the significand, low the next 64. The true value of 10^k (k>=0) or
// 1/10^(-k) (k<0) differs from (high:low) by strictly less than 1 ULP of the
// 128-bit representation — see buildPow10Approx.
type pow10Approx struct {
	high, low uint64
}

// pow10ApproxTable covers k in [smallestPowerOfTen, largestPowerOfTen] for
// binary64, which is a superset of binary32's narrower domain; both formats
// index into this single table with an offset.
var pow10ApproxTable [float64smallestPowerOfTen*-1 + float64largestPowerOfTen + 1]pow10Approx

const (
	float64smallestPowerOfTen = -342
	float64largestPowerOfTen  = 308
)

func init() {
	for k := float64smallestPowerOfTen; k <= float64largestPowerOfTen; k++ {
		pow10ApproxTable[k-float64smallestPowerOfTen] = buildPow10Approx(k)
	}
}

// buildPow10Approx computes the 128-bit, top-bit-set approximation of 10^k
// using math/big exact rational arithmetic, rather than transcribing the
// ~650 magic 128-bit constants the reference implementation ships as a
// literal table (see DESIGN.md). It runs once, at package init, and is never
// on the parse hot path: after this, lookupPow10Approx is a plain array
// index.
func buildPow10Approx(k int) pow10Approx {
	num := big.NewInt(1)
	den := big.NewInt(1)
	if k >= 0 {
		num = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	} else {
		den = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-k)), nil)
	}

	// Scale num/den by 2^shift so the integer part of the scaled ratio
	// reaches bit 127 (k >= 0) or bit 126 (k < 0), then divide and round to
	// nearest (ties away from zero). For k > 38 the right shift of num
	// already truncates, so those entries are truncations; for k < 0 the
	// renormalization below shifts the rounded quotient up one bit. Either
	// way the entry is within 1 ULP, and the parser re-derives ambiguous
	// cases via the big-integer comparer.
	bitLen := num.BitLen() - den.BitLen()
	shift := 127 - bitLen
	var scaledNum *big.Int
	if shift >= 0 {
		scaledNum = new(big.Int).Lsh(num, uint(shift))
	} else {
		scaledNum = new(big.Int).Rsh(num, uint(-shift))
	}
	quotient, remainder := new(big.Int).QuoRem(scaledNum, den, new(big.Int))
	doubled := new(big.Int).Lsh(remainder, 1)
	if doubled.CmpAbs(den) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}

	// quotient may have grown to 129 bits from rounding; renormalize.
	for quotient.BitLen() > 128 {
		quotient.Rsh(quotient, 1)
	}
	for quotient.BitLen() < 128 && quotient.Sign() != 0 {
		quotient.Lsh(quotient, 1)
	}

	mask64 := new(big.Int).SetUint64(^uint64(0))
	low := new(big.Int).And(quotient, mask64).Uint64()
	high := new(big.Int).Rsh(quotient, 64).Uint64()
	return pow10Approx{high: high, low: low}
}

// lookupPow10Approx returns the table entry for 10^k and whether k is in
// range; out-of-range k means the Eisel-Lemire core cannot help and the
// caller must fall back to the fast path's own overflow/underflow handling
// or the big-integer comparer.
func lookupPow10Approx(k int) (pow10Approx, bool) {
	if k < float64smallestPowerOfTen || k > float64largestPowerOfTen {
		return pow10Approx{}, false
	}
	return pow10ApproxTable[k-float64smallestPowerOfTen], true
}
