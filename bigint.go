// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"bytes"
	"math/bits"
)

// bigIntLimbs is sized to hold the largest decimal literal float64info.maxDigits
// (769 significant digits, about 2,555 bits) allows, converted to base-2^64
// limbs, with headroom for the left-shifts the comparison performs (up to
// about 1,075 more bits for the smallest binary64 subnormals). No allocation
// is ever required: spec.md §4.E / §5 require the comparer to be entirely
// stack-resident.
const bigIntLimbs = 64

// bigInt is the fixed-capacity, little-endian limb array of spec.md §4.E /
// §9: limb 0 is least significant, len tracks the highest nonzero limb, and
// every operation is in place.
type bigInt struct {
	limb [bigIntLimbs]uint64
	len  int
}

func (b *bigInt) trim() {
	for b.len > 0 && b.limb[b.len-1] == 0 {
		b.len--
	}
}

// setUint64 resets b to hold the single value v.
func (b *bigInt) setUint64(v uint64) {
	b.limb[0] = v
	b.len = 1
	b.trim()
	if b.len == 0 {
		b.len = 1 // keep at least one limb so later code can read limb[0]
	}
}

// mulSmall multiplies b in place by the small constant m (m < 2^64) and adds
// addend into limb 0 of the product, e.g. for streaming decimal digits via
// b = b*10 + digit.
func (b *bigInt) mulSmall(m uint64, addend uint64) {
	var carry uint64 = addend
	for i := 0; i < b.len; i++ {
		hi, lo := bits.Mul64(b.limb[i], m)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		b.limb[i] = lo
		carry = hi
	}
	if carry != 0 {
		b.limb[b.len] = carry
		b.len++
	}
}

// pow5Table holds 5^1..5^27, the largest powers of five that fit in a single
// 64-bit limb (5^27 < 2^64 <= 5^28); spec.md §9 calls for exactly this table
// so multiply-by-power-of-five can proceed one limb-sized bite at a time
// (2^k * 5^k == 10^k, which is how the comparer turns a decimal exponent
// into a pure binary shift plus a handful of limb multiplies).
var pow5Table = func() [28]uint64 {
	var t [28]uint64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 5
	}
	return t
}()

// mulPow5 multiplies b in place by 5^n.
func (b *bigInt) mulPow5(n int) {
	for n > 0 {
		chunk := n
		if chunk > 27 {
			chunk = 27
		}
		b.mulSmall(pow5Table[chunk], 0)
		n -= chunk
	}
}

// shiftLeft shifts b in place left by n bits.
func (b *bigInt) shiftLeft(n int) {
	if n == 0 || b.len == 0 {
		return
	}
	limbShift := n / 64
	bitShift := uint(n % 64)
	if limbShift > 0 {
		for i := b.len - 1; i >= 0; i-- {
			b.limb[i+limbShift] = b.limb[i]
		}
		for i := 0; i < limbShift; i++ {
			b.limb[i] = 0
		}
		b.len += limbShift
	}
	if bitShift != 0 {
		var carry uint64
		for i := limbShift; i < b.len; i++ {
			v := b.limb[i]
			b.limb[i] = v<<bitShift | carry
			carry = v >> (64 - bitShift)
		}
		if carry != 0 {
			b.limb[b.len] = carry
			b.len++
		}
	}
}

// cmp returns -1, 0, +1 as b <, ==, > other.
func (b *bigInt) cmp(other *bigInt) int {
	if b.len != other.len {
		if b.len < other.len {
			return -1
		}
		return 1
	}
	for i := b.len - 1; i >= 0; i-- {
		if b.limb[i] != other.limb[i] {
			if b.limb[i] < other.limb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// fromDecimalDigitSpans builds the exact integer value of the concatenation
// of spans (each ASCII '0'-'9', no sign, no point) into b, without ever
// joining them into one allocated slice: spans is typically
// {integerDigits, fractionDigits}, two separate views into the original
// input straddling the decimal point. Digit strings longer than the
// comparer's capacity would imply more precision than any binary64 boundary
// test needs, so the caller (digitComp) only ever feeds spans totaling at
// most floatInfo.maxDigits bytes.
func (b *bigInt) fromDecimalDigitSpans(spans ...[]byte) {
	b.limb[0] = 0
	b.len = 1
	const chunk = 19 // 10^19 still fits in a uint64, 10^20 does not
	for _, digits := range spans {
		i := 0
		for i < len(digits) {
			end := i + chunk
			if end > len(digits) {
				end = len(digits)
			}
			var v uint64
			for _, c := range digits[i:end] {
				v = v*10 + uint64(c-'0')
			}
			width := end - i
			var mult uint64 = 1
			for j := 0; j < width; j++ {
				mult *= 10
			}
			b.mulSmall(mult, v)
			i = end
		}
	}
	b.trim()
	if b.len == 0 {
		b.len = 1
	}
}

// digitComp implements spec.md §4.E: decide exactly how the input's true
// decimal value compares to am (an inconclusive Eisel-Lemire candidate,
// always a real seed even when ambiguous: computeFloat never hands back a
// mantissa/exponent pair unrelated to the input's actual magnitude) and
// round accordingly for the requested rounding mode.
//
// integerDigits/fractionDigits are the scanner's own spans (no sign, no
// point, leading zeros already stripped from integerDigits) and
// pointExponent is the power of ten such that the concatenated digit string
// times 10^pointExponent equals the input's exact value.
func digitComp(info *floatInfo, integerDigits, fractionDigits []byte, pointExponent int, am adjustedMantissa, negative bool, rm RoundingMode) adjustedMantissa {
	if len(integerDigits) == 0 {
		fractionDigits = trimLeadingZeros(fractionDigits) // not significant
	}
	digitCount := len(integerDigits) + len(fractionDigits)
	tailNonzero := false
	if digitCount > info.maxDigits {
		// Truncating the tail (and raising pointExponent to match) cannot
		// change which side of a boundary the value falls on: halfway points
		// are never exact at more than maxDigits significant decimal digits,
		// so the kept prefix decides, except when it lands exactly on the
		// boundary, where a nonzero dropped tail (tailNonzero) means above.
		overflow := digitCount - info.maxDigits
		pointExponent += overflow
		if overflow < len(fractionDigits) {
			tailNonzero = len(bytes.TrimLeft(fractionDigits[len(fractionDigits)-overflow:], "0")) != 0
			fractionDigits = fractionDigits[:len(fractionDigits)-overflow]
		} else {
			overflow -= len(fractionDigits)
			tailNonzero = len(bytes.TrimLeft(fractionDigits, "0")) != 0 ||
				len(bytes.TrimLeft(integerDigits[len(integerDigits)-overflow:], "0")) != 0
			fractionDigits = nil
			integerDigits = integerDigits[:len(integerDigits)-overflow]
		}
	}

	// Recover realExp, am's unbiased exponent, from the biased field,
	// accounting for the implicit hidden bit convention.
	bias := -info.bias
	realExp := am.power2 - bias
	mantissa := am.mantissa
	if am.power2 > 0 {
		mantissa |= uint64(1) << info.mantbits // restore implicit hidden bit
	} else {
		realExp = 1 - bias // subnormal: hidden bit is absent, exponent pinned
	}

	var lhs, rhs bigInt
	lhs.fromDecimalDigitSpans(integerDigits, fractionDigits)

	if rm == ToNearestEven {
		// rhs is the halfway boundary (2*mantissa+1) * 2^(realExp-1-mantbits),
		// scaled to share lhs's implicit decimal scaling.
		rhs.setUint64(2*mantissa + 1)
		scaleBigInts(&lhs, &rhs, pointExponent, realExp-1-int(info.mantbits))
		c := lhs.cmp(&rhs)
		if c == 0 && tailNonzero {
			c = 1
		}
		switch c {
		case -1:
			return am // below the boundary: am (rounded down) is already correct
		case 1:
			return incrementMantissa(info, am) // above the boundary: round up
		default:
			// Exactly at the boundary: round to even.
			if mantissa&1 == 0 {
				return am
			}
			return incrementMantissa(info, am)
		}
	}

	// Directed modes don't care which candidate is numerically closer, only
	// which side of am (not am's halfway point) the exact value falls on, so
	// compare against am's own value: mantissa * 2^(realExp-mantbits).
	rhs.setUint64(mantissa)
	scaleBigInts(&lhs, &rhs, pointExponent, realExp-int(info.mantbits))

	cmp := lhs.cmp(&rhs)
	if cmp == 0 && tailNonzero {
		cmp = 1
	}
	if cmp == 0 {
		return am
	}
	var floorAM, ceilAM adjustedMantissa
	if cmp > 0 {
		floorAM, ceilAM = am, incrementMantissa(info, am)
	} else {
		floorAM, ceilAM = decrementMantissa(info, am), am
	}
	roundUp := false
	switch rm {
	case TowardPositive:
		roundUp = !negative
	case TowardNegative:
		roundUp = negative
	}
	if roundUp {
		return ceilAM
	}
	return floorAM
}

// scaleBigInts brings lhs (the exact decimal value's digits, implicitly
// scaled by 10^tenExp) and rhs (an integer boundary, implicitly scaled by
// 2^twoExp) to a common integer base by multiplying whichever side is
// missing a factor of two/five/ten (10^n = 5^n * 2^n, so a power of ten is a
// power of five plus a left shift).
func scaleBigInts(lhs, rhs *bigInt, tenExp, twoExp int) {
	if tenExp >= 0 {
		lhs.mulPow5(tenExp)
		lhs.shiftLeft(tenExp)
	} else {
		rhs.mulPow5(-tenExp)
		rhs.shiftLeft(-tenExp)
	}
	if twoExp >= 0 {
		rhs.shiftLeft(twoExp)
	} else {
		lhs.shiftLeft(-twoExp)
	}
}

// incrementMantissa returns the adjustedMantissa one ULP above am, handling
// the carry into the exponent (and into the overflow/Inf encoding).
func incrementMantissa(info *floatInfo, am adjustedMantissa) adjustedMantissa {
	am.mantissa++
	limit := uint64(1) << (info.mantbits + 1)
	if am.power2 == 0 {
		// Subnormal: a carry into bit mantbits is the hidden bit of the
		// smallest normal.
		if am.mantissa == limit>>1 {
			am.power2 = 1
		}
		return am
	}
	if am.mantissa == limit {
		am.mantissa >>= 1
		am.power2++
		if am.power2 >= info.infinitePower() {
			am.mantissa = 0
			am.power2 = info.infinitePower()
		}
	}
	return am
}

// decrementMantissa returns the adjustedMantissa one ULP below am, the
// mirror image of incrementMantissa: borrowing out of the low end of a
// normal exponent's range drops to the halved mantissa one exponent down.
func decrementMantissa(info *floatInfo, am adjustedMantissa) adjustedMantissa {
	limit := uint64(1) << (info.mantbits + 1)
	if am.power2 > 0 && am.mantissa == limit>>1 {
		am.power2--
		am.mantissa = limit - 1
		return am
	}
	am.mantissa--
	return am
}
