// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math"

const fnParseFloat = "ParseFloat"

// ParseFloat is spec.md §4.G's driver and §6's from_chars: it sequences the
// scanner (component A) into the fast path (C) or, failing that, the
// Eisel-Lemire core (D) with the big-integer comparer (E) as its
// disambiguator, then the assembler (F).
//
// bitSize is 32 or 64 and selects binary32 or binary64 target precision;
// the result is always returned widened to float64 (narrowing to float32
// when bitSize is 32 never changes the value, mirroring strconv.ParseFloat).
// consumed is the from_chars consumed_pointer, as an offset into s: one past
// the last byte of the recognized literal on success or ErrRange (bytes that
// do not extend the literal, such as an 'e' with no exponent digits after it,
// are not consumed), or the offset where parsing started (0, or past skipped
// leading whitespace) on ErrSyntax.
func ParseFloat(s []byte, bitSize int, opts Options) (value float64, consumed int, err error) {
	if bitSize != 32 && bitSize != 64 {
		return 0, 0, bitSizeError(fnParseFloat, string(s), bitSize)
	}
	info := &float64info
	if bitSize == 32 {
		info = &float32info
	}

	i := 0
	if opts.Format.has(FormatSkipWhitespace) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
	}
	if i >= len(s) {
		return 0, i, syntaxError(fnParseFloat, string(s))
	}

	pn := scan(s[i:], opts)
	if pn.isInfNaN {
		consumed = i + pn.lastMatch
		switch pn.infNaNVal {
		case specialInf:
			if pn.negative {
				return math.Inf(-1), consumed, nil
			}
			return math.Inf(1), consumed, nil
		default: // specialNaN
			return math.NaN(), consumed, nil
		}
	}
	if pn.err != errNone {
		return 0, i, syntaxError(fnParseFloat, string(s))
	}

	if bitSize == 32 {
		if f, ok := fastPath32(&pn, opts.RoundingMode); ok {
			return float64(f), i + pn.lastMatch, nil
		}
	} else {
		if f, ok := fastPath64(&pn, opts.RoundingMode); ok {
			return f, i + pn.lastMatch, nil
		}
	}

	am, ambiguous := computeFloat(info, pn.exponent, pn.mantissa, pn.negative, opts.RoundingMode)
	if pn.tooManyDigits {
		// spec.md §4.D: a truncated mantissa is only safe to trust if
		// nudging it to its upper bound (mantissa+1) lands on the same
		// adjusted result; otherwise the truncation itself is ambiguous and
		// only the exact digit string (via the big-integer comparer) can
		// resolve it.
		am2, _ := computeFloat(info, pn.exponent, pn.mantissa+1, pn.negative, opts.RoundingMode)
		if am2 != am {
			ambiguous = true
		}
	}
	if ambiguous {
		am = digitComp(info, pn.integerDigits, pn.fractionDigits, pn.fullExponent, am, pn.negative, opts.RoundingMode)
	}

	value = assemble(info, pn.negative, am)
	consumed = i + pn.lastMatch
	if am.power2 >= info.infinitePower() {
		return value, consumed, rangeError(fnParseFloat, string(s))
	}
	return value, consumed, nil
}

// assemble dispatches to assemble64/assemble32 by target precision, always
// returning the widened float64 ParseFloat's signature promises.
func assemble(info *floatInfo, negative bool, am adjustedMantissa) float64 {
	if info == &float32info {
		return float64(assemble32(negative, am))
	}
	return assemble64(negative, am)
}

// isSpace matches the ASCII whitespace set fast_float's skip_white_space
// recognizes: space and the C0 control characters traditionally classified
// as whitespace by isspace() in the C locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
