// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "bytes"

// ParseBool is peripheral to the core (spec.md §1) but carried, like
// ParseInt/ParseUint, as a same-shaped sibling. It accepts 1, t, T, TRUE,
// true, True, 0, f, F, FALSE, false, False; any other value is ErrSyntax.
func ParseBool(ba []byte) (bool, error) {
	switch {
	case bytes.Equal(ba, []byte("1")), bytes.Equal(ba, []byte("t")), bytes.Equal(ba, []byte("T")),
		bytes.Equal(ba, []byte("true")), bytes.Equal(ba, []byte("True")), bytes.Equal(ba, []byte("TRUE")):
		return true, nil
	case bytes.Equal(ba, []byte("0")), bytes.Equal(ba, []byte("f")), bytes.Equal(ba, []byte("F")),
		bytes.Equal(ba, []byte("false")), bytes.Equal(ba, []byte("False")), bytes.Equal(ba, []byte("FALSE")):
		return false, nil
	}
	return false, syntaxError("ParseBool", string(ba))
}

// FormatBool returns "true" or "false" according to the value of b.
func FormatBool(b bool) []byte {
	if b {
		return []byte("true")
	}
	return []byte("false")
}

// AppendBool appends "true" or "false", according to the value of b,
// to dst and returns the extended buffer.
func AppendBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}
