// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cyclic

import (
	"strconv"
	"strings"

	xor "github.com/templexxx/xorsimd"
)

// Poly is a polynomial over GF(2).
// Every byte is one coefficient (0 or 1), the most significant coefficient first,
// e.g. x^3+x+1 is Poly{1, 0, 1, 1}.
type Poly []byte

// Degree returns the degree of p ignoring leading zeros.
// If p is zero, -1 is returned.
func (p Poly) Degree() int {
	for i, c := range p {
		if c != 0 {
			return len(p) - 1 - i
		}
	}
	return -1
}

// Weight returns the number of non-zero coefficients.
func (p Poly) Weight() int {
	w := 0
	for _, c := range p {
		if c != 0 {
			w++
		}
	}
	return w
}

// IsZero reports whether all coefficients are 0.
func (p Poly) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsBinary reports whether every coefficient is 0 or 1.
func (p Poly) IsBinary() bool {
	for _, c := range p {
		if c > 1 {
			return false
		}
	}
	return true
}

// Clone returns a copy of p.
func (p Poly) Clone() Poly {
	c := make(Poly, len(p))
	copy(c, p)
	return c
}

// Equal reports whether p and q have the same length and coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String returns the coefficients as a bit string, e.g. "1011".
func (p Poly) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, c := range p {
		sb.WriteByte('0' + c)
	}
	return sb.String()
}

// Expand returns the algebraic form of p, e.g. "x^3+x+1".
func (p Poly) Expand() string {
	var terms []string
	for i, c := range p {
		if c == 0 {
			continue
		}
		switch e := len(p) - 1 - i; e {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(e))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, "+")
}

// Mod returns the remainder of dividend divided by divisor in GF(2).
//
// The remainder is left-padded with zeros to len(dividend),
// so it lines up bit by bit with the dividend.
// If the dividend is shorter than the divisor, the remainder is the dividend itself.
//
// The divisor's leading coefficient must be 1, otherwise Mod will panic.
func Mod(dividend, divisor Poly) Poly {
	if len(divisor) == 0 || divisor[0] != 1 {
		panic(ErrMalformedPoly)
	}

	r := dividend.Clone()
	reduce(r, divisor)
	return r
}

// reduce replaces r by r mod divisor in place.
func reduce(r, divisor Poly) {
	dl := len(divisor)
	for i := 0; i+dl <= len(r); i++ {
		if r[i] == 0 {
			continue
		}
		// Align divisor under the leading term and subtract (XOR) it.
		for j, c := range divisor {
			r[i+j] ^= c
		}
	}
}

// Xor writes a XOR b into dst.
// All three must have the same length.
func Xor(dst, a, b Poly) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(ErrMismatchPolySize)
	}
	if len(dst) == 0 {
		return
	}
	xor.Encode(dst, [][]byte{a, b})
}
