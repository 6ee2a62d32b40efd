// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package cyclic implements binary cyclic codes (systematic codes),
// and measures how well they detect errors.
//
// Polynomial arithmetic is over GF(2), the only operation is XOR.
// Default generator: x^3+x+1, codeword length: 7.
package cyclic

import "errors"

// Codec encodes information vectors into codewords of a cyclic (N, K) code
// and checks received words by their syndrome.
type Codec struct {
	Gen Poly // Gen is the generator polynomial, Gen[0] is 1.
	N   int  // N is the codeword length.
	K   int  // K is the information length, N - degree(Gen).
}

// DefaultGenerator is x^3+x+1.
var DefaultGenerator = Poly{1, 0, 1, 1}

// DefaultLength is the codeword length used with DefaultGenerator.
const DefaultLength = 7

var (
	ErrMalformedGenerator = errors.New("illegal generator: empty, non-binary, leading 0 or degree 0")
	ErrIllegalLength      = errors.New("illegal codeword length: <= generator degree")
	ErrMalformedPoly      = errors.New("malformed divisor: empty or leading coefficient is not 1")
	ErrMismatchPolySize   = errors.New("polynomial sizes mismatched")
	ErrMismatchInfo       = errors.New("information vector size mismatched")
	ErrMismatchReceived   = errors.New("received vector size mismatched")
	ErrInvalidBit         = errors.New("bit is not 0 or 1")
)

// New creates a Codec with generator gen and codeword length n.
func New(gen Poly, n int) (c *Codec, err error) {
	if len(gen) < 2 || gen[0] != 1 || !gen.IsBinary() {
		return nil, ErrMalformedGenerator
	}
	z := len(gen) - 1
	if n <= z {
		return nil, ErrIllegalLength
	}
	return &Codec{Gen: gen.Clone(), N: n, K: n - z}, nil
}

// MustNew is like New but panics if gen or n is illegal.
func MustNew(gen Poly, n int) *Codec {
	c, err := New(gen, n)
	if err != nil {
		panic(err)
	}
	return c
}

// ParityNum returns the number of check bits, the degree of the generator.
func (c *Codec) ParityNum() int {
	return len(c.Gen) - 1
}

// Encode encodes info (K bits) into a codeword (N bits).
//
// info is extended by ParityNum zeros and the remainder of the extended vector
// is XORed into it, which makes the codeword divisible by Gen.
// The information bits stay unchanged in codeword[:K].
func (c *Codec) Encode(info Poly) (codeword Poly, err error) {
	if len(info) != c.K {
		return nil, ErrMismatchInfo
	}
	if !info.IsBinary() {
		return nil, ErrInvalidBit
	}

	extended := make(Poly, c.N)
	copy(extended, info)
	rem := Mod(extended, c.Gen)
	codeword = make(Poly, c.N)
	Xor(codeword, extended, rem)
	return codeword, nil
}

// HasError reports whether received has a non-zero syndrome.
//
// An error pattern which is itself a codeword leaves the syndrome zero
// and can't be detected.
func (c *Codec) HasError(received Poly) bool {
	return !Mod(received, c.Gen).IsZero()
}

// Syndrome returns the ParityNum low-order bits of received mod Gen.
func (c *Codec) Syndrome(received Poly) Poly {
	rem := Mod(received, c.Gen)
	z := c.ParityNum()
	if len(rem) <= z {
		return rem
	}
	return rem[len(rem)-z:]
}

func (c *Codec) checkReceived(received Poly) error {
	if len(received) != c.N {
		return ErrMismatchReceived
	}
	if !received.IsBinary() {
		return ErrInvalidBit
	}
	return nil
}
