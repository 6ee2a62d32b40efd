// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cyclic

import (
	"errors"
	"testing"
)

func TestParseVector(t *testing.T) {
	type tc struct {
		s   string
		k   int
		exp Poly
		err error
	}
	cases := []tc{
		{"1 0 1 1", 4, Poly{1, 0, 1, 1}, nil},
		{"  0 0\t0 1\n", 4, Poly{0, 0, 0, 1}, nil},
		{"1,0,1,1", 4, Poly{1, 0, 1, 1}, nil},
		{"1011", 4, Poly{1, 0, 1, 1}, nil},
		{"10011", -1, Poly{1, 0, 0, 1, 1}, nil},
		{"1 0 1", 4, nil, ErrInvalidLength},
		{"1 0 1 1 0", 4, nil, ErrInvalidLength},
		{"", 4, nil, ErrInvalidLength},
		{"", -1, nil, ErrInvalidLength},
		{"1 0 2 1", 4, nil, ErrInvalidBit},
		{"1 a 1 1", 4, nil, ErrInvalidBit},
		{"10a1", 4, nil, ErrInvalidBit},
		{"1 -1 1 1", 4, nil, ErrInvalidBit},
	}
	for i, c := range cases {
		got, err := ParseVector(c.s, c.k)
		if !errors.Is(err, c.err) {
			t.Fatalf("case: %d, %q, exp err: %v, got: %v", i, c.s, c.err, err)
		}
		if err == nil && !got.Equal(c.exp) {
			t.Fatalf("case: %d, %q, exp: %s, got: %s", i, c.s, c.exp, got)
		}
	}
}
