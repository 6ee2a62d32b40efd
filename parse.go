// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cyclic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidLength = errors.New("wrong number of bits")

// ParseVector parses a bit vector like "1 0 1 1", "1,0,1,1" or "1011".
//
// k is the expected number of bits, k < 0 accepts any non-zero number.
func ParseVector(s string, k int) (Poly, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	// Packed form: a single token is split into digits.
	if len(tokens) == 1 && len(tokens[0]) > 1 {
		tok := tokens[0]
		tokens = make([]string, len(tok))
		for i := range tok {
			tokens[i] = tok[i : i+1]
		}
	}

	p := make(Poly, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidBit, tok)
		}
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidBit, v)
		}
		p[i] = byte(v)
	}

	if k < 0 && len(p) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrInvalidLength)
	}
	if k >= 0 && len(p) != k {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidLength, len(p), k)
	}
	return p, nil
}
