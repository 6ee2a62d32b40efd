// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cyclic

import (
	"errors"

	"gonum.org/v1/gonum/stat/combin"
)

var ErrIllegalWeight = errors.New("illegal error weight: < 0 or > codeword length")

// PatternNum returns the number of error vectors of length n with weight w,
// which is the binomial coefficient C(n, w).
//
// n and w must be non-negative with n >= w, otherwise PatternNum will panic.
// No check is made for overflow, see ApproxPatternNum for large n.
func PatternNum(n, w int) int {
	checkWeight(n, w)
	return combin.Binomial(n, w)
}

// ApproxPatternNum returns C(n, w) computed by the Gamma function.
// It's useful when C(n, w) may overflow int.
//
// n and w must be non-negative with n >= w, otherwise ApproxPatternNum will panic.
func ApproxPatternNum(n, w int) float64 {
	checkWeight(n, w)
	return combin.GeneralizedBinomial(float64(n), float64(w))
}

func checkWeight(n, w int) {
	if w < 0 || n < w {
		panic(ErrIllegalWeight)
	}
}
