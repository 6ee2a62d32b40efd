// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cyclic

import "gonum.org/v1/gonum/stat/combin"

// ErrorVectors returns all error vectors of length n with exactly w ones.
//
// Vectors are ordered by their sets of one-positions in lexicographic order,
// e.g. n=3, w=2: 110, 101, 011.
// w = 0 returns the single zero vector.
//
// n and w must be non-negative with n >= w, otherwise ErrorVectors will panic.
func ErrorVectors(n, w int) []Poly {
	ps := newPatterns(n, w)
	vects := make([]Poly, 0, PatternNum(n, w))
	for ps.next() {
		vects = append(vects, ps.vect.Clone())
	}
	return vects
}

// patterns walks through error vectors of one weight.
// vect is reused between calls of next.
type patterns struct {
	gen  *combin.CombinationGenerator
	pos  []int
	vect Poly
}

func newPatterns(n, w int) *patterns {
	checkWeight(n, w)
	return &patterns{
		gen:  combin.NewCombinationGenerator(n, w),
		pos:  make([]int, w),
		vect: make(Poly, n),
	}
}

func (p *patterns) next() bool {
	if !p.gen.Next() {
		return false
	}
	for _, i := range p.pos {
		p.vect[i] = 0
	}
	p.pos = p.gen.Combination(p.pos)
	for _, i := range p.pos {
		p.vect[i] = 1
	}
	return true
}

// setPositions moves the ones of vect from prev to pos.
func setPositions(vect Poly, prev, pos []int) {
	for _, i := range prev {
		vect[i] = 0
	}
	for _, i := range pos {
		vect[i] = 1
	}
}
