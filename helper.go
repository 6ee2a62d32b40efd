// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cyclic

import "github.com/templexxx/cpu"

// getBatchSize returns how many error vectors of weight w
// are handed to one worker at a time.
//
// A batch of one-positions fits half of L1 Data Cache,
// it won't pollute too much for the next batch.
func getBatchSize(w int) int {
	l1d := cpu.X86.Cache.L1D
	if l1d <= 0 { // Cannot detect cache size(-1) or CPU is not X86(0).
		l1d = 32 * 1024
	}
	if w <= 0 {
		w = 1
	}
	n := l1d / 2 / (w * 8)
	if n < 1 {
		return 1
	}
	return n
}

// CPU features which make XOR faster.
const (
	featAVX512 = "avx512"
	featAVX2   = "avx2"
	featBase   = "base" // No supported features, using basic way.
)

// CPUFeature returns the best SIMD feature the CPU has for XOR.
func CPUFeature() string {
	if hasAVX512() {
		return featAVX512
	} else if cpu.X86.HasAVX2 {
		return featAVX2
	}
	return featBase
}

func hasAVX512() (ok bool) {
	return cpu.X86.HasAVX512VL &&
		cpu.X86.HasAVX512BW &&
		cpu.X86.HasAVX512F &&
		cpu.X86.HasAVX512DQ
}
