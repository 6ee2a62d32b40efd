// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cyclic

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"
)

// Row is the detection result of one error weight.
type Row struct {
	Weight   int     // Weight is the number of flipped bits.
	Total    int     // Total is the number of error vectors with Weight.
	Detected int     // Detected is the number of them with a non-zero syndrome.
	Rate     float64 // Rate is Detected/Total in percent.
}

func newRow(w, total, detected int) Row {
	return Row{
		Weight:   w,
		Total:    total,
		Detected: detected,
		Rate:     float64(detected) / float64(total) * 100,
	}
}

// Report is the result of Run.
type Report struct {
	Info     Poly
	Codeword Poly
	Rows     []Row // Rows has one Row per weight in [1, N], in order.
}

// MinDistance returns the smallest weight which has undetected error vectors.
// An error vector is undetected iff it's a codeword itself,
// so it's the minimum distance of the code.
// 0 is returned if all error vectors are detected.
func (r *Report) MinDistance() int {
	for _, row := range r.Rows {
		if row.Detected < row.Total {
			return row.Weight
		}
	}
	return 0
}

// Analyzer sweeps all error vectors of a codeword and counts the detected ones.
type Analyzer struct {
	Codec *Codec

	// Workers is the number of goroutines checking error vectors.
	// Workers <= 1 means sweeping in the caller's goroutine.
	Workers int
}

// NewAnalyzer creates an Analyzer for c.
func NewAnalyzer(c *Codec, workers int) *Analyzer {
	return &Analyzer{Codec: c, Workers: workers}
}

// Analyze returns detection Rows of codeword for weights in [1, N].
// Weight 0 (no error) is never detected and not included.
func (a *Analyzer) Analyze(codeword Poly) (rows []Row, err error) {
	err = a.Codec.checkReceived(codeword)
	if err != nil {
		return
	}
	rows = make([]Row, 0, a.Codec.N)
	for w := 1; w <= a.Codec.N; w++ {
		rows = append(rows, a.weight(codeword, w))
	}
	return
}

// Weight returns the detection Row of codeword for error weight w.
func (a *Analyzer) Weight(codeword Poly, w int) (row Row, err error) {
	err = a.Codec.checkReceived(codeword)
	if err != nil {
		return
	}
	if w < 0 || w > a.Codec.N {
		return row, ErrIllegalWeight
	}
	return a.weight(codeword, w), nil
}

func (a *Analyzer) weight(codeword Poly, w int) Row {
	n := a.Codec.N
	total := PatternNum(n, w)
	batch := getBatchSize(w)
	var detected int
	if a.Workers > 1 && w > 0 && total > batch {
		detected = a.countParallel(codeword, w, batch)
	} else {
		detected = a.count(codeword, w)
	}
	return newRow(w, total, detected)
}

func (a *Analyzer) count(codeword Poly, w int) (detected int) {
	g := a.Codec.Gen
	received := make(Poly, len(codeword))
	ps := newPatterns(len(codeword), w)
	for ps.next() {
		Xor(received, codeword, ps.vect)
		reduce(received, g)
		if !received.IsZero() {
			detected++
		}
	}
	return
}

// countParallel splits error vectors into batches of one-positions.
// One goroutine generates batches, Workers goroutines count them,
// and the counts of all workers are added up at last.
func (a *Analyzer) countParallel(codeword Poly, w, batch int) (detected int) {
	n := len(codeword)
	g := a.Codec.Gen
	batches := make(chan []int, a.Workers)
	counts := make([]int, a.Workers)

	var eg errgroup.Group
	eg.Go(func() error {
		defer close(batches)
		gen := combin.NewCombinationGenerator(n, w)
		pos := make([]int, w)
		buf := make([]int, 0, batch*w)
		for gen.Next() {
			pos = gen.Combination(pos)
			buf = append(buf, pos...)
			if len(buf) == cap(buf) {
				batches <- buf
				buf = make([]int, 0, batch*w)
			}
		}
		if len(buf) > 0 {
			batches <- buf
		}
		return nil
	})

	for i := 0; i < a.Workers; i++ {
		i := i
		eg.Go(func() error {
			vect := make(Poly, n)
			received := make(Poly, n)
			for b := range batches {
				var prev []int
				cnt := 0
				for off := 0; off < len(b); off += w {
					pos := b[off : off+w]
					setPositions(vect, prev, pos)
					prev = pos
					Xor(received, codeword, vect)
					reduce(received, g)
					if !received.IsZero() {
						cnt++
					}
				}
				setPositions(vect, prev, nil)
				counts[i] += cnt
			}
			return nil
		})
	}
	_ = eg.Wait()

	for _, c := range counts {
		detected += c
	}
	return
}

// Run encodes info with generator gen and codeword length n,
// then analyzes the codeword.
func Run(info, gen Poly, n int) (*Report, error) {
	c, err := New(gen, n)
	if err != nil {
		return nil, err
	}
	codeword, err := c.Encode(info)
	if err != nil {
		return nil, err
	}
	rows, err := NewAnalyzer(c, 1).Analyze(codeword)
	if err != nil {
		return nil, err
	}
	return &Report{Info: info.Clone(), Codeword: codeword, Rows: rows}, nil
}
