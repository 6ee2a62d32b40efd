// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/templexxx/cyclic"
)

const (
	optionNameDegree   = "degree"
	optionNameDistance = "distance"
)

var errIllegalDegree = errors.New("illegal degree: <= 0 or >= length")

func (c *command) initGeneratorsCmd() {
	cmd := &cobra.Command{
		Use:   "generators",
		Short: "List generator polynomials of cyclic codes with the given length",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			n := c.config.GetInt(optionNameLength)
			deg, _ := cmd.Flags().GetInt(optionNameDegree)
			if deg <= 0 || deg >= n {
				return errIllegalDegree
			}
			withDist, _ := cmd.Flags().GetBool(optionNameDistance)
			workers, err := c.workers()
			if err != nil {
				return err
			}

			candidates := genCandidates(deg)
			bar := c.newProgressBar(cmd, int64(len(candidates)), "searching")
			out := cmd.OutOrStdout()
			found := 0
			for _, g := range candidates {
				bar.add(1)
				if !dividesCyclic(g, n) {
					continue
				}
				found++
				codec := cyclic.MustNew(g, n)
				line := fmt.Sprintf("%-24s%-*s(%d,%d)", g.Expand(), deg+4, g.String(), codec.N, codec.K)
				if withDist {
					rows, err := cyclic.NewAnalyzer(codec, workers).Analyze(make(cyclic.Poly, n))
					if err != nil {
						return err
					}
					r := &cyclic.Report{Rows: rows}
					line += fmt.Sprintf("  d=%d", r.MinDistance())
				}
				fmt.Fprintln(out, line)
			}
			bar.finish()
			c.logger.WithFields(logrus.Fields{
				"n":          n,
				"degree":     deg,
				"candidates": len(candidates),
				"found":      found,
			}).Info("generators listed")
			return nil
		},
	}
	cmd.Flags().Int(optionNameDegree, cyclic.DefaultGenerator.Degree(), "degree of generator polynomials")
	cmd.Flags().Bool(optionNameDistance, true, "compute minimum distance of every code")
	c.root.AddCommand(cmd)
}

// genCandidates returns all polynomials of degree deg with constant term 1.
// Without constant term a polynomial has factor x, which never divides x^n+1.
func genCandidates(deg int) []cyclic.Poly {
	cnt := 1 << uint(deg-1)
	ps := make([]cyclic.Poly, 0, cnt)
	for m := cnt - 1; m >= 0; m-- {
		p := make(cyclic.Poly, deg+1)
		p[0], p[deg] = 1, 1
		for i := 1; i < deg; i++ {
			p[i] = byte(m>>uint(deg-1-i)) & 1
		}
		ps = append(ps, p)
	}
	return ps
}

// dividesCyclic reports whether g divides x^n+1,
// which makes g a generator of a cyclic code of length n.
func dividesCyclic(g cyclic.Poly, n int) bool {
	xn1 := make(cyclic.Poly, n+1)
	xn1[0], xn1[n] = 1, 1
	return cyclic.Mod(xn1, g).IsZero()
}
