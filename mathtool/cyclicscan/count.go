// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templexxx/cyclic"
)

const optionNameWeight = "weight"

// Beyond it C(n, w) may overflow int64.
const maxExactLength = 62

func (c *command) initCountCmd() {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of error vectors of every weight",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			n := c.config.GetInt(optionNameLength)
			if n <= 0 {
				return fmt.Errorf("length %d: %w", n, cyclic.ErrIllegalLength)
			}
			weight, _ := cmd.Flags().GetInt(optionNameWeight)
			if weight > n {
				return fmt.Errorf("weight %d: %w", weight, cyclic.ErrIllegalWeight)
			}

			from, to := 1, n
			if weight > 0 {
				from, to = weight, weight
			}
			out := cmd.OutOrStdout()
			for w := from; w <= to; w++ {
				if n <= maxExactLength {
					fmt.Fprintf(out, "n: %d, weight: %d: %d\n", n, w, cyclic.PatternNum(n, w))
				} else {
					fmt.Fprintf(out, "n: %d, weight: %d: ≈ %.f\n", n, w, cyclic.ApproxPatternNum(n, w))
				}
			}
			return nil
		},
	}
	cmd.Flags().Int(optionNameWeight, 0, "only print this weight; all weights if 0")
	c.root.AddCommand(cmd)
}
