// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/templexxx/cyclic"
)

const optionNameInfo = "info"

func (c *command) initScanCmd() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Encode an information vector and count detected errors of every weight",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) > 0 {
				return cmd.Help()
			}

			codec, err := c.codec()
			if err != nil {
				return err
			}
			workers, err := c.workers()
			if err != nil {
				return err
			}
			c.logger.WithFields(logrus.Fields{
				"generator": codec.Gen.Expand(),
				"n":         codec.N,
				"k":         codec.K,
				"workers":   workers,
				"cpu":       cyclic.CPUFeature(),
			}).Debug("codec ready")

			var info cyclic.Poly
			if s, _ := cmd.Flags().GetString(optionNameInfo); s != "" {
				info, err = cyclic.ParseVector(s, codec.K)
				if err != nil {
					return fmt.Errorf("info: %w", err)
				}
			} else {
				info, err = readInfo(cmd.InOrStdin(), cmd.OutOrStdout(), codec.K)
				if err != nil {
					return fmt.Errorf("read info: %w", err)
				}
			}

			codeword, err := codec.Encode(info)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Codeword: %s\n", codeword)

			bar := c.newProgressBar(cmd, sweepSize(codec.N), "scanning")
			a := cyclic.NewAnalyzer(codec, workers)
			report := &cyclic.Report{Info: info, Codeword: codeword}
			for w := 1; w <= codec.N; w++ {
				row, err := a.Weight(codeword, w)
				if err != nil {
					return fmt.Errorf("weight %d: %w", w, err)
				}
				report.Rows = append(report.Rows, row)
				bar.add(row.Total)
				c.logger.WithFields(logrus.Fields{
					"weight":   row.Weight,
					"total":    row.Total,
					"detected": row.Detected,
				}).Debug("weight scanned")
			}
			bar.finish()

			fmt.Fprintln(out)
			writeTable(out, report.Rows)
			c.logger.WithFields(logrus.Fields{
				"codeword":     codeword.String(),
				"min_distance": report.MinDistance(),
			}).Info("scan done")
			return nil
		},
	}
	cmd.Flags().String(optionNameInfo, "", `information vector, e.g. "1 0 1 1"; asked for interactively if empty`)
	c.root.AddCommand(cmd)
}

// sweepSize returns the number of all error vectors with weight in [1, n],
// or -1 if it doesn't fit int64.
func sweepSize(n int) int64 {
	if n >= 63 {
		return -1
	}
	return 1<<uint(n) - 1
}
