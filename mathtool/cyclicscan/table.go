// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/templexxx/cyclic"
)

const tableWidth = 84

func writeTable(w io.Writer, rows []cyclic.Row) {
	fmt.Fprintf(w, "%-18s%-18s%-20s%-18s\n", "Error weight", "Error vectors", "Detected errors", "Detection rate (%)")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	for _, r := range rows {
		fmt.Fprintf(w, "%-18d%-18d%-20d%-18.2f\n", r.Weight, r.Total, r.Detected, r.Rate)
	}
}
