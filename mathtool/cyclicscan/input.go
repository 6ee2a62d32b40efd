// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/templexxx/cyclic"
)

// readInfo asks for an information vector of k bits until a valid one is given.
func readInfo(r io.Reader, w io.Writer, k int) (cyclic.Poly, error) {
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Enter an information vector of %d bits (e.g. %s): ", k, exampleVector(k))
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}
		info, err := cyclic.ParseVector(sc.Text(), k)
		if err == nil {
			return info, nil
		}
		fmt.Fprintf(w, "Invalid input: %v, try again.\n", err)
	}
}

func exampleVector(k int) string {
	bits := make([]string, k)
	for i := range bits {
		bits[i] = "1"
		if i%2 == 1 {
			bits[i] = "0"
		}
	}
	return strings.Join(bits, " ")
}
