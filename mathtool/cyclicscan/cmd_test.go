// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/templexxx/cyclic"
)

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c, err := newCommand(
		withArgs(append(args, "--progress=false", "--verbosity=silent")...),
		withInput(strings.NewReader(in)),
		withOutput(&out),
	)
	if err != nil {
		t.Fatal(err)
	}
	err = c.Execute()
	return out.String(), err
}

func TestScan(t *testing.T) {
	out, err := run(t, "", "scan", "--info", "1 0 1 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, exp := range []string{
		"Codeword: 1011000",
		"Detection rate (%)",
		"1                 7                 7                   100.00",
		"3                 35                28                  80.00",
		"7                 1                 0                   0.00",
	} {
		if !strings.Contains(out, exp) {
			t.Fatalf("output has no %q:\n%s", exp, out)
		}
	}
}

func TestScan_Interactive(t *testing.T) {
	out, err := run(t, "1 0 1\n1 2 0 1\nx\n0 0 0 1\n", "scan")
	if err != nil {
		t.Fatal(err)
	}
	if cnt := strings.Count(out, "Invalid input"); cnt != 3 {
		t.Fatalf("exp 3 invalid inputs, got: %d:\n%s", cnt, out)
	}
	if !strings.Contains(out, "Codeword: 0001011") {
		t.Fatalf("wrong codeword:\n%s", out)
	}
}

func TestScan_EOF(t *testing.T) {
	_, err := run(t, "1 1\n", "scan")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("exp: %v, got: %v", io.ErrUnexpectedEOF, err)
	}
}

func TestScan_Illegal(t *testing.T) {
	if _, err := run(t, "", "scan", "--info", "1 0 1"); !errors.Is(err, cyclic.ErrInvalidLength) {
		t.Fatalf("exp: %v, got: %v", cyclic.ErrInvalidLength, err)
	}
	if _, err := run(t, "", "scan", "--info", "1011", "--generator", "0111"); !errors.Is(err, cyclic.ErrMalformedGenerator) {
		t.Fatalf("exp: %v, got: %v", cyclic.ErrMalformedGenerator, err)
	}
	if _, err := run(t, "", "scan", "--info", "1011", "--workers=-1"); err != errIllegalWorkers {
		t.Fatalf("exp: %v, got: %v", errIllegalWorkers, err)
	}
}

func TestScan_Config(t *testing.T) {
	dir, err := ioutil.TempDir("", "cyclicscan")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	f := filepath.Join(dir, "config.yaml")
	if err = ioutil.WriteFile(f, []byte("generator: \"10011\"\nlength: 15\nworkers: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "scan", "--config", f, "--info", "10000000000")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Codeword: 100000000001001") {
		t.Fatalf("wrong codeword:\n%s", out)
	}
	if strings.Count(out, "\n") < 15+2 {
		t.Fatalf("exp 15 rows:\n%s", out)
	}
}

func TestCount(t *testing.T) {
	out, err := run(t, "", "count", "--length", "7")
	if err != nil {
		t.Fatal(err)
	}
	for w, e := range []string{"7", "21", "35", "35", "21", "7", "1"} {
		exp := "weight: " + string(rune('1'+w)) + ": " + e + "\n"
		if !strings.Contains(out, exp) {
			t.Fatalf("output has no %q:\n%s", exp, out)
		}
	}

	out, err = run(t, "", "count", "--length", "100", "--weight", "50")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "≈") || strings.Count(out, "\n") != 1 {
		t.Fatalf("exp one approximate line:\n%s", out)
	}
}

func TestGenerators(t *testing.T) {
	out, err := run(t, "", "generators", "--length", "7", "--degree", "3")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("exp 2 generators:\n%s", out)
	}
	for i, exp := range []string{"x^3+x^2+1", "x^3+x+1"} {
		if !strings.HasPrefix(lines[i], exp+" ") || !strings.HasSuffix(lines[i], "(7,4)  d=3") {
			t.Fatalf("line %d, exp %s with d=3, got: %s", i, exp, lines[i])
		}
	}

	if _, err = run(t, "", "generators", "--length", "7", "--degree", "7"); err != errIllegalDegree {
		t.Fatalf("exp: %v, got: %v", errIllegalDegree, err)
	}
}

func TestDividesCyclic(t *testing.T) {
	// x^15+1 has 5 irreducible factors: x+1, x^2+x+1, x^4+x+1, x^4+x^3+1, x^4+x^3+x^2+x+1.
	cnt := 0
	for _, g := range genCandidates(4) {
		if dividesCyclic(g, 15) {
			cnt++
		}
	}
	// Only the three quartics have degree 4.
	if cnt != 3 {
		t.Fatalf("exp 3 generators of degree 4, got: %d", cnt)
	}
}
