// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "testing"

func TestTripletToCSRAccumulates(t *testing.T) {
	tr := NewTriplet(2, 2, 4)
	tr.Put(0, 0, 1.0)
	tr.Put(0, 0, 2.0) // repeated entry must accumulate
	tr.Put(1, 1, 5.0)
	tr.Put(0, 1, 3.0)
	csr := tr.ToCSR()
	d := csr.Dense()
	if d[0][0] != 3.0 || d[0][1] != 3.0 || d[1][1] != 5.0 || d[1][0] != 0 {
		t.Fatalf("unexpected dense matrix: %v", d)
	}
}

func TestCSRMulVec(t *testing.T) {
	tr := NewTriplet(2, 2, 4)
	tr.Put(0, 0, 2.0)
	tr.Put(0, 1, 1.0)
	tr.Put(1, 0, 3.0)
	tr.Put(1, 1, 4.0)
	csr := tr.ToCSR()
	y := make([]float64, 2)
	x := []float64{1.0, 1.0}
	csr.MulVec(y, 1.0, x, 0.0, false)
	if y[0] != 3.0 || y[1] != 7.0 {
		t.Fatalf("MulVec = %v, want [3 7]", y)
	}
}

func TestSolveDiagonal(t *testing.T) {
	tr := NewTriplet(2, 2, 2)
	tr.Put(0, 0, 2.0)
	tr.Put(1, 1, 4.0)
	csr := tr.ToCSR()
	x := Solve(csr, []float64{4.0, 8.0})
	if x[0] != 2.0 || x[1] != 2.0 {
		t.Fatalf("Solve = %v, want [2 2]", x)
	}
}
