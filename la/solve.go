// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Solve solves the dense linear system A*x = b, where A is the active-active stiffness
// block (Kaa) and b the corresponding right-hand side. Grounded as the single-process
// substitution for original_source/feapack/solver/linearAlgebra.py's MKL/PARDISO-backed
// spsolve: this engine targets one process, so a dense gonum solve replaces the sparse
// direct factorization (see DESIGN.md's open-decision note).
func Solve(a *CSR, b []float64) []float64 {
	if a.Rows != a.Cols {
		chk.Panic("la: Solve requires a square matrix, got %d×%d", a.Rows, a.Cols)
	}
	n := a.Rows
	dense := mat.NewDense(n, n, nil)
	for r := 0; r < n; r++ {
		for k := a.RowPtr[r]; k < a.RowPtr[r+1]; k++ {
			dense.Set(r, a.ColIdx[k], a.Values[k])
		}
	}
	rhs := mat.NewVecDense(n, b)
	var x mat.VecDense
	if err := x.SolveVec(dense, rhs); err != nil {
		chk.Panic("la: Solve failed: %v", err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out
}
