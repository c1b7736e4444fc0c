// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// EigenResult holds the k extracted eigenpairs of a generalized symmetric eigenproblem,
// sorted by ascending eigenvalue magnitude, plus their residuals ‖A*phi - lambda*B*phi‖.
type EigenResult struct {
	Values  []float64
	Vectors [][]float64
	Resid   []float64
}

// GenEigen solves the generalized symmetric eigenproblem A*phi = lambda*B*phi (B must be
// symmetric positive definite) for the k eigenpairs of smallest eigenvalue magnitude.
// Grounded as the single-process substitution for
// original_source/feapack/solver/linearAlgebra.py's MKL-backed speigen: B is reduced via
// its Cholesky factor to turn the problem into a standard symmetric eigenproblem, solved
// with gonum/mat.EigenSym (see DESIGN.md's open-decision note).
func GenEigen(a, b *CSR, k int) EigenResult {
	if a.Rows != a.Cols || b.Rows != b.Cols || a.Rows != b.Rows {
		chk.Panic("la: GenEigen requires square matrices of matching size")
	}
	n := a.Rows
	if k < 1 || k > n {
		chk.Panic("la: GenEigen: invalid eigenpair count %d for a %d×%d problem", k, n)
	}

	ad := mat.NewSymDense(n, nil)
	for r := 0; r < n; r++ {
		for c := a.RowPtr[r]; c < a.RowPtr[r+1]; c++ {
			col := a.ColIdx[c]
			if col >= r {
				ad.SetSym(r, col, a.Values[c])
			}
		}
	}
	bd := mat.NewSymDense(n, nil)
	for r := 0; r < n; r++ {
		for c := b.RowPtr[r]; c < b.RowPtr[r+1]; c++ {
			col := b.ColIdx[c]
			if col >= r {
				bd.SetSym(r, col, b.Values[c])
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(bd); !ok {
		chk.Panic("la: GenEigen: the second operand is not symmetric positive definite")
	}
	var u mat.TriDense
	chol.UTo(&u)
	var uInv mat.Dense
	if err := uInv.Inverse(&u); err != nil {
		chk.Panic("la: GenEigen: failed to invert the Cholesky factor: %v", err)
	}

	var aDense mat.Dense
	aDense.CloneFrom(ad)
	var tmp, c mat.Dense
	tmp.Mul(uInv.T(), &aDense)
	c.Mul(&tmp, &uInv)
	cSym := mat.NewSymDense(n, nil)
	for r := 0; r < n; r++ {
		for col := r; col < n; col++ {
			cSym.SetSym(r, col, 0.5*(c.At(r, col)+c.At(col, r)))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(cSym, true); !ok {
		chk.Panic("la: GenEigen: eigendecomposition failed to converge")
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	type pair struct {
		value  float64
		vector []float64
	}
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		y := mat.NewVecDense(n, mat.Col(nil, i, &vectors))
		var phi mat.VecDense
		phi.MulVec(&uInv, y)
		vec := make([]float64, n)
		for j := 0; j < n; j++ {
			vec[j] = phi.AtVec(j)
		}
		pairs[i] = pair{values[i], vec}
	}
	sort.Slice(pairs, func(i, j int) bool { return math.Abs(pairs[i].value) < math.Abs(pairs[j].value) })

	out := EigenResult{
		Values:  make([]float64, k),
		Vectors: make([][]float64, k),
		Resid:   make([]float64, k),
	}
	for i := 0; i < k; i++ {
		out.Values[i] = pairs[i].value
		out.Vectors[i] = pairs[i].vector

		aPhi := make([]float64, n)
		a.MulVec(aPhi, 1.0, pairs[i].vector, 0.0, false)
		bPhi := make([]float64, n)
		b.MulVec(bPhi, 1.0, pairs[i].vector, 0.0, false)
		var resid float64
		for j := 0; j < n; j++ {
			d := aPhi[j] - pairs[i].value*bPhi[j]
			resid += d * d
		}
		out.Resid[i] = math.Sqrt(resid)
	}
	return out
}
