// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// LstSq solves A*X = B for X in the least-squares sense (A is m×n, B is m×p, X is n×p),
// mirroring numpy.linalg.lstsq as used by
// original_source/feapack/solver/procedures.py's extrapolateWithinElement to fit a
// polynomial basis through the values at an element's integration points.
func LstSq(a, b [][]float64) [][]float64 {
	m := len(a)
	if m == 0 {
		chk.Panic("la: LstSq: empty system")
	}
	n := len(a[0])
	p := len(b[0])

	ad := mat.NewDense(m, n, nil)
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			ad.Set(r, c, a[r][c])
		}
	}
	bd := mat.NewDense(m, p, nil)
	for r := 0; r < m; r++ {
		for c := 0; c < p; c++ {
			bd.Set(r, c, b[r][c])
		}
	}

	var x mat.Dense
	if err := x.Solve(ad, bd); err != nil {
		chk.Panic("la: LstSq failed: %v", err)
	}
	out := make([][]float64, n)
	for r := 0; r < n; r++ {
		out[r] = make([]float64, p)
		for c := 0; c < p; c++ {
			out[r][c] = x.At(r, c)
		}
	}
	return out
}
