// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Eigvalsh3 returns the eigenvalues of a symmetric 3x3 matrix in ascending order, mirroring
// numpy.linalg.eigvalsh as used by
// original_source/feapack/solver/procedures.py's extendElementStrain/extendElementStress.
func Eigvalsh3(a [3][3]float64) [3]float64 {
	sym := mat.NewSymDense(3, nil)
	for r := 0; r < 3; r++ {
		for c := r; c < 3; c++ {
			sym.SetSym(r, c, a[r][c])
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		chk.Panic("la: Eigvalsh3: eigendecomposition failed to converge")
	}
	values := eig.Values(nil)
	sort.Float64s(values)
	return [3]float64{values[0], values[1], values[2]}
}
