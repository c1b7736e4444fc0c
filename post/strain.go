// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package post turns the basic strain/stress components gathered at integration points into
// the full set of reported results: principal and equivalent measures, extrapolation to
// element nodes, nodal smoothing, and the unshuffling of a global DOF vector into a
// per-node matrix. Grounded on
// original_source/feapack/solver/procedures.py's POST-PROCESSING section.
package post

import (
	"math"

	"github.com/carlos-souto/FEAPACK/la"
	"github.com/carlos-souto/FEAPACK/model"
)

// StrainComponentCount is the number of extended strain rows:
// e11, e22, e33, e23, e31, e12, e1, e2, e3, eMajor.
const StrainComponentCount = 10

// ExtendStrain augments one element's basic strain components (one column per integration
// point or node) with the principal strains and the dominant principal strain.
func ExtendStrain(e *model.Element, eps [][]float64) [][]float64 {
	cols := len(eps[0])
	out := make([][]float64, StrainComponentCount)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	for c := 0; c < cols; c++ {
		e11, e22, e33, e23, e31, e12 := basicComponents(e.Section().Type, eps, c)
		m := [3][3]float64{
			{e11, 0.5 * e12, 0.5 * e31},
			{0.5 * e12, e22, 0.5 * e23},
			{0.5 * e31, 0.5 * e23, e33},
		}
		vals := la.Eigvalsh3(m)
		e3, e2, e1 := vals[0], vals[1], vals[2]
		eMajor := dominant(vals)

		out[0][c], out[1][c], out[2][c] = e11, e22, e33
		out[3][c], out[4][c], out[5][c] = e23, e31, e12
		out[6][c], out[7][c], out[8][c] = e1, e2, e3
		out[9][c] = eMajor
	}
	return out
}

func basicComponents(kind model.SectionType, m [][]float64, col int) (e11, e22, e33, e23, e31, e12 float64) {
	switch kind {
	case model.PlaneStress:
		e11, e22, e12 = m[0][col], m[1][col], m[2][col]
	case model.PlaneStrain, model.Axisymmetric:
		e11, e22, e33, e12 = m[0][col], m[1][col], m[2][col], m[3][col]
	default: // General
		e11, e22, e33, e23, e31, e12 = m[0][col], m[1][col], m[2][col], m[3][col], m[4][col], m[5][col]
	}
	return
}

// dominant returns the eigenvalue (of the three, ascending) with the largest magnitude.
func dominant(vals [3]float64) float64 {
	best := vals[0]
	for _, v := range vals[1:] {
		if math.Abs(v) > math.Abs(best) {
			best = v
		}
	}
	return best
}
