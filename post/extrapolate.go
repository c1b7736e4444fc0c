// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"github.com/carlos-souto/FEAPACK/la"
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/shp"
	"github.com/cpmech/gosl/chk"
)

// ExtrapolateWithinElement fits a low-order polynomial through the values at an element's
// integration points (phi, one row per component, one column per integration point) and
// evaluates it at the element's nodes, returning a matrix of the same row count with one
// column per node. The polynomial basis is fixed per element type and integration scheme
// (shp.ExtrapolationApproach).
func ExtrapolateWithinElement(e *model.Element, phi [][]float64) [][]float64 {
	ci := shp.IntegrationPoints(e.Type(), e.Section().ReducedIntegration)
	cj := shp.ReferenceNodes(e.Type())
	ni, nj := len(ci), len(cj)
	rows := len(phi)

	basisAt := func(r, s, t float64) []float64 {
		switch shp.ExtrapolationApproach(e.Type(), e.Section().ReducedIntegration) {
		case "constant":
			return []float64{1}
		case "linear in r":
			return []float64{1, r}
		case "linear in t":
			return []float64{1, t}
		case "bilinear in r, s":
			return []float64{1, r, s, r * s}
		case "trilinear in r, s, t":
			return []float64{1, r, s, t, r * s, s * t, t * r, r * s * t}
		default:
			chk.Panic("post: unknown extrapolation approach for element type %v", e.Type())
			return nil
		}
	}

	if shp.ExtrapolationApproach(e.Type(), e.Section().ReducedIntegration) == "constant" {
		out := make([][]float64, rows)
		for r := 0; r < rows; r++ {
			out[r] = make([]float64, nj)
			for j := 0; j < nj; j++ {
				out[r][j] = phi[r][0]
			}
		}
		return out
	}

	a := make([][]float64, ni)
	for i, pt := range ci {
		a[i] = basisAt(pt.R, pt.S, pt.T)
	}
	b := make([][]float64, ni)
	for i := 0; i < ni; i++ {
		b[i] = make([]float64, rows)
		for r := 0; r < rows; r++ {
			b[i][r] = phi[r][i]
		}
	}
	p := la.LstSq(a, b) // ncoef x rows

	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, nj)
	}
	for j, node := range cj {
		basis := basisAt(node[0], node[1], node[2])
		for r := 0; r < rows; r++ {
			var v float64
			for k, bk := range basis {
				v += p[k][r] * bk
			}
			out[r][j] = v
		}
	}
	return out
}
