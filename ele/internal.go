// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/shp"
)

// InternalForceResult holds one element's internal force vector plus the basic strain and
// stress components at its integration points (one column per integration point).
type InternalForceResult struct {
	F     []float64
	Eps   [][]float64
	Sigma [][]float64
}

// InternalForceVector returns the element internal force vector F = sum_gp Bt*sigma*vol,
// along with the basic (non-extended) strain and stress components at the element's
// integration points, gathering the element's current displacement from the global
// active/inactive displacement vectors Ua, Ub.
func InternalForceVector(e *model.Element, ua, ub []float64) InternalForceResult {
	pts := shp.IntegrationPoints(e.Type(), e.Section().ReducedIntegration)
	f := make([]float64, e.DOFCount())
	d := StressStrainMatrix(e)
	x := CoordinateMatrix(e.Nodes())
	u := DisplacementVector(e, ua, ub)

	rows := len(d)
	eps := zeros(rows, len(pts))
	sigma := zeros(rows, len(pts))
	for gp, pt := range pts {
		ev := shp.EvaluateElement(e.Type(), e.Section(), x, pt)
		b := StrainDisplacementMatrix(e, ev.Coord, ev.N, ev.Nx)
		epsGP := matVec(b, u)
		sigGP := matVec(d, epsGP)
		for r := 0; r < rows; r++ {
			eps[r][gp] = epsGP[r]
			sigma[r][gp] = sigGP[r]
		}
		contrib := matVec(transpose(b), sigGP)
		for i := range f {
			f[i] += contrib[i] * ev.Vol
		}
	}
	return InternalForceResult{F: f, Eps: eps, Sigma: sigma}
}
