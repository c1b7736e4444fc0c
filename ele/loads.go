// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/shp"
)

// SurfaceLoadVector returns the equivalent nodal load vector (sized to the parent
// element's DOF count) of a surface pressure or traction. Specify magnitude only for a
// pressure (acting along the inward normal) or components only for a traction.
func SurfaceLoadVector(s *model.Surface, magnitude float64, components [3]float64) []float64 {
	parent := s.Parent()
	ps := make([]float64, parent.DOFCount())
	x := CoordinateMatrix(s.Nodes())
	m := int(parent.ModelingSpace())

	reduced := parent.Section().ReducedIntegration
	for _, pt := range shp.IntegrationPoints(s.Type(), reduced) {
		sv := shp.EvaluateSurface(s.Type(), parent.Section(), x, pt)
		h := InterpolationMatrix(m, parent.DOFCount(), s.LocalNodeIndices(), sv.N)
		f := make([]float64, m)
		for d := 0; d < m; d++ {
			f[d] = -sv.Normal[d]*magnitude + components[d]
		}
		contrib := matVec(transpose(h), f)
		for i := range ps {
			ps[i] += contrib[i] * sv.Area
		}
	}
	return ps
}

// BodyLoadVector returns the equivalent nodal load vector of a uniform body force
// (components, projected to the element's modeling space) acting over the element.
func BodyLoadVector(e *model.Element, components [3]float64) []float64 {
	n := e.DOFCount()
	pb := make([]float64, n)
	x := CoordinateMatrix(e.Nodes())
	m := int(e.ModelingSpace())
	f := make([]float64, m)
	copy(f, components[:m])

	reduced := e.Section().ReducedIntegration
	for _, pt := range shp.IntegrationPoints(e.Type(), reduced) {
		ev := shp.EvaluateElement(e.Type(), e.Section(), x, pt)
		h := InterpolationMatrix(m, n, identityIndices(e.NodeCount()), ev.N)
		contrib := matVec(transpose(h), f)
		for i := range pb {
			pb[i] += contrib[i] * ev.Vol
		}
	}
	return pb
}
