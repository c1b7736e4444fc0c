// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/shp"
)

// StiffnessMatrix returns the element stiffness matrix K = sum_gp Bt*D*B*vol.
func StiffnessMatrix(e *model.Element) [][]float64 {
	n := e.DOFCount()
	k := zeros(n, n)
	d := StressStrainMatrix(e)
	x := CoordinateMatrix(e.Nodes())
	reduced := e.Section().ReducedIntegration
	for _, pt := range shp.IntegrationPoints(e.Type(), reduced) {
		ev := shp.EvaluateElement(e.Type(), e.Section(), x, pt)
		b := StrainDisplacementMatrix(e, ev.Coord, ev.N, ev.Nx)
		bd := matMul(transpose(b), matMul(d, b))
		scale(bd, ev.Vol)
		addInto(k, bd)
	}
	return k
}

// MassMatrix returns the element mass matrix M = sum_gp Ht*H*rho*vol.
func MassMatrix(e *model.Element) [][]float64 {
	n := e.DOFCount()
	m := zeros(n, n)
	x := CoordinateMatrix(e.Nodes())
	rho := e.Material().Density
	reduced := e.Section().ReducedIntegration
	for _, pt := range shp.IntegrationPoints(e.Type(), reduced) {
		ev := shp.EvaluateElement(e.Type(), e.Section(), x, pt)
		h := InterpolationMatrix(int(e.ModelingSpace()), n, identityIndices(e.NodeCount()), ev.N)
		hh := matMul(transpose(h), h)
		scale(hh, rho*ev.Vol)
		addInto(m, hh)
	}
	return m
}

// StressStiffnessMatrix returns the element stress-stiffness matrix S, built on the
// updated-Lagrange configuration shifted by the element's current nodal displacements
// (gathered from the global active/inactive displacement vectors Ua, Ub).
func StressStiffnessMatrix(e *model.Element, ua, ub []float64) [][]float64 {
	n := e.DOFCount()
	s := zeros(n, n)
	d := StressStrainMatrix(e)
	x := CoordinateMatrix(e.Nodes())
	u := DisplacementVector(e, ua, ub)
	um := DisplacementMatrix(e, u)
	for i := range x {
		x[i][0] += um[i][0]
		x[i][1] += um[i][1]
		x[i][2] += um[i][2]
	}

	count := n / e.NodeCount()
	reduced := e.Section().ReducedIntegration
	for _, pt := range shp.IntegrationPoints(e.Type(), reduced) {
		ev := shp.EvaluateElement(e.Type(), e.Section(), x, pt)
		b := StrainDisplacementMatrix(e, ev.Coord, ev.N, ev.Nx)
		eps := matVec(b, u)
		sig := matVec(d, eps)

		g := zeros(9, n)
		for i := 0; i < e.NodeCount(); i++ {
			for j := 0; j < count; j++ {
				for kk := 0; kk < count; kk++ {
					g[kk*3+j][i*count+j] = ev.Nx[kk][i]
				}
			}
		}

		var s11, s22, s33, s23, s31, s12 float64
		switch e.Section().Type {
		case model.PlaneStress:
			s11, s22, s12 = sig[0], sig[1], sig[2]
		case model.PlaneStrain, model.Axisymmetric:
			s11, s22, s33, s12 = sig[0], sig[1], sig[2], sig[3]
		default: // General
			s11, s22, s33, s23, s31, s12 = sig[0], sig[1], sig[2], sig[3], sig[4], sig[5]
		}
		sigma := [][]float64{
			{s11, 0, 0, s12, 0, 0, s31, 0, 0},
			{0, s11, 0, 0, s12, 0, 0, s31, 0},
			{0, 0, s11, 0, 0, s12, 0, 0, s31},
			{s12, 0, 0, s22, 0, 0, s23, 0, 0},
			{0, s12, 0, 0, s22, 0, 0, s23, 0},
			{0, 0, s12, 0, 0, s22, 0, 0, s23},
			{s31, 0, 0, s23, 0, 0, s33, 0, 0},
			{0, s31, 0, 0, s23, 0, 0, s33, 0},
			{0, 0, s31, 0, 0, s23, 0, 0, s33},
		}

		gs := matMul(transpose(g), matMul(sigma, g))
		scale(gs, ev.Vol)
		addInto(s, gs)
	}
	return s
}

func identityIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
