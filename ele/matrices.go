// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele builds the per-element dense matrices and vectors (stiffness, mass,
// stress-stiffness, surface/body loads, internal force) that the assembler folds into the
// global system, plus the worker pool that maps a kernel over every element concurrently.
// Grounded on original_source/feapack/solver/procedures.py.
package ele

import "github.com/carlos-souto/FEAPACK/model"

// CoordinateMatrix returns the nodal coordinates of the given nodes, one row per node.
func CoordinateMatrix(nodes []*model.Node) [][3]float64 {
	x := make([][3]float64, len(nodes))
	for i, n := range nodes {
		x[i] = n.Coordinates()
	}
	return x
}

// DisplacementVector gathers the element's nodal displacement vector (local DOF order)
// from the global active/inactive displacement vectors.
func DisplacementVector(e *model.Element, ua, ub []float64) []float64 {
	u := make([]float64, e.DOFCount())
	al, ag := e.ActiveLocalDOFs(), e.ActiveGlobalDOFs()
	for k := range al {
		u[al[k]] = ua[ag[k]]
	}
	il, ig := e.InactiveLocalDOFs(), e.InactiveGlobalDOFs()
	for k := range il {
		u[il[k]] = ub[ig[k]]
	}
	return u
}

// DisplacementMatrix reshapes an element displacement vector into a nodeCount×3 matrix
// (columns beyond the modeling space's dimensionality stay zero).
func DisplacementMatrix(e *model.Element, u []float64) [][3]float64 {
	count := e.DOFCount() / e.NodeCount()
	m := make([][3]float64, e.NodeCount())
	for i := 0; i < e.NodeCount(); i++ {
		for j := 0; j < count; j++ {
			m[i][j] = u[i*count+j]
		}
	}
	return m
}

// StressStrainMatrix returns the constitutive (D) matrix for the element's material and
// section type, working with engineering shear strain.
func StressStrainMatrix(e *model.Element) [][]float64 {
	mat := e.Material()
	young, poisson := mat.Young, mat.Poisson
	lambda := (young * poisson) / ((1 + poisson) * (1 - 2*poisson))
	mu := young / (2 * (1 + poisson))
	alpha := young / (1 - poisson*poisson)
	beta := alpha * poisson
	gamma := 2*mu + lambda

	switch e.Section().Type {
	case model.PlaneStress:
		return [][]float64{
			{alpha, beta, 0},
			{beta, alpha, 0},
			{0, 0, mu},
		}
	case model.PlaneStrain, model.Axisymmetric:
		return [][]float64{
			{gamma, lambda, lambda, 0},
			{lambda, gamma, lambda, 0},
			{lambda, lambda, gamma, 0},
			{0, 0, 0, mu},
		}
	default: // General
		return [][]float64{
			{gamma, lambda, lambda, 0, 0, 0},
			{lambda, gamma, lambda, 0, 0, 0},
			{lambda, lambda, gamma, 0, 0, 0},
			{0, 0, 0, mu, 0, 0},
			{0, 0, 0, 0, mu, 0},
			{0, 0, 0, 0, 0, mu},
		}
	}
}

// StrainDisplacementMatrix returns the strain-displacement (B) matrix at an integration
// point, given the physical coordinates, shape functions and their physical derivatives
// there.
func StrainDisplacementMatrix(e *model.Element, coord [3]float64, n []float64, nx [][]float64) [][]float64 {
	nc := e.NodeCount()
	switch e.Section().Type {
	case model.PlaneStress:
		b := zeros(3, e.DOFCount())
		for i := 0; i < nc; i++ {
			j := i * 2
			b[0][j], b[0][j+1] = nx[0][i], 0.0
			b[1][j], b[1][j+1] = 0.0, nx[1][i]
			b[2][j], b[2][j+1] = nx[1][i], nx[0][i]
		}
		return b
	case model.PlaneStrain:
		b := zeros(4, e.DOFCount())
		for i := 0; i < nc; i++ {
			j := i * 2
			b[0][j], b[0][j+1] = nx[0][i], 0.0
			b[1][j], b[1][j+1] = 0.0, nx[1][i]
			b[3][j], b[3][j+1] = nx[1][i], nx[0][i]
		}
		return b
	case model.Axisymmetric:
		b := zeros(4, e.DOFCount())
		for i := 0; i < nc; i++ {
			j := i * 2
			b[0][j], b[0][j+1] = nx[0][i], 0.0
			b[1][j], b[1][j+1] = 0.0, nx[1][i]
			b[2][j], b[2][j+1] = n[i]/coord[0], 0.0
			b[3][j], b[3][j+1] = nx[1][i], nx[0][i]
		}
		return b
	default: // General
		b := zeros(6, e.DOFCount())
		for i := 0; i < nc; i++ {
			j := i * 3
			b[0][j], b[0][j+1], b[0][j+2] = nx[0][i], 0.0, 0.0
			b[1][j], b[1][j+1], b[1][j+2] = 0.0, nx[1][i], 0.0
			b[2][j], b[2][j+1], b[2][j+2] = 0.0, 0.0, nx[2][i]
			b[3][j], b[3][j+1], b[3][j+2] = 0.0, nx[2][i], nx[1][i]
			b[4][j], b[4][j+1], b[4][j+2] = nx[2][i], 0.0, nx[0][i]
			b[5][j], b[5][j+1], b[5][j+2] = nx[1][i], nx[0][i], 0.0
		}
		return b
	}
}

// InterpolationMatrix returns the element/surface interpolation (H) matrix: localIndices
// are the node positions (in the DOF-owning element's own local connectivity) that
// shape-function row n corresponds to, m is the modeling space dimensionality and dofCount
// the DOF-owning element's total DOF count.
func InterpolationMatrix(m int, dofCount int, localIndices []int, n []float64) [][]float64 {
	h := zeros(m, dofCount)
	for k, i := range localIndices {
		j := i * m
		for a := 0; a < m; a++ {
			h[a][j+a] = n[k]
		}
	}
	return h
}

func zeros(rows, cols int) [][]float64 {
	a := make([][]float64, rows)
	for i := range a {
		a[i] = make([]float64, cols)
	}
	return a
}

func matMul(a, b [][]float64) [][]float64 {
	rows, inner, cols := len(a), len(b), len(b[0])
	out := zeros(rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

func transpose(a [][]float64) [][]float64 {
	if len(a) == 0 {
		return nil
	}
	out := zeros(len(a[0]), len(a))
	for i := range a {
		for j := range a[i] {
			out[j][i] = a[i][j]
		}
	}
	return out
}

func matVec(a [][]float64, x []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		var sum float64
		for j := range x {
			sum += a[i][j] * x[j]
		}
		out[i] = sum
	}
	return out
}

func scale(a [][]float64, s float64) {
	for i := range a {
		for j := range a[i] {
			a[i][j] *= s
		}
	}
}

func addInto(dst, src [][]float64) {
	for i := range dst {
		for j := range dst[i] {
			dst[i][j] += src[i][j]
		}
	}
}
