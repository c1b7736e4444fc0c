// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/carlos-souto/FEAPACK/la"
	"github.com/carlos-souto/FEAPACK/model"
)

// ElementEval holds everything evaluated at one integration point of a volume/plane/line
// element: the physical coordinates, the shape functions, their physical derivatives
// (3×nodeCount, rows beyond the element's dimensionality are zero) and the integration
// point's volume (length/area/volume, depending on modeling space and section).
type ElementEval struct {
	Coord [3]float64
	N     []float64
	Nx    [][]float64
	Vol   float64
}

// EvaluateElement evaluates shape functions, their physical derivatives and the
// integration point volume for an element of type t, with nodal coordinates X, at the
// given integration point.
func EvaluateElement(t model.ElementType, section *model.Section, X [][3]float64, pt IntPoint) ElementEval {
	k := int(t.ModelingSpace())
	n := ShapeFunctions(t, pt.R, pt.S, pt.T)
	nr := NaturalDerivatives(t, pt.R, pt.S, pt.T)

	var coord [3]float64
	for i, ni := range n {
		for d := 0; d < 3; d++ {
			coord[d] += ni * X[i][d]
		}
	}

	j := make([][]float64, k)
	for a := 0; a < k; a++ {
		j[a] = make([]float64, k)
		for b := 0; b < k; b++ {
			var sum float64
			for i := range X {
				sum += nr[a][i] * X[i][b]
			}
			j[a][b] = sum
		}
	}
	invJ, detJ := la.Inverse(j)

	nx := make([][]float64, 3)
	for a := range nx {
		nx[a] = make([]float64, len(n))
	}
	for a := 0; a < k; a++ {
		for i := range n {
			var sum float64
			for b := 0; b < k; b++ {
				sum += invJ[a][b] * nr[b][i]
			}
			nx[a][i] = sum
		}
	}

	var vol float64
	switch section.Type {
	case model.PlaneStress, model.PlaneStrain:
		vol = pt.Weight * math.Abs(detJ) * section.Thickness
	case model.Axisymmetric:
		vol = pt.Weight * math.Abs(detJ) * 2.0 * math.Pi * coord[0]
	case model.General:
		vol = pt.Weight * math.Abs(detJ)
	}
	return ElementEval{Coord: coord, N: n, Nx: nx, Vol: vol}
}

// SurfaceEval holds everything evaluated at one integration point of a surface: the
// physical coordinates, the shape functions, the outward unit normal and the integration
// point's area (or length, for a 1D surface of a 2D element).
type SurfaceEval struct {
	Coord  [3]float64
	N      []float64
	Normal [3]float64
	Area   float64
}

// EvaluateSurface evaluates shape functions, the outward unit normal and the integration
// point area for a surface of type t (e.g. Line2 bounding a Plane4), with nodal
// coordinates X, at the given integration point.
func EvaluateSurface(t model.ElementType, section *model.Section, X [][3]float64, pt IntPoint) SurfaceEval {
	k := int(t.ModelingSpace())
	n := ShapeFunctions(t, pt.R, pt.S, pt.T)
	nr := NaturalDerivatives(t, pt.R, pt.S, pt.T)

	var coord [3]float64
	for i, ni := range n {
		for d := 0; d < 3; d++ {
			coord[d] += ni * X[i][d]
		}
	}

	j := make([][]float64, k)
	for a := 0; a < k; a++ {
		j[a] = make([]float64, k+1)
		for b := 0; b <= k; b++ {
			var sum float64
			for i := range X {
				sum += nr[a][i] * X[i][b]
			}
			j[a][b] = sum
		}
	}

	var normal [3]float64
	switch model.ModelingSpace(k) {
	case model.OneDimensional:
		normal = [3]float64{j[0][1], -j[0][0], 0.0}
	case model.TwoDimensional:
		normal = [3]float64{
			j[0][1]*j[1][2] - j[0][2]*j[1][1],
			j[0][2]*j[1][0] - j[0][0]*j[1][2],
			j[0][0]*j[1][1] - j[0][1]*j[1][0],
		}
	}
	detJ := math.Sqrt(normal[0]*normal[0] + normal[1]*normal[1] + normal[2]*normal[2])
	normal[0] /= detJ
	normal[1] /= detJ
	normal[2] /= detJ

	var area float64
	switch section.Type {
	case model.PlaneStress, model.PlaneStrain:
		area = pt.Weight * math.Abs(detJ) * section.Thickness
	case model.Axisymmetric:
		area = pt.Weight * math.Abs(detJ) * 2.0 * math.Pi * coord[0]
	case model.General:
		area = pt.Weight * math.Abs(detJ)
	}
	return SurfaceEval{Coord: coord, N: n, Normal: normal, Area: area}
}
