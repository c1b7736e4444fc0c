// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp is the isoparametric element library: reference node coordinates, Gauss
// integration rules, shape functions and their natural derivatives, and the Jacobian
// machinery used to evaluate an element or surface at a natural-coordinate point.
package shp

import "github.com/carlos-souto/FEAPACK/model"

const g1 = 0.5773502691896258
const g2 = 0.7745966692414834

// IntPoint is one integration point: natural coordinates plus quadrature weight.
type IntPoint struct {
	R, S, T float64
	Weight  float64
}

// ReferenceNodes returns the natural nodal coordinates for the given element type.
func ReferenceNodes(t model.ElementType) [][3]float64 {
	switch t {
	case model.Line2:
		return [][3]float64{{-1, 0, 0}, {1, 0, 0}}
	case model.Line3:
		return [][3]float64{{-1, 0, 0}, {1, 0, 0}, {0, 0, 0}}
	case model.Plane3:
		return [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	case model.Plane4:
		return [][3]float64{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}
	case model.Plane6:
		return [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0.5, 0, 0}, {0.5, 0.5, 0}, {0, 0.5, 0}}
	case model.Plane8:
		return [][3]float64{
			{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
			{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0},
		}
	case model.Volume4:
		return [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	case model.Volume6:
		return [][3]float64{
			{0, 0, -1}, {1, 0, -1}, {0, 1, -1},
			{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
		}
	case model.Volume8:
		return [][3]float64{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		}
	case model.Volume10:
		return [][3]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
			{0.5, 0, 0}, {0.5, 0.5, 0}, {0, 0.5, 0}, {0, 0, 0.5}, {0.5, 0, 0.5}, {0, 0.5, 0.5},
		}
	case model.Volume15:
		return [][3]float64{
			{0, 0, -1}, {1, 0, -1}, {0, 1, -1}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1},
			{0.5, 0, -1}, {0.5, 0.5, -1}, {0, 0.5, -1}, {0.5, 0, 1}, {0.5, 0.5, 1}, {0, 0.5, 1},
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		}
	case model.Volume20:
		return [][3]float64{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
			{0, -1, -1}, {1, 0, -1}, {0, 1, -1}, {-1, 0, -1},
			{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
			{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
		}
	default:
		return nil
	}
}

// IntegrationPoints returns the Gauss integration rule for the given element type. When
// reduced is true, a lower-order rule is used where the element type supports one.
func IntegrationPoints(t model.ElementType, reduced bool) []IntPoint {
	switch t {
	case model.Line2:
		if reduced {
			return []IntPoint{{0, 0, 0, 2}}
		}
		return []IntPoint{{-g1, 0, 0, 1}, {g1, 0, 0, 1}}
	case model.Line3:
		if reduced {
			return []IntPoint{{-g1, 0, 0, 1}, {g1, 0, 0, 1}}
		}
		return []IntPoint{{-g2, 0, 0, 5.0 / 9.0}, {g2, 0, 0, 5.0 / 9.0}, {0, 0, 0, 8.0 / 9.0}}
	case model.Plane3:
		return []IntPoint{{1.0 / 3.0, 1.0 / 3.0, 0, 0.5}}
	case model.Plane4:
		if reduced {
			return []IntPoint{{0, 0, 0, 4}}
		}
		return []IntPoint{
			{-g1, -g1, 0, 1}, {g1, -g1, 0, 1}, {g1, g1, 0, 1}, {-g1, g1, 0, 1},
		}
	case model.Plane6:
		return []IntPoint{
			{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
		}
	case model.Plane8:
		if reduced {
			return []IntPoint{
				{-g1, -g1, 0, 1}, {g1, -g1, 0, 1}, {g1, g1, 0, 1}, {-g1, g1, 0, 1},
			}
		}
		return []IntPoint{
			{-g2, -g2, 0, 0.308641975308642}, {g2, -g2, 0, 0.308641975308642},
			{g2, g2, 0, 0.308641975308642}, {-g2, g2, 0, 0.308641975308642},
			{0, -g2, 0, 0.493827160493827}, {g2, 0, 0, 0.493827160493827},
			{0, g2, 0, 0.493827160493827}, {-g2, 0, 0, 0.493827160493827},
			{0, 0, 0, 0.790123456790123},
		}
	case model.Volume4:
		return []IntPoint{{0.25, 0.25, 0.25, 1.0 / 6.0}}
	case model.Volume6:
		return []IntPoint{
			{1.0 / 3.0, 1.0 / 3.0, -g1, 0.5},
			{1.0 / 3.0, 1.0 / 3.0, g1, 0.5},
		}
	case model.Volume8:
		if reduced {
			return []IntPoint{{0, 0, 0, 8}}
		}
		return []IntPoint{
			{-g1, -g1, -g1, 1}, {g1, -g1, -g1, 1}, {g1, g1, -g1, 1}, {-g1, g1, -g1, 1},
			{-g1, -g1, g1, 1}, {g1, -g1, g1, 1}, {g1, g1, g1, 1}, {-g1, g1, g1, 1},
		}
	case model.Volume10:
		const a, b = 0.1381966011250105, 0.5854101966249685
		return []IntPoint{
			{a, a, a, 1.0 / 24.0}, {b, a, a, 1.0 / 24.0}, {a, b, a, 1.0 / 24.0}, {a, a, b, 1.0 / 24.0},
		}
	case model.Volume15:
		return []IntPoint{
			{1.0 / 6.0, 1.0 / 6.0, -g2, 0.0925925925925926}, {2.0 / 3.0, 1.0 / 6.0, -g2, 0.0925925925925926},
			{1.0 / 6.0, 2.0 / 3.0, -g2, 0.0925925925925926}, {1.0 / 6.0, 1.0 / 6.0, g2, 0.0925925925925926},
			{2.0 / 3.0, 1.0 / 6.0, g2, 0.0925925925925926}, {1.0 / 6.0, 2.0 / 3.0, g2, 0.0925925925925926},
			{1.0 / 6.0, 1.0 / 6.0, 0, 0.1481481481481481}, {2.0 / 3.0, 1.0 / 6.0, 0, 0.1481481481481481},
			{1.0 / 6.0, 2.0 / 3.0, 0, 0.1481481481481481},
		}
	case model.Volume20:
		if reduced {
			return []IntPoint{
				{-g1, -g1, -g1, 1}, {g1, -g1, -g1, 1}, {g1, g1, -g1, 1}, {-g1, g1, -g1, 1},
				{-g1, -g1, g1, 1}, {g1, -g1, g1, 1}, {g1, g1, g1, 1}, {-g1, g1, g1, 1},
			}
		}
		pts := []IntPoint{}
		corner := 0.1714677640603567
		for _, r := range []float64{-g2, g2} {
			for _, s := range []float64{-g2, g2} {
				for _, tt := range []float64{-g2, g2} {
					pts = append(pts, IntPoint{r, s, tt, corner})
				}
			}
		}
		mid := 0.2743484224965706
		// mid-edge points parallel to each axis, centered on the remaining axis (weight 0.2743484224965706)
		for _, pair := range [][2]float64{{-g2, -g2}, {g2, -g2}, {g2, g2}, {-g2, g2}} {
			pts = append(pts, IntPoint{0, pair[0], pair[1], mid})
			pts = append(pts, IntPoint{pair[0], 0, pair[1], mid})
			pts = append(pts, IntPoint{pair[0], pair[1], 0, mid})
		}
		face := 0.4389574759945130
		for _, a := range []float64{-g2, g2} {
			pts = append(pts, IntPoint{0, a, 0, face})
			pts = append(pts, IntPoint{a, 0, 0, face})
			pts = append(pts, IntPoint{0, 0, a, face})
		}
		pts = append(pts, IntPoint{0, 0, 0, 0.7023319615912208})
		return pts
	default:
		return nil
	}
}
