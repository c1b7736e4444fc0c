// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/carlos-souto/FEAPACK/model"

// ShapeFunctions evaluates the element shape functions at the given natural coordinates.
func ShapeFunctions(t model.ElementType, r, s, tt float64) []float64 {
	n := make([]float64, t.NodeCount())
	switch t {
	case model.Line2:
		n[0] = 0.5 * (1.0 - r)
		n[1] = 0.5 * (1.0 + r)
	case model.Line3:
		n[0] = 0.5 * r * (r - 1.0)
		n[1] = 0.5 * r * (r + 1.0)
		n[2] = 1.0 - r*r
	case model.Plane3:
		n[0] = 1.0 - r - s
		n[1] = r
		n[2] = s
	case model.Plane4:
		n[0] = 0.25 * (r - 1.0) * (s - 1.0)
		n[1] = -0.25 * (r + 1.0) * (s - 1.0)
		n[2] = 0.25 * (r + 1.0) * (s + 1.0)
		n[3] = -0.25 * (r - 1.0) * (s + 1.0)
	case model.Plane6:
		n[0] = (2.0*r + 2.0*s - 1.0) * (r + s - 1.0)
		n[1] = r * (2.0*r - 1.0)
		n[2] = s * (2.0*s - 1.0)
		n[3] = -4.0 * r * (r + s - 1.0)
		n[4] = 4.0 * r * s
		n[5] = -4.0 * s * (r + s - 1.0)
	case model.Plane8:
		n[0] = -0.25 * (r - 1.0) * (s - 1.0) * (r + s + 1.0)
		n[1] = -0.25 * (r + 1.0) * (s - 1.0) * (r - s - 1.0)
		n[2] = 0.25 * (r + 1.0) * (s + 1.0) * (r + s - 1.0)
		n[3] = 0.25 * (r - 1.0) * (s + 1.0) * (r - s + 1.0)
		n[4] = 0.5 * (r*r - 1.0) * (s - 1.0)
		n[5] = -0.5 * (s*s - 1.0) * (r + 1.0)
		n[6] = -0.5 * (r*r - 1.0) * (s + 1.0)
		n[7] = 0.5 * (s*s - 1.0) * (r - 1.0)
	case model.Volume4:
		n[0] = 1.0 - r - s - tt
		n[1] = r
		n[2] = s
		n[3] = tt
	case model.Volume6:
		n[0] = 0.5 * (tt - 1.0) * (r + s - 1.0)
		n[1] = -0.5 * (tt - 1.0) * r
		n[2] = -0.5 * (tt - 1.0) * s
		n[3] = -0.5 * (tt + 1.0) * (r + s - 1.0)
		n[4] = 0.5 * (tt + 1.0) * r
		n[5] = 0.5 * (tt + 1.0) * s
	case model.Volume8:
		n[0] = -0.125 * (r - 1.0) * (s - 1.0) * (tt - 1.0)
		n[1] = 0.125 * (r + 1.0) * (s - 1.0) * (tt - 1.0)
		n[2] = -0.125 * (r + 1.0) * (s + 1.0) * (tt - 1.0)
		n[3] = 0.125 * (r - 1.0) * (s + 1.0) * (tt - 1.0)
		n[4] = 0.125 * (r - 1.0) * (s - 1.0) * (tt + 1.0)
		n[5] = -0.125 * (r + 1.0) * (s - 1.0) * (tt + 1.0)
		n[6] = 0.125 * (r + 1.0) * (s + 1.0) * (tt + 1.0)
		n[7] = -0.125 * (r - 1.0) * (s + 1.0) * (tt + 1.0)
	case model.Volume10:
		n[0] = (r + s + tt - 1.0) * (2.0*r + 2.0*s + 2.0*tt - 1.0)
		n[1] = r * (2.0*r - 1.0)
		n[2] = s * (2.0*s - 1.0)
		n[3] = tt * (2.0*tt - 1.0)
		n[4] = -4.0 * r * (r + s + tt - 1.0)
		n[5] = 4.0 * r * s
		n[6] = -4.0 * s * (r + s + tt - 1.0)
		n[7] = -4.0 * tt * (r + s + tt - 1.0)
		n[8] = 4.0 * r * tt
		n[9] = 4.0 * s * tt
	case model.Volume15:
		n[0] = -0.5 * (tt - 1.0) * (r + s - 1.0) * (2.0*r + 2.0*s + tt)
		n[1] = 0.5 * r * (tt - 1.0) * (tt - 2.0*r + 2.0)
		n[2] = 0.5 * s * (tt - 1.0) * (tt - 2.0*s + 2.0)
		n[3] = 0.5 * (tt + 1.0) * (r + s - 1.0) * (2.0*r + 2.0*s - tt)
		n[4] = 0.5 * r * (tt + 1.0) * (2.0*r + tt - 2.0)
		n[5] = 0.5 * s * (tt + 1.0) * (2.0*s + tt - 2.0)
		n[6] = 2.0 * r * (tt - 1.0) * (r + s - 1.0)
		n[7] = -2.0 * r * s * (tt - 1.0)
		n[8] = 2.0 * s * (tt - 1.0) * (r + s - 1.0)
		n[9] = -2.0 * r * (tt + 1.0) * (r + s - 1.0)
		n[10] = 2.0 * r * s * (tt + 1.0)
		n[11] = -2.0 * s * (tt + 1.0) * (r + s - 1.0)
		n[12] = (tt*tt - 1.0) * (r + s - 1.0)
		n[13] = -r * (tt*tt - 1.0)
		n[14] = -s * (tt*tt - 1.0)
	case model.Volume20:
		n[0] = 0.125 * (r - 1.0) * (s - 1.0) * (tt - 1.0) * (r + s + tt + 2.0)
		n[1] = 0.125 * (r + 1.0) * (s - 1.0) * (tt - 1.0) * (r - s - tt - 2.0)
		n[2] = -0.125 * (r + 1.0) * (s + 1.0) * (tt - 1.0) * (r + s - tt - 2.0)
		n[3] = -0.125 * (r - 1.0) * (s + 1.0) * (tt - 1.0) * (r - s + tt + 2.0)
		n[4] = -0.125 * (r - 1.0) * (s - 1.0) * (tt + 1.0) * (r + s - tt + 2.0)
		n[5] = -0.125 * (r + 1.0) * (s - 1.0) * (tt + 1.0) * (r - s + tt - 2.0)
		n[6] = 0.125 * (r + 1.0) * (s + 1.0) * (tt + 1.0) * (r + s + tt - 2.0)
		n[7] = 0.125 * (r - 1.0) * (s + 1.0) * (tt + 1.0) * (r - s - tt + 2.0)
		n[8] = -0.25 * (r*r - 1.0) * (s - 1.0) * (tt - 1.0)
		n[9] = 0.25 * (s*s - 1.0) * (r + 1.0) * (tt - 1.0)
		n[10] = 0.25 * (r*r - 1.0) * (s + 1.0) * (tt - 1.0)
		n[11] = -0.25 * (s*s - 1.0) * (r - 1.0) * (tt - 1.0)
		n[12] = 0.25 * (r*r - 1.0) * (s - 1.0) * (tt + 1.0)
		n[13] = -0.25 * (s*s - 1.0) * (r + 1.0) * (tt + 1.0)
		n[14] = -0.25 * (r*r - 1.0) * (s + 1.0) * (tt + 1.0)
		n[15] = 0.25 * (s*s - 1.0) * (r - 1.0) * (tt + 1.0)
		n[16] = -0.25 * (tt*tt - 1.0) * (r - 1.0) * (s - 1.0)
		n[17] = 0.25 * (tt*tt - 1.0) * (r + 1.0) * (s - 1.0)
		n[18] = -0.25 * (tt*tt - 1.0) * (r + 1.0) * (s + 1.0)
		n[19] = 0.25 * (tt*tt - 1.0) * (r - 1.0) * (s + 1.0)
	}
	return n
}

// NaturalDerivatives evaluates the natural derivatives of the element shape functions at
// the given natural coordinates. Returns a 3×nodeCount matrix (rows r, s, t); rows beyond
// the element's dimensionality are left at zero.
func NaturalDerivatives(t model.ElementType, r, s, tt float64) [][]float64 {
	n := t.NodeCount()
	nr := make([][]float64, 3)
	for i := range nr {
		nr[i] = make([]float64, n)
	}
	switch t {
	case model.Line2:
		nr[0][0] = -0.5
		nr[0][1] = 0.5
	case model.Line3:
		nr[0][0] = r - 0.5
		nr[0][1] = r + 0.5
		nr[0][2] = -2.0 * r
	case model.Plane3:
		nr[0][0], nr[0][1], nr[0][2] = -1.0, 1.0, 0.0
		nr[1][0], nr[1][1], nr[1][2] = -1.0, 0.0, 1.0
	case model.Plane4:
		nr[0][0] = 0.25 * (s - 1.0)
		nr[0][1] = -0.25 * (s - 1.0)
		nr[0][2] = 0.25 * (s + 1.0)
		nr[0][3] = -0.25 * (s + 1.0)
		nr[1][0] = 0.25 * (r - 1.0)
		nr[1][1] = -0.25 * (r + 1.0)
		nr[1][2] = 0.25 * (r + 1.0)
		nr[1][3] = -0.25 * (r - 1.0)
	case model.Plane6:
		nr[0][0] = 4.0*r + 4.0*s - 3.0
		nr[0][1] = 4.0*r - 1.0
		nr[0][2] = 0.0
		nr[0][3] = 4.0 - 8.0*r - 4.0*s
		nr[0][4] = 4.0 * s
		nr[0][5] = -4.0 * s
		nr[1][0] = 4.0*r + 4.0*s - 3.0
		nr[1][1] = 0.0
		nr[1][2] = 4.0*s - 1.0
		nr[1][3] = -4.0 * r
		nr[1][4] = 4.0 * r
		nr[1][5] = 4.0 - 8.0*s - 4.0*r
	case model.Plane8:
		nr[0][0] = -0.25 * (2.0*r + s) * (s - 1.0)
		nr[0][1] = -0.25 * (2.0*r - s) * (s - 1.0)
		nr[0][2] = 0.25 * (2.0*r + s) * (s + 1.0)
		nr[0][3] = 0.25 * (2.0*r - s) * (s + 1.0)
		nr[0][4] = r * (s - 1.0)
		nr[0][5] = -0.5 * (s*s - 1.0)
		nr[0][6] = -r * (s + 1.0)
		nr[0][7] = 0.5 * (s*s - 1.0)
		nr[1][0] = -0.25 * (r + 2.0*s) * (r - 1.0)
		nr[1][1] = -0.25 * (r - 2.0*s) * (r + 1.0)
		nr[1][2] = 0.25 * (r + 2.0*s) * (r + 1.0)
		nr[1][3] = 0.25 * (r - 2.0*s) * (r - 1.0)
		nr[1][4] = 0.5 * (r*r - 1.0)
		nr[1][5] = -s * (r + 1.0)
		nr[1][6] = -0.5 * (r*r - 1.0)
		nr[1][7] = s * (r - 1.0)
	case model.Volume4:
		nr[0][0], nr[0][1], nr[0][2], nr[0][3] = -1.0, 1.0, 0.0, 0.0
		nr[1][0], nr[1][1], nr[1][2], nr[1][3] = -1.0, 0.0, 1.0, 0.0
		nr[2][0], nr[2][1], nr[2][2], nr[2][3] = -1.0, 0.0, 0.0, 1.0
	case model.Volume6:
		nr[0][0] = 0.5 * (tt - 1.0)
		nr[0][1] = -0.5 * (tt - 1.0)
		nr[0][2] = 0.0
		nr[0][3] = -0.5 * (tt + 1.0)
		nr[0][4] = 0.5 * (tt + 1.0)
		nr[0][5] = 0.0
		nr[1][0] = 0.5 * (tt - 1.0)
		nr[1][1] = 0.0
		nr[1][2] = -0.5 * (tt - 1.0)
		nr[1][3] = -0.5 * (tt + 1.0)
		nr[1][4] = 0.0
		nr[1][5] = 0.5 * (tt + 1.0)
		nr[2][0] = 0.5 * (r + s - 1.0)
		nr[2][1] = -0.5 * r
		nr[2][2] = -0.5 * s
		nr[2][3] = -0.5 * (r + s - 1.0)
		nr[2][4] = 0.5 * r
		nr[2][5] = 0.5 * s
	case model.Volume8:
		nr[0][0] = -0.125 * (s - 1.0) * (tt - 1.0)
		nr[0][1] = 0.125 * (s - 1.0) * (tt - 1.0)
		nr[0][2] = -0.125 * (s + 1.0) * (tt - 1.0)
		nr[0][3] = 0.125 * (s + 1.0) * (tt - 1.0)
		nr[0][4] = 0.125 * (s - 1.0) * (tt + 1.0)
		nr[0][5] = -0.125 * (s - 1.0) * (tt + 1.0)
		nr[0][6] = 0.125 * (s + 1.0) * (tt + 1.0)
		nr[0][7] = -0.125 * (s + 1.0) * (tt + 1.0)
		nr[1][0] = -0.125 * (r - 1.0) * (tt - 1.0)
		nr[1][1] = 0.125 * (r + 1.0) * (tt - 1.0)
		nr[1][2] = -0.125 * (r + 1.0) * (tt - 1.0)
		nr[1][3] = 0.125 * (r - 1.0) * (tt - 1.0)
		nr[1][4] = 0.125 * (r - 1.0) * (tt + 1.0)
		nr[1][5] = -0.125 * (r + 1.0) * (tt + 1.0)
		nr[1][6] = 0.125 * (r + 1.0) * (tt + 1.0)
		nr[1][7] = -0.125 * (r - 1.0) * (tt + 1.0)
		nr[2][0] = -0.125 * (r - 1.0) * (s - 1.0)
		nr[2][1] = 0.125 * (r + 1.0) * (s - 1.0)
		nr[2][2] = -0.125 * (r + 1.0) * (s + 1.0)
		nr[2][3] = 0.125 * (r - 1.0) * (s + 1.0)
		nr[2][4] = 0.125 * (r - 1.0) * (s - 1.0)
		nr[2][5] = -0.125 * (r + 1.0) * (s - 1.0)
		nr[2][6] = 0.125 * (r + 1.0) * (s + 1.0)
		nr[2][7] = -0.125 * (r - 1.0) * (s + 1.0)
	case model.Volume10:
		nr[0][0] = 4.0*r + 4.0*s + 4.0*tt - 3.0
		nr[0][1] = 4.0*r - 1.0
		nr[0][2] = 0.0
		nr[0][3] = 0.0
		nr[0][4] = 4.0 - 8.0*r - 4.0*s - 4.0*tt
		nr[0][5] = 4.0 * s
		nr[0][6] = -4.0 * s
		nr[0][7] = -4.0 * tt
		nr[0][8] = 4.0 * tt
		nr[0][9] = 0.0
		nr[1][0] = 4.0*r + 4.0*s + 4.0*tt - 3.0
		nr[1][1] = 0.0
		nr[1][2] = 4.0*s - 1.0
		nr[1][3] = 0.0
		nr[1][4] = -4.0 * r
		nr[1][5] = 4.0 * r
		nr[1][6] = 4.0 - 4.0*r - 8.0*s - 4.0*tt
		nr[1][7] = -4.0 * tt
		nr[1][8] = 0.0
		nr[1][9] = 4.0 * tt
		nr[2][0] = 4.0*r + 4.0*s + 4.0*tt - 3.0
		nr[2][1] = 0.0
		nr[2][2] = 0.0
		nr[2][3] = 4.0*tt - 1.0
		nr[2][4] = -4.0 * r
		nr[2][5] = 0.0
		nr[2][6] = -4.0 * s
		nr[2][7] = 4.0 - 4.0*r - 4.0*s - 8.0*tt
		nr[2][8] = 4.0 * r
		nr[2][9] = 4.0 * s
	case model.Volume15:
		nr[0][0] = -0.5 * (tt - 1.0) * (4.0*r + 4.0*s + tt - 2.0)
		nr[0][1] = 0.5 * (tt - 1.0) * (tt - 4.0*r + 2.0)
		nr[0][2] = 0.0
		nr[0][3] = 0.5 * (tt + 1.0) * (4.0*r + 4.0*s - tt - 2.0)
		nr[0][4] = 0.5 * (tt + 1.0) * (4.0*r + tt - 2.0)
		nr[0][5] = 0.0
		nr[0][6] = 2.0 * (tt - 1.0) * (2.0*r + s - 1.0)
		nr[0][7] = -2.0 * s * (tt - 1.0)
		nr[0][8] = 2.0 * s * (tt - 1.0)
		nr[0][9] = -2.0 * (tt + 1.0) * (2.0*r + s - 1.0)
		nr[0][10] = 2.0 * s * (tt + 1.0)
		nr[0][11] = -2.0 * s * (tt + 1.0)
		nr[0][12] = tt*tt - 1.0
		nr[0][13] = 1.0 - tt*tt
		nr[0][14] = 0.0
		nr[1][0] = -0.5 * (tt - 1.0) * (4.0*r + 4.0*s + tt - 2.0)
		nr[1][1] = 0.0
		nr[1][2] = 0.5 * (tt - 1.0) * (tt - 4.0*s + 2.0)
		nr[1][3] = 0.5 * (tt + 1.0) * (4.0*r + 4.0*s - tt - 2.0)
		nr[1][4] = 0.0
		nr[1][5] = 0.5 * (tt + 1.0) * (4.0*s + tt - 2.0)
		nr[1][6] = 2.0 * r * (tt - 1.0)
		nr[1][7] = -2.0 * r * (tt - 1.0)
		nr[1][8] = 2.0 * (tt - 1.0) * (r + 2.0*s - 1.0)
		nr[1][9] = -2.0 * r * (tt + 1.0)
		nr[1][10] = 2.0 * r * (tt + 1.0)
		nr[1][11] = -2.0 * (tt + 1.0) * (r + 2.0*s - 1.0)
		nr[1][12] = tt*tt - 1.0
		nr[1][13] = 0.0
		nr[1][14] = 1.0 - tt*tt
		nr[2][0] = -0.5 * (r + s - 1.0) * (2.0*r + 2.0*s + 2.0*tt - 1.0)
		nr[2][1] = 0.5 * r * (2.0*tt - 2.0*r + 1.0)
		nr[2][2] = 0.5 * s * (2.0*tt - 2.0*s + 1.0)
		nr[2][3] = 0.5 * (r + s - 1.0) * (2.0*r + 2.0*s - 2.0*tt - 1.0)
		nr[2][4] = 0.5 * r * (2.0*r + 2.0*tt - 1.0)
		nr[2][5] = 0.5 * s * (2.0*s + 2.0*tt - 1.0)
		nr[2][6] = 2.0 * r * (r + s - 1.0)
		nr[2][7] = -2.0 * r * s
		nr[2][8] = 2.0 * s * (r + s - 1.0)
		nr[2][9] = -2.0 * r * (r + s - 1.0)
		nr[2][10] = 2.0 * r * s
		nr[2][11] = -2.0 * s * (r + s - 1.0)
		nr[2][12] = 2.0 * tt * (r + s - 1.0)
		nr[2][13] = -2.0 * r * tt
		nr[2][14] = -2.0 * s * tt
	case model.Volume20:
		nr[0][0] = 0.125 * (s - 1.0) * (tt - 1.0) * (2.0*r + s + tt + 1.0)
		nr[0][1] = 0.125 * (s - 1.0) * (tt - 1.0) * (2.0*r - s - tt - 1.0)
		nr[0][2] = -0.125 * (s + 1.0) * (tt - 1.0) * (2.0*r + s - tt - 1.0)
		nr[0][3] = -0.125 * (s + 1.0) * (tt - 1.0) * (2.0*r - s + tt + 1.0)
		nr[0][4] = -0.125 * (s - 1.0) * (tt + 1.0) * (2.0*r + s - tt + 1.0)
		nr[0][5] = -0.125 * (s - 1.0) * (tt + 1.0) * (2.0*r - s + tt - 1.0)
		nr[0][6] = 0.125 * (s + 1.0) * (tt + 1.0) * (2.0*r + s + tt - 1.0)
		nr[0][7] = 0.125 * (s + 1.0) * (tt + 1.0) * (2.0*r - s - tt + 1.0)
		nr[0][8] = -0.50 * r * (s - 1.0) * (tt - 1.0)
		nr[0][9] = 0.25 * (s*s - 1.0) * (tt - 1.0)
		nr[0][10] = 0.50 * r * (s + 1.0) * (tt - 1.0)
		nr[0][11] = -0.25 * (s*s - 1.0) * (tt - 1.0)
		nr[0][12] = 0.50 * r * (s - 1.0) * (tt + 1.0)
		nr[0][13] = -0.25 * (s*s - 1.0) * (tt + 1.0)
		nr[0][14] = -0.50 * r * (s + 1.0) * (tt + 1.0)
		nr[0][15] = 0.25 * (s*s - 1.0) * (tt + 1.0)
		nr[0][16] = -0.25 * (tt*tt - 1.0) * (s - 1.0)
		nr[0][17] = 0.25 * (tt*tt - 1.0) * (s - 1.0)
		nr[0][18] = -0.25 * (tt*tt - 1.0) * (s + 1.0)
		nr[0][19] = 0.25 * (tt*tt - 1.0) * (s + 1.0)
		nr[1][0] = 0.125 * (r - 1.0) * (tt - 1.0) * (r + 2.0*s + tt + 1.0)
		nr[1][1] = 0.125 * (r + 1.0) * (tt - 1.0) * (r - 2.0*s - tt - 1.0)
		nr[1][2] = -0.125 * (r + 1.0) * (tt - 1.0) * (r + 2.0*s - tt - 1.0)
		nr[1][3] = -0.125 * (r - 1.0) * (tt - 1.0) * (r - 2.0*s + tt + 1.0)
		nr[1][4] = -0.125 * (r - 1.0) * (tt + 1.0) * (r + 2.0*s - tt + 1.0)
		nr[1][5] = -0.125 * (r + 1.0) * (tt + 1.0) * (r - 2.0*s + tt - 1.0)
		nr[1][6] = 0.125 * (r + 1.0) * (tt + 1.0) * (r + 2.0*s + tt - 1.0)
		nr[1][7] = 0.125 * (r - 1.0) * (tt + 1.0) * (r - 2.0*s - tt + 1.0)
		nr[1][8] = -0.25 * (r*r - 1.0) * (tt - 1.0)
		nr[1][9] = 0.50 * s * (r + 1.0) * (tt - 1.0)
		nr[1][10] = 0.25 * (r*r - 1.0) * (tt - 1.0)
		nr[1][11] = -0.50 * s * (r - 1.0) * (tt - 1.0)
		nr[1][12] = 0.25 * (r*r - 1.0) * (tt + 1.0)
		nr[1][13] = -0.50 * s * (r + 1.0) * (tt + 1.0)
		nr[1][14] = -0.25 * (r*r - 1.0) * (tt + 1.0)
		nr[1][15] = 0.50 * s * (r - 1.0) * (tt + 1.0)
		nr[1][16] = -0.25 * (tt*tt - 1.0) * (r - 1.0)
		nr[1][17] = 0.25 * (tt*tt - 1.0) * (r + 1.0)
		nr[1][18] = -0.25 * (tt*tt - 1.0) * (r + 1.0)
		nr[1][19] = 0.25 * (tt*tt - 1.0) * (r - 1.0)
		nr[2][0] = 0.125 * (r - 1.0) * (s - 1.0) * (r + s + 2.0*tt + 1.0)
		nr[2][1] = 0.125 * (r + 1.0) * (s - 1.0) * (r - s - 2.0*tt - 1.0)
		nr[2][2] = -0.125 * (r + 1.0) * (s + 1.0) * (r + s - 2.0*tt - 1.0)
		nr[2][3] = -0.125 * (r - 1.0) * (s + 1.0) * (r - s + 2.0*tt + 1.0)
		nr[2][4] = -0.125 * (r - 1.0) * (s - 1.0) * (r + s - 2.0*tt + 1.0)
		nr[2][5] = -0.125 * (r + 1.0) * (s - 1.0) * (r - s + 2.0*tt - 1.0)
		nr[2][6] = 0.125 * (r + 1.0) * (s + 1.0) * (r + s + 2.0*tt - 1.0)
		nr[2][7] = 0.125 * (r - 1.0) * (s + 1.0) * (r - s - 2.0*tt + 1.0)
		nr[2][8] = -0.25 * (r*r - 1.0) * (s - 1.0)
		nr[2][9] = 0.25 * (s*s - 1.0) * (r + 1.0)
		nr[2][10] = 0.25 * (r*r - 1.0) * (s + 1.0)
		nr[2][11] = -0.25 * (s*s - 1.0) * (r - 1.0)
		nr[2][12] = 0.25 * (r*r - 1.0) * (s - 1.0)
		nr[2][13] = -0.25 * (s*s - 1.0) * (r + 1.0)
		nr[2][14] = -0.25 * (r*r - 1.0) * (s + 1.0)
		nr[2][15] = 0.25 * (s*s - 1.0) * (r - 1.0)
		nr[2][16] = -0.50 * tt * (r - 1.0) * (s - 1.0)
		nr[2][17] = 0.50 * tt * (r + 1.0) * (s - 1.0)
		nr[2][18] = -0.50 * tt * (r + 1.0) * (s + 1.0)
		nr[2][19] = 0.50 * tt * (r - 1.0) * (s + 1.0)
	}
	return nr
}

// ExtrapolationApproach returns the least-squares extrapolation basis used to project
// Gauss-point values to element nodes, mirroring the integration scheme actually used.
func ExtrapolationApproach(t model.ElementType, reduced bool) string {
	switch t {
	case model.Line2:
		if reduced {
			return "constant"
		}
		return "linear in r"
	case model.Line3:
		return "linear in r"
	case model.Plane3:
		return "constant"
	case model.Plane4:
		if reduced {
			return "constant"
		}
		return "bilinear in r, s"
	case model.Plane6, model.Plane8:
		return "bilinear in r, s"
	case model.Volume4:
		return "constant"
	case model.Volume6:
		return "linear in t"
	case model.Volume8:
		if reduced {
			return "constant"
		}
		return "trilinear in r, s, t"
	case model.Volume10, model.Volume15, model.Volume20:
		return "trilinear in r, s, t"
	default:
		return "constant"
	}
}
