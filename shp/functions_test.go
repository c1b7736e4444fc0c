// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/carlos-souto/FEAPACK/model"
)

func sumTo1(t *testing.T, n []float64) {
	t.Helper()
	var sum float64
	for _, v := range n {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("shape functions do not sum to 1: got %v", sum)
	}
}

func TestShapeFunctionsPartitionOfUnity(t *testing.T) {
	types := []model.ElementType{
		model.Line2, model.Line3, model.Plane3, model.Plane4, model.Plane6, model.Plane8,
		model.Volume4, model.Volume6, model.Volume8, model.Volume10, model.Volume15, model.Volume20,
	}
	for _, typ := range types {
		for _, pt := range IntegrationPoints(typ, false) {
			sumTo1(t, ShapeFunctions(typ, pt.R, pt.S, pt.T))
		}
	}
}

func TestShapeFunctionsInterpolateNodes(t *testing.T) {
	// at each reference node i, N_i must be 1 and all others 0
	for _, typ := range []model.ElementType{model.Plane8, model.Volume20} {
		nodes := ReferenceNodes(typ)
		for i, nd := range nodes {
			n := ShapeFunctions(typ, nd[0], nd[1], nd[2])
			for j, v := range n {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(v-want) > 1e-9 {
					t.Errorf("%v: N[%d] at node %d = %v, want %v", typ, j, i, v, want)
				}
			}
		}
	}
}

func TestEvaluateElementTwoByTwoSquareJacobian(t *testing.T) {
	section := model.NewSection("r", nil, model.PlaneStress, 1.0, false)
	x := [][3]float64{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}
	var totalVol float64
	for _, pt := range IntegrationPoints(model.Plane4, false) {
		ev := EvaluateElement(model.Plane4, section, x, pt)
		totalVol += ev.Vol
	}
	if math.Abs(totalVol-4.0) > 1e-9 {
		t.Errorf("integrated area = %v, want 4", totalVol)
	}
}
