// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"
	"testing"

	"github.com/carlos-souto/FEAPACK/model"
)

func unitSquare(t *testing.T) *model.MDB {
	t.Helper()
	nodes := []*model.Node{
		model.NewNode(0, 0, 0, 0),
		model.NewNode(1, 1, 0, 0),
		model.NewNode(2, 1, 1, 0),
		model.NewNode(3, 0, 1, 0),
	}
	elems := []*model.Element{model.NewElement(0, model.Plane4, []int{0, 1, 2, 3})}
	mesh := model.NewMesh(nodes, elems)
	mdb := model.NewMDB(mesh)
	mdb.ElementSetFromIndices("all", []int{0})
	mat := mdb.Material("steel", 1.0, 0.0, 1.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)
	mdb.AssignElementProperties()
	mdb.BuildDOFs()
	return mdb
}

func TestExtendStrainUniaxial(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	eps := [][]float64{{0.01}, {0}, {0}} // e11, e22, e12 (PlaneStress order)
	out := ExtendStrain(e, eps)
	if math.Abs(out[6][0]-0.01) > 1e-12 {
		t.Errorf("e1 = %v, want 0.01", out[6][0])
	}
	if math.Abs(out[9][0]-0.01) > 1e-12 {
		t.Errorf("eMajor = %v, want 0.01", out[9][0])
	}
}

func TestExtendStressEquivalents(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	sigma := [][]float64{{1}, {0}, {0}} // s11, s22, s12
	out := ExtendStress(e, sigma)
	if math.Abs(out[10][0]-1.0) > 1e-9 { // Tresca = |s1 - s3|
		t.Errorf("sTresca = %v, want 1", out[10][0])
	}
	if math.Abs(out[11][0]-1.0) > 1e-9 { // von Mises for uniaxial stress equals the stress
		t.Errorf("sMises = %v, want 1", out[11][0])
	}
}

func TestExtrapolateBilinearApproachShape(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0] // Plane4, full integration -> bilinear basis, not constant
	phi := [][]float64{{1, 2, 3, 4}}
	out := ExtrapolateWithinElement(e, phi)
	if len(out) != 1 || len(out[0]) != 4 {
		t.Fatalf("unexpected shape: %v", out)
	}
}

func TestSmoothingAveragesSharedNode(t *testing.T) {
	nodes := []*model.Node{
		model.NewNode(0, 0, 0, 0),
		model.NewNode(1, 1, 0, 0),
		model.NewNode(2, 1, 1, 0),
		model.NewNode(3, 0, 1, 0),
		model.NewNode(4, 2, 0, 0),
		model.NewNode(5, 2, 1, 0),
	}
	elems := []*model.Element{
		model.NewElement(0, model.Plane4, []int{0, 1, 2, 3}),
		model.NewElement(1, model.Plane4, []int{1, 4, 5, 2}),
	}
	mesh := model.NewMesh(nodes, elems)
	mdb := model.NewMDB(mesh)
	mdb.ElementSetFromIndices("all", []int{0, 1})
	mat := mdb.Material("steel", 1.0, 0.3, 1.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)
	mdb.AssignElementProperties()
	mdb.BuildDOFs()

	// shared nodes 1 and 2: element 0 reports 10, element 1 reports 20 -> average 15
	phiNds := [][][]float64{
		{{10, 10, 10, 10}},
		{{20, 20, 20, 20}},
	}
	out := Smoothing(mdb, phiNds)
	if math.Abs(out[1][0]-15.0) > 1e-12 {
		t.Errorf("node 1 smoothed value = %v, want 15", out[1][0])
	}
	if math.Abs(out[0][0]-10.0) > 1e-12 {
		t.Errorf("node 0 smoothed value = %v, want 10", out[0][0])
	}
}

func TestUnshuffleVectorMagnitude(t *testing.T) {
	mdb := unitSquare(t)
	ua := make([]float64, mdb.Mesh().ActiveDOFCount())
	ua[0], ua[1] = 3, 4
	out := UnshuffleVector(mdb, ua, nil)
	if math.Abs(out[0][3]-5.0) > 1e-12 {
		t.Errorf("magnitude = %v, want 5", out[0][3])
	}
}
