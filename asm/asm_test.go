// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"math"
	"testing"

	"github.com/carlos-souto/FEAPACK/model"
)

// cantilever builds a two-element strip (two unit Plane4 squares sharing an edge), fixed at
// x=0 and loaded with a concentrated force at the free corner, ready for assembly.
func cantilever(t *testing.T) *model.MDB {
	t.Helper()
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
	mat := mdb.Material("steel", 1000.0, 0.3, 1.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)
	mdb.NodeSetFromIndices("fixed", []int{0, 3})
	zero := 0.0
	mdb.BoundaryCondition("fixed", &zero, &zero, nil)
	mdb.ConcentratedLoad("tip", 0, -1.0, 0)
	mdb.NodeSetFromIndices("tip", []int{5})
	mdb.AssignElementProperties()
	mdb.BuildDOFs()
	return mdb
}

func TestStiffnessMatrixAssemblySymmetric(t *testing.T) {
	mdb := cantilever(t)
	blocks := StiffnessMatrix(mdb, 1)
	dense := blocks.Aa.Dense()
	for i := range dense {
		for j := range dense[i] {
			if math.Abs(dense[i][j]-dense[j][i]) > 1e-9 {
				t.Errorf("Kaa not symmetric at (%d,%d): %v vs %v", i, j, dense[i][j], dense[j][i])
			}
		}
	}
}

func TestStiffnessMatrixAssemblyParallelMatchesSequential(t *testing.T) {
	mdb := cantilever(t)
	seq := StiffnessMatrix(mdb, 1)
	par := StiffnessMatrix(mdb, 4)
	a, b := seq.Aa.Dense(), par.Aa.Dense()
	for i := range a {
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > 1e-12 {
				t.Errorf("parallel assembly mismatch at (%d,%d): %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestConcentratedLoadVectorGathersActiveComponent(t *testing.T) {
	mdb := cantilever(t)
	pc := ConcentratedLoadVector(mdb)
	var sum float64
	for _, v := range pc {
		sum += v
	}
	if math.Abs(sum-(-1.0)) > 1e-12 {
		t.Errorf("total concentrated load = %v, want -1", sum)
	}
}

func TestPrescribedDisplacementVectorAllZero(t *testing.T) {
	mdb := cantilever(t)
	ub := PrescribedDisplacementVector(mdb)
	for _, v := range ub {
		if v != 0 {
			t.Errorf("expected all-zero prescribed displacements, got %v", ub)
			break
		}
	}
	if len(ub) != mdb.Mesh().InactiveDOFCount() {
		t.Errorf("Ub length = %d, want %d", len(ub), mdb.Mesh().InactiveDOFCount())
	}
}

func TestBodyLoadVectorTotalsAcceleration(t *testing.T) {
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
	mdb.Acceleration("all", 0, -1.0, 0)
	mdb.AssignElementProperties()
	mdb.BuildDOFs() // no boundary conditions: every DOF is active

	pb := BodyLoadVector(mdb, 1)
	var sum float64
	for i := 1; i < len(pb); i += 2 {
		sum += pb[i]
	}
	// total mass = rho * area * thickness = 1, times acceleration -1 in y
	if math.Abs(sum-(-1.0)) > 1e-9 {
		t.Errorf("total body load in y = %v, want -1", sum)
	}
}
