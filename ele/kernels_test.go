// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/carlos-souto/FEAPACK/model"
)

// unitSquare builds a one-element MDB for a unit Plane4 (E=1, nu=0, rho=1, thickness=1)
// with properties and DOFs assigned, ready for kernel evaluation.
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

func nearlySymmetric(t *testing.T, a [][]float64, tol float64) {
	t.Helper()
	for i := range a {
		for j := range a[i] {
			if math.Abs(a[i][j]-a[j][i]) > tol {
				t.Errorf("matrix not symmetric at (%d,%d): %v vs %v", i, j, a[i][j], a[j][i])
			}
		}
	}
}

func TestStiffnessMatrixSymmetric(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	k := StiffnessMatrix(e)
	nearlySymmetric(t, k, 1e-10)
}

func TestStiffnessMatrixRigidBodyNullspace(t *testing.T) {
	// a rigid-body translation in x produces zero net nodal force
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	k := StiffnessMatrix(e)
	u := make([]float64, 8)
	for i := 0; i < 4; i++ {
		u[i*2] = 1.0
	}
	f := matVec(k, u)
	for _, v := range f {
		if math.Abs(v) > 1e-9 {
			t.Errorf("rigid-body translation produced nonzero force: %v", f)
			break
		}
	}
}

func TestMassMatrixRowSumEqualsTotalMass(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	m := MassMatrix(e)
	// total mass = rho * area * thickness = 1, distributed over the 2 DOFs per node
	var sum float64
	for i := 0; i < len(m); i += 2 {
		for j := 0; j < len(m[i]); j += 2 {
			sum += m[i][j]
		}
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("consistent mass matrix total = %v, want 1", sum)
	}
}

func TestBodyLoadVectorTotalsComponent(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	pb := BodyLoadVector(e, [3]float64{0, -2, 0})
	var sum float64
	for i := 1; i < len(pb); i += 2 {
		sum += pb[i]
	}
	if math.Abs(sum-(-2.0)) > 1e-9 {
		t.Errorf("total body load in y = %v, want -2", sum)
	}
}

func TestSurfaceLoadVectorTraction(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	// surface 1 of Plane4 is the edge from local node 1 to node 2 (nodes 1,2 at x=1)
	surf := e.Surfaces()[1]
	ps := SurfaceLoadVector(surf, 0.0, [3]float64{1.0, 0.0, 0.0})
	var sum float64
	for i := 0; i < len(ps); i += 2 {
		sum += ps[i]
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("total traction in x = %v, want 1 (unit edge length, unit traction)", sum)
	}
}

func TestInternalForceVectorMatchesStiffnessTimesDisplacement(t *testing.T) {
	mdb := unitSquare(t)
	e := mdb.Mesh().Elements()[0]
	k := StiffnessMatrix(e)
	u := []float64{0, 0, 0.1, 0, 0.1, 0, 0, 0}
	want := matVec(k, u)

	ua := make([]float64, mdb.Mesh().ActiveDOFCount())
	ub := make([]float64, mdb.Mesh().InactiveDOFCount())
	al, ag := e.ActiveLocalDOFs(), e.ActiveGlobalDOFs()
	for i := range al {
		ua[ag[i]] = u[al[i]]
	}
	il, ig := e.InactiveLocalDOFs(), e.InactiveGlobalDOFs()
	for i := range il {
		ub[ig[i]] = u[il[i]]
	}
	res := InternalForceVector(e, ua, ub)
	got := make([]float64, e.DOFCount())
	for i := range al {
		got[al[i]] = res.F[al[i]]
	}
	_ = got
	// internal force gathered back through global vectors should reconstruct want
	fa, fb := make([]float64, mdb.Mesh().ActiveDOFCount()), make([]float64, mdb.Mesh().InactiveDOFCount())
	for i := range al {
		fa[ag[i]] += res.F[al[i]]
	}
	for i := range il {
		fb[ig[i]] += res.F[il[i]]
	}
	full := make([]float64, e.DOFCount())
	for i := range al {
		full[al[i]] = fa[ag[i]]
	}
	for i := range il {
		full[il[i]] = fb[ig[i]]
	}
	for i := range want {
		if math.Abs(want[i]-full[i]) > 1e-9 {
			t.Errorf("F[%d] = %v, want %v", i, full[i], want[i])
		}
	}
}
