// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/out"
)

// cantilever builds an unvalidated (DOFs not yet built) two-element cantilever MDB, ready
// for Solve, which performs BuildDOFs/AssignElementProperties itself.
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
	mdb.NodeSetFromIndices("tip", []int{5})
	mdb.ConcentratedLoad("tip", 0, -1.0, 0)
	return mdb
}

func TestSolveStaticWritesTwoFrames(t *testing.T) {
	mdb := cantilever(t)
	job := filepath.Join(t.TempDir(), "job")
	if err := Solve(mdb, Options{Analysis: "static", JobName: job, Workers: 1, WriteLog: true}); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	db, err := out.Open(job+".out", out.Read)
	if err != nil {
		t.Fatalf("cannot open output database: %v", err)
	}
	if db.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, want 2", db.FrameCount())
	}

	db.GoToFrame(1)
	values, err := db.GetNodeOutputValues("Displacement>Displacement in Y")
	if err != nil {
		t.Fatalf("GetNodeOutputValues failed: %v", err)
	}
	if values[5] >= 0 {
		t.Errorf("tip displacement in Y = %v, want negative (load pulls it down)", values[5])
	}

	if _, err := os.Stat(job + ".log"); err != nil {
		t.Errorf("expected log file to be written: %v", err)
	}
}

func TestSolveFrequencyWritesRequestedModeCount(t *testing.T) {
	mdb := cantilever(t)
	job := filepath.Join(t.TempDir(), "job")
	if err := Solve(mdb, Options{Analysis: "frequency", Modes: 3, JobName: job, Workers: 2}); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	db, err := out.Open(job+".out", out.Read)
	if err != nil {
		t.Fatalf("cannot open output database: %v", err)
	}
	if db.FrameCount() != 3 {
		t.Errorf("FrameCount() = %d, want 3", db.FrameCount())
	}
}

func TestSolveBucklingReportsNonzeroLoadFactor(t *testing.T) {
	mdb := cantilever(t)
	job := filepath.Join(t.TempDir(), "job")
	if err := Solve(mdb, Options{Analysis: "buckling", Modes: 2, JobName: job, Workers: 1}); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	db, err := out.Open(job+".out", out.Read)
	if err != nil {
		t.Fatalf("cannot open output database: %v", err)
	}
	db.GoToFirstFrame()
	eigenvalue, err := db.GetGlobalOutputValues("General>Eigenvalue")
	if err != nil {
		t.Fatalf("GetGlobalOutputValues failed: %v", err)
	}
	if eigenvalue == 0 {
		t.Errorf("expected a nonzero critical load factor")
	}
}

func TestSolveAbortsOnValidationErrors(t *testing.T) {
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
	mat := mdb.Material("bad", -1.0, 0.3, 1.0) // invalid: non-positive Young's modulus
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)

	job := filepath.Join(t.TempDir(), "job")
	err := Solve(mdb, Options{Analysis: "static", JobName: job, WriteLog: true})
	if err == nil {
		t.Fatal("expected Solve to report the validation failure")
	}
	if _, statErr := os.Stat(job + ".out"); statErr == nil {
		t.Errorf("expected no output database to be written when validation fails")
	}
}
