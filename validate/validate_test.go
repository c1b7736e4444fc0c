// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
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
	return mdb
}

func TestCheckFlagsOverDefinedSection(t *testing.T) {
	mdb := unitSquare(t)
	mat := mdb.Material("steel", 1.0, 0.0, 1.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)

	report := Check(mdb, "static")
	if len(report.Errors) == 0 {
		t.Fatal("expected an over-defined-section error, got none")
	}
}

func TestCheckFlagsUndefinedSection(t *testing.T) {
	mdb := unitSquare(t)
	report := Check(mdb, "static")
	if len(report.Errors) == 0 {
		t.Fatal("expected an undefined-section error, got none")
	}
}

func TestCheckFlagsInvalidMaterial(t *testing.T) {
	mdb := unitSquare(t)
	mat := mdb.Material("bad", -1.0, 0.7, -1.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)

	report := Check(mdb, "static")
	if len(report.Errors) < 3 {
		t.Fatalf("expected 3 material errors (E, nu, rho), got %d: %v", len(report.Errors), report.Errors)
	}
}

func TestCheckWarnsOnZeroMagnitudeLoad(t *testing.T) {
	mdb := unitSquare(t)
	mat := mdb.Material("steel", 1.0, 0.0, 1.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)
	mdb.NodeSetFromIndices("tip", []int{1})
	mdb.ConcentratedLoad("tip", 0, 0, 0)

	report := Check(mdb, "static")
	found := false
	for _, w := range report.Warnings {
		if w == "concentrated load has a magnitude of zero" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a zero-magnitude warning, got %v", report.Warnings)
	}
}

func TestCheckFrequencyRequiresPositiveDensitySomewhere(t *testing.T) {
	mdb := unitSquare(t)
	mat := mdb.Material("steel", 1.0, 0.0, 0.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)

	report := Check(mdb, "frequency")
	found := false
	for _, e := range report.Errors {
		if e == "the mass density must be specified for a frequency analysis" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a mass-density error for frequency analysis, got %v", report.Errors)
	}
}

func TestCheckPassesCleanModel(t *testing.T) {
	mdb := unitSquare(t)
	mat := mdb.Material("steel", 1.0, 0.3, 1.0)
	mdb.SectionDef("all", mat, model.PlaneStress, 1.0, false)

	report := Check(mdb, "static")
	if len(report.Errors) != 0 {
		t.Errorf("expected no errors for a clean model, got %v", report.Errors)
	}
}
