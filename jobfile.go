// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/carlos-souto/FEAPACK/inp"
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/cpmech/gosl/chk"
)

// jobFile is the thin JSON-driven job description this CLI's "solve" subcommand reads.
// There is no spec-defined format for it: the core is a library (spec.md §6 "CLI surface:
// None for the core"), so this mirrors the teacher's own root-level driver, which read an
// ad hoc text format (.sim) and built an in-memory model from it. Plain encoding/json is
// used rather than an ecosystem config library since this is a bespoke, one-off schema
// with no nesting/templating/env-merge concern a library like viper would earn its keep
// on.
type jobFile struct {
	Mesh        string          `json:"mesh"`
	Materials   []jobMaterial   `json:"materials"`
	Sections    []jobSection    `json:"sections"`
	SurfaceSets []jobSurfaceSet `json:"surfaceSetsFromNodes"`
	Loads       jobLoads        `json:"loads"`
	BCs         []jobBC         `json:"boundaryConditions"`
}

// jobSurfaceSet names a new surface set built from the surfaces whose every node lies in
// an existing node set (model.MDB.SurfaceSetFromNodes), since the Abaqus reader (§6)
// never produces surface sets directly.
type jobSurfaceSet struct {
	Name    string `json:"name"`
	NodeSet string `json:"nodeSet"`
}

type jobMaterial struct {
	Name    string  `json:"name"`
	Young   float64 `json:"young"`
	Poisson float64 `json:"poisson"`
	Density float64 `json:"density"`
}

type jobSection struct {
	Region             string  `json:"region"`
	Material           string  `json:"material"`
	Type               string  `json:"type"` // "planeStress", "planeStrain", "axisymmetric", "general"
	Thickness          float64 `json:"thickness"`
	ReducedIntegration bool    `json:"reducedIntegration"`
}

type jobLoads struct {
	Concentrated []jobVectorLoad `json:"concentrated"`
	SurfaceTrac  []jobVectorLoad `json:"surfaceTraction"`
	Pressure     []jobScalarLoad `json:"pressure"`
	Body         []jobVectorLoad `json:"body"`
	Acceleration []jobVectorLoad `json:"acceleration"`
}

type jobVectorLoad struct {
	Region string  `json:"region"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

type jobScalarLoad struct {
	Region    string  `json:"region"`
	Magnitude float64 `json:"magnitude"`
}

type jobBC struct {
	Region string   `json:"region"`
	U      *float64 `json:"u"`
	V      *float64 `json:"v"`
	W      *float64 `json:"w"`
}

var sectionTypes = map[string]model.SectionType{
	"planestress":  model.PlaneStress,
	"planestrain":  model.PlaneStrain,
	"axisymmetric": model.Axisymmetric,
	"general":      model.General,
}

// loadJob reads path as JSON and builds a model.MDB from it: the mesh comes from the
// Abaqus input deck named by the "mesh" field, and everything else (materials, sections,
// loads, boundary conditions) is built imperatively against the node/element sets that
// deck defines, the way spec.md §3 describes MDB population.
func loadJob(path string) (*model.MDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read job file %q: %v", path, err)
	}
	var job jobFile
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, chk.Err("cannot parse job file %q: %v", path, err)
	}

	mdb, err := model.FromFile(job.Mesh, inp.NewReader)
	if err != nil {
		return nil, err
	}

	materials := map[string]*model.Material{}
	for _, m := range job.Materials {
		materials[m.Name] = mdb.Material(m.Name, m.Young, m.Poisson, m.Density)
	}

	for _, s := range job.Sections {
		mat, ok := materials[s.Material]
		if !ok {
			return nil, chk.Err("job file %q: section %q references unknown material %q", path, s.Region, s.Material)
		}
		kind, ok := sectionTypes[strings.ToLower(s.Type)]
		if !ok {
			return nil, chk.Err("job file %q: section %q has unknown type %q", path, s.Region, s.Type)
		}
		mdb.SectionDef(s.Region, mat, kind, s.Thickness, s.ReducedIntegration)
	}

	for _, ss := range job.SurfaceSets {
		nodeSet, ok := mdb.NodeSets()[ss.NodeSet]
		if !ok {
			return nil, chk.Err("job file %q: surface set %q references unknown node set %q", path, ss.Name, ss.NodeSet)
		}
		mdb.SurfaceSetFromNodes(ss.Name, nodeSet.Indices)
	}

	for _, l := range job.Loads.Concentrated {
		mdb.ConcentratedLoad(l.Region, l.X, l.Y, l.Z)
	}
	for _, l := range job.Loads.SurfaceTrac {
		mdb.SurfaceTraction(l.Region, l.X, l.Y, l.Z)
	}
	for _, l := range job.Loads.Pressure {
		mdb.Pressure(l.Region, l.Magnitude)
	}
	for _, l := range job.Loads.Body {
		mdb.BodyLoad(l.Region, l.X, l.Y, l.Z)
	}
	for _, l := range job.Loads.Acceleration {
		mdb.Acceleration(l.Region, l.X, l.Y, l.Z)
	}
	for _, bc := range job.BCs {
		mdb.BoundaryCondition(bc.Region, bc.U, bc.V, bc.W)
	}

	return mdb, nil
}

