// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate runs the pre-flight consistency checks a model database must pass
// before any numeric work starts, collecting errors and warnings rather than failing at
// the first problem. Grounded line-for-line on
// original_source/feapack/solver/validation.py's checkMDB and its per-concern _check*
// helpers.
package validate

import (
	"fmt"

	"github.com/carlos-souto/FEAPACK/model"
)

// Report holds the error and warning messages collected by Check. The caller aborts the
// run iff len(Errors) > 0.
type Report struct {
	Errors   []string
	Warnings []string
}

func (r *Report) addError(format string, args ...interface{})   { r.Errors = append(r.Errors, fmt.Sprintf(format, args...)) }
func (r *Report) addWarning(format string, args ...interface{}) { r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...)) }

// Check runs every consistency check against mdb for the given analysis kind
// ("static", "frequency" or "buckling") and returns the collected report.
func Check(mdb *model.MDB, analysis string) *Report {
	r := &Report{}
	checkMesh(mdb, r)
	checkNodeSets(mdb, r)
	checkElementSets(mdb, r)
	checkSurfaceSets(mdb, r)
	checkMaterials(mdb, r)
	checkSections(mdb, r)
	checkConcentratedLoads(mdb, r)
	checkSurfaceTractions(mdb, r)
	checkPressures(mdb, r)
	checkBodyLoads(mdb, r)
	checkAccelerations(mdb, r)
	checkBoundaryConditions(mdb, r)
	if analysis == "frequency" {
		checkFrequencyAnalysis(mdb, r)
	}
	return r
}

// checkMesh checks that every element is covered by exactly one section.
func checkMesh(mdb *model.MDB, r *Report) {
	counts := make([]int, mdb.Mesh().ElementCount())
	for _, s := range mdb.Sections() {
		set, ok := mdb.ElementSets()[s.Region]
		if !ok {
			continue
		}
		for _, ei := range set.Indices {
			if ei >= 0 && ei < len(counts) {
				counts[ei]++
			}
		}
	}
	for _, c := range counts {
		if c != 1 {
			r.addError("elements with undefined or over-defined section assignments detected")
			return
		}
	}
}

func checkNodeSets(mdb *model.MDB, r *Report) {
	for name, set := range mdb.NodeSets() {
		if len(set.Indices) == 0 {
			r.addWarning("node set %q is empty", name)
			continue
		}
		if set.Indices[0] < 0 || set.Indices[len(set.Indices)-1] >= mdb.Mesh().NodeCount() {
			r.addError("node set %q contains invalid indices", name)
		}
	}
}

func checkElementSets(mdb *model.MDB, r *Report) {
	for name, set := range mdb.ElementSets() {
		if len(set.Indices) == 0 {
			r.addWarning("element set %q is empty", name)
			continue
		}
		if set.Indices[0] < 0 || set.Indices[len(set.Indices)-1] >= mdb.Mesh().ElementCount() {
			r.addError("element set %q contains invalid indices", name)
		}
	}
}

func checkSurfaceSets(mdb *model.MDB, r *Report) {
	for name, set := range mdb.SurfaceSets() {
		if len(set.Indices) == 0 {
			r.addWarning("surface set %q is empty", name)
			continue
		}
		for _, si := range set.Indices {
			if si.Element < 0 || si.Element >= mdb.Mesh().ElementCount() {
				r.addError("surface set %q contains invalid indices", name)
				break
			}
			if si.Local < 0 || si.Local >= len(mdb.Mesh().Elements()[si.Element].Surfaces()) {
				r.addError("surface set %q contains invalid indices", name)
				break
			}
		}
	}
}

func checkMaterials(mdb *model.MDB, r *Report) {
	for name, mat := range mdb.Materials() {
		if mat.Young <= 0.0 {
			r.addError("material %q has a Young's modulus that is less than or equal to zero", name)
		}
		if mat.Poisson <= -1.0 || mat.Poisson >= 0.5 {
			r.addError("material %q has a Poisson's ratio that lies outside the open interval of (-1.0, 0.5)", name)
		}
		if mat.Density < 0.0 {
			r.addError("material %q has a mass density that is less than zero", name)
		}
	}
}

func checkSections(mdb *model.MDB, r *Report) {
	for _, s := range mdb.Sections() {
		if _, ok := mdb.ElementSets()[s.Region]; !ok {
			r.addError("section for region %q references a non-existent element set", s.Region)
		}
		if s.Material == nil {
			r.addError("section for region %q has no assigned material", s.Region)
		}
		switch mdb.Mesh().ModelingSpace() {
		case model.TwoDimensional:
			if s.Type != model.PlaneStress && s.Type != model.PlaneStrain && s.Type != model.Axisymmetric {
				r.addError("section for region %q is invalid for the current modeling space", s.Region)
			}
		case model.ThreeDimensional:
			if s.Type != model.General {
				r.addError("section for region %q is invalid for the current modeling space", s.Region)
			}
		}
		if (s.Type == model.PlaneStress || s.Type == model.PlaneStrain) && s.Thickness <= 0.0 {
			r.addError("section for region %q has negative or no thickness", s.Region)
		}
	}
}

func checkConcentratedLoads(mdb *model.MDB, r *Report) {
	for _, load := range mdb.ConcentratedLoads() {
		if _, ok := mdb.NodeSets()[load.Region]; !ok {
			r.addError("concentrated load references a non-existent node set %q", load.Region)
		}
		checkPlanarLoad(mdb, r, "concentrated load", load.Magnitude(), load.Z)
	}
}

func checkSurfaceTractions(mdb *model.MDB, r *Report) {
	for _, load := range mdb.SurfaceTractions() {
		if _, ok := mdb.SurfaceSets()[load.Region]; !ok {
			r.addError("surface traction references a non-existent surface set %q", load.Region)
		}
		checkPlanarLoad(mdb, r, "surface traction", load.Magnitude(), load.Z)
	}
}

func checkPressures(mdb *model.MDB, r *Report) {
	for _, load := range mdb.Pressures() {
		if _, ok := mdb.SurfaceSets()[load.Region]; !ok {
			r.addError("pressure references a non-existent surface set %q", load.Region)
		}
		if load.Magnitude == 0.0 {
			r.addWarning("pressure has a magnitude of zero")
		}
	}
}

func checkBodyLoads(mdb *model.MDB, r *Report) {
	for _, load := range mdb.BodyLoads() {
		if _, ok := mdb.ElementSets()[load.Region]; !ok {
			r.addError("body load references a non-existent element set %q", load.Region)
		}
		checkPlanarLoad(mdb, r, "body load", load.Magnitude(), load.Z)
	}
}

func checkAccelerations(mdb *model.MDB, r *Report) {
	for _, load := range mdb.Accelerations() {
		if _, ok := mdb.ElementSets()[load.Region]; !ok {
			r.addError("acceleration references a non-existent element set %q", load.Region)
		}
		checkPlanarLoad(mdb, r, "acceleration", load.Magnitude(), load.Z)
	}
}

// checkPlanarLoad warns on a null load and, separately, on a nonzero Z-component that a
// 2D model silently ignores (the two conditions are mutually exclusive in the original).
func checkPlanarLoad(mdb *model.MDB, r *Report, kind string, magnitude, z float64) {
	if magnitude == 0.0 {
		r.addWarning("%s has a magnitude of zero", kind)
	} else if z != 0.0 && mdb.Mesh().ModelingSpace() == model.TwoDimensional {
		r.addWarning("%s has a nonzero component along the Z-axis that will be ignored", kind)
	}
}

func checkBoundaryConditions(mdb *model.MDB, r *Report) {
	for _, bc := range mdb.BoundaryConditions() {
		if _, ok := mdb.NodeSets()[bc.Region]; !ok {
			r.addError("boundary condition references a non-existent node set %q", bc.Region)
			continue
		}
		dofs := bc.DOFs()
		if len(dofs) == 0 {
			r.addWarning("boundary condition has no constrained degrees of freedom")
			continue
		}
		max := dofs[0]
		for _, d := range dofs {
			if d > max {
				max = d
			}
		}
		if max == 2 && mdb.Mesh().ModelingSpace() == model.TwoDimensional {
			r.addWarning("boundary condition has constraints along the Z-axis that will be ignored")
		}
	}
}

// checkFrequencyAnalysis applies the additional checks that only make sense ahead of a
// frequency analysis: at least one positive material density, loads that will be silently
// ignored, and prescribed displacements that are assumed zero.
func checkFrequencyAnalysis(mdb *model.MDB, r *Report) {
	hasDensity := false
	for _, mat := range mdb.Materials() {
		if mat.Density > 0.0 {
			hasDensity = true
			break
		}
	}
	if !hasDensity {
		r.addError("the mass density must be specified for a frequency analysis")
	}

	if len(mdb.ConcentratedLoads())+len(mdb.SurfaceTractions())+len(mdb.Pressures())+
		len(mdb.Accelerations())+len(mdb.BodyLoads()) > 0 {
		r.addWarning("any type of loading is ignored during a frequency analysis")
	}

	for _, bc := range mdb.BoundaryConditions() {
		for _, v := range bc.Displacements() {
			if v != 0.0 {
				r.addWarning("any prescribed nodal displacement is assumed to be zero during a frequency analysis")
				return
			}
		}
	}
}
