// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/carlos-souto/FEAPACK/ele"
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/cpmech/gosl/chk"
)

// ConcentratedLoadVector assembles the system's global concentrated load vector.
func ConcentratedLoadVector(mdb *model.MDB) []float64 {
	pc := make([]float64, mdb.Mesh().ActiveDOFCount())
	for _, load := range mdb.ConcentratedLoads() {
		set, ok := mdb.NodeSets()[load.Region]
		if !ok {
			chk.Panic("invalid model: concentrated load references unknown region %q", load.Region)
		}
		f := [3]float64{load.X, load.Y, load.Z}
		for _, ni := range set.Indices {
			n := mdb.Mesh().Nodes()[ni]
			local, global := n.ActiveLocalDOFs(), n.ActiveGlobalDOFs()
			for k := range local {
				pc[global[k]] += f[local[k]]
			}
		}
	}
	return pc
}

type surfaceLoadArg struct {
	surf       *model.Surface
	magnitude  float64
	components [3]float64
}

// SurfaceLoadVector assembles the system's global surface load vector (from pressures and
// surface tractions) via the direct stiffness method.
func SurfaceLoadVector(mdb *model.MDB, workers int) []float64 {
	var args []surfaceLoadArg
	for _, p := range mdb.Pressures() {
		set, ok := mdb.SurfaceSets()[p.Region]
		if !ok {
			chk.Panic("invalid model: pressure references unknown region %q", p.Region)
		}
		for _, si := range set.Indices {
			e := mdb.Mesh().Elements()[si.Element]
			args = append(args, surfaceLoadArg{surf: e.Surfaces()[si.Local], magnitude: p.Magnitude})
		}
	}
	for _, t := range mdb.SurfaceTractions() {
		set, ok := mdb.SurfaceSets()[t.Region]
		if !ok {
			chk.Panic("invalid model: surface traction references unknown region %q", t.Region)
		}
		for _, si := range set.Indices {
			e := mdb.Mesh().Elements()[si.Element]
			args = append(args, surfaceLoadArg{surf: e.Surfaces()[si.Local], components: [3]float64{t.X, t.Y, t.Z}})
		}
	}

	vectors := ele.MapElements(len(args), workers, func(i int) []float64 {
		a := args[i]
		return ele.SurfaceLoadVector(a.surf, a.magnitude, a.components)
	})
	elements := make([]*model.Element, len(args))
	for i, a := range args {
		elements[i] = a.surf.Parent()
	}
	ps, _ := Vector(elements, vectors, mdb.Mesh().ActiveDOFCount(), mdb.Mesh().InactiveDOFCount())
	return ps
}

type bodyLoadArg struct {
	elem       *model.Element
	components [3]float64
}

// BodyLoadVector assembles the system's global body load vector (from body loads and
// inertial accelerations) via the direct stiffness method.
func BodyLoadVector(mdb *model.MDB, workers int) []float64 {
	var args []bodyLoadArg
	for _, acc := range mdb.Accelerations() {
		set, ok := mdb.ElementSets()[acc.Region]
		if !ok {
			chk.Panic("invalid model: acceleration references unknown region %q", acc.Region)
		}
		for _, ei := range set.Indices {
			e := mdb.Mesh().Elements()[ei]
			rho := e.Material().Density
			args = append(args, bodyLoadArg{elem: e, components: [3]float64{rho * acc.X, rho * acc.Y, rho * acc.Z}})
		}
	}
	for _, b := range mdb.BodyLoads() {
		set, ok := mdb.ElementSets()[b.Region]
		if !ok {
			chk.Panic("invalid model: body load references unknown region %q", b.Region)
		}
		for _, ei := range set.Indices {
			e := mdb.Mesh().Elements()[ei]
			args = append(args, bodyLoadArg{elem: e, components: [3]float64{b.X, b.Y, b.Z}})
		}
	}

	vectors := ele.MapElements(len(args), workers, func(i int) []float64 {
		a := args[i]
		return ele.BodyLoadVector(a.elem, a.components)
	})
	elements := make([]*model.Element, len(args))
	for i, a := range args {
		elements[i] = a.elem
	}
	pb, _ := Vector(elements, vectors, mdb.Mesh().ActiveDOFCount(), mdb.Mesh().InactiveDOFCount())
	return pb
}

// PrescribedDisplacementVector assembles the system's global prescribed displacement vector.
func PrescribedDisplacementVector(mdb *model.MDB) []float64 {
	ub := make([]float64, mdb.Mesh().InactiveDOFCount())
	for _, bc := range mdb.BoundaryConditions() {
		set, ok := mdb.NodeSets()[bc.Region]
		if !ok {
			chk.Panic("invalid model: boundary condition references unknown region %q", bc.Region)
		}
		var u [3]float64
		dofs, vals := bc.DOFs(), bc.Displacements()
		for k, d := range dofs {
			u[d] = vals[k]
		}
		for _, ni := range set.Indices {
			n := mdb.Mesh().Nodes()[ni]
			local, global := n.InactiveLocalDOFs(), n.InactiveGlobalDOFs()
			for k := range local {
				ub[global[k]] = u[local[k]]
			}
		}
	}
	return ub
}

// InternalForceResult holds the assembled global internal force vector blocks (Fa, Fb) plus
// the per-element basic strain and stress components at integration points, in element order.
type InternalForceResult struct {
	Fa, Fb   []float64
	Strains  [][][]float64
	Stresses [][][]float64
}

// InternalForceVector assembles the system's global internal force vector via the direct
// stiffness method, also returning the basic strain/stress components at every element's
// integration points.
func InternalForceVector(mdb *model.MDB, ua, ub []float64, workers int) InternalForceResult {
	elements := mdb.Mesh().Elements()
	results := ele.MapElements(len(elements), workers, func(i int) ele.InternalForceResult {
		return ele.InternalForceVector(elements[i], ua, ub)
	})

	vectors := make([][]float64, len(elements))
	strains := make([][][]float64, len(elements))
	stresses := make([][][]float64, len(elements))
	for i, r := range results {
		vectors[i] = r.F
		strains[i] = r.Eps
		stresses[i] = r.Sigma
	}

	fa, fb := Vector(elements, vectors, mdb.Mesh().ActiveDOFCount(), mdb.Mesh().InactiveDOFCount())
	return InternalForceResult{Fa: fa, Fb: fb, Strains: strains, Stresses: stresses}
}
