// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm assembles per-element dense matrices and vectors (from package ele) into the
// global sparse system, partitioned by static condensation (Guyan reduction) into
// active/inactive DOF blocks. Grounded on original_source/feapack/solver/procedures.py's
// ASSEMBLAGE section.
package asm

import (
	"github.com/carlos-souto/FEAPACK/la"
	"github.com/carlos-souto/FEAPACK/model"
)

// Blocks holds the four partitions of an assembled system matrix under static condensation:
//
//	M = | Maa Mab |
//	    | Mba Mbb |
//
// where the a/b subscripts denote the active/inactive DOF blocks.
type Blocks struct {
	Aa, Ab, Ba, Bb *la.CSR
}

// Matrix assembles a sequence of dense element matrices (one per element, in element order)
// into the four partitioned global sparse blocks.
func Matrix(elements []*model.Element, matrices [][][]float64, activeDOFCount, inactiveDOFCount int) Blocks {
	sizeAa, sizeAb, sizeBa, sizeBb := 0, 0, 0, 0
	for _, e := range elements {
		na, nb := len(e.ActiveLocalDOFs()), len(e.InactiveLocalDOFs())
		sizeAa += na * na
		sizeAb += na * nb
		sizeBa += nb * na
		sizeBb += nb * nb
	}

	ta := la.NewTriplet(activeDOFCount, activeDOFCount, sizeAa)
	tab := la.NewTriplet(activeDOFCount, inactiveDOFCount, sizeAb)
	tba := la.NewTriplet(inactiveDOFCount, activeDOFCount, sizeBa)
	tbb := la.NewTriplet(inactiveDOFCount, inactiveDOFCount, sizeBb)

	for ei, e := range elements {
		a := matrices[ei]
		al, ag := e.ActiveLocalDOFs(), e.ActiveGlobalDOFs()
		il, ig := e.InactiveLocalDOFs(), e.InactiveGlobalDOFs()
		for p := range al {
			for q := range al {
				ta.Put(ag[p], ag[q], a[al[p]][al[q]])
			}
			for q := range il {
				tab.Put(ag[p], ig[q], a[al[p]][il[q]])
			}
		}
		for p := range il {
			for q := range al {
				tba.Put(ig[p], ag[q], a[il[p]][al[q]])
			}
			for q := range il {
				tbb.Put(ig[p], ig[q], a[il[p]][il[q]])
			}
		}
	}

	return Blocks{Aa: ta.ToCSR(), Ab: tab.ToCSR(), Ba: tba.ToCSR(), Bb: tbb.ToCSR()}
}

// StiffnessMatrix assembles the system's global stiffness matrix via the direct stiffness
// method, mapping the element kernel over the mesh with workers goroutines.
func StiffnessMatrix(mdb *model.MDB, workers int) Blocks {
	return assembleElementMatrix(mdb, workers, stiffness)
}

// MassMatrix assembles the system's global mass matrix via the direct stiffness method.
func MassMatrix(mdb *model.MDB, workers int) Blocks {
	return assembleElementMatrix(mdb, workers, mass)
}

// StressStiffnessMatrix assembles the system's global stress-stiffness matrix, evaluated at
// the current nodal displacement state (Ua, Ub).
func StressStiffnessMatrix(mdb *model.MDB, ua, ub []float64, workers int) Blocks {
	elements := mdb.Mesh().Elements()
	matrices := mapElementsMatrix(elements, workers, func(e *model.Element) [][]float64 {
		return stressStiffness(e, ua, ub)
	})
	return Matrix(elements, matrices, mdb.Mesh().ActiveDOFCount(), mdb.Mesh().InactiveDOFCount())
}

func assembleElementMatrix(mdb *model.MDB, workers int, kernel func(*model.Element) [][]float64) Blocks {
	elements := mdb.Mesh().Elements()
	matrices := mapElementsMatrix(elements, workers, kernel)
	return Matrix(elements, matrices, mdb.Mesh().ActiveDOFCount(), mdb.Mesh().InactiveDOFCount())
}
