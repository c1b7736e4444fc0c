// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"

	"github.com/carlos-souto/FEAPACK/model"
)

// Smoothing averages the per-element nodal values (phiNds[i], rows components x
// element-local node columns, in element order) across every element incident on each mesh
// node, returning one row per mesh node.
func Smoothing(mdb *model.MDB, phiNds [][][]float64) [][]float64 {
	mesh := mdb.Mesh()
	rows := len(phiNds[0])
	out := make([][]float64, mesh.NodeCount())
	for i := range out {
		out[i] = make([]float64, rows)
	}
	for _, e := range mesh.Elements() {
		local := phiNds[e.Index()]
		for li, gi := range e.NodeIndices() {
			for r := 0; r < rows; r++ {
				out[gi][r] += local[r][li]
			}
		}
	}
	for _, n := range mesh.Nodes() {
		count := float64(len(mesh.ElementsAtNode(n.Index())))
		for r := 0; r < rows; r++ {
			out[n.Index()][r] /= count
		}
	}
	return out
}

// UnshuffleVector converts the global active/inactive displacement vectors into a
// nodeCount×4 matrix (X, Y, Z components followed by their Euclidean magnitude).
func UnshuffleVector(mdb *model.MDB, va, vb []float64) [][4]float64 {
	mesh := mdb.Mesh()
	out := make([][4]float64, mesh.NodeCount())
	for _, n := range mesh.Nodes() {
		al, ag := n.ActiveLocalDOFs(), n.ActiveGlobalDOFs()
		for k := range al {
			out[n.Index()][al[k]] = va[ag[k]]
		}
		il, ig := n.InactiveLocalDOFs(), n.InactiveGlobalDOFs()
		for k := range il {
			out[n.Index()][il[k]] = vb[ig[k]]
		}
	}
	for i := range out {
		x, y, z := out[i][0], out[i][1], out[i][2]
		out[i][3] = math.Sqrt(x*x + y*y + z*z)
	}
	return out
}
