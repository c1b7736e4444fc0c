// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "sort"

// CSR is a matrix in compressed sparse row format: for each row, a sorted, deduplicated
// list of (column, value) pairs. Grounded on the CSR3 structure of
// original_source/feapack/solver/sparseCSR.py, reimplemented in pure Go (the original wraps
// Intel MKL for the actual numerical kernels; only the structural conversion and the dense
// matrix-vector product are reproduced here).
type CSR struct {
	Rows, Cols int
	RowPtr     []int     // length Rows+1
	ColIdx     []int     // length RowPtr[Rows]
	Values     []float64 // length RowPtr[Rows]
}

// ToCSR canonicalizes a Triplet into a CSR matrix: entries sharing the same (row, col) are
// summed, and each row's columns are sorted in ascending order.
func (t *Triplet) ToCSR() *CSR {
	type entry struct {
		col int
		val float64
	}
	rows := make([]map[int]float64, t.rows)
	for r := range rows {
		rows[r] = map[int]float64{}
	}
	for k := range t.i {
		rows[t.i[k]][t.j[k]] += t.x[k]
	}

	rowPtr := make([]int, t.rows+1)
	for r := 0; r < t.rows; r++ {
		rowPtr[r+1] = rowPtr[r] + len(rows[r])
	}
	colIdx := make([]int, rowPtr[t.rows])
	values := make([]float64, rowPtr[t.rows])
	for r := 0; r < t.rows; r++ {
		entries := make([]entry, 0, len(rows[r]))
		for c, v := range rows[r] {
			entries = append(entries, entry{c, v})
		}
		sort.Slice(entries, func(a, b int) bool { return entries[a].col < entries[b].col })
		off := rowPtr[r]
		for k, e := range entries {
			colIdx[off+k] = e.col
			values[off+k] = e.val
		}
	}
	return &CSR{Rows: t.rows, Cols: t.cols, RowPtr: rowPtr, ColIdx: colIdx, Values: values}
}

// Dense expands the CSR matrix into a dense row-major matrix. Intended for small systems
// (the active-DOF stiffness/mass blocks of a single-process solve), not for large meshes.
func (a *CSR) Dense() [][]float64 {
	d := make([][]float64, a.Rows)
	for r := range d {
		d[r] = make([]float64, a.Cols)
		for k := a.RowPtr[r]; k < a.RowPtr[r+1]; k++ {
			d[r][a.ColIdx[k]] = a.Values[k]
		}
	}
	return d
}

// MulVec computes y = alpha*A*x + beta*y in place. When transpose is true, computes
// y = alpha*Aᵀ*x + beta*y instead. Mirrors the y <- alpha*op(A)*x + beta*y contract of
// original_source/feapack/solver/linearAlgebra.py's spmatmul.
func (a *CSR) MulVec(y []float64, alpha float64, x []float64, beta float64, transpose bool) {
	if !transpose {
		for r := 0; r < a.Rows; r++ {
			y[r] *= beta
			for k := a.RowPtr[r]; k < a.RowPtr[r+1]; k++ {
				y[r] += alpha * a.Values[k] * x[a.ColIdx[k]]
			}
		}
		return
	}
	for c := 0; c < a.Cols; c++ {
		y[c] *= beta
	}
	for r := 0; r < a.Rows; r++ {
		for k := a.RowPtr[r]; k < a.RowPtr[r+1]; k++ {
			y[a.ColIdx[k]] += alpha * a.Values[k] * x[r]
		}
	}
}
