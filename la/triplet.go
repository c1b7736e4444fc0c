// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "github.com/cpmech/gosl/chk"

// Triplet is a COO (coordinate-format) sparse matrix accumulator: entries are appended one
// at a time, possibly repeating (i, j) pairs, and later canonicalized into a CSR matrix by
// ToCSR. Mirrors the Init/Put/Size shape of gosl/la.Triplet.
type Triplet struct {
	rows, cols int
	maxEntries int
	i, j       []int
	x          []float64
}

// NewTriplet allocates a Triplet for a rows×cols matrix with room for up to maxEntries
// (repeated) entries.
func NewTriplet(rows, cols, maxEntries int) *Triplet {
	return &Triplet{
		rows: rows, cols: cols, maxEntries: maxEntries,
		i: make([]int, 0, maxEntries),
		j: make([]int, 0, maxEntries),
		x: make([]float64, 0, maxEntries),
	}
}

// Put appends one entry (i, j, x). Repeated (i, j) pairs accumulate on conversion to CSR.
// Panics if the triplet is already at capacity or the indices are out of bounds.
func (t *Triplet) Put(i, j int, x float64) {
	if len(t.i) >= t.maxEntries {
		chk.Panic("la: triplet is full (max %d entries)", t.maxEntries)
	}
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		chk.Panic("la: triplet index (%d, %d) out of bounds for a %d×%d matrix", i, j, t.rows, t.cols)
	}
	t.i = append(t.i, i)
	t.j = append(t.j, j)
	t.x = append(t.x, x)
}

// Size returns the matrix dimensions (rows, cols).
func (t *Triplet) Size() (rows, cols int) { return t.rows, t.cols }

// Len returns the number of entries appended so far.
func (t *Triplet) Len() int { return len(t.i) }
