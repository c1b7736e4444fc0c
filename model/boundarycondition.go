// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// BoundaryCondition prescribes displacement values on some (or all) of the X/Y/Z
// components of the nodes in a node set. A nil component means "not prescribed".
type BoundaryCondition struct {
	Region string
	U, V, W *float64
}

func NewBoundaryCondition(region string, u, v, w *float64) *BoundaryCondition {
	return &BoundaryCondition{Region: region, U: u, V: v, W: w}
}

// DOFs returns the local DOF components (0=X, 1=Y, 2=Z) that this condition constrains.
func (b *BoundaryCondition) DOFs() []int {
	var dofs []int
	if b.U != nil {
		dofs = append(dofs, 0)
	}
	if b.V != nil {
		dofs = append(dofs, 1)
	}
	if b.W != nil {
		dofs = append(dofs, 2)
	}
	return dofs
}

// Displacements returns the prescribed values corresponding to DOFs(), in the same order.
func (b *BoundaryCondition) Displacements() []float64 {
	var vals []float64
	if b.U != nil {
		vals = append(vals, *b.U)
	}
	if b.V != nil {
		vals = append(vals, *b.V)
	}
	if b.W != nil {
		vals = append(vals, *b.W)
	}
	return vals
}
