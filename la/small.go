// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la provides the small dense and sparse linear-algebra building blocks used by
// the assembler and solver: closed-form determinants/inverses of tiny (≤4×4) Jacobian-like
// matrices, a COO-to-CSR sparse assembly pipeline, a dense direct solve and a generalized
// symmetric eigensolver.
package la

import "github.com/cpmech/gosl/chk"

// Det computes the determinant of a square matrix of order 0 to 4.
func Det(a [][]float64) float64 {
	n := len(a)
	switch n {
	case 0:
		return 1.0
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	case 3:
		return a[0][0]*a[1][1]*a[2][2] - a[0][0]*a[1][2]*a[2][1] - a[0][1]*a[1][0]*a[2][2] +
			a[0][1]*a[1][2]*a[2][0] + a[0][2]*a[1][0]*a[2][1] - a[0][2]*a[1][1]*a[2][0]
	case 4:
		return a[0][0]*a[1][1]*a[2][2]*a[3][3] - a[0][0]*a[1][1]*a[2][3]*a[3][2] - a[0][0]*a[1][2]*a[2][1]*a[3][3] + a[0][0]*a[1][2]*a[2][3]*a[3][1] +
			a[0][0]*a[1][3]*a[2][1]*a[3][2] - a[0][0]*a[1][3]*a[2][2]*a[3][1] - a[0][1]*a[1][0]*a[2][2]*a[3][3] + a[0][1]*a[1][0]*a[2][3]*a[3][2] +
			a[0][1]*a[1][2]*a[2][0]*a[3][3] - a[0][1]*a[1][2]*a[2][3]*a[3][0] - a[0][1]*a[1][3]*a[2][0]*a[3][2] + a[0][1]*a[1][3]*a[2][2]*a[3][0] +
			a[0][2]*a[1][0]*a[2][1]*a[3][3] - a[0][2]*a[1][0]*a[2][3]*a[3][1] - a[0][2]*a[1][1]*a[2][0]*a[3][3] + a[0][2]*a[1][1]*a[2][3]*a[3][0] +
			a[0][2]*a[1][3]*a[2][0]*a[3][1] - a[0][2]*a[1][3]*a[2][1]*a[3][0] - a[0][3]*a[1][0]*a[2][1]*a[3][2] + a[0][3]*a[1][0]*a[2][2]*a[3][1] +
			a[0][3]*a[1][1]*a[2][0]*a[3][2] - a[0][3]*a[1][1]*a[2][2]*a[3][0] - a[0][3]*a[1][2]*a[2][0]*a[3][1] + a[0][3]*a[1][2]*a[2][1]*a[3][0]
	default:
		chk.Panic("la: unsupported matrix size %d", n)
		return 0
	}
}

// Inverse computes the inverse and determinant of a square matrix of order 0 to 4.
// Panics if the matrix is singular.
func Inverse(a [][]float64) (inv [][]float64, det float64) {
	n := len(a)
	det = Det(a)
	if det == 0.0 {
		chk.Panic("la: matrix is singular")
	}
	inv = make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}
	switch n {
	case 0:
	case 1:
		inv[0][0] = 1.0 / det
	case 2:
		inv[0][0] = a[1][1] / det
		inv[0][1] = -a[0][1] / det
		inv[1][0] = -a[1][0] / det
		inv[1][1] = a[0][0] / det
	case 3:
		inv[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
		inv[0][1] = -(a[0][1]*a[2][2] - a[0][2]*a[2][1]) / det
		inv[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
		inv[1][0] = -(a[1][0]*a[2][2] - a[1][2]*a[2][0]) / det
		inv[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
		inv[1][2] = -(a[0][0]*a[1][2] - a[0][2]*a[1][0]) / det
		inv[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
		inv[2][1] = -(a[0][0]*a[2][1] - a[0][1]*a[2][0]) / det
		inv[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	case 4:
		inv[0][0] = (a[1][1]*a[2][2]*a[3][3] - a[1][1]*a[2][3]*a[3][2] - a[1][2]*a[2][1]*a[3][3] + a[1][2]*a[2][3]*a[3][1] + a[1][3]*a[2][1]*a[3][2] - a[1][3]*a[2][2]*a[3][1]) / det
		inv[0][1] = -(a[0][1]*a[2][2]*a[3][3] - a[0][1]*a[2][3]*a[3][2] - a[0][2]*a[2][1]*a[3][3] + a[0][2]*a[2][3]*a[3][1] + a[0][3]*a[2][1]*a[3][2] - a[0][3]*a[2][2]*a[3][1]) / det
		inv[0][2] = (a[0][1]*a[1][2]*a[3][3] - a[0][1]*a[1][3]*a[3][2] - a[0][2]*a[1][1]*a[3][3] + a[0][2]*a[1][3]*a[3][1] + a[0][3]*a[1][1]*a[3][2] - a[0][3]*a[1][2]*a[3][1]) / det
		inv[0][3] = -(a[0][1]*a[1][2]*a[2][3] - a[0][1]*a[1][3]*a[2][2] - a[0][2]*a[1][1]*a[2][3] + a[0][2]*a[1][3]*a[2][1] + a[0][3]*a[1][1]*a[2][2] - a[0][3]*a[1][2]*a[2][1]) / det
		inv[1][0] = -(a[1][0]*a[2][2]*a[3][3] - a[1][0]*a[2][3]*a[3][2] - a[1][2]*a[2][0]*a[3][3] + a[1][2]*a[2][3]*a[3][0] + a[1][3]*a[2][0]*a[3][2] - a[1][3]*a[2][2]*a[3][0]) / det
		inv[1][1] = (a[0][0]*a[2][2]*a[3][3] - a[0][0]*a[2][3]*a[3][2] - a[0][2]*a[2][0]*a[3][3] + a[0][2]*a[2][3]*a[3][0] + a[0][3]*a[2][0]*a[3][2] - a[0][3]*a[2][2]*a[3][0]) / det
		inv[1][2] = -(a[0][0]*a[1][2]*a[3][3] - a[0][0]*a[1][3]*a[3][2] - a[0][2]*a[1][0]*a[3][3] + a[0][2]*a[1][3]*a[3][0] + a[0][3]*a[1][0]*a[3][2] - a[0][3]*a[1][2]*a[3][0]) / det
		inv[1][3] = (a[0][0]*a[1][2]*a[2][3] - a[0][0]*a[1][3]*a[2][2] - a[0][2]*a[1][0]*a[2][3] + a[0][2]*a[1][3]*a[2][0] + a[0][3]*a[1][0]*a[2][2] - a[0][3]*a[1][2]*a[2][0]) / det
		inv[2][0] = (a[1][0]*a[2][1]*a[3][3] - a[1][0]*a[2][3]*a[3][1] - a[1][1]*a[2][0]*a[3][3] + a[1][1]*a[2][3]*a[3][0] + a[1][3]*a[2][0]*a[3][1] - a[1][3]*a[2][1]*a[3][0]) / det
		inv[2][1] = -(a[0][0]*a[2][1]*a[3][3] - a[0][0]*a[2][3]*a[3][1] - a[0][1]*a[2][0]*a[3][3] + a[0][1]*a[2][3]*a[3][0] + a[0][3]*a[2][0]*a[3][1] - a[0][3]*a[2][1]*a[3][0]) / det
		inv[2][2] = (a[0][0]*a[1][1]*a[3][3] - a[0][0]*a[1][3]*a[3][1] - a[0][1]*a[1][0]*a[3][3] + a[0][1]*a[1][3]*a[3][0] + a[0][3]*a[1][0]*a[3][1] - a[0][3]*a[1][1]*a[3][0]) / det
		inv[2][3] = -(a[0][0]*a[1][1]*a[2][3] - a[0][0]*a[1][3]*a[2][1] - a[0][1]*a[1][0]*a[2][3] + a[0][1]*a[1][3]*a[2][0] + a[0][3]*a[1][0]*a[2][1] - a[0][3]*a[1][1]*a[2][0]) / det
		inv[3][0] = -(a[1][0]*a[2][1]*a[3][2] - a[1][0]*a[2][2]*a[3][1] - a[1][1]*a[2][0]*a[3][2] + a[1][1]*a[2][2]*a[3][0] + a[1][2]*a[2][0]*a[3][1] - a[1][2]*a[2][1]*a[3][0]) / det
		inv[3][1] = (a[0][0]*a[2][1]*a[3][2] - a[0][0]*a[2][2]*a[3][1] - a[0][1]*a[2][0]*a[3][2] + a[0][1]*a[2][2]*a[3][0] + a[0][2]*a[2][0]*a[3][1] - a[0][2]*a[2][1]*a[3][0]) / det
		inv[3][2] = -(a[0][0]*a[1][1]*a[3][2] - a[0][0]*a[1][2]*a[3][1] - a[0][1]*a[1][0]*a[3][2] + a[0][1]*a[1][2]*a[3][0] + a[0][2]*a[1][0]*a[3][1] - a[0][2]*a[1][1]*a[3][0]) / det
		inv[3][3] = (a[0][0]*a[1][1]*a[2][2] - a[0][0]*a[1][2]*a[2][1] - a[0][1]*a[1][0]*a[2][2] + a[0][1]*a[1][2]*a[2][0] + a[0][2]*a[1][0]*a[2][1] - a[0][2]*a[1][1]*a[2][0]) / det
	default:
		chk.Panic("la: unsupported matrix size %d", n)
	}
	return inv, det
}
