// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"

	"github.com/carlos-souto/FEAPACK/la"
	"github.com/carlos-souto/FEAPACK/model"
)

// StressComponentCount is the number of extended stress rows:
// s11, s22, s33, s23, s31, s12, s1, s2, s3, sMajor, sTresca, sMises, sPressure.
const StressComponentCount = 13

// ExtendStress augments one element's basic stress components (one column per integration
// point or node) with the principal stresses and the Tresca, von Mises and pressure
// equivalent stresses.
func ExtendStress(e *model.Element, sigma [][]float64) [][]float64 {
	cols := len(sigma[0])
	out := make([][]float64, StressComponentCount)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	for c := 0; c < cols; c++ {
		s11, s22, s33, s23, s31, s12 := basicComponents(e.Section().Type, sigma, c)
		m := [3][3]float64{
			{s11, s12, s31},
			{s12, s22, s23},
			{s31, s23, s33},
		}
		vals := la.Eigvalsh3(m)
		s3, s2, s1 := vals[0], vals[1], vals[2]
		sMajor := dominant(vals)

		tresca := math.Abs(s1 - s3)
		mises := math.Sqrt(0.5 * ((s1-s2)*(s1-s2) + (s2-s3)*(s2-s3) + (s3-s1)*(s3-s1)))
		pressure := -(s11 + s22 + s33) / 3.0

		out[0][c], out[1][c], out[2][c] = s11, s22, s33
		out[3][c], out[4][c], out[5][c] = s23, s31, s12
		out[6][c], out[7][c], out[8][c] = s1, s2, s3
		out[9][c], out[10][c], out[11][c], out[12][c] = sMajor, tresca, mises, pressure
	}
	return out
}
