// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/carlos-souto/FEAPACK/ele"
	"github.com/carlos-souto/FEAPACK/model"
)

func stiffness(e *model.Element) [][]float64 { return ele.StiffnessMatrix(e) }

func mass(e *model.Element) [][]float64 { return ele.MassMatrix(e) }

func stressStiffness(e *model.Element, ua, ub []float64) [][]float64 {
	return ele.StressStiffnessMatrix(e, ua, ub)
}

func mapElementsMatrix(elements []*model.Element, workers int, kernel func(*model.Element) [][]float64) [][][]float64 {
	return ele.MapElements(len(elements), workers, func(i int) [][]float64 {
		return kernel(elements[i])
	})
}
