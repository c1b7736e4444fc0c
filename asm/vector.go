// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "github.com/carlos-souto/FEAPACK/model"

// Vector assembles a sequence of dense element vectors (one per element, in element order)
// into the partitioned global active/inactive vectors Va, Vb.
func Vector(elements []*model.Element, vectors [][]float64, activeDOFCount, inactiveDOFCount int) (va, vb []float64) {
	va = make([]float64, activeDOFCount)
	vb = make([]float64, inactiveDOFCount)
	for ei, e := range elements {
		v := vectors[ei]
		al, ag := e.ActiveLocalDOFs(), e.ActiveGlobalDOFs()
		for k := range al {
			va[ag[k]] += v[al[k]]
		}
		il, ig := e.InactiveLocalDOFs(), e.InactiveGlobalDOFs()
		for k := range il {
			vb[ig[k]] += v[il[k]]
		}
	}
	return va, vb
}
