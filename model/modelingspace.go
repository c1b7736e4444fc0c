// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cpmech/gosl/chk"

// ModelingSpace identifies the dimensionality of the physical space a mesh occupies.
type ModelingSpace int

const (
	OneDimensional   ModelingSpace = 1
	TwoDimensional   ModelingSpace = 2
	ThreeDimensional ModelingSpace = 3
)

// ModelingSpaceFromCoordinates infers the modeling space from the set of node coordinates:
// it counts how many of the x/y/z columns carry any nonzero value.
func ModelingSpaceFromCoordinates(nodes []*Node) ModelingSpace {
	var anyX, anyY, anyZ bool
	for _, n := range nodes {
		if n.x != 0 {
			anyX = true
		}
		if n.y != 0 {
			anyY = true
		}
		if n.z != 0 {
			anyZ = true
		}
	}
	count := 0
	for _, b := range []bool{anyX, anyY, anyZ} {
		if b {
			count++
		}
	}
	switch count {
	case 1:
		return OneDimensional
	case 2:
		return TwoDimensional
	case 3:
		return ThreeDimensional
	default:
		chk.Panic("invalid model: could not infer a modeling space from the mesh's node coordinates")
		return 0
	}
}
