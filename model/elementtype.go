// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "strings"

// ElementType enumerates the supported isoparametric finite elements.
type ElementType int

const (
	Line2 ElementType = 102
	Line3 ElementType = 103

	Plane3 ElementType = 203
	Plane4 ElementType = 204
	Plane6 ElementType = 206
	Plane8 ElementType = 208

	Volume4  ElementType = 304
	Volume6  ElementType = 306
	Volume8  ElementType = 308
	Volume10 ElementType = 310
	Volume15 ElementType = 315
	Volume20 ElementType = 320
)

// Name returns the element type's identifier as used in output database files, e.g.
// "Plane4" or "Volume20".
func (t ElementType) Name() string {
	switch t {
	case Line2:
		return "Line2"
	case Line3:
		return "Line3"
	case Plane3:
		return "Plane3"
	case Plane4:
		return "Plane4"
	case Plane6:
		return "Plane6"
	case Plane8:
		return "Plane8"
	case Volume4:
		return "Volume4"
	case Volume6:
		return "Volume6"
	case Volume8:
		return "Volume8"
	case Volume10:
		return "Volume10"
	case Volume15:
		return "Volume15"
	case Volume20:
		return "Volume20"
	default:
		return "Unknown"
	}
}

// ElementTypeFromName parses the element type identifier produced by Name. Returns
// ok=false for any unrecognized name.
func ElementTypeFromName(name string) (t ElementType, ok bool) {
	switch name {
	case "Line2":
		return Line2, true
	case "Line3":
		return Line3, true
	case "Plane3":
		return Plane3, true
	case "Plane4":
		return Plane4, true
	case "Plane6":
		return Plane6, true
	case "Plane8":
		return Plane8, true
	case "Volume4":
		return Volume4, true
	case "Volume6":
		return Volume6, true
	case "Volume8":
		return Volume8, true
	case "Volume10":
		return Volume10, true
	case "Volume15":
		return Volume15, true
	case "Volume20":
		return Volume20, true
	default:
		return 0, false
	}
}

// ElementTypeFrom3rdParty maps an element-type tag from a third-party pre-processor
// (currently only Abaqus) to the corresponding ElementType. Returns ok=false for any
// unsupported software or tag.
func ElementTypeFrom3rdParty(software, elementType string) (t ElementType, ok bool) {
	if !strings.EqualFold(software, "ABAQUS") {
		return 0, false
	}
	switch strings.ToUpper(elementType) {
	case "CPS3", "CPE3", "CAX3":
		return Plane3, true
	case "CPS4", "CPE4", "CAX4", "CPS4R", "CPE4R", "CAX4R":
		return Plane4, true
	case "CPS6", "CPE6", "CAX6":
		return Plane6, true
	case "CPS8", "CPE8", "CAX8", "CPS8R", "CPE8R", "CAX8R":
		return Plane8, true
	case "C3D4":
		return Volume4, true
	case "C3D6":
		return Volume6, true
	case "C3D8", "C3D8R":
		return Volume8, true
	case "C3D10":
		return Volume10, true
	case "C3D15":
		return Volume15, true
	case "C3D20", "C3D20R":
		return Volume20, true
	default:
		return 0, false
	}
}

// NodeCount returns the number of nodes of the element type.
func (t ElementType) NodeCount() int {
	switch t {
	case Line2:
		return 2
	case Line3:
		return 3
	case Plane3:
		return 3
	case Plane4:
		return 4
	case Plane6:
		return 6
	case Plane8:
		return 8
	case Volume4:
		return 4
	case Volume6:
		return 6
	case Volume8:
		return 8
	case Volume10:
		return 10
	case Volume15:
		return 15
	case Volume20:
		return 20
	default:
		return 0
	}
}

// DOFCount returns the total number of element degrees of freedom
// (NodeCount times the number of spatial components per node).
func (t ElementType) DOFCount() int {
	switch t {
	case Line2:
		return 2
	case Line3:
		return 3
	default:
		return t.NodeCount() * int(t.ModelingSpace())
	}
}

// ModelingSpace returns the modeling space the element type resides in.
func (t ElementType) ModelingSpace() ModelingSpace {
	switch t {
	case Line2, Line3:
		return OneDimensional
	case Plane3, Plane4, Plane6, Plane8:
		return TwoDimensional
	default:
		return ThreeDimensional
	}
}

// SurfaceDef describes one surface of a parent element: its own element type and the
// local node indices (into the parent's connectivity) that form it.
type SurfaceDef struct {
	Type  ElementType
	Nodes []int
}

// Surfaces returns the element type's surfaces (type and local connectivity), in the
// order matching the original model's surface numbering. Panics for 1D elements, which
// have no surfaces (only 0D end points, not modeled).
func (t ElementType) Surfaces() []SurfaceDef {
	switch t {
	case Line2, Line3:
		panic("0D surface in 1D space")
	case Plane3:
		return []SurfaceDef{
			{Line2, []int{0, 1}}, {Line2, []int{1, 2}}, {Line2, []int{2, 0}},
		}
	case Plane4:
		return []SurfaceDef{
			{Line2, []int{0, 1}}, {Line2, []int{1, 2}}, {Line2, []int{2, 3}}, {Line2, []int{3, 0}},
		}
	case Plane6:
		return []SurfaceDef{
			{Line3, []int{0, 1, 3}}, {Line3, []int{1, 2, 4}}, {Line3, []int{2, 0, 5}},
		}
	case Plane8:
		return []SurfaceDef{
			{Line3, []int{0, 1, 4}}, {Line3, []int{1, 2, 5}}, {Line3, []int{2, 3, 6}}, {Line3, []int{3, 0, 7}},
		}
	case Volume4:
		return []SurfaceDef{
			{Plane3, []int{0, 2, 1}}, {Plane3, []int{0, 3, 2}}, {Plane3, []int{0, 1, 3}}, {Plane3, []int{1, 2, 3}},
		}
	case Volume6:
		return []SurfaceDef{
			{Plane3, []int{0, 2, 1}}, {Plane3, []int{3, 4, 5}},
			{Plane4, []int{0, 3, 5, 2}}, {Plane4, []int{0, 1, 4, 3}}, {Plane4, []int{1, 2, 5, 4}},
		}
	case Volume8:
		return []SurfaceDef{
			{Plane4, []int{0, 1, 5, 4}}, {Plane4, []int{1, 2, 6, 5}}, {Plane4, []int{2, 3, 7, 6}},
			{Plane4, []int{3, 0, 4, 7}}, {Plane4, []int{3, 2, 1, 0}}, {Plane4, []int{4, 5, 6, 7}},
		}
	case Volume10:
		return []SurfaceDef{
			{Plane6, []int{0, 2, 1, 6, 5, 4}}, {Plane6, []int{0, 3, 2, 7, 9, 6}},
			{Plane6, []int{0, 1, 3, 4, 8, 7}}, {Plane6, []int{1, 2, 3, 5, 9, 8}},
		}
	case Volume15:
		return []SurfaceDef{
			{Plane6, []int{0, 2, 1, 8, 7, 6}}, {Plane6, []int{3, 4, 5, 9, 10, 11}},
			{Plane8, []int{0, 3, 5, 2, 12, 11, 14, 8}}, {Plane8, []int{0, 1, 4, 3, 6, 13, 9, 12}},
			{Plane8, []int{1, 2, 5, 4, 7, 14, 10, 13}},
		}
	case Volume20:
		return []SurfaceDef{
			{Plane8, []int{0, 1, 5, 4, 8, 17, 12, 16}}, {Plane8, []int{1, 2, 6, 5, 9, 18, 13, 17}},
			{Plane8, []int{2, 3, 7, 6, 10, 19, 14, 18}}, {Plane8, []int{3, 0, 4, 7, 11, 16, 15, 19}},
			{Plane8, []int{3, 2, 1, 0, 10, 9, 8, 11}}, {Plane8, []int{4, 5, 6, 7, 12, 13, 14, 15}},
		}
	default:
		return nil
	}
}
