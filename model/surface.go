// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// Surface is a derived view over one face of a parent Element: it has its own element
// type and local connectivity, but everything else (section, material) delegates to the
// parent.
type Surface struct {
	localIndex int
	kind       ElementType
	localNodes []int
	parent     *Element
}

func newSurface(localIndex int, def SurfaceDef, parent *Element) *Surface {
	return &Surface{localIndex: localIndex, kind: def.Type, localNodes: def.Nodes, parent: parent}
}

// Index returns the (parentIndex, localIndex) pair identifying this surface.
func (s *Surface) Index() (int, int) { return s.parent.index, s.localIndex }

func (s *Surface) Type() ElementType { return s.kind }

func (s *Surface) Parent() *Element { return s.parent }

// LocalNodeIndices returns the surface's node indices in the parent element's own local
// (0-based connectivity-order) numbering.
func (s *Surface) LocalNodeIndices() []int {
	return append([]int(nil), s.localNodes...)
}

// GlobalNodeIndices returns the surface's node indices in the parent mesh's global numbering.
func (s *Surface) GlobalNodeIndices() []int {
	out := make([]int, len(s.localNodes))
	for i, li := range s.localNodes {
		out[i] = s.parent.nodeIndices[li]
	}
	return out
}

// Nodes returns the surface's nodes (from the parent's assigned node pointers).
func (s *Surface) Nodes() []*Node {
	parentNodes := s.parent.Nodes()
	out := make([]*Node, len(s.localNodes))
	for i, li := range s.localNodes {
		out[i] = parentNodes[li]
	}
	return out
}

func (s *Surface) Section() *Section   { return s.parent.Section() }
func (s *Surface) Material() *Material { return s.parent.Material() }
