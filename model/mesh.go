// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cpmech/gosl/chk"

// Mesh is the geometric core of a model: nodes, elements and the incidence between them.
type Mesh struct {
	nodes    []*Node
	elements []*Element

	modelingSpace ModelingSpace

	nodeToElements [][]int

	activeDOFCount   int
	inactiveDOFCount int
}

// RawNode is the third-party-agnostic shape a MeshReader hands back for each node.
type RawNode struct {
	Index   int
	X, Y, Z float64
}

// RawElement is the third-party-agnostic shape a MeshReader hands back for each element.
type RawElement struct {
	Index       int
	Type        ElementType
	NodeIndices []int
}

// NewMesh builds a Mesh directly from nodes and elements, running the same invariant
// checks as FromReader.
func NewMesh(nodes []*Node, elements []*Element) *Mesh {
	m := &Mesh{nodes: nodes, elements: elements}
	m.build()
	return m
}

// FromReader builds a Mesh from the raw nodes and elements the reader hands back. It does
// not filter element types itself (the reader does that); build then drops any element
// outside the mesh's modeling space.
func FromReader(reader MeshReader) *Mesh {
	rawNodes := reader.Nodes()
	nodes := make([]*Node, len(rawNodes))
	for i, rn := range rawNodes {
		nodes[i] = NewNode(rn.Index, rn.X, rn.Y, rn.Z)
	}

	var elements []*Element
	for _, re := range reader.Elements() {
		elements = append(elements, NewElement(re.Index, re.Type, re.NodeIndices))
	}

	m := &Mesh{nodes: nodes, elements: elements}
	m.build()
	return m
}

func (m *Mesh) build() {
	if len(m.nodes) == 0 {
		chk.Panic("invalid model: mesh has no nodes")
	}
	m.modelingSpace = ModelingSpaceFromCoordinates(m.nodes)

	var kept []*Element
	for _, e := range m.elements {
		if e.ModelingSpace() == m.modelingSpace {
			e.setIndex(len(kept))
			kept = append(kept, e)
		}
	}
	m.elements = kept
	if len(m.elements) == 0 {
		chk.Panic("invalid model: mesh has no elements compatible with its modeling space")
	}

	m.nodeToElements = make([][]int, len(m.nodes))
	for _, e := range m.elements {
		nodes := make([]*Node, e.NodeCount())
		for li, gi := range e.NodeIndices() {
			if gi < 0 || gi >= len(m.nodes) {
				chk.Panic("invalid model: element %d references out-of-range node %d", e.Index(), gi)
			}
			nodes[li] = m.nodes[gi]
			m.nodeToElements[gi] = append(m.nodeToElements[gi], e.Index())
		}
		e.setNodes(nodes)
	}

	for _, n := range m.nodes {
		if len(m.nodeToElements[n.Index()]) == 0 {
			chk.Panic("invalid model: node %d at (%g, %g, %g) is not connected to any element",
				n.Index(), n.X(), n.Y(), n.Z())
		}
	}
}

func (m *Mesh) Nodes() []*Node       { return m.nodes }
func (m *Mesh) Elements() []*Element { return m.elements }
func (m *Mesh) NodeCount() int       { return len(m.nodes) }
func (m *Mesh) ElementCount() int    { return len(m.elements) }
func (m *Mesh) ModelingSpace() ModelingSpace { return m.modelingSpace }

// ElementsAtNode returns the indices of the elements incident on the given node.
func (m *Mesh) ElementsAtNode(nodeIndex int) []int { return m.nodeToElements[nodeIndex] }

func (m *Mesh) ActiveDOFCount() int   { return m.activeDOFCount }
func (m *Mesh) InactiveDOFCount() int { return m.inactiveDOFCount }

func (m *Mesh) setDOFCounts(active, inactive int) {
	m.activeDOFCount = active
	m.inactiveDOFCount = inactive
}
