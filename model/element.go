// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cpmech/gosl/chk"

// Element is a single finite element: a fixed connectivity of nodes, typed by ElementType.
// Section, material and DOF tuples are assigned later by the owning MDB and panic if read
// before that assignment, mirroring the lazily-assigned properties of the original model.
type Element struct {
	index         int
	kind          ElementType
	nodeIndices   []int
	modelingSpace ModelingSpace

	nodes []*Node

	propsAssigned bool
	section *Section
	material *Material

	dofsAssigned bool
	activeLocalDOFs    []int
	activeGlobalDOFs   []int
	inactiveLocalDOFs  []int
	inactiveGlobalDOFs []int

	surfaces []*Surface
}

// NewElement creates an element of the given type with the given (global) node indices.
// Panics if the supplied connectivity length does not match the element type's node count.
func NewElement(index int, kind ElementType, nodeIndices []int) *Element {
	if len(nodeIndices) != kind.NodeCount() {
		chk.Panic("invalid model: element %d of type %v expects %d nodes, got %d",
			index, kind, kind.NodeCount(), len(nodeIndices))
	}
	e := &Element{index: index, kind: kind, nodeIndices: nodeIndices, modelingSpace: kind.ModelingSpace()}
	if kind.ModelingSpace() != OneDimensional {
		for i, sd := range kind.Surfaces() {
			e.surfaces = append(e.surfaces, newSurface(i, sd, e))
		}
	}
	return e
}

func (e *Element) Index() int                     { return e.index }
func (e *Element) Type() ElementType               { return e.kind }
func (e *Element) NodeIndices() []int              { return e.nodeIndices }
func (e *Element) NodeCount() int                  { return len(e.nodeIndices) }
func (e *Element) DOFCount() int                   { return e.kind.DOFCount() }
func (e *Element) ModelingSpace() ModelingSpace     { return e.modelingSpace }
func (e *Element) Surfaces() []*Surface            { return e.surfaces }

// Nodes returns the element's nodes, assigned by Mesh at construction time.
func (e *Element) Nodes() []*Node {
	if e.nodes == nil {
		chk.Panic("accessing unset property: element %d has no assigned nodes yet", e.index)
	}
	return e.nodes
}

func (e *Element) setNodes(nodes []*Node) { e.nodes = nodes }

// setIndex renumbers the element, used by Mesh.build to re-enumerate elements by their
// position after dropping any incompatible-modeling-space elements.
func (e *Element) setIndex(index int) { e.index = index }

// Section returns the section assigned to this element by the owning MDB.
func (e *Element) Section() *Section {
	if !e.propsAssigned {
		chk.Panic("accessing unset property: element %d has no assigned section yet", e.index)
	}
	return e.section
}

// Material returns the material assigned to this element by the owning MDB.
func (e *Element) Material() *Material {
	if !e.propsAssigned {
		chk.Panic("accessing unset property: element %d has no assigned material yet", e.index)
	}
	return e.material
}

func (e *Element) setProperties(section *Section, material *Material) {
	e.section = section
	e.material = material
	e.propsAssigned = true
}

func (e *Element) ActiveLocalDOFs() []int {
	if !e.dofsAssigned {
		chk.Panic("accessing unset property: element %d has no assigned DOFs yet", e.index)
	}
	return e.activeLocalDOFs
}

func (e *Element) ActiveGlobalDOFs() []int {
	if !e.dofsAssigned {
		chk.Panic("accessing unset property: element %d has no assigned DOFs yet", e.index)
	}
	return e.activeGlobalDOFs
}

func (e *Element) InactiveLocalDOFs() []int {
	if !e.dofsAssigned {
		chk.Panic("accessing unset property: element %d has no assigned DOFs yet", e.index)
	}
	return e.inactiveLocalDOFs
}

func (e *Element) InactiveGlobalDOFs() []int {
	if !e.dofsAssigned {
		chk.Panic("accessing unset property: element %d has no assigned DOFs yet", e.index)
	}
	return e.inactiveGlobalDOFs
}

func (e *Element) setDOFs(activeLocal, activeGlobal, inactiveLocal, inactiveGlobal []int) {
	e.activeLocalDOFs = activeLocal
	e.activeGlobalDOFs = activeGlobal
	e.inactiveLocalDOFs = inactiveLocal
	e.inactiveGlobalDOFs = inactiveGlobal
	e.dofsAssigned = true
}
