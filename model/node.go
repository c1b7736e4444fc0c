// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cpmech/gosl/chk"

// Node represents a single point of a mesh, possibly shared by several elements.
type Node struct {
	index int
	x, y, z float64

	nodesAssigned bool
	activeLocalDOFs    []int
	activeGlobalDOFs   []int
	inactiveLocalDOFs  []int
	inactiveGlobalDOFs []int
}

// NewNode creates a node with the given index and coordinates.
func NewNode(index int, x, y, z float64) *Node {
	return &Node{index: index, x: x, y: y, z: z}
}

// Index returns the node's index within the mesh.
func (n *Node) Index() int { return n.index }

// X returns the node's x coordinate.
func (n *Node) X() float64 { return n.x }

// Y returns the node's y coordinate.
func (n *Node) Y() float64 { return n.y }

// Z returns the node's z coordinate.
func (n *Node) Z() float64 { return n.z }

// Coordinates returns the node's (x, y, z) coordinates.
func (n *Node) Coordinates() [3]float64 { return [3]float64{n.x, n.y, n.z} }

// ActiveLocalDOFs returns the node-local indices of this node's active degrees of freedom.
// Panics if called before the owning MDB builds the DOF tables.
func (n *Node) ActiveLocalDOFs() []int {
	if !n.nodesAssigned {
		chk.Panic("accessing unset property: node %d has no assigned DOFs yet", n.index)
	}
	return n.activeLocalDOFs
}

// ActiveGlobalDOFs returns the global active-DOF ids assigned to this node.
func (n *Node) ActiveGlobalDOFs() []int {
	if !n.nodesAssigned {
		chk.Panic("accessing unset property: node %d has no assigned DOFs yet", n.index)
	}
	return n.activeGlobalDOFs
}

// InactiveLocalDOFs returns the node-local indices of this node's inactive degrees of freedom.
func (n *Node) InactiveLocalDOFs() []int {
	if !n.nodesAssigned {
		chk.Panic("accessing unset property: node %d has no assigned DOFs yet", n.index)
	}
	return n.inactiveLocalDOFs
}

// InactiveGlobalDOFs returns the global inactive-DOF ids assigned to this node.
func (n *Node) InactiveGlobalDOFs() []int {
	if !n.nodesAssigned {
		chk.Panic("accessing unset property: node %d has no assigned DOFs yet", n.index)
	}
	return n.inactiveGlobalDOFs
}

// setDOFs assigns the node's DOF tuples; called once by MDB.BuildDOFs.
func (n *Node) setDOFs(activeLocal, activeGlobal, inactiveLocal, inactiveGlobal []int) {
	n.activeLocalDOFs = activeLocal
	n.activeGlobalDOFs = activeGlobal
	n.inactiveLocalDOFs = inactiveLocal
	n.inactiveGlobalDOFs = inactiveGlobal
	n.nodesAssigned = true
}
