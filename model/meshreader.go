// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// MeshReader is the collaborator contract a third-party pre-processor format (e.g. an
// Abaqus input deck) must satisfy to feed a Mesh and the named node and element sets of an
// MDB.
type MeshReader interface {
	Nodes() []RawNode
	Elements() []RawElement
	NodeSets() map[string][]int
	ElementSets() map[string][]int
}
