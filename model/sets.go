// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "sort"

// NodeSet is a named, deduplicated, sorted collection of node indices.
type NodeSet struct {
	Name    string
	Indices []int
}

// NewNodeSet builds a NodeSet deduplicating and sorting the given indices.
func NewNodeSet(name string, indices []int) *NodeSet {
	return &NodeSet{Name: name, Indices: dedupSort(indices)}
}

// ElementSet is a named, deduplicated, sorted collection of element indices.
type ElementSet struct {
	Name    string
	Indices []int
}

func NewElementSet(name string, indices []int) *ElementSet {
	return &ElementSet{Name: name, Indices: dedupSort(indices)}
}

// SurfaceIndex identifies a surface by (parent element index, local surface index).
type SurfaceIndex struct {
	Element int
	Local   int
}

// SurfaceSet is a named, deduplicated, sorted collection of surface indices.
type SurfaceSet struct {
	Name    string
	Indices []SurfaceIndex
}

func NewSurfaceSet(name string, indices []SurfaceIndex) *SurfaceSet {
	cp := append([]SurfaceIndex(nil), indices...)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Element != cp[j].Element {
			return cp[i].Element < cp[j].Element
		}
		return cp[i].Local < cp[j].Local
	})
	out := cp[:0]
	var last *SurfaceIndex
	for i := range cp {
		if last == nil || cp[i] != *last {
			out = append(out, cp[i])
			last = &cp[i]
		}
	}
	return &SurfaceSet{Name: name, Indices: out}
}

func dedupSort(indices []int) []int {
	cp := append([]int(nil), indices...)
	sort.Ints(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != cp[i-1] {
			out = append(out, v)
		}
	}
	return out
}
