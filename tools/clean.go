// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tools holds standalone utilities that operate on a mesh file rather than on an
// already-loaded model.MDB, the way the teacher's tools package held standalone
// VTU-export and command-line driver utilities.
package tools

import (
	"bufio"
	"encoding/gob"
	"os"
	"sort"
	"strings"

	"github.com/carlos-souto/FEAPACK/inp"
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// RemapTable records, for one Clean pass, the new 0-based index assigned to each surviving
// node and element, keyed by its old (0-based, pre-clean) index. Encode/Decode follow the teacher's
// internal-variable checkpointing shape (gosl/utl.Encoder/Decoder, satisfied here by the
// standard library's gob codec) so a remap can be persisted alongside the cleaned deck.
type RemapTable struct {
	Nodes    map[int]int
	Elements map[int]int
}

func (t *RemapTable) Encode(enc utl.Encoder) error { return enc.Encode(t) }
func (t *RemapTable) Decode(dec utl.Decoder) error { return dec.Decode(t) }

// Clean reads the Abaqus input deck at srcPath, drops element types
// model.ElementTypeFrom3rdParty cannot resolve (already done by inp.AbaqusReader) and any
// node no longer referenced by a surviving element, renumbers the survivors densely from
// 1, re-indexes every node/element set accordingly (discarding members that no longer
// exist), and writes the result to dstPath. When remapPath is non-empty the node/element
// renumbering table is also gob-encoded there, so a companion results file keyed by the
// original numbering can still be related back to the cleaned mesh. Concretizes the
// "preprocessing routine" named in §6 for this repository's one supported mesh format.
func Clean(srcPath, dstPath, remapPath string) error {
	reader, err := inp.NewReader(srcPath)
	if err != nil {
		return err
	}

	rawNodes := reader.Nodes()
	rawElements := reader.Elements()

	used := make([]bool, len(rawNodes))
	for _, e := range rawElements {
		for _, n := range e.NodeIndices {
			used[n] = true
		}
	}

	nodeRemap := make(map[int]int, len(rawNodes))
	var keptNodes []model.RawNode
	for i, n := range rawNodes {
		if !used[i] {
			continue
		}
		nodeRemap[i] = len(keptNodes)
		keptNodes = append(keptNodes, n)
	}

	elementRemap := make(map[int]int, len(rawElements))
	var keptElements []model.RawElement
	for i, e := range rawElements {
		newConn := make([]int, len(e.NodeIndices))
		for k, n := range e.NodeIndices {
			newConn[k] = nodeRemap[n]
		}
		elementRemap[i] = len(keptElements)
		keptElements = append(keptElements, model.RawElement{
			Index: len(keptElements), Type: e.Type, NodeIndices: newConn,
		})
	}

	if len(keptNodes) == 0 || len(keptElements) == 0 {
		chk.Panic("tools: cleaning %q left no usable nodes/elements", srcPath)
	}

	nodeSets := remapSets(reader.NodeSets(), nodeRemap)
	elementSets := remapSets(reader.ElementSets(), elementRemap)

	if remapPath != "" {
		f, err := os.Create(remapPath)
		if err != nil {
			return err
		}
		table := &RemapTable{Nodes: nodeRemap, Elements: elementRemap}
		err = table.Encode(gob.NewEncoder(f))
		f.Close()
		if err != nil {
			return err
		}
	}

	return writeDeck(dstPath, keptNodes, keptElements, nodeSets, elementSets)
}

func remapSets(sets map[string][]int, remap map[int]int) map[string][]int {
	out := make(map[string][]int, len(sets))
	for name, members := range sets {
		var kept []int
		for _, m := range members {
			if nv, ok := remap[m]; ok {
				kept = append(kept, nv)
			}
		}
		if len(kept) > 0 {
			sort.Ints(kept)
			out[name] = kept
		}
	}
	return out
}

func writeDeck(path string, nodes []model.RawNode, elements []model.RawElement, nodeSets, elementSets map[string][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	w.WriteString(io.Sf("**\n** cleaned by feapack tools.Clean\n**\n"))

	w.WriteString(io.Sf("*NODE\n"))
	for i, n := range nodes {
		w.WriteString(io.Sf("%d, %v, %v, %v\n", i+1, n.X, n.Y, n.Z))
	}

	for i, e := range elements {
		if i == 0 || e.Type != elements[i-1].Type {
			w.WriteString(io.Sf("*ELEMENT, TYPE=%s\n", elementTypeToAbaqusTag(e.Type)))
		}
		fields := make([]string, len(e.NodeIndices))
		for k, n := range e.NodeIndices {
			fields[k] = io.Sf("%d", n+1)
		}
		w.WriteString(io.Sf("%d, %s\n", i+1, strings.Join(fields, ", ")))
	}

	for _, name := range sortedKeys(nodeSets) {
		w.WriteString(io.Sf("*NSET, NSET=%s\n", name))
		writeMembers(w, nodeSets[name])
	}
	for _, name := range sortedKeys(elementSets) {
		w.WriteString(io.Sf("*ELSET, ELSET=%s\n", name))
		writeMembers(w, elementSets[name])
	}
	return nil
}

func writeMembers(w *bufio.Writer, members []int) {
	const perLine = 10
	for i := 0; i < len(members); i += perLine {
		end := i + perLine
		if end > len(members) {
			end = len(members)
		}
		fields := make([]string, end-i)
		for k, m := range members[i:end] {
			fields[k] = io.Sf("%d", m+1)
		}
		w.WriteString(io.Sf("%s\n", strings.Join(fields, ", ")))
	}
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedElementTypes(elements []model.RawElement) []model.ElementType {
	seen := map[model.ElementType]bool{}
	var kinds []model.ElementType
	for _, e := range elements {
		if !seen[e.Type] {
			seen[e.Type] = true
			kinds = append(kinds, e.Type)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// elementTypeToAbaqusTag returns a canonical Abaqus element-type tag that
// model.ElementTypeFrom3rdParty maps back to t, used to re-serialize a cleaned deck.
func elementTypeToAbaqusTag(t model.ElementType) string {
	switch t {
	case model.Plane3:
		return "CPS3"
	case model.Plane4:
		return "CPS4"
	case model.Plane6:
		return "CPS6"
	case model.Plane8:
		return "CPS8"
	case model.Volume4:
		return "C3D4"
	case model.Volume6:
		return "C3D6"
	case model.Volume8:
		return "C3D8"
	case model.Volume10:
		return "C3D10"
	case model.Volume15:
		return "C3D15"
	case model.Volume20:
		return "C3D20"
	default:
		chk.Panic("tools: element type %v has no Abaqus tag", t)
		return ""
	}
}
