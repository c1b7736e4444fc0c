// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlos-souto/FEAPACK/model"
)

const deck = `*HEADING
a two-element plate, one unsupported element dropped
**
*NODE
1, 0.0, 0.0
2, 1.0, 0.0
3, 1.0, 1.0
4, 0.0, 1.0
5, 2.0, 0.0
6, 2.0, 1.0
*ELEMENT, TYPE=CPS4, ELSET=PLATE
1, 1, 2, 3, 4
2, 2, 5, 6, 3
*ELEMENT, TYPE=B31, ELSET=STIFFENER
3, 1, 2
*NSET, NSET=LEFT
1, 4
*NSET, NSET=ALL, GENERATE
1, 6, 1
*ELSET, ELSET=PLATE2
1,
2,
`

func writeDeck(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.inp")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	return path
}

func TestAbaqusReaderNodesUsePositionNotFileID(t *testing.T) {
	path := writeDeck(t, deck)
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	nodes := reader.Nodes()
	if len(nodes) != 6 {
		t.Fatalf("len(Nodes()) = %d, want 6", len(nodes))
	}
	for i, n := range nodes {
		if n.Index != i {
			t.Errorf("node %d: Index = %d, want %d (position, not file id)", i, n.Index, i)
		}
	}
	if nodes[4].X != 2.0 || nodes[4].Y != 0.0 {
		t.Errorf("node 4 coordinates = (%g, %g), want (2, 0)", nodes[4].X, nodes[4].Y)
	}
}

func TestAbaqusReaderElementsDropUnsupportedTypes(t *testing.T) {
	path := writeDeck(t, deck)
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	elements := reader.Elements()
	if len(elements) != 2 {
		t.Fatalf("len(Elements()) = %d, want 2 (the B31 beam element must be dropped)", len(elements))
	}
	for i, e := range elements {
		if e.Index != i {
			t.Errorf("element %d: Index = %d, want %d", i, e.Index, i)
		}
		if e.Type != model.Plane4 {
			t.Errorf("element %d: Type = %v, want Plane4", i, e.Type)
		}
	}
	want := []int{0, 1, 2, 3}
	for i, v := range elements[0].NodeIndices {
		if v != want[i] {
			t.Errorf("element 0 connectivity[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestAbaqusReaderNodeSetsIncludeGenerateRanges(t *testing.T) {
	path := writeDeck(t, deck)
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	sets := reader.NodeSets()
	left, ok := sets["LEFT"]
	if !ok {
		t.Fatal("missing node set LEFT")
	}
	if len(left) != 2 || left[0] != 0 || left[1] != 3 {
		t.Errorf("LEFT = %v, want [0 3]", left)
	}
	all, ok := sets["ALL"]
	if !ok {
		t.Fatal("missing node set ALL")
	}
	if len(all) != 6 {
		t.Errorf("ALL (GENERATE 1,6,1) = %v, want 6 members", all)
	}
	for i, v := range all {
		if v != i {
			t.Errorf("ALL[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestAbaqusReaderElementSetsAreZeroBased(t *testing.T) {
	path := writeDeck(t, deck)
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	sets := reader.ElementSets()
	plate2, ok := sets["PLATE2"]
	if !ok {
		t.Fatal("missing element set PLATE2")
	}
	if len(plate2) != 2 || plate2[0] != 0 || plate2[1] != 1 {
		t.Errorf("PLATE2 = %v, want [0 1]", plate2)
	}
}

func TestAbaqusReaderFeedsModelFromReader(t *testing.T) {
	path := writeDeck(t, deck)
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	mesh := model.FromReader(reader)
	if mesh.NodeCount() != 6 {
		t.Errorf("NodeCount() = %d, want 6", mesh.NodeCount())
	}
	if mesh.ElementCount() != 2 {
		t.Errorf("ElementCount() = %d, want 2", mesh.ElementCount())
	}
}

func TestAbaqusReaderPartInstanceQualifiesSetNames(t *testing.T) {
	const partDeck = `*NODE
1, 0.0, 0.0
2, 1.0, 0.0
3, 1.0, 1.0
4, 0.0, 1.0
*ELEMENT, TYPE=CPS4
1, 1, 2, 3, 4
*PART, NAME=PART-1
*NSET, NSET=CORNER
1,
*ENDPART
*NSET, NSET=CORNER, INSTANCE=PART-1-1
2,
`
	path := writeDeck(t, partDeck)
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	sets := reader.NodeSets()
	if v, ok := sets["PART-1.CORNER"]; !ok || len(v) != 1 || v[0] != 0 {
		t.Errorf("PART-1.CORNER = %v, ok=%v, want [0]", v, ok)
	}
	if v, ok := sets["PART-1-1.CORNER"]; !ok || len(v) != 1 || v[0] != 1 {
		t.Errorf("PART-1-1.CORNER = %v, ok=%v, want [1]", v, ok)
	}
}

func TestNewReaderRejectsMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.inp")); err == nil {
		t.Fatal("expected an error for a nonexistent file")
	}
}
