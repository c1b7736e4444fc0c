// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/carlos-souto/FEAPACK/inp"
)

const messyDeck = `*NODE
1, 0.0, 0.0
2, 1.0, 0.0
3, 1.0, 1.0
4, 0.0, 1.0
5, 99.0, 99.0
*ELEMENT, TYPE=CPS4, ELSET=PLATE
1, 1, 2, 3, 4
*NSET, NSET=LEFT
1, 4
*NSET, NSET=STRAY
5,
*ELSET, ELSET=PLATE
1,
`

func TestCleanDropsUnconnectedNodesAndRenumbersDensely(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "messy.inp")
	if err := os.WriteFile(src, []byte(messyDeck), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	dst := filepath.Join(dir, "clean.inp")
	remap := filepath.Join(dir, "clean.remap")

	if err := Clean(src, dst, remap); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	reader, err := inp.NewReader(dst)
	if err != nil {
		t.Fatalf("cannot reopen cleaned deck: %v", err)
	}
	nodes := reader.Nodes()
	if len(nodes) != 4 {
		t.Fatalf("len(Nodes()) = %d, want 4 (unconnected node 5 must be dropped)", len(nodes))
	}
	elements := reader.Elements()
	if len(elements) != 1 || len(elements[0].NodeIndices) != 4 {
		t.Fatalf("unexpected cleaned element set: %+v", elements)
	}

	sets := reader.NodeSets()
	if _, ok := sets["STRAY"]; ok {
		t.Error("STRAY set should have been dropped entirely: it only referenced the unconnected node")
	}
	if v, ok := sets["LEFT"]; !ok || len(v) != 2 {
		t.Errorf("LEFT = %v, ok=%v, want 2 surviving members", v, ok)
	}

	f, err := os.Open(remap)
	if err != nil {
		t.Fatalf("cannot open remap table: %v", err)
	}
	defer f.Close()
	var table RemapTable
	if err := table.Decode(gob.NewDecoder(f)); err != nil {
		t.Fatalf("cannot decode remap table: %v", err)
	}
	if len(table.Nodes) != 4 {
		t.Errorf("remap table has %d node entries, want 4", len(table.Nodes))
	}
	if _, ok := table.Nodes[4]; ok {
		t.Error("remap table should not carry an entry for the dropped node (original index 4)")
	}
}

func TestCleanRejectsAnEmptyResult(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "nodesonly.inp")
	if err := os.WriteFile(src, []byte("*NODE\n1, 0.0, 0.0\n"), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	dst := filepath.Join(dir, "out.inp")

	defer func() {
		if recover() == nil {
			t.Error("expected Clean to panic when no element survives")
		}
	}()
	Clean(src, dst, "")
}
