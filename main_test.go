// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlos-souto/FEAPACK/model"
)

const jobDeck = `*NODE
1, 0.0, 0.0
2, 1.0, 0.0
3, 1.0, 1.0
4, 0.0, 1.0
*ELEMENT, TYPE=CPS4, ELSET=PLATE
1, 1, 2, 3, 4
*NSET, NSET=FIXED
1, 4
*NSET, NSET=LOADED
2, 3
`

func writeJob(t *testing.T, meshPath string) string {
	t.Helper()
	job := `{
		"mesh": "` + meshPath + `",
		"materials": [{"name": "steel", "young": 1000.0, "poisson": 0.0, "density": 1.0}],
		"sections": [{"region": "PLATE", "material": "steel", "type": "planeStress", "thickness": 1.0}],
		"loads": {"concentrated": [{"region": "LOADED", "x": 1.0, "y": 0.0, "z": 0.0}]},
		"boundaryConditions": [{"region": "FIXED", "u": 0.0, "v": 0.0}]
	}`
	path := filepath.Join(t.TempDir(), "job.json")
	if err := os.WriteFile(path, []byte(job), 0644); err != nil {
		t.Fatalf("cannot write job file: %v", err)
	}
	return path
}

func TestLoadJobBuildsCompleteMDB(t *testing.T) {
	meshPath := filepath.Join(t.TempDir(), "plate.inp")
	if err := os.WriteFile(meshPath, []byte(jobDeck), 0644); err != nil {
		t.Fatalf("cannot write mesh deck: %v", err)
	}

	mdb, err := loadJob(writeJob(t, meshPath))
	if err != nil {
		t.Fatalf("loadJob failed: %v", err)
	}

	if len(mdb.Sections()) != 1 {
		t.Fatalf("Sections() = %d entries, want 1", len(mdb.Sections()))
	}
	if mdb.Sections()[0].Type != model.PlaneStress {
		t.Errorf("section type = %v, want PlaneStress", mdb.Sections()[0].Type)
	}
	if len(mdb.ConcentratedLoads()) != 1 {
		t.Fatalf("ConcentratedLoads() = %d entries, want 1", len(mdb.ConcentratedLoads()))
	}
	if len(mdb.BoundaryConditions()) != 1 {
		t.Fatalf("BoundaryConditions() = %d entries, want 1", len(mdb.BoundaryConditions()))
	}
}

func TestLoadJobRejectsUnknownSectionMaterial(t *testing.T) {
	meshPath := filepath.Join(t.TempDir(), "plate.inp")
	if err := os.WriteFile(meshPath, []byte(jobDeck), 0644); err != nil {
		t.Fatalf("cannot write mesh deck: %v", err)
	}
	bad := `{"mesh": "` + meshPath + `", "sections": [{"region": "PLATE", "material": "missing", "type": "planeStress"}]}`
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatalf("cannot write job file: %v", err)
	}
	if _, err := loadJob(path); err == nil {
		t.Fatal("expected an error for an unknown material reference")
	}
}

func TestParseMergeArgs(t *testing.T) {
	selection, err := parseMergeArgs([]string{"a.out=0,2", "b.out=1"})
	if err != nil {
		t.Fatalf("parseMergeArgs failed: %v", err)
	}
	if len(selection) != 2 {
		t.Fatalf("len(selection) = %d, want 2", len(selection))
	}
	if selection[0].FilePath != "a.out" || len(selection[0].Frames) != 2 || selection[0].Frames[0] != 0 || selection[0].Frames[1] != 2 {
		t.Errorf("selection[0] = %+v, want {a.out [0 2]}", selection[0])
	}
	if selection[1].FilePath != "b.out" || len(selection[1].Frames) != 1 || selection[1].Frames[0] != 1 {
		t.Errorf("selection[1] = %+v, want {b.out [1]}", selection[1])
	}
}

func TestParseMergeArgsRejectsMissingEquals(t *testing.T) {
	if _, err := parseMergeArgs([]string{"a.out"}); err == nil {
		t.Fatal("expected an error for a source with no frame list")
	}
}
