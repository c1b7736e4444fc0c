// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp is the mesh-reader collaborator named in spec.md §6: it parses a third-party
// pre-processor file format into the (nodes, elements, node sets, element sets) shape that
// model.MDB.FromFile needs. Grounded line-for-line on
// original_source/feapack/io/abaqusReader.py.
package inp

import (
	"os"
	"strconv"
	"strings"

	"github.com/carlos-souto/FEAPACK/model"
	"github.com/cpmech/gosl/chk"
)

// AbaqusReader reads the mesh, node sets and element sets out of an Abaqus input deck
// (*NODE, *ELEMENT, *NSET, *ELSET keyword blocks; GENERATE ranges; single-part decks only).
// Node and element numbering is assumed dense and 1-based in file order, matching the
// original reader's implicit convention (the file's own id column is discarded and the
// line's position within its keyword block is used instead).
type AbaqusReader struct {
	filePath string
}

// NewReader opens path for reading as an Abaqus input deck. Matches the
// func(path string) (model.MeshReader, error) shape model.MDB.FromFile dispatches to.
func NewReader(path string) (model.MeshReader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, chk.Err("inp: cannot open Abaqus input file %q: %v", path, err)
	}
	return &AbaqusReader{filePath: path}, nil
}

// cleanLines reads the whole file, uppercases and strips whitespace from every line, and
// drops blank lines and "**" comments, mirroring AbaqusReader.cleanLines.
func (r *AbaqusReader) cleanLines() []string {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		chk.Panic("inp: cannot read Abaqus input file %q: %v", r.filePath, err)
	}
	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
		if line == "" || strings.HasPrefix(line, "**") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// extractParam returns the value following key up to the next comma, or "" if key is absent.
func extractParam(line, key string) string {
	idx := strings.Index(line, key)
	if idx < 0 {
		return ""
	}
	rest := line[idx+len(key):]
	if comma := strings.Index(rest, ","); comma >= 0 {
		return rest[:comma]
	}
	return rest
}

func fieldsOf(line string) []string { return strings.Split(line, ",") }

// Nodes returns the nodal coordinates in file order; the file's own node id is discarded,
// the position within the *NODE block becomes the node's index.
func (r *AbaqusReader) Nodes() []model.RawNode {
	var out []model.RawNode
	reading := false
	for _, line := range r.cleanLines() {
		if reading && strings.HasPrefix(line, "*") {
			reading = false
		}
		if reading {
			fields := fieldsOf(line)
			var xyz [3]float64
			for i := 1; i < len(fields) && i <= 3; i++ {
				if fields[i] == "" {
					continue
				}
				v, err := strconv.ParseFloat(fields[i], 64)
				if err != nil {
					chk.Panic("inp: invalid coordinate %q in %q", fields[i], r.filePath)
				}
				xyz[i-1] = v
			}
			out = append(out, model.RawNode{Index: len(out), X: xyz[0], Y: xyz[1], Z: xyz[2]})
		} else if fieldsOf(line)[0] == "*NODE" {
			reading = true
		}
	}
	return out
}

// Elements returns the element types and nodal connectivity in file order, mapping each
// Abaqus type tag through model.ElementTypeFrom3rdParty and silently dropping unsupported
// types. Continuation lines (a data line ending in a trailing comma) are stitched together,
// matching the original reader's multi-line connectivity handling.
func (r *AbaqusReader) Elements() []model.RawElement {
	lines := r.cleanLines()
	var out []model.RawElement
	reading := false
	elementType := ""
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if reading && strings.HasPrefix(line, "*") {
			reading = false
		}
		if reading {
			var connectivity []int
			skip := 1
			for {
				fields := fieldsOf(line)
				for _, f := range fields[skip:] {
					if f == "" {
						continue
					}
					v, err := strconv.Atoi(f)
					if err != nil {
						chk.Panic("inp: invalid node id %q in %q", f, r.filePath)
					}
					connectivity = append(connectivity, v-1)
				}
				if strings.HasSuffix(line, ",") && i+1 < len(lines) {
					i++
					line = lines[i]
					skip = 0
					continue
				}
				break
			}
			if kind, ok := model.ElementTypeFrom3rdParty("ABAQUS", elementType); ok {
				out = append(out, model.RawElement{Index: len(out), Type: kind, NodeIndices: connectivity})
			}
		} else if fieldsOf(line)[0] == "*ELEMENT" {
			reading = true
			elementType = extractParam(line, "TYPE=")
		}
	}
	return out
}

// getSets implements the shared *NSET/*ELSET parsing behind NodeSets and ElementSets,
// including *PART/*ENDPART-qualified names and GENERATE ranges.
func (r *AbaqusReader) getSets(keyword string) map[string][]int {
	result := map[string][]int{}
	reading, generate := false, false
	setName, partName := "", ""
	var indices []int
	flush := func() { result[setName] = append([]int(nil), indices...) }

	for _, line := range r.cleanLines() {
		if reading && strings.HasPrefix(line, "*") {
			reading = false
			flush()
		}
		if reading {
			if generate {
				var nums []int
				for _, f := range fieldsOf(line) {
					if f == "" {
						continue
					}
					v, err := strconv.Atoi(f)
					if err != nil {
						chk.Panic("inp: invalid GENERATE parameter %q in %q", f, r.filePath)
					}
					nums = append(nums, v)
				}
				first, last, inc := nums[0]-1, nums[1]-1, 1
				if len(nums) >= 3 {
					inc = nums[2]
				}
				for v := first; v <= last; v += inc {
					indices = append(indices, v)
				}
			} else {
				for _, f := range fieldsOf(line) {
					if f == "" {
						continue
					}
					v, err := strconv.Atoi(f)
					if err != nil {
						chk.Panic("inp: invalid set member %q in %q", f, r.filePath)
					}
					indices = append(indices, v-1)
				}
			}
			continue
		}
		switch head := fieldsOf(line)[0]; {
		case head == keyword:
			reading = true
			generate = strings.Contains(line, ",GENERATE")
			prefix := ""
			if instance := extractParam(line, "INSTANCE="); instance != "" {
				prefix = instance + "."
			} else if partName != "" {
				prefix = partName + "."
			}
			setName = prefix + extractParam(line, "SET=")
			indices = nil
		case head == "*PART":
			partName = extractParam(line, "NAME=")
		case head == "*ENDPART":
			partName = ""
		}
	}
	if reading {
		flush()
	}
	return result
}

// NodeSets returns the named node sets, 0-based.
func (r *AbaqusReader) NodeSets() map[string][]int { return r.getSets("*NSET") }

// ElementSets returns the named element sets, 0-based.
func (r *AbaqusReader) ElementSets() map[string][]int { return r.getSets("*ELSET") }
