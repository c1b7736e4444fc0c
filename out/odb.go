// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out is the output database (ODB): a frame-structured, line-oriented text file
// recording, for one or more output frames, the mesh plus any nodal and global output
// values computed for it. Grounded line-for-line on
// original_source/feapack/model/odb.py.
package out

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/carlos-souto/FEAPACK/model"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ErrMissingFrame is returned by Open when a read-mode ODB file has no "$FRAME" sections.
var ErrMissingFrame = errors.New("out: output database has no frames")

// Mode selects whether an ODB is opened for appending new frames or for reading existing
// ones.
type Mode int

const (
	Write Mode = iota
	Read
)

// ODB is an output database file: nodes, elements, and per-frame nodal/global output,
// written append-only and indexed by a line-pointer table when opened for reading.
type ODB struct {
	filePath     string
	mode         Mode
	frameCount   int
	currentFrame int

	// linePointers[frame][command] locates one "$COMMAND [count]" section within frame:
	// the header line's text (to recover count) and the byte offset where the data
	// immediately following it begins.
	linePointers []map[string]linePointer
}

type linePointer struct {
	header string
	offset int64
}

// NodeOutput is one named column of per-node output values, in mesh node order.
type NodeOutput struct {
	Title  string
	Values []float64
}

// GlobalOutput is one named scalar output value.
type GlobalOutput struct {
	Title string
	Value float64
}

// Open opens (or creates) the ODB file at path in the given mode. In Write mode, the file is
// created if it doesn't exist and new frames are appended; in Read mode the file is scanned
// once to count frames and index every "$COMMAND" line, returning ErrMissingFrame if the
// file has none.
func Open(path string, mode Mode) (*ODB, error) {
	db := &ODB{filePath: path, mode: mode, currentFrame: -1}

	if mode == Write {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			f, err := os.Create(path)
			if err != nil {
				return nil, chk.Err("out: cannot create output database %q: %v", path, err)
			}
			f.Close()
		}
		return db, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("out: output database not found: %q", path)
	}
	defer f.Close()

	var pointers []map[string]linePointer
	reader := bufio.NewReader(f)
	var offset int64
	var cur map[string]linePointer
	done := false
	for !done {
		line, readErr := reader.ReadString('\n')
		done = readErr != nil
		lineLen := int64(len(line))
		trimmed := strings.TrimRight(line, "\r\n")
		switch {
		case trimmed == "$FRAME":
			offset += lineLen
			numLine, numErr := reader.ReadString('\n')
			offset += int64(len(numLine))
			done = done || numErr != nil
			cur = map[string]linePointer{}
			pointers = append(pointers, cur)
			continue
		case trimmed == "$END_FRAME":
			cur = nil
		case strings.HasPrefix(trimmed, "$") && cur != nil:
			command := strings.Fields(trimmed)[0]
			cur[command] = linePointer{header: trimmed, offset: offset + lineLen}
		}
		offset += lineLen
	}
	db.frameCount = len(pointers)
	if db.frameCount == 0 {
		return nil, ErrMissingFrame
	}
	db.currentFrame = db.frameCount - 1
	db.linePointers = pointers
	return db, nil
}

// FrameCount returns the number of frames currently in the database.
func (db *ODB) FrameCount() int { return db.frameCount }

// CurrentFrame returns the index of the frame the database is currently pointing to.
func (db *ODB) CurrentFrame() int { return db.currentFrame }

// WriteNextFrame appends a new frame to the database.
func (db *ODB) WriteNextFrame(description string, mesh *model.Mesh, nodeOutput []NodeOutput, globalOutput []GlobalOutput) error {
	db.frameCount++
	db.currentFrame++

	f, err := os.OpenFile(db.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return chk.Err("out: cannot open output database %q: %v", db.filePath, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	w.WriteString(io.Sf("$FRAME\n%d\n\n", db.currentFrame))
	w.WriteString(io.Sf("$DESCRIPTION\n%s\n\n", description))

	w.WriteString(io.Sf("$NODES %d\n", mesh.NodeCount()))
	for _, n := range mesh.Nodes() {
		w.WriteString(io.Sf("%v, %v, %v\n", n.X(), n.Y(), n.Z()))
	}
	w.WriteString("\n")

	w.WriteString(io.Sf("$ELEMENTS %d\n", mesh.ElementCount()))
	for _, e := range mesh.Elements() {
		conn := make([]string, len(e.NodeIndices()))
		for i, ni := range e.NodeIndices() {
			conn[i] = strconv.Itoa(ni)
		}
		w.WriteString(io.Sf("%s, %s\n", e.Type().Name(), strings.Join(conn, ", ")))
	}
	w.WriteString("\n")

	w.WriteString(io.Sf("$NODE_OUTPUT_TITLES %d\n", len(nodeOutput)))
	for _, col := range nodeOutput {
		w.WriteString(col.Title + "\n")
	}
	w.WriteString("\n")

	nodeRows := 0
	if len(nodeOutput) > 0 {
		nodeRows = mesh.NodeCount()
	}
	w.WriteString(io.Sf("$NODE_OUTPUT_VALUES %d\n", nodeRows))
	for i := 0; i < nodeRows; i++ {
		vals := make([]string, len(nodeOutput))
		for c, col := range nodeOutput {
			vals[c] = io.Sf("%v", col.Values[i])
		}
		w.WriteString(strings.Join(vals, ", ") + "\n")
	}
	w.WriteString("\n")

	w.WriteString(io.Sf("$GLOBAL_OUTPUT_TITLES %d\n", len(globalOutput)))
	for _, g := range globalOutput {
		w.WriteString(g.Title + "\n")
	}
	w.WriteString("\n")

	w.WriteString(io.Sf("$GLOBAL_OUTPUT_VALUES %d\n", len(globalOutput)))
	for _, g := range globalOutput {
		w.WriteString(io.Sf("%v\n", g.Value))
	}
	w.WriteString("\n")

	w.WriteString("$END_FRAME\n\n")
	return w.Flush()
}
