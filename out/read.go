// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// seekCommand opens the database file and returns a reader positioned right after the
// "$COMMAND ..." header line of the given command within the current frame, plus that
// header line's declared count. The caller must close the returned file.
func (db *ODB) seekCommand(command string) (*os.File, *bufio.Reader, int, error) {
	ptr, ok := db.linePointers[db.currentFrame][command]
	if !ok {
		return nil, nil, 0, chk.Err("out: frame %d has no %q section", db.currentFrame, command)
	}
	f, err := os.Open(db.filePath)
	if err != nil {
		return nil, nil, 0, chk.Err("out: cannot open output database %q: %v", db.filePath, err)
	}
	if _, err := f.Seek(ptr.offset, 0); err != nil {
		f.Close()
		return nil, nil, 0, err
	}
	fields := strings.Fields(ptr.header)
	count, _ := strconv.Atoi(fields[len(fields)-1])
	return f, bufio.NewReader(f), count, nil
}

// GetDescription returns the description recorded for the current frame.
func (db *ODB) GetDescription() (string, error) {
	f, r, _, err := db.seekCommand("$DESCRIPTION")
	if err != nil {
		return "", err
	}
	defer f.Close()
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), nil
}

// GetNodes returns the nodal coordinates recorded for the current frame.
func (db *ODB) GetNodes() ([][3]float64, error) {
	f, r, count, err := db.seekCommand("$NODES")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out := make([][3]float64, count)
	for i := 0; i < count; i++ {
		line, _ := r.ReadString('\n')
		parts := strings.Split(strings.TrimRight(line, "\r\n"), ",")
		for d := 0; d < 3; d++ {
			v, _ := strconv.ParseFloat(strings.TrimSpace(parts[d]), 64)
			out[i][d] = v
		}
	}
	return out, nil
}

// RawElement is a (type name, connectivity) pair as stored in an ODB file.
type RawElement struct {
	TypeName    string
	NodeIndices []int
}

// GetElements returns the element types and connectivity recorded for the current frame.
func (db *ODB) GetElements() ([]RawElement, error) {
	f, r, count, err := db.seekCommand("$ELEMENTS")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out := make([]RawElement, count)
	for i := 0; i < count; i++ {
		line, _ := r.ReadString('\n')
		parts := strings.SplitN(strings.TrimRight(line, "\r\n"), ",", 2)
		typeName := strings.TrimSpace(parts[0])
		var conn []int
		for _, tok := range strings.Split(parts[1], ",") {
			v, _ := strconv.Atoi(strings.TrimSpace(tok))
			conn = append(conn, v)
		}
		out[i] = RawElement{TypeName: typeName, NodeIndices: conn}
	}
	return out, nil
}

// GetNodeOutputTitles returns the node output column titles recorded for the current frame.
func (db *ODB) GetNodeOutputTitles() ([]string, error) {
	return db.readTitles("$NODE_OUTPUT_TITLES")
}

// GetGlobalOutputTitles returns the global output titles recorded for the current frame.
func (db *ODB) GetGlobalOutputTitles() ([]string, error) {
	return db.readTitles("$GLOBAL_OUTPUT_TITLES")
}

func (db *ODB) readTitles(command string) ([]string, error) {
	f, r, count, err := db.seekCommand(command)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out := make([]string, count)
	for i := 0; i < count; i++ {
		line, _ := r.ReadString('\n')
		out[i] = strings.TrimRight(line, "\r\n")
	}
	return out, nil
}

// GetNodeOutputValues returns the recorded values of the named node output column, in mesh
// node order, for the current frame.
func (db *ODB) GetNodeOutputValues(title string) ([]float64, error) {
	titles, err := db.GetNodeOutputTitles()
	if err != nil {
		return nil, err
	}
	index := indexOf(titles, title)
	if index < 0 {
		return nil, chk.Err("out: no node output titled %q in frame %d", title, db.currentFrame)
	}
	f, r, count, err := db.seekCommand("$NODE_OUTPUT_VALUES")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		line, _ := r.ReadString('\n')
		parts := strings.Split(strings.TrimRight(line, "\r\n"), ",")
		v, _ := strconv.ParseFloat(strings.TrimSpace(parts[index]), 64)
		out[i] = v
	}
	return out, nil
}

// GetGlobalOutputValues returns the recorded value of the named global output for the
// current frame.
func (db *ODB) GetGlobalOutputValues(title string) (float64, error) {
	titles, err := db.GetGlobalOutputTitles()
	if err != nil {
		return 0, err
	}
	index := indexOf(titles, title)
	if index < 0 {
		return 0, chk.Err("out: no global output titled %q in frame %d", title, db.currentFrame)
	}
	f, r, count, err := db.seekCommand("$GLOBAL_OUTPUT_VALUES")
	if err != nil {
		return 0, err
	}
	defer f.Close()
	for i := 0; i < count; i++ {
		line, _ := r.ReadString('\n')
		if i == index {
			v, _ := strconv.ParseFloat(strings.TrimRight(line, "\r\n"), 64)
			return v, nil
		}
	}
	return 0, chk.Err("out: no global output titled %q in frame %d", title, db.currentFrame)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// GoToFirstFrame points the database at the first frame.
func (db *ODB) GoToFirstFrame() { db.currentFrame = 0 }

// GoToPreviousFrame points the database at the previous frame, clamped at the first.
func (db *ODB) GoToPreviousFrame() {
	if db.currentFrame > 0 {
		db.currentFrame--
	}
}

// GoToNextFrame points the database at the next frame, clamped at the last.
func (db *ODB) GoToNextFrame() {
	if db.currentFrame < db.frameCount-1 {
		db.currentFrame++
	}
}

// GoToLastFrame points the database at the last frame.
func (db *ODB) GoToLastFrame() { db.currentFrame = db.frameCount - 1 }

// GoToFrame points the database at the given frame, erroring if out of range.
func (db *ODB) GoToFrame(frame int) error {
	if frame < 0 || frame >= db.frameCount {
		return chk.Err("out: invalid frame %d (database has %d frames)", frame, db.frameCount)
	}
	db.currentFrame = frame
	return nil
}
