// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"

	"github.com/carlos-souto/FEAPACK/model"
	"github.com/cpmech/gosl/chk"
)

// Selection names one source ODB file and the frames to pull from it, for Merge.
type Selection struct {
	FilePath string
	Frames   []int
}

// Merge combines frames from one or more source ODBs into a single new ODB file at path,
// replacing it if it already exists. descriptions, if non-empty, overrides the copied
// frames' descriptions in order.
func Merge(path string, selection []Selection, descriptions []string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return chk.Err("out: cannot replace output database %q: %v", path, err)
		}
	}

	dst, err := Open(path, Write)
	if err != nil {
		return err
	}

	count := 0
	for _, sel := range selection {
		src, err := Open(sel.FilePath, Read)
		if err != nil {
			return err
		}
		for _, frame := range sel.Frames {
			if err := src.GoToFrame(frame); err != nil {
				return err
			}

			description, err := src.GetDescription()
			if err != nil {
				return err
			}
			if len(descriptions) > 0 {
				description = descriptions[count]
			}

			mesh, err := rebuildMesh(src)
			if err != nil {
				return err
			}

			nodeTitles, err := src.GetNodeOutputTitles()
			if err != nil {
				return err
			}
			nodeOutput := make([]NodeOutput, len(nodeTitles))
			for i, title := range nodeTitles {
				values, err := src.GetNodeOutputValues(title)
				if err != nil {
					return err
				}
				nodeOutput[i] = NodeOutput{Title: title, Values: values}
			}

			globalTitles, err := src.GetGlobalOutputTitles()
			if err != nil {
				return err
			}
			globalOutput := make([]GlobalOutput, len(globalTitles))
			for i, title := range globalTitles {
				value, err := src.GetGlobalOutputValues(title)
				if err != nil {
					return err
				}
				globalOutput[i] = GlobalOutput{Title: title, Value: value}
			}

			if err := dst.WriteNextFrame(description, mesh, nodeOutput, globalOutput); err != nil {
				return err
			}
			count++
		}
	}
	return nil
}

// rebuildMesh reconstructs a Mesh from the current frame's recorded nodes and elements.
func rebuildMesh(db *ODB) (*model.Mesh, error) {
	rawNodes, err := db.GetNodes()
	if err != nil {
		return nil, err
	}
	rawElements, err := db.GetElements()
	if err != nil {
		return nil, err
	}

	nodes := make([]*model.Node, len(rawNodes))
	for i, c := range rawNodes {
		nodes[i] = model.NewNode(i, c[0], c[1], c[2])
	}
	elements := make([]*model.Element, len(rawElements))
	for i, re := range rawElements {
		kind, ok := model.ElementTypeFromName(re.TypeName)
		if !ok {
			return nil, chk.Err("out: unrecognized element type %q in output database", re.TypeName)
		}
		elements[i] = model.NewElement(i, kind, re.NodeIndices)
	}
	return model.NewMesh(nodes, elements), nil
}
