// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/carlos-souto/FEAPACK/out"
	"github.com/cpmech/gosl/chk"
)

// parseMergeArgs turns a list of "path=i,j,k" command-line arguments into out.Merge's
// selection slice, in the order given.
func parseMergeArgs(args []string) ([]out.Selection, error) {
	selection := make([]out.Selection, 0, len(args))
	for _, arg := range args {
		path, list, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, chk.Err("invalid merge source %q: expected PATH=FRAMES", arg)
		}
		var frames []int
		for _, tok := range strings.Split(list, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			i, err := strconv.Atoi(tok)
			if err != nil {
				return nil, chk.Err("invalid frame index %q in %q: %v", tok, arg, err)
			}
			frames = append(frames, i)
		}
		selection = append(selection, out.Selection{FilePath: path, Frames: frames})
	}
	return selection, nil
}
