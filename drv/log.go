// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drv implements the three analysis drivers (static, frequency, buckling) and the
// Solve orchestrator that runs model validation, DOF enumeration and the chosen driver in
// sequence, logging progress the way the teacher's fem/main.go does. Grounded on
// original_source/feapack/solver/main.py.
package drv

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
)

// logger mirrors main.py's module-level _log: console output is optional, file output is
// optional and independent, and the very first write to the log file truncates it while
// every subsequent write appends (so a crash mid-run still leaves a readable partial log).
type logger struct {
	path        string
	print, save bool
	truncated   bool
}

func newLogger(path string, print, save bool) *logger {
	return &logger{path: path, print: print, save: save}
}

func (l *logger) Log(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.print {
		io.Pf("%s\n", msg)
	}
	if !l.save {
		return
	}
	flag := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if !l.truncated {
		flag = os.O_TRUNC | os.O_CREATE | os.O_WRONLY
		l.truncated = true
	}
	f, err := os.OpenFile(l.path, flag, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString(msg + "\n")
}

func (l *logger) Blank() { l.Log("") }
