// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/carlos-souto/FEAPACK/drv"
	"github.com/carlos-souto/FEAPACK/out"
	"github.com/carlos-souto/FEAPACK/tools"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "feapack",
	Short: "FEAPACK -- a linear-elastic finite element solver",
	Long: "FEAPACK -- a linear-elastic finite element solver\n" +
		"Static, frequency and buckling analysis of isoparametric solid meshes.",
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

var solveCmd = &cobra.Command{
	Use:   "solve JOBFILE",
	Short: "Run a static, frequency or buckling analysis from a job file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mdb, err := loadJob(args[0])
		if err != nil {
			return err
		}
		jobName, _ := cmd.Flags().GetString("job")
		if jobName == "" {
			jobName = io.FnKey(args[0])
		}
		return drv.Solve(mdb, drv.Options{
			Analysis: solveAnalysis,
			Modes:    solveModes,
			JobName:  jobName,
			Workers:  solveWorkers,
			PrintLog: true,
			WriteLog: true,
		})
	},
}

var (
	solveAnalysis string
	solveModes    int
	solveWorkers  int
)

var cleanCmd = &cobra.Command{
	Use:   "clean SRC DST",
	Short: "Renumber an Abaqus input deck densely and drop unconnected nodes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		remapPath, _ := cmd.Flags().GetString("remap")
		if err := tools.Clean(args[0], args[1], remapPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", args[1])
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge DST SRC=FRAMES [SRC=FRAMES ...]",
	Short: "Merge selected frames from one or more output databases into DST",
	Long: "Merge selected frames from one or more output databases into DST.\n" +
		"Each SRC=FRAMES argument names a source .out file and a comma-separated,\n" +
		"0-based list of frame indices to copy from it, in order, e.g.:\n" +
		"  feapack merge combined.out a.out=0,2 b.out=1",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		selection, err := parseMergeArgs(args[1:])
		if err != nil {
			return err
		}
		descriptions, _ := cmd.Flags().GetStringSlice("description")
		if err := out.Merge(args[0], selection, descriptions); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", args[0])
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveAnalysis, "analysis", "static", `analysis type: "static", "frequency" or "buckling"`)
	solveCmd.Flags().IntVar(&solveModes, "modes", 10, "number of eigenpairs to extract (frequency/buckling only)")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 1, "worker-pool size for the element-kernel map step")
	solveCmd.Flags().String("job", "", "base name for the .log and .out files (default: job file name)")

	cleanCmd.Flags().String("remap", "", "path to write the gob-encoded old/new index remap table")

	mergeCmd.Flags().StringSlice("description", nil, "per-frame description overrides, in output order")

	rootCmd.AddCommand(solveCmd, cleanCmd, mergeCmd)
}
