package drv

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/validate"
	"github.com/cpmech/gosl/chk"
)

// Version is the value reported in the solver's log banner.
const Version = "1.0.0"

// Options configures a Solve run.
type Options struct {
	Analysis string // "static", "frequency" or "buckling"
	Modes    int    // requested eigenpair count, ignored for "static"
	JobName  string // base name for the .log and .out files
	Workers  int    // worker-pool size for the element-kernel map step
	PrintLog bool
	WriteLog bool
}

// Solve runs model validation, DOF enumeration and the requested analysis driver against
// mdb, writing <jobName>.log and <jobName>.out. Returns an error if validation fails or the
// driver itself fails; either case is also recorded in the log. Grounded on
// original_source/feapack/solver/main.py's solve.
func Solve(mdb *model.MDB, opt Options) error {
	jobName := opt.JobName
	if jobName == "" {
		jobName = "job"
	}
	base := strings.TrimSuffix(jobName, filepath.Ext(jobName))
	logPath := base + ".log"
	outPath := base + ".out"

	workers := opt.Workers
	if workers < 1 {
		workers = 1
	}
	modes := opt.Modes
	if modes < 1 {
		modes = 10
	}

	log := newLogger(logPath, opt.PrintLog, opt.WriteLog)
	start := time.Now()

	analysis := strings.ToLower(strings.TrimSpace(opt.Analysis))

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Blank()
				log.Log("%v", r)
				log.Log("Solver has stopped prematurely due to an exception (see above)")
				err = fmt.Errorf("drv: %v", r)
			}
		}()

		blankBar := "|                                     |"
		log.Log("+-------------------------------------+")
		log.Log("%s", blankBar)
		log.Log("|   F E A P A C K   -   S O L V E R   |")
		log.Log("|  ---------------------------------  |")
		log.Log("%s", center("VERSION "+Version, 37))
		log.Log("%s", blankBar)
		now := time.Now()
		log.Log("|   DATE %s   TIME %s   |", now.Format("2006-01-02"), now.Format("15:04:05"))
		log.Log("%s", blankBar)
		log.Log("%s", blankBar)
		log.Log("%s", center("--- START OF RUN ---", 37))
		log.Log("%s", blankBar)
		log.Log("+-------------------------------------+")
		log.Blank()
		log.Log("GENERAL INFO")
		log.Log("------------")
		log.Log("* Analysis    %s", analysis)
		mode := "sequential"
		if workers > 1 {
			mode = "parallel"
		}
		log.Log("* Mode        %s", mode)
		log.Log("* Workers     %d", workers)
		log.Blank()

		log.Log("MODEL DATABASE CHECKS")
		log.Log("---------------------")
		report := validate.Check(mdb, analysis)
		for _, w := range report.Warnings {
			log.Log("[Warning] %s", w)
		}
		for _, e := range report.Errors {
			log.Log("[Error] %s", e)
		}
		switch {
		case len(report.Errors) == 0 && len(report.Warnings) == 0:
			log.Log("Basic checks found no warnings nor errors")
		default:
			msg := "Basic checks found "
			if len(report.Warnings) > 0 {
				msg += fmt.Sprintf("%d warning(s)", len(report.Warnings))
			}
			if len(report.Warnings) > 0 && len(report.Errors) > 0 {
				msg += " and "
			}
			if len(report.Errors) > 0 {
				msg += fmt.Sprintf("%d error(s)", len(report.Errors))
			}
			log.Log(msg)
		}
		log.Blank()

		if len(report.Errors) > 0 {
			log.Log("Solver has stopped prematurely due to errors (see above)")
			return fmt.Errorf("drv: model database failed validation with %d error(s)", len(report.Errors))
		}

		log.Log("PRE-PROCESSING")
		log.Log("--------------")
		mdb.BuildDOFs()
		mdb.AssignElementProperties()
		log.Log("Number of nodes: %d", mdb.Mesh().NodeCount())
		log.Log("Number of elements: %d", mdb.Mesh().ElementCount())
		log.Log("Number of active degrees of freedom: %d", mdb.Mesh().ActiveDOFCount())
		log.Log("Number of inactive degrees of freedom: %d", mdb.Mesh().InactiveDOFCount())
		log.Blank()

		switch analysis {
		case "static":
			log.Log("STATIC ANALYSIS")
			log.Log("---------------")
			err = Static(mdb, workers, outPath, log)
		case "frequency":
			log.Log("FREQUENCY ANALYSIS")
			log.Log("------------------")
			err = Frequency(mdb, modes, workers, outPath, log)
		case "buckling":
			log.Log("BUCKLING ANALYSIS")
			log.Log("-----------------")
			err = Buckling(mdb, modes, workers, outPath, log)
		default:
			chk.Panic("drv: undefined analysis type: %q", opt.Analysis)
		}
		if err != nil {
			return err
		}
		log.Blank()
		log.Log("Successful run")
		return nil
	}()

	log.Log("Elapsed time is %.3f seconds", time.Since(start).Seconds())
	log.Log("--- END OF RUN ---")
	return err
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return "|" + s + "|"
	}
	left := pad / 2
	right := pad - left
	return "|" + strings.Repeat(" ", left) + s + strings.Repeat(" ", right) + "|"
}
