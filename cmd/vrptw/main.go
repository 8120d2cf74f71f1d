// The vrptw command plans visits under time windows and prints the
// timed schedule. Without -scenario it runs the bundled appointment
// demo: 16 locations, 5 vehicles, minutes as the travel unit.
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lastmile/dataset"
	"github.com/katalvlaran/lastmile/report"
	"github.com/katalvlaran/lastmile/routing"
	"github.com/katalvlaran/lastmile/vrp"
)

var (
	scenarioPath = flag.String("scenario", "", "YAML scenario file; empty runs the bundled demo")
	exact        = flag.Bool("exact", false, "solve with branch and bound instead of local search")
	timeLimit    = flag.Duration("time_limit", time.Second, "search wall-clock budget, 0 runs unbounded")
	dumpPath     = flag.String("dump", "", "write the instance to this json file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Exitf("vrptw: %v", err)
	}
}

func run() error {
	var (
		inst   *vrp.Instance
		params = routing.DefaultSearchParams()
		err    error
	)
	if *scenarioPath == "" {
		inst = dataset.DemoTimeWindows()
	} else {
		sc, scErr := dataset.LoadScenario(*scenarioPath)
		if scErr != nil {
			return scErr
		}
		if inst, err = sc.Instance(); err != nil {
			return err
		}
		if params, err = sc.Params(); err != nil {
			return err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "exact":
			params.Exact = *exact
		case "time_limit":
			params.TimeLimit = *timeLimit
		}
	})

	if *dumpPath != "" {
		if err = dataset.WriteInstanceJSON(*dumpPath, inst); err != nil {
			return err
		}
		log.Infof("instance written to %s", *dumpPath)
	}

	asn, err := routing.Solve(inst, params)
	if errors.Is(err, routing.ErrInfeasible) {
		return report.WriteNoSolution(os.Stdout)
	}
	if err != nil {
		return err
	}

	sum, err := report.Build(inst, asn)
	if err != nil {
		return err
	}

	return sum.WriteSchedule(os.Stdout)
}
