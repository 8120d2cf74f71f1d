// The lastmile command plans parcel routes for a delivery fleet and
// prints the driver report. Without -scenario it runs the bundled
// neighbourhood demo: 16 destinations, 4 drivers, 15 boxes each.
//
// Usage:
//
//	lastmile [-scenario run.yaml] [-exact] [-strategy name]
//	         [-metaheuristic name] [-time_limit 1s]
//	         [-export matrix.xlsx] [-dump instance.json]
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
	scenarioPath  = flag.String("scenario", "", "YAML scenario file; empty runs the bundled demo")
	exact         = flag.Bool("exact", false, "solve with branch and bound instead of local search")
	strategy      = flag.String("strategy", routing.PathCheapestArc.String(), "first-solution strategy")
	metaheuristic = flag.String("metaheuristic", routing.GuidedLocalSearch.String(), "improvement metaheuristic")
	timeLimit     = flag.Duration("time_limit", time.Second, "search wall-clock budget, 0 runs unbounded")
	exportPath    = flag.String("export", "", "write the cost matrix to this xlsx file")
	dumpPath      = flag.String("dump", "", "write the instance to this json file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Exitf("lastmile: %v", err)
	}
}

func run() error {
	inst, params, err := load()
	if err != nil {
		return err
	}

	if *exportPath != "" {
		if err = dataset.WriteMatrixXLSX(*exportPath, inst.Costs); err != nil {
			return err
		}
		log.Infof("matrix written to %s", *exportPath)
	}
	if *dumpPath != "" {
		if err = dataset.WriteInstanceJSON(*dumpPath, inst); err != nil {
			return err
		}
		log.Infof("instance written to %s", *dumpPath)
	}

	log.Infof("solving %d nodes with %d vehicles, exact=%t", inst.Nodes(), inst.Vehicles, params.Exact)
	asn, err := routing.Solve(inst, params)
	if errors.Is(err, routing.ErrInfeasible) {
		return report.WriteNoSolution(os.Stdout)
	}
	if err != nil {
		return err
	}
	log.Infof("plan found, cost %d", asn.Cost)

	sum, err := report.Build(inst, asn)
	if err != nil {
		return err
	}

	return sum.WriteParcel(os.Stdout)
}

// load resolves the instance and search parameters, scenario file first,
// command line flags on top.
func load() (*vrp.Instance, routing.SearchParams, error) {
	var (
		inst   *vrp.Instance
		params = routing.DefaultSearchParams()
		err    error
	)
	if *scenarioPath == "" {
		inst = dataset.DemoLastMile()
	} else {
		sc, scErr := dataset.LoadScenario(*scenarioPath)
		if scErr != nil {
			return nil, params, scErr
		}
		if inst, err = sc.Instance(); err != nil {
			return nil, params, err
		}
		if params, err = sc.Params(); err != nil {
			return nil, params, err
		}
	}

	// Flags given explicitly beat the scenario's search block.
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "exact":
			params.Exact = *exact
		case "strategy":
			params.FirstSolution, err = routing.ParseStrategy(*strategy)
		case "metaheuristic":
			params.Metaheuristic, err = routing.ParseMetaheuristic(*metaheuristic)
		case "time_limit":
			params.TimeLimit = *timeLimit
		}
	})

	return inst, params, err
}
