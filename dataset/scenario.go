// Package dataset - YAML scenario documents.
//
// A scenario binds a matrix file to everything else a run needs:
//
//	matrix: distances.xlsx        # .xlsx or .csv, relative to this file
//	demands: [0, 1, 1, 2]
//	capacities: [4]
//	depot: 0
//	windows: [[0, 5], [7, 12], [10, 15], [16, 18]]   # optional
//	wait_slack: 30                # with windows
//	horizon: 30                   # with windows
//	search:                       # all optional, defaults apply
//	  strategy: path_cheapest_arc
//	  metaheuristic: guided_local_search
//	  time_limit: 1s
//	  exact: false
//
// Decoding is strict: unknown keys fail, so typos surface immediately
// instead of silently running with defaults.

package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lastmile/routing"
	"github.com/katalvlaran/lastmile/vrp"
)

// SearchSpec is the optional search block of a scenario. Empty fields
// keep the engine defaults.
type SearchSpec struct {
	Strategy      string `yaml:"strategy"`
	Metaheuristic string `yaml:"metaheuristic"`
	TimeLimit     string `yaml:"time_limit"`
	Exact         bool   `yaml:"exact"`
}

// Scenario is one routing run described as data.
type Scenario struct {
	Matrix     string     `yaml:"matrix"`
	Demands    []int64    `yaml:"demands"`
	Capacities []int64    `yaml:"capacities"`
	Depot      int        `yaml:"depot"`
	Windows    [][2]int64 `yaml:"windows"`
	WaitSlack  int64      `yaml:"wait_slack"`
	Horizon    int64      `yaml:"horizon"`
	Search     SearchSpec `yaml:"search"`

	dir string // anchors relative matrix paths
}

// LoadScenario reads and strictly decodes one scenario document.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var sc Scenario
	if err = dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrBadScenario, err)
	}
	if sc.Matrix == "" {
		return nil, fmt.Errorf("%s: matrix path missing: %w", path, ErrBadScenario)
	}
	sc.dir = filepath.Dir(path)

	return &sc, nil
}

// LoadMatrix resolves the matrix path against the scenario location and
// dispatches on the extension.
func (sc *Scenario) LoadMatrix() (*vrp.Matrix, error) {
	p := sc.Matrix
	if !filepath.IsAbs(p) {
		p = filepath.Join(sc.dir, p)
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".xlsx":
		return ReadMatrixXLSX(p)
	case ".csv":
		return ReadMatrixCSV(p)
	default:
		return nil, fmt.Errorf("%s: %w", p, ErrUnknownFormat)
	}
}

// Instance assembles the problem instance. Semantic validation stays
// with the routing layer; this only moves data into place.
func (sc *Scenario) Instance() (*vrp.Instance, error) {
	mat, err := sc.LoadMatrix()
	if err != nil {
		return nil, err
	}

	inst := vrp.NewInstance(mat, sc.Demands, sc.Capacities, sc.Depot)
	if len(sc.Windows) > 0 {
		inst.Windows = make([]vrp.TimeWindow, len(sc.Windows))
		for i, w := range sc.Windows {
			inst.Windows[i] = vrp.TimeWindow{Earliest: w[0], Latest: w[1]}
		}
		inst.WaitSlack = sc.WaitSlack
		inst.Horizon = sc.Horizon
	}

	return inst, nil
}

// Params maps the search block onto engine parameters. Fields left empty
// keep DefaultSearchParams values.
func (sc *Scenario) Params() (routing.SearchParams, error) {
	p := routing.DefaultSearchParams()
	var err error

	if sc.Search.Strategy != "" {
		if p.FirstSolution, err = routing.ParseStrategy(sc.Search.Strategy); err != nil {
			return p, err
		}
	}
	if sc.Search.Metaheuristic != "" {
		if p.Metaheuristic, err = routing.ParseMetaheuristic(sc.Search.Metaheuristic); err != nil {
			return p, err
		}
	}
	if sc.Search.TimeLimit != "" {
		if p.TimeLimit, err = time.ParseDuration(sc.Search.TimeLimit); err != nil {
			return p, fmt.Errorf("time_limit %q: %w", sc.Search.TimeLimit, ErrBadScenario)
		}
	}
	p.Exact = sc.Search.Exact

	return p, nil
}
