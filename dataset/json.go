package dataset

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/lastmile/vrp"
)

// instanceDoc is the serialized shape of an instance. Key names follow
// the conventional routing-data layout so the files interoperate with
// other tooling that reads the same documents.
type instanceDoc struct {
	TimeMatrix  [][]int64  `json:"time_matrix"`
	TimeWindows [][2]int64 `json:"time_windows,omitempty"`
	NumVehicles int        `json:"num_vehicles"`
	Depot       int        `json:"depot"`
	Demands     []int64    `json:"demands,omitempty"`
	Capacities  []int64    `json:"capacities,omitempty"`
}

// WriteInstanceJSON dumps an instance as an indented JSON document.
func WriteInstanceJSON(path string, inst *vrp.Instance) error {
	n := inst.Nodes()
	doc := instanceDoc{
		TimeMatrix:  make([][]int64, n),
		NumVehicles: inst.Vehicles,
		Depot:       inst.Depot,
		Demands:     inst.Demands,
		Capacities:  inst.Capacities,
	}

	var (
		v   int64
		err error
	)
	for i := 0; i < n; i++ {
		doc.TimeMatrix[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			if v, err = inst.Costs.At(i, j); err != nil {
				return err
			}
			doc.TimeMatrix[i][j] = v
		}
	}
	if inst.HasWindows() {
		doc.TimeWindows = make([][2]int64, n)
		for i, w := range inst.Windows {
			doc.TimeWindows[i] = [2]int64{w.Earliest, w.Latest}
		}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	raw = append(raw, '\n')

	return os.WriteFile(path, raw, 0o644)
}
