// Package report - console renderings.
//
// Two formats, both kept exactly stable so downstream diffs stay clean:
//
//	WriteParcel    - "Route for driver N:" blocks with cumulative parcel
//	                 counts per stop, per-route distance and load, then
//	                 grand totals with thousands separators.
//	WriteSchedule  - "Route for vehicle (N):" blocks with the Time(a,b)
//	                 solution window at every stop, per-route duration,
//	                 then the summed duration.
//
// Each writer assembles the whole report in memory and flushes it with a
// single Write, so a failing io.Writer never receives a half-rendered
// report.

package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// noSolutionLine is the agreed marker for an infeasible solve.
const noSolutionLine = "No Solution"

// grouped formats integers with thousands separators ("27,675").
var grouped = message.NewPrinter(language.English)

// WriteNoSolution writes the infeasibility marker. Callers treat an
// infeasible solve as a normal outcome, so this is a rendering, not an
// error path.
func WriteNoSolution(w io.Writer) error {
	_, err := fmt.Fprintln(w, noSolutionLine)

	return err
}

// WriteParcel renders the driver/parcel report.
//
// Byte-stable: the same summary always renders identical output.
func (s *Summary) WriteParcel(w io.Writer) error {
	if s == nil {
		return ErrNilSummary
	}

	var b strings.Builder
	b.WriteString("\n\nRoutes\n")
	b.WriteString(strings.Repeat("-", 25))
	b.WriteByte('\n')

	for _, r := range s.Routes {
		fmt.Fprintf(&b, "Route for driver %d:\n", r.Vehicle)
		for i, st := range r.Stops {
			if i == len(r.Stops)-1 {
				fmt.Fprintf(&b, " %d Parcels(%d)\n", st.Node, st.Load)
				break
			}
			fmt.Fprintf(&b, "    Node(%d)/Parcels(%d) -> ", st.Node, st.Load)
		}
		fmt.Fprintf(&b, "\tDistance of the route: %d (m)\n", r.Distance)
		fmt.Fprintf(&b, "\tParcels Delivered: %d (parcels)\n", r.Load)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Total distance of all routes: %s (m)\n", grouped.Sprintf("%d", s.TotalDistance))
	fmt.Fprintf(&b, "Parcels Delivered: %s/%s\n",
		grouped.Sprintf("%d", s.TotalLoad), grouped.Sprintf("%d", s.TotalDemand))

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteSchedule renders the vehicle/time-window report. The summary must
// have been built from an instance carrying a time dimension.
func (s *Summary) WriteSchedule(w io.Writer) error {
	if s == nil {
		return ErrNilSummary
	}
	if !s.Timed {
		return ErrNoTimings
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total cost: %d\n\n", s.Cost)

	for _, r := range s.Routes {
		fmt.Fprintf(&b, "Route for vehicle (%d):\n", r.Vehicle+1)
		for i, st := range r.Stops {
			if i == len(r.Stops)-1 {
				fmt.Fprintf(&b, "Node:%d Time(%d,%d)\n", st.Node, st.ArriveMin, st.ArriveMax)
				break
			}
			fmt.Fprintf(&b, "Node:%d Time(%d,%d) -> ", st.Node, st.ArriveMin, st.ArriveMax)
		}
		fmt.Fprintf(&b, "Time of the route: %d min\n\n", r.Duration)
	}

	fmt.Fprintf(&b, "Total time of all routes: %dmin\n", s.TotalTime)

	_, err := io.WriteString(w, b.String())

	return err
}
