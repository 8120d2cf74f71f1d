// Package report turns a solved assignment back into operator-facing
// artifacts: an enriched per-route summary and two classic console
// renderings.
//
// The pipeline is Build then Write:
//
//	sum, err := report.Build(inst, asn)
//	...
//	err = sum.WriteParcel(os.Stdout)   // driver/parcel rendering
//	err = sum.WriteSchedule(os.Stdout) // vehicle/time-window rendering
//
// Build recomputes everything it reports from the instance: cumulative
// loads, true route distances, and (with a time dimension) the propagated
// arrival intervals of every stop. It never trusts derived fields of the
// assignment beyond the route orders themselves, and it rejects
// assignments that fail the coverage invariants.
//
// Rendering is deterministic: the same summary writes byte-identical
// output every time. Infeasible solves render through WriteNoSolution,
// by convention a normal (exit 0) outcome.
package report
