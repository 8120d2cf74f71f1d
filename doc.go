// Package lastmile is a spreadsheet-to-route-plan toolkit for capacitated
// vehicle routing — load a travel-cost workbook, describe the fleet in a
// small YAML scenario, and get deterministic driver reports back.
//
// 🚚 What is lastmile?
//
//	A compact routing stack that brings together:
//		• Dataset layer: xlsx/csv cost matrices, YAML scenarios, JSON dumps
//		• Problem model: validated instances with demands, fleets, time windows
//		• Callback adapters: pure arc-cost and demand closures for the engines
//		• Two engines behind one interface: exact branch-and-bound and
//		  construction + guided local search
//		• Reports: the classic parcel run and the timed visit schedule,
//		  byte-stable across runs
//
// ✨ Why choose lastmile?
//
//   - Deterministic – lowest-index tie-breaks, no RNG, identical bytes out
//   - Exact arithmetic – int64 costs end to end, reals rounded at the border
//   - Honest outcomes – a timeout returns the best plan found, infeasible
//     instances say "No Solution", never a silently partial answer
//
// Under the hood, everything is organized under four packages and two
// binaries:
//
//	vrp/     — matrices, instances, validation, callback adapters
//	routing/ — model configuration, search parameters, both engines
//	report/  — summaries and the fixed textual report formats
//	dataset/ — xlsx/csv/yaml/json I/O plus the bundled demo instances
//	cmd/     — lastmile (parcel runs) and vrptw (timed runs)
//
// Quick ASCII example:
//
//	    D0───D1
//	     │    │
//	    D3───D2
//
//	a depot and three drops; one vehicle of capacity 3 serves them as
//	D0 → D1 → D2 → D3 → D0.
//
// Dive into the per-package docs for contracts and complexity notes.
//
//	go get github.com/katalvlaran/lastmile
package lastmile
