// Package dataset loads and stores the artifacts a routing run touches:
// cost matrices (xlsx with labeled borders, bare csv grids), YAML
// scenario files binding a matrix to demands, fleet, and windows, JSON
// instance dumps, and the two bundled demo instances.
//
// File layout contracts:
//
//	xlsx - first row and first column are labels (colN / rowN); the
//	       numeric matrix starts at B2. Matches the spreadsheet shape
//	       the classic parcel run reads and writes.
//	csv  - a bare numeric grid, no labels.
//	yaml - a scenario document; see Scenario for the schema.
//
// Every malformed input maps onto the ErrDataFormat class, so callers
// distinguish "the file is wrong" from "the instance is wrong" (the vrp
// sentinels) with two errors.Is checks. I/O failures forward unchanged.
package dataset
