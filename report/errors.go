// Package report: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// report package. All checks MUST return these sentinels and tests MUST
// match them via errors.Is.

package report

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "report: ...". Instance and assignment
// faults are NOT redeclared here: Build forwards the vrp and routing
// sentinels unchanged so callers keep one errors.Is surface per concern.

var (
	// ErrNilSummary — a writer method was called on a nil summary.
	ErrNilSummary = errors.New("report: nil summary")

	// ErrNoTimings — the schedule rendering needs a summary built from an
	// instance with a time dimension.
	ErrNoTimings = errors.New("report: summary carries no timings")
)
