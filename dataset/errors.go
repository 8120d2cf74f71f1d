// Package dataset: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// dataset package. All checks MUST return these sentinels and tests MUST
// match them via errors.Is.

package dataset

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dataset: ...". Malformed content wraps
// the class sentinel ErrDataFormat so errors.Is(err, ErrDataFormat)
// matches the whole class; call sites may add file and row context with
// a further %w wrap. Plain I/O failures (missing file, permissions) are
// forwarded as returned by the os layer, NOT converted to this class.

// ErrDataFormat is the class sentinel for malformed input content.
var ErrDataFormat = errors.New("dataset: invalid data format")

var (
	// ErrEmptyData — the source contains no data rows.
	ErrEmptyData = fmt.Errorf("%w: no data rows", ErrDataFormat)

	// ErrNotSquare — a cost matrix must have as many columns as rows.
	ErrNotSquare = fmt.Errorf("%w: matrix is not square", ErrDataFormat)

	// ErrBadCell — a matrix cell does not parse as a number.
	ErrBadCell = fmt.Errorf("%w: unparsable cell", ErrDataFormat)

	// ErrBadScenario — a scenario document is structurally invalid.
	ErrBadScenario = fmt.Errorf("%w: malformed scenario", ErrDataFormat)

	// ErrUnknownFormat — a matrix path carries an unsupported extension.
	ErrUnknownFormat = fmt.Errorf("%w: unsupported matrix extension", ErrDataFormat)
)
