package pagemark

import "errors"

// Sentinel errors for conversion failures. Both are fatal: a missing page
// cannot be silently skipped because assembly concatenates pages in order.
var (
	// ErrPageAccess indicates the source could not return a page handle
	ErrPageAccess = errors.New("pagemark: page access failed")

	// ErrTextLayer indicates the source could not return character data for
	// an accessed page
	ErrTextLayer = errors.New("pagemark: text layer extraction failed")
)
