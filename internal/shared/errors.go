package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Catalog errors
	ErrUnsupportedSource = fmt.Errorf("unsupported catalog source")
	ErrUnsupportedFormat = fmt.Errorf("unsupported format")
	ErrInvalidEntry      = fmt.Errorf("invalid entry")
	ErrDuplicateEntry    = fmt.Errorf("duplicate entry id")

	// Input validation errors
	ErrInvalidFlag = fmt.Errorf("invalid flag value")
)
