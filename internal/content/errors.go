package content

import (
	"fmt"
	"strings"
)

// DataIntegrityError reports that a content document violates the tree
// invariants. It is fatal: the document must be fixed.
type DataIntegrityError struct {
	Problems []string
	Err      error
}

func (e *DataIntegrityError) Error() string {
	if len(e.Problems) == 0 && e.Err != nil {
		return fmt.Sprintf("content integrity check failed: %v", e.Err)
	}
	return fmt.Sprintf("content integrity check failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

func (e *DataIntegrityError) Unwrap() error { return e.Err }
