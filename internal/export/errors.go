package export

import "fmt"

// ExportUnavailableError is returned when an export is requested while no
// roadmap visualization is on screen.
type ExportUnavailableError struct {
	Reason string
}

func (e *ExportUnavailableError) Error() string {
	return fmt.Sprintf("export unavailable: %s", e.Reason)
}
