package movebank

import (
	"fmt"
)

// MissingColumnError is returned when a table lacks a column that is required to build geometries.
type MissingColumnError struct {
	// The name of the file the table was loaded from.
	Source string
	// The name of the missing column.
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s is missing required column '%s'", e.Source, e.Column)
}
