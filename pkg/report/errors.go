package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHeaderMissing is returned when the export is shorter than the header offset.
var ErrHeaderMissing = errors.New("header row missing")

// IngestionError means the export could not be turned into records at all.
type IngestionError struct {
	Path string
	Err  error
}

func (e *IngestionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot ingest report: %v", e.Err)
	}
	return fmt.Sprintf("cannot ingest report %s: %v", e.Path, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// MissingColumnError names a required column absent from the header row.
type MissingColumnError struct {
	Column string
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in header [%s]", e.Column, strings.Join(e.Header, ", "))
}

// UnknownLocationError means the building of the first retained record
// matches no configured location.
type UnknownLocationError struct {
	Building string
	Known    []string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location %q (known: %s)", e.Building, strings.Join(e.Known, ", "))
}

// RowError records why a data row was skipped. Row is the 1-based row number
// in the export, as a spreadsheet would show it.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
