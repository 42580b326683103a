// Package pagination decides where signage files and pages begin.
//
// Records arrive in signage order (date, room, start). The walk is a fold over
// (previous, current) pairs: a new date opens a new file and closes the file
// of the previous date, a new room opens a new page inside the current file,
// anything else appends a row to the current page's table.
package pagination

import (
	"time"

	"autosigns/pkg/schedule"
)

// Action is what the renderer must do before writing a record.
type Action int

const (
	AppendRow Action = iota
	NewPage
	NewFile
)

func (a Action) String() string {
	switch a {
	case NewFile:
		return "NewFile"
	case NewPage:
		return "NewPage"
	default:
		return "AppendRow"
	}
}

// Step is one transition of the walk.
type Step struct {
	Action Action
	Record schedule.Record
	// CloseFile is set on a NewFile step that ends an earlier file and holds
	// the date of the file being closed.
	CloseFile *time.Time
}

// PageBreak reports whether a page break must precede this step's heading.
// The first page of every file is opened without one.
func (s Step) PageBreak() bool {
	return s.Action == NewPage
}

// Next is the transition function.
func Next(prev *schedule.Record, cur schedule.Record) Action {
	switch {
	case prev == nil:
		return NewFile
	case !schedule.SameDay(prev.Date, cur.Date):
		return NewFile
	case prev.Room != cur.Room:
		return NewPage
	default:
		return AppendRow
	}
}

// Walk folds Next over records. The caller is expected to have sorted them
// with schedule.SortSignage.
func Walk(records []schedule.Record) []Step {
	steps := make([]Step, 0, len(records))
	var prev *schedule.Record
	for i := range records {
		cur := records[i]
		step := Step{Action: Next(prev, cur), Record: cur}
		if step.Action == NewFile && prev != nil {
			closed := prev.Date
			step.CloseFile = &closed
		}
		steps = append(steps, step)
		prev = &records[i]
	}
	return steps
}

// Final returns the date of the file still open after the walk, i.e. the date
// of the last record. ok is false for an empty walk.
func Final(records []schedule.Record) (date time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, false
	}
	return records[len(records)-1].Date, true
}

// Summary counts files and pages a walk produces.
type Summary struct {
	Files int
	Pages int
	Rows  int
}

// Summarize tallies the steps of a walk.
func Summarize(steps []Step) Summary {
	var s Summary
	for _, st := range steps {
		s.Rows++
		switch st.Action {
		case NewFile:
			s.Files++
			s.Pages++
		case NewPage:
			s.Pages++
		}
	}
	return s
}
