// Package report turns a Section Schedule Daily Summary export into
// normalized schedule records.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
)

// ColumnMap holds the header text of every column the report must provide.
type ColumnMap struct {
	Date           string `yaml:"date" json:"date"`
	Start          string `yaml:"start" json:"start"`
	End            string `yaml:"end" json:"end"`
	SectionNumber  string `yaml:"section_number" json:"section_number"`
	SectionTitle   string `yaml:"section_title" json:"section_title"`
	Instructor     string `yaml:"instructor" json:"instructor"`
	Building       string `yaml:"building" json:"building"`
	Room           string `yaml:"room" json:"room"`
	ApprovalStatus string `yaml:"approval_status" json:"approval_status"`
}

// DefaultColumns returns the header names of the Daily Summary export.
func DefaultColumns() ColumnMap {
	return ColumnMap{
		Date:           "Date",
		Start:          "Start Time",
		End:            "End Time",
		SectionNumber:  "Section Number",
		SectionTitle:   "Section Title",
		Instructor:     "Instructor",
		Building:       "Building",
		Room:           "Room",
		ApprovalStatus: "Approval Status",
	}
}

// Layout describes where the table sits inside the export.
type Layout struct {
	HeaderRow  int // 0-based index of the header row
	FooterRows int // trailing rows that are not data
	Columns    ColumnMap
}

// DefaultLayout matches the Daily Summary export: six banner rows above the
// header and a single totals row at the bottom.
func DefaultLayout() Layout {
	return Layout{HeaderRow: 6, FooterRows: 1, Columns: DefaultColumns()}
}

// Report is the result of one ingestion.
type Report struct {
	Records  []schedule.Record // final-approval records in export order
	Profile  *profile.LocationProfile
	Rows     int // data rows seen, blank rows excluded
	Filtered int // rows dropped because they were not final-approved
	Skipped  int // final-approved rows that could not be coerced
	Problems []*RowError
}

// Empty reports whether no record survived filtering.
func (r *Report) Empty() bool {
	return len(r.Records) == 0
}

// Dates returns the distinct dates of the report, earliest first.
func (r *Report) Dates() []time.Time {
	sorted := make([]schedule.Record, len(r.Records))
	copy(sorted, r.Records)
	schedule.SortTabular(sorted)
	return schedule.Dates(sorted)
}

// Load reads and ingests the export at path.
func Load(path string, layout Layout, set *profile.Set) (*Report, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, &IngestionError{Path: path, Err: err}
	}

	rep, err := Parse(rows, layout, set)
	if err != nil {
		var ie *IngestionError
		if errors.As(err, &ie) && ie.Path == "" {
			ie.Path = path
		}
		return nil, err
	}
	return rep, nil
}

type columnIndex struct {
	date, start, end, section, title, instructor, building, room, approval int
}

// Parse ingests an already-read grid. Rows failing coercion are counted and
// skipped; structural problems (no header, missing columns) are fatal.
func Parse(rows [][]string, layout Layout, set *profile.Set) (*Report, error) {
	if len(rows) <= layout.HeaderRow {
		return nil, &IngestionError{Err: ErrHeaderMissing}
	}

	header := rows[layout.HeaderRow]
	idx, err := mapColumns(header, layout.Columns)
	if err != nil {
		return nil, &IngestionError{Err: err}
	}

	end := len(rows) - layout.FooterRows
	rep := &Report{}

	for i := layout.HeaderRow + 1; i < end; i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		rep.Rows++

		if cell(row, idx.approval) != set.FinalApproval {
			rep.Filtered++
			continue
		}

		rec, err := coerce(row, idx)
		if err != nil {
			rep.Skipped++
			rep.Problems = append(rep.Problems, &RowError{Row: i + 1, Err: err})
			continue
		}
		rep.Records = append(rep.Records, rec)
	}

	if rep.Empty() {
		return rep, nil
	}

	building := rep.Records[0].Building
	p, ok := set.Resolve(building)
	if !ok {
		return nil, &UnknownLocationError{Building: building, Known: set.Names()}
	}
	rep.Profile = p
	return rep, nil
}

func foldHeader(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

func mapColumns(header []string, cols ColumnMap) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	var seen []string
	for i, h := range header {
		key := foldHeader(h)
		if key == "" {
			continue
		}
		seen = append(seen, strings.TrimSpace(h))
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	find := func(name string, required bool) (int, error) {
		if i, ok := positions[foldHeader(name)]; ok {
			return i, nil
		}
		if required {
			return -1, &MissingColumnError{Column: name, Header: seen}
		}
		return -1, nil
	}

	var idx columnIndex
	var err error
	for _, c := range []struct {
		name     string
		required bool
		dst      *int
	}{
		{cols.Date, true, &idx.date},
		{cols.Start, true, &idx.start},
		{cols.End, true, &idx.end},
		{cols.SectionNumber, true, &idx.section},
		{cols.SectionTitle, true, &idx.title},
		{cols.Instructor, false, &idx.instructor},
		{cols.Building, true, &idx.building},
		{cols.Room, true, &idx.room},
		{cols.ApprovalStatus, true, &idx.approval},
	} {
		if *c.dst, err = find(c.name, c.required); err != nil {
			return columnIndex{}, err
		}
	}
	return idx, nil
}

func coerce(row []string, idx columnIndex) (schedule.Record, error) {
	date, err := ParseDate(cell(row, idx.date))
	if err != nil {
		return schedule.Record{}, err
	}
	start, err := ParseTime(cell(row, idx.start))
	if err != nil {
		return schedule.Record{}, fmt.Errorf("start time: %w", err)
	}
	end, err := ParseTime(cell(row, idx.end))
	if err != nil {
		return schedule.Record{}, fmt.Errorf("end time: %w", err)
	}

	return schedule.Record{
		Date:           date,
		Start:          start,
		End:            end,
		SectionNumber:  cell(row, idx.section),
		SectionTitle:   cell(row, idx.title),
		Instructor:     cell(row, idx.instructor),
		Building:       cell(row, idx.building),
		Room:           cell(row, idx.room),
		ApprovalStatus: cell(row, idx.approval),
	}, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
