package exporter

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
)

func partition(p *profile.LocationProfile, records ...schedule.Record) []schedule.DayGroup {
	return schedule.Partition(records, p.Blocks, p.Floors)
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestWorkbook_ThreeDatesOneFile(t *testing.T) {
	set := profile.Default()
	gbc := mustProfile(t, set, "GBC")
	out := t.TempDir()
	r := &WorkbookRenderer{Set: set, Profile: gbc}

	path, err := r.Render(partition(gbc,
		record("2024-01-07", 9, 0, "Classroom 101", "C"),
		record("2024-01-05", 9, 0, "Classroom 101", "A"),
		record("2024-01-06", 9, 0, "Classroom 101", "B"),
	), out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "GBC 2024-01-05 Friday to 2024-01-07 Sunday.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"2024-01-05", "2024-01-06", "2024-01-07"}, f.GetSheetList())
	assert.Equal(t, "B", cellValue(t, f, "2024-01-06", "D5"))
}

func TestWorkbook_GoldenBearLayout(t *testing.T) {
	set := profile.Default()
	gbc := mustProfile(t, set, "GBC")
	r := &WorkbookRenderer{Set: set, Profile: gbc}

	tba := record("2024-01-05", 13, 0, "Classroom 102", "Afternoon class")
	tba.Instructor = set.TBASentinel
	blank := record("2024-01-05", 18, 0, "Classroom 103", "Evening class")
	blank.Instructor = ""

	path, err := r.Render(partition(gbc,
		record("2024-01-05", 9, 0, "Classroom 101", "Morning class"),
		tba,
		blank,
	), t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	sheet := "2024-01-05"

	for cell, want := range map[string]string{
		"A1":  "UC Berkeley Extension",
		"E1":  "Friday January 5, 2024",
		"A3":  "Start Time",
		"F3":  "Room",
		"A4":  "Morning Classes",
		"A5":  "9:00 AM",
		"B5":  "10:30 AM",
		"D5":  "Morning class",
		"E5":  "Ada Lovelace",
		"F5":  "Classroom 101",
		"A6":  "",
		"A7":  "Afternoon Classes",
		"E8":  "TBA",
		"A10": "Evening Classes",
		"A11": "6:00 PM",
		"E11": "",
	} {
		assert.Equal(t, want, cellValue(t, f, sheet, cell), cell)
	}

	width, err := f.GetColWidth(sheet, "A")
	require.NoError(t, err)
	assert.InDelta(t, 21.5, width, 0.01)

	// Instructor scan skips the sentinel: max(10, len("Ada Lovelace")) = 12.
	width, err = f.GetColWidth(sheet, "E")
	require.NoError(t, err)
	assert.InDelta(t, (12+8.0/9.0)*27.0/14.0, width, 0.01)

	opts, err := f.GetPageLayout(sheet)
	require.NoError(t, err)
	require.NotNil(t, opts.Orientation)
	assert.Equal(t, "landscape", *opts.Orientation)
}

func TestWorkbook_SanFranciscoFloors(t *testing.T) {
	set := profile.Default()
	sfc := mustProfile(t, set, "SFC")
	r := &WorkbookRenderer{Set: set, Profile: sfc}

	path, err := r.Render(partition(sfc,
		record("2024-01-05", 10, 0, "Classroom 605", "Design"),
		record("2024-01-05", 9, 0, "Classroom 512", "Accounting"),
		record("2024-01-05", 18, 0, "Classroom 702", "Finance"),
		record("2024-01-05", 19, 0, "Classroom 520", "Law"),
	), t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	sheet := "2024-01-05"

	for cell, want := range map[string]string{
		"A1":  "UC Berkeley Extension - Friday, January 5, 2024",
		"A2":  "Start Time",
		"E2":  "Room",
		"A4":  "Daytime Classes",
		"A6":  "5th Floor",
		"A7":  "9:00 AM",
		"D7":  "Accounting",
		"E7":  "512",
		"A9":  "6th Floor",
		"E10": "605",
		"A12": "Evening Classes",
		"A14": "7th Floor",
		"D15": "Finance",
		"A17": OtherRoomsLabel,
		"D18": "Law",
	} {
		assert.Equal(t, want, cellValue(t, f, sheet, cell), cell)
	}

	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	var ranges []string
	for _, m := range merged {
		ranges = append(ranges, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.Contains(t, ranges, "A1:E1")
	assert.Contains(t, ranges, "A3:E3")
	assert.Contains(t, ranges, "A4:B5")
	assert.Contains(t, ranges, "C4:E5")
	assert.Contains(t, ranges, "A6:B6")
}

func TestWorkbook_Errors(t *testing.T) {
	set := profile.Default()
	gbc := mustProfile(t, set, "GBC")
	r := &WorkbookRenderer{Set: set, Profile: gbc}

	path, err := r.Render(nil, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)

	_, err = r.Render(partition(gbc, record("2024-01-05", 9, 0, "Classroom 101", "A")), filepath.Join(t.TempDir(), "missing"))
	var owe *OutputWriteError
	assert.True(t, errors.As(err, &owe), "got %v", err)
}
