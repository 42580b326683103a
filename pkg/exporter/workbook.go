package exporter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"autosigns/pkg/atomicfile"
	"autosigns/pkg/logger"
	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
)

// OtherRoomsLabel heads the rooms of a floor-bucketed block that matched no
// bucket.
const OtherRoomsLabel = "Other Rooms"

// WorkbookRenderer writes the daily schedule workbook: one sheet per date.
type WorkbookRenderer struct {
	Set     *profile.Set
	Profile *profile.LocationProfile
}

// Render writes one workbook covering days and returns its path. No days
// means no file.
func (r *WorkbookRenderer) Render(days []schedule.DayGroup, outDir string) (string, error) {
	if len(days) == 0 {
		return "", nil
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	styles, err := newSheetStyles(f, r.Profile.Workbook)
	if err != nil {
		return "", fmt.Errorf("failed to create workbook styles: %w", err)
	}

	for i, day := range days {
		sheet := day.Date.Format(schedule.DateKeyLayout)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return "", err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return "", err
		}

		w := &sheetWriter{f: f, sheet: sheet, set: r.Set, profile: r.Profile, styles: styles}
		if err := w.write(day); err != nil {
			return "", fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)

	first, last := days[0].Date, days[len(days)-1].Date
	path := filepath.Join(outDir, RangeFileName(r.Profile.Name, first, last, ".xlsx"))
	if err := atomicfile.Write(path, func(w io.Writer) error { return f.Write(w) }); err != nil {
		return "", &OutputWriteError{Path: path, Err: err}
	}
	logger.Log.WithField("sheets", len(days)).Debugf("Wrote workbook %s", path)
	return path, nil
}

type sheetStyles struct {
	title, date, header, block, floor, body, blank int
}

func newSheetStyles(f *excelize.File, l profile.WorkbookLayout) (sheetStyles, error) {
	underline := func(on bool) string {
		if on {
			return "single"
		}
		return ""
	}
	color := l.TitleColor
	if color == "" {
		color = "000000"
	}

	var s sheetStyles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Family: l.FontFamily, Size: l.TitleFontPt, Color: color, Underline: underline(l.TitleUnderline)},
			Alignment: titleAlignment(l.MergedTitle),
		}},
		{&s.date, &excelize.Style{
			Font: &excelize.Font{Bold: true, Family: l.FontFamily, Size: l.TitleFontPt, Color: color},
		}},
		{&s.header, headerStyle(l)},
		{&s.block, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Family: l.FontFamily, Size: l.BlockFontPt, Underline: underline(l.BlockUnderline)},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top"},
		}},
		{&s.floor, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Family: l.FontFamily, Size: l.BodyFontPt, Underline: "single"},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top"},
		}},
		{&s.body, &excelize.Style{
			Font:      &excelize.Font{Family: l.FontFamily, Size: l.BodyFontPt},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		}},
		{&s.blank, &excelize.Style{
			Font: &excelize.Font{Family: l.FontFamily, Size: 8},
		}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return sheetStyles{}, err
		}
		*d.dst = id
	}
	return s, nil
}

func titleAlignment(merged bool) *excelize.Alignment {
	if merged {
		return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	}
	return &excelize.Alignment{Horizontal: "left"}
}

func headerStyle(l profile.WorkbookLayout) *excelize.Style {
	style := &excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: l.FontFamily, Size: l.HeaderFontPt},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}
	if l.HeaderUnderline {
		style.Font.Underline = "single"
	}
	if l.HeaderBorder {
		style.Border = []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}}
	}
	return style
}

// sheetWriter lays out one date. row is the next free 1-based row.
type sheetWriter struct {
	f       *excelize.File
	sheet   string
	set     *profile.Set
	profile *profile.LocationProfile
	styles  sheetStyles
	row     int
}

func (w *sheetWriter) write(day schedule.DayGroup) error {
	l := w.profile.Workbook
	lastCol := len(l.Columns)

	if err := w.title(day); err != nil {
		return err
	}

	for i, c := range l.Columns {
		if err := w.set1(i+1, l.HeaderRow, c.Header, w.styles.header); err != nil {
			return err
		}
	}
	w.row = l.HeaderRow + 1

	if l.LeadingSpacer {
		if err := w.spacer(lastCol); err != nil {
			return err
		}
	}

	first := true
	for _, block := range day.Blocks {
		if block.Empty() {
			continue
		}
		if !first && !w.profile.HasFloors() {
			w.row++
		}
		first = false

		if err := w.blockTitle(block.Block, lastCol); err != nil {
			return err
		}

		if !w.profile.HasFloors() {
			if err := w.records(block.Records); err != nil {
				return err
			}
			continue
		}
		if err := w.floors(floorSections(block)); err != nil {
			return err
		}
	}

	if len(day.Unassigned) > 0 {
		logger.Log.Warnf("%d records on %s matched no time block", len(day.Unassigned), w.sheet)
	}

	if err := w.widths(day.Records); err != nil {
		return err
	}
	return w.pageSetup()
}

func (w *sheetWriter) title(day schedule.DayGroup) error {
	l := w.profile.Workbook
	text := w.profile.Expand(l.TitleText, day.Date, "")
	if l.MergedTitle {
		if err := w.merge(1, 1, len(l.Columns), 1); err != nil {
			return err
		}
	}
	if err := w.set1(1, 1, text, w.styles.title); err != nil {
		return err
	}
	if l.DateText != "" {
		return w.set1(l.DateColumn+1, 1, w.profile.Expand(l.DateText, day.Date, ""), w.styles.date)
	}
	return nil
}

func (w *sheetWriter) blockTitle(b schedule.TimeBlock, lastCol int) error {
	l := w.profile.Workbook
	label := b.Label
	if label == "" {
		label = b.Name
	}

	if l.BlockTitleRows > 1 {
		bottom := w.row + l.BlockTitleRows - 1
		if err := w.merge(1, w.row, 2, bottom); err != nil {
			return err
		}
		if lastCol > 2 {
			if err := w.merge(3, w.row, lastCol, bottom); err != nil {
				return err
			}
		}
	}
	if err := w.set1(1, w.row, label, w.styles.block); err != nil {
		return err
	}
	w.row += l.BlockTitleRows
	return nil
}

// floorSection is a labelled run of records inside a floor-bucketed block.
type floorSection struct {
	name    string
	records []schedule.Record
}

// floorSections lists the non-empty floors of a block, followed by the rooms
// no bucket claimed.
func floorSections(block schedule.BlockGroup) []floorSection {
	var out []floorSection
	for _, fl := range block.Floors {
		if len(fl.Records) > 0 {
			out = append(out, floorSection{name: fl.Bucket.Name, records: fl.Records})
		}
	}
	if len(block.Unbucketed) > 0 {
		out = append(out, floorSection{name: OtherRoomsLabel, records: block.Unbucketed})
	}
	return out
}

func (w *sheetWriter) floors(sections []floorSection) error {
	lastCol := len(w.profile.Workbook.Columns)
	for _, sec := range sections {
		if err := w.merge(1, w.row, 2, w.row); err != nil {
			return err
		}
		if lastCol > 2 {
			if err := w.merge(3, w.row, lastCol, w.row); err != nil {
				return err
			}
		}
		if err := w.set1(1, w.row, sec.name, w.styles.floor); err != nil {
			return err
		}
		w.row++

		if err := w.records(sec.records); err != nil {
			return err
		}
		if err := w.spacer(lastCol); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) records(records []schedule.Record) error {
	for _, rec := range records {
		for i, c := range w.profile.Workbook.Columns {
			if err := w.set1(i+1, w.row, w.cellValue(c.Field, rec), w.styles.body); err != nil {
				return err
			}
		}
		w.row++
	}
	return nil
}

func (w *sheetWriter) cellValue(field string, rec schedule.Record) string {
	switch field {
	case profile.FieldStart:
		return rec.Start.Kitchen()
	case profile.FieldEnd:
		return rec.End.Kitchen()
	case profile.FieldSection:
		return rec.SectionNumber
	case profile.FieldTitle:
		return rec.SectionTitle
	case profile.FieldInstructor:
		return w.set.Instructor(rec.Instructor, false)
	case profile.FieldRoomNumber:
		return w.profile.StripRoom(rec.Room)
	default:
		return rec.Room
	}
}

// spacer writes a merged blank row and moves past it.
func (w *sheetWriter) spacer(lastCol int) error {
	if lastCol > 1 {
		if err := w.merge(1, w.row, lastCol, w.row); err != nil {
			return err
		}
	}
	if err := w.set1(1, w.row, "", w.styles.blank); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) widths(records []schedule.Record) error {
	for i, c := range w.profile.Workbook.Columns {
		width := c.Width
		if c.Scale != nil {
			values := make([]string, len(records))
			for j, rec := range records {
				values[j] = rawValue(c.Field, rec)
			}
			width = c.Scale.Width(values)
		}
		if width <= 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(w.sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

// rawValue is the text a scaled column measures: the report value as-is, so
// the TBA sentinel can be excluded by name.
func rawValue(field string, rec schedule.Record) string {
	switch field {
	case profile.FieldSection:
		return rec.SectionNumber
	case profile.FieldTitle:
		return rec.SectionTitle
	case profile.FieldInstructor:
		return rec.Instructor
	case profile.FieldStart:
		return rec.Start.Kitchen()
	case profile.FieldEnd:
		return rec.End.Kitchen()
	default:
		return rec.Room
	}
}

func (w *sheetWriter) pageSetup() error {
	l := w.profile.Workbook
	orientation := "portrait"
	if l.Landscape {
		orientation = "landscape"
	}
	letter, one := 1, 1
	if err := w.f.SetPageLayout(w.sheet, &excelize.PageLayoutOptions{
		Size:        &letter,
		Orientation: &orientation,
		FitToHeight: &one,
		FitToWidth:  &one,
	}); err != nil {
		return err
	}

	fit := true
	if err := w.f.SetSheetProps(w.sheet, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
		return err
	}

	margin, zero, center := 0.25, 0.0, true
	if err := w.f.SetPageMargins(w.sheet, &excelize.PageLayoutMarginsOptions{
		Left:         &margin,
		Right:        &margin,
		Top:          &margin,
		Bottom:       &margin,
		Header:       &zero,
		Footer:       &zero,
		Horizontally: &center,
		Vertically:   &center,
	}); err != nil {
		return err
	}

	grid := l.ShowGridLines
	return w.f.SetSheetView(w.sheet, 0, &excelize.ViewOptions{ShowGridLines: &grid})
}

func (w *sheetWriter) set1(col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *sheetWriter) merge(col1, row1, col2, row2 int) error {
	top, err := excelize.CoordinatesToCellName(col1, row1)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(col2, row2)
	if err != nil {
		return err
	}
	return w.f.MergeCell(w.sheet, top, bottom)
}
