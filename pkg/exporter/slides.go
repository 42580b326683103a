package exporter

import (
	"fmt"
	"path/filepath"
	"strings"

	"autosigns/pkg/layout"
	"autosigns/pkg/logger"
	"autosigns/pkg/ooxml"
	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
	"autosigns/pkg/templates"
)

// SlideRenderer writes one slide deck per date from the profile's template.
// Each time block owns one slide of the template.
type SlideRenderer struct {
	Set         *profile.Set
	Profile     *profile.LocationProfile
	TemplateDir string
}

// Render writes a deck per day and returns the files in date order.
func (r *SlideRenderer) Render(days []schedule.DayGroup, outDir string) ([]string, error) {
	if len(days) == 0 {
		return nil, nil
	}

	tmplPath := profile.Asset(r.TemplateDir, r.Profile.Slides.Template)
	tmpl, err := ooxml.Open(tmplPath)
	if err != nil {
		return nil, &TemplateAssetError{Path: tmplPath, Err: err}
	}
	slides, err := tmpl.Slides()
	if err != nil {
		return nil, &TemplateAssetError{Path: tmplPath, Err: err}
	}
	for _, bs := range r.Profile.Slides.BlockSlides {
		if bs.Slide > len(slides) {
			return nil, &TemplateAssetError{
				Path: tmplPath,
				Err:  fmt.Errorf("block %s needs slide %d, deck has %d", bs.Block, bs.Slide, len(slides)),
			}
		}
	}

	var written []string
	for _, day := range days {
		deck := tmpl.Clone()
		for _, bs := range r.Profile.Slides.BlockSlides {
			part := slides[bs.Slide-1]
			data, ok := deck.Part(part)
			if !ok {
				return written, &TemplateAssetError{Path: tmplPath, Err: fmt.Errorf("%s missing", part)}
			}
			block, ok := day.Block(bs.Block)
			if !ok {
				return written, &TemplateAssetError{Path: tmplPath, Err: fmt.Errorf("block %s not in the day partition", bs.Block)}
			}

			xml, err := r.fillSlide(string(data), day, block)
			if err != nil {
				return written, &TemplateAssetError{Path: tmplPath, Err: fmt.Errorf("%s: %w", part, err)}
			}
			deck.Set(part, []byte(xml))
		}

		path := filepath.Join(outDir, DayFileName(r.Profile.Name, day.Date, ".pptx"))
		if err := deck.Save(path); err != nil {
			return written, &OutputWriteError{Path: path, Err: err}
		}
		logger.Log.Debugf("Wrote slides %s", path)
		written = append(written, path)
	}
	return written, nil
}

// fillSlide hides the slide of an empty block; otherwise it writes the
// header line and replaces the body rows of the schedule table.
func (r *SlideRenderer) fillSlide(slideXML string, day schedule.DayGroup, block schedule.BlockGroup) (string, error) {
	if block.Empty() {
		return ooxml.SetHidden(slideXML, true), nil
	}

	s := r.Profile.Slides
	header := r.Profile.Expand(s.HeaderText, day.Date, "")
	slideXML, err := replaceRun(slideXML, templates.HeaderPlaceholder, slideRun(header, s.HeaderFont, s.HeaderFont.SizePt, s.HeaderFont.Color))
	if err != nil {
		return "", err
	}

	rows := r.bodyRows(block)
	slideXML, err = replaceTableRows(slideXML, s.HeaderRows, len(s.Columns), rows)
	if err != nil {
		return "", err
	}
	return ooxml.SetHidden(slideXML, false), nil
}

// bodyRows renders the table rows of a block. Text colors alternate per row
// and restart with every floor section.
func (r *SlideRenderer) bodyRows(block schedule.BlockGroup) [][]string {
	s := r.Profile.Slides

	if !r.Profile.HasFloors() {
		size := r.fontSize(len(block.Records))
		rows := make([][]string, 0, len(block.Records))
		for i, rec := range block.Records {
			rows = append(rows, r.recordCells(rec, size, s.RowColors[i%len(s.RowColors)]))
		}
		return rows
	}

	groups := block.Floors
	if len(block.Unbucketed) > 0 {
		groups = append(append([]schedule.FloorGroup(nil), block.Floors...), schedule.FloorGroup{
			Bucket:  schedule.FloorBucket{Name: OtherRoomsLabel},
			Records: block.Unbucketed,
		})
	}
	size := r.fontSize(layout.FloorRows(groups))

	sections := floorSections(block)

	var rows [][]string
	for i, sec := range sections {
		rows = append(rows, r.floorHeader(sec.name, size))
		for j, rec := range sec.records {
			rows = append(rows, r.recordCells(rec, size, s.RowColors[j%len(s.RowColors)]))
		}
		if i < len(sections)-1 {
			rows = append(rows, make([]string, len(s.Columns)))
		}
	}
	return rows
}

func (r *SlideRenderer) fontSize(rows int) int {
	s := r.Profile.Slides
	if s.Scaling == profile.ScalingDensity {
		return s.Density.Size(rows)
	}
	return s.Width.Size(rows)
}

func (r *SlideRenderer) floorHeader(name string, size int) []string {
	s := r.Profile.Slides
	font := s.BodyFont
	font.Underline = true
	font.Bold = true

	cells := make([]string, len(s.Columns))
	cells[0] = slideRun(name, font, float64(size), s.FloorHeaderColor)
	if s.FloorRoomHeader != "" {
		for i, c := range s.Columns {
			if c == profile.FieldRoom || c == profile.FieldRoomNumber {
				cells[i] = slideRun(s.FloorRoomHeader, font, float64(size), s.FloorHeaderColor)
			}
		}
	}
	return cells
}

func (r *SlideRenderer) recordCells(rec schedule.Record, size int, color string) []string {
	s := r.Profile.Slides
	cells := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cells[i] = slideRun(r.cellText(c, rec), s.BodyFont, float64(size), color)
	}
	return cells
}

func (r *SlideRenderer) cellText(field string, rec schedule.Record) string {
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
		return r.Set.Instructor(rec.Instructor, true)
	case profile.FieldRoomNumber:
		return r.Profile.StripRoom(rec.Room)
	default:
		return rec.Room
	}
}

// slideRun renders a DrawingML text run.
func slideRun(text string, font profile.Font, sizePt float64, color string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<a:r><a:rPr lang="en-US" sz="%d"`, ooxml.Hundredths(sizePt))
	if font.Bold {
		b.WriteString(` b="1"`)
	}
	if font.Underline {
		b.WriteString(` u="sng"`)
	}
	b.WriteString(` dirty="0">`)
	if color != "" {
		fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, ooxml.Escape(color))
	}
	fmt.Fprintf(&b, `<a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`, ooxml.Escape(font.Family), ooxml.Escape(text))
	return b.String()
}

// replaceRun swaps the whole <a:r> element holding marker for run.
func replaceRun(slideXML, marker, run string) (string, error) {
	at := strings.Index(slideXML, marker)
	if at < 0 {
		return "", fmt.Errorf("placeholder %s not found", marker)
	}
	start := max(strings.LastIndex(slideXML[:at], "<a:r>"), strings.LastIndex(slideXML[:at], "<a:r "))
	end := strings.Index(slideXML[at:], "</a:r>")
	if start < 0 || end < 0 {
		return "", fmt.Errorf("placeholder %s is not inside a text run", marker)
	}
	end += at + len("</a:r>")
	return slideXML[:start] + run + slideXML[end:], nil
}

// replaceTableRows keeps the first headerRows rows of the slide's table and
// replaces the rest with rows. Empty cells are written as bare paragraphs.
func replaceTableRows(slideXML string, headerRows, columns int, rows [][]string) (string, error) {
	open := strings.Index(slideXML, "<a:tbl>")
	end := strings.Index(slideXML, "</a:tbl>")
	if open < 0 || end < open {
		return "", fmt.Errorf("schedule table not found")
	}

	table := slideXML[open:end]
	if grid := strings.Count(table, "<a:gridCol "); grid != columns {
		return "", fmt.Errorf("table has %d columns, layout needs %d", grid, columns)
	}

	first := strings.Index(table, "<a:tr ")
	if first < 0 {
		first = strings.Index(table, "<a:tr>")
	}
	if first < 0 {
		return "", fmt.Errorf("schedule table has no rows")
	}

	kept := first
	rowOpen := `<a:tr h="370840">`
	cursor := first
	for i := 0; ; i++ {
		closeAt := strings.Index(table[cursor:], "</a:tr>")
		if closeAt < 0 {
			break
		}
		rowEnd := cursor + closeAt + len("</a:tr>")
		if i == headerRows || i == 0 {
			tag := table[cursor : cursor+strings.Index(table[cursor:], ">")+1]
			rowOpen = tag
		}
		if i < headerRows {
			kept = rowEnd
		}
		cursor = rowEnd
		if i >= headerRows {
			break
		}
	}

	var b strings.Builder
	b.WriteString(table[:kept])
	for _, row := range rows {
		b.WriteString(rowOpen)
		for _, cell := range row {
			b.WriteString(`<a:tc><a:txBody><a:bodyPr/><a:lstStyle/><a:p>`)
			if cell == "" {
				b.WriteString(`<a:endParaRPr lang="en-US" dirty="0"/>`)
			} else {
				b.WriteString(cell)
			}
			b.WriteString(`</a:p></a:txBody><a:tcPr/></a:tc>`)
		}
		b.WriteString(`</a:tr>`)
	}
	return slideXML[:open] + b.String() + slideXML[end:], nil
}
