package exporter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"autosigns/pkg/logger"
	"autosigns/pkg/ooxml"
	"autosigns/pkg/pagination"
	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
)

const documentPart = "word/document.xml"

var (
	pgSzPattern  = regexp.MustCompile(`<w:pgSz\b[^>]*/>`)
	pgMarPattern = regexp.MustCompile(`<w:pgMar\b[^>]*/>`)
)

// SignageRenderer writes one Word document of classroom signs per date, one
// page per room.
type SignageRenderer struct {
	Set         *profile.Set
	Profile     *profile.LocationProfile
	TemplateDir string
}

// Render writes the signs for records into outDir and returns the files in
// the order they were written.
func (r *SignageRenderer) Render(records []schedule.Record, outDir string) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	tmplPath := profile.Asset(r.TemplateDir, r.Profile.Signage.Template)
	tmpl, body, err := openDocument(tmplPath)
	if err != nil {
		return nil, err
	}

	sorted := make([]schedule.Record, len(records))
	copy(sorted, records)
	schedule.SortSignage(sorted)

	var (
		written []string
		doc     *signDocument
	)
	for _, step := range pagination.Walk(sorted) {
		if step.Action == pagination.NewFile {
			if doc != nil {
				path, err := r.save(tmpl, body, doc, *step.CloseFile, outDir)
				if err != nil {
					return written, err
				}
				written = append(written, path)
			}
			doc = &signDocument{layout: r.Profile.Signage}
		}
		if step.Action != pagination.AppendRow {
			doc.openPage(r.Profile, step.Record, step.PageBreak())
		}
		doc.addRow(step.Record)
	}

	last, _ := pagination.Final(sorted)
	path, err := r.save(tmpl, body, doc, last, outDir)
	if err != nil {
		return written, err
	}
	return append(written, path), nil
}

func (r *SignageRenderer) save(tmpl *ooxml.Package, body string, doc *signDocument, date time.Time, outDir string) (string, error) {
	content, err := fillBody(body, doc.finish(), r.Profile.Signage)
	if err != nil {
		return "", &TemplateAssetError{Path: r.Profile.Signage.Template, Err: err}
	}

	out := tmpl.Clone()
	out.Set(documentPart, []byte(content))

	path := filepath.Join(outDir, DayFileName(r.Profile.Name, date, ".docx"))
	if err := out.Save(path); err != nil {
		return "", &OutputWriteError{Path: path, Err: err}
	}
	logger.Log.WithField("pages", doc.pages).Debugf("Wrote signage %s", path)
	return path, nil
}

func openDocument(path string) (*ooxml.Package, string, error) {
	pkg, err := ooxml.Open(path)
	if err != nil {
		return nil, "", &TemplateAssetError{Path: path, Err: err}
	}
	body, ok := pkg.Part(documentPart)
	if !ok {
		return nil, "", &TemplateAssetError{Path: path, Err: fmt.Errorf("%s missing", documentPart)}
	}
	return pkg, string(body), nil
}

// signDocument accumulates the body of one file. Rows are buffered per page
// so the table is closed when the next page opens.
type signDocument struct {
	layout profile.SignageLayout
	body   strings.Builder
	rows   []schedule.Record
	pages  int
}

func (d *signDocument) openPage(p *profile.LocationProfile, rec schedule.Record, pageBreak bool) {
	d.flushTable()
	if pageBreak {
		d.body.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
	}
	room := p.SignRoom(rec.Room)
	for _, h := range d.layout.Headings {
		d.heading(p.Expand(h.Text, rec.Date, room), h)
	}
	d.pages++
}

func (d *signDocument) addRow(rec schedule.Record) {
	d.rows = append(d.rows, rec)
}

func (d *signDocument) finish() string {
	d.flushTable()
	return d.body.String()
}

func (d *signDocument) heading(text string, h profile.SignHeading) {
	fmt.Fprintf(&d.body, `<w:p><w:pPr><w:jc w:val="%s"/></w:pPr>`, h.Align)
	d.body.WriteString(run(text, d.layout.FontFamily, h.SizePt, h.Bold || d.layout.Bold, false))
	if h.TrailingBreakPt > 0 {
		d.body.WriteString(`<w:r>` + runProps(d.layout.FontFamily, h.TrailingBreakPt, false, false) + `<w:br/></w:r>`)
	}
	d.body.WriteString(`</w:p>`)
}

func (d *signDocument) flushTable() {
	if len(d.rows) == 0 {
		return
	}
	l := d.layout
	widths := make([]int, len(l.ColumnWidthsIn))
	total := 0
	for i, w := range l.ColumnWidthsIn {
		widths[i] = ooxml.Twips(w)
		total += widths[i]
	}

	fmt.Fprintf(&d.body, `<w:tbl><w:tblPr><w:tblW w:w="%d" w:type="dxa"/><w:jc w:val="%s"/><w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid>`,
		total, l.TableAlign)
	for _, w := range widths {
		fmt.Fprintf(&d.body, `<w:gridCol w:w="%d"/>`, w)
	}
	d.body.WriteString(`</w:tblGrid>`)

	if len(l.TableHeader) == 2 {
		d.tableRow(widths, l.TableHeader[0], l.TableHeader[1], true)
	}
	for _, rec := range d.rows {
		d.tableRow(widths, rec.SectionTitle, rec.TimeRange(l.TimeSeparator), false)
	}
	d.body.WriteString(`</w:tbl><w:p/>`)
	d.rows = d.rows[:0]
}

func (d *signDocument) tableRow(widths []int, title, times string, header bool) {
	d.body.WriteString(`<w:tr>`)
	for i, text := range []string{title, times} {
		fmt.Fprintf(&d.body, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr><w:p>`, widths[i])
		d.body.WriteString(run(text, d.layout.FontFamily, d.layout.TableFontPt, header || d.layout.Bold, header))
		if i == 0 && !header && d.layout.TitleBreak {
			d.body.WriteString(`<w:r>` + runProps(d.layout.FontFamily, d.layout.TableFontPt, d.layout.Bold, false) + `<w:br/></w:r>`)
		}
		d.body.WriteString(`</w:p></w:tc>`)
	}
	d.body.WriteString(`</w:tr>`)
}

func run(text, font string, sizePt float64, bold, underline bool) string {
	return `<w:r>` + runProps(font, sizePt, bold, underline) +
		`<w:t xml:space="preserve">` + ooxml.Escape(text) + `</w:t></w:r>`
}

func runProps(font string, sizePt float64, bold, underline bool) string {
	var b strings.Builder
	family := ooxml.Escape(font)
	fmt.Fprintf(&b, `<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, family, family, family)
	if bold {
		b.WriteString(`<w:b/>`)
	} else {
		b.WriteString(`<w:b w:val="0"/>`)
	}
	if underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	hp := ooxml.HalfPoints(sizePt)
	fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`, hp, hp)
	return b.String()
}

// fillBody swaps the template's body content for content while keeping the
// final section properties, whose page size and margins are then set from
// the layout. With KeepTemplateBody the existing content stays in front.
func fillBody(document, content string, l profile.SignageLayout) (string, error) {
	open := strings.Index(document, "<w:body>")
	end := strings.LastIndex(document, "</w:body>")
	if open < 0 || end < open {
		return "", fmt.Errorf("document body not found")
	}
	open += len("<w:body>")

	sect := ""
	existing := document[open:end]
	if i := strings.LastIndex(existing, "<w:sectPr"); i >= 0 {
		sect = strings.TrimSpace(existing[i:])
		existing = existing[:i]
	}
	if l.KeepTemplateBody {
		content = strings.TrimSpace(existing) + content
	}
	return document[:open] + content + pageSetup(sect, l) + document[end:], nil
}

func pageSetup(sect string, l profile.SignageLayout) string {
	orient := "portrait"
	if l.Landscape {
		orient = "landscape"
	}
	margin := ooxml.Twips(l.MarginIn)
	size := fmt.Sprintf(`<w:pgSz w:w="%d" w:h="%d" w:orient="%s"/>`, ooxml.Twips(l.PageWidthIn), ooxml.Twips(l.PageHeightIn), orient)
	mar := fmt.Sprintf(`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		margin, margin, margin, margin)

	if sect == "" {
		return `<w:sectPr>` + size + mar + `</w:sectPr>`
	}
	if strings.HasSuffix(sect, "/>") && !strings.Contains(sect, "</w:sectPr>") {
		// Self-closing <w:sectPr/>.
		return strings.TrimSuffix(sect, "/>") + ">" + size + mar + `</w:sectPr>`
	}

	if pgSzPattern.MatchString(sect) {
		sect = pgSzPattern.ReplaceAllLiteralString(sect, size)
	} else {
		sect = insertAfterOpen(sect, size)
	}
	if pgMarPattern.MatchString(sect) {
		sect = pgMarPattern.ReplaceAllLiteralString(sect, mar)
	} else {
		sect = strings.Replace(sect, size, size+mar, 1)
	}
	return sect
}

func insertAfterOpen(sect, child string) string {
	i := strings.Index(sect, ">")
	if i < 0 {
		return sect
	}
	return sect[:i+1] + child + sect[i+1:]
}
