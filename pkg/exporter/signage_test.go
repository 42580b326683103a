package exporter

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
)

func TestSignage_OneRoomOnePage(t *testing.T) {
	set := profile.Default()
	r := &SignageRenderer{Set: set, Profile: mustProfile(t, set, "GBC"), TemplateDir: templateDir(t, set)}
	out := t.TempDir()

	files, err := r.Render([]schedule.Record{
		record("2024-01-05", 11, 0, "Classroom 101", "Statistics"),
		record("2024-01-05", 9, 0, "Classroom 101", "Algebra"),
		record("2024-01-05", 10, 0, "Classroom 101", "Biology"),
	}, out)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, "GBC 2024-01-05 Friday.docx")}, files)

	doc := readPart(t, files[0], documentPart)
	assert.Equal(t, 1, strings.Count(doc, "<w:tbl>"))
	assert.Equal(t, 3, strings.Count(doc, "<w:tr>"))
	assert.NotContains(t, doc, `w:type="page"`)
	assert.Contains(t, doc, "January 5, 2024")
	assert.Contains(t, doc, "Classroom 101")
	assert.Contains(t, doc, "9:00 AM to 10:30 AM")
	assert.Contains(t, doc, `<w:pgSz w:w="15840" w:h="12240" w:orient="landscape"/>`)

	algebra := strings.Index(doc, "Algebra")
	biology := strings.Index(doc, "Biology")
	stats := strings.Index(doc, "Statistics")
	assert.True(t, algebra < biology && biology < stats, "rows follow start time")
}

func TestSignage_PageBreakBetweenRooms(t *testing.T) {
	set := profile.Default()
	r := &SignageRenderer{Set: set, Profile: mustProfile(t, set, "GBC"), TemplateDir: templateDir(t, set)}

	files, err := r.Render([]schedule.Record{
		record("2024-01-05", 9, 0, "Classroom B", "Second"),
		record("2024-01-05", 9, 0, "Classroom A", "First"),
	}, t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 1)

	doc := readPart(t, files[0], documentPart)
	assert.Equal(t, 2, strings.Count(doc, "<w:tbl>"))
	assert.Equal(t, 1, strings.Count(doc, `w:type="page"`))

	brk := strings.Index(doc, `w:type="page"`)
	assert.Less(t, strings.Index(doc, "Classroom A"), brk, "no break before the first page")
	assert.Greater(t, strings.Index(doc, "Classroom B"), brk)
}

func TestSignage_OneFilePerDate(t *testing.T) {
	set := profile.Default()
	r := &SignageRenderer{Set: set, Profile: mustProfile(t, set, "GBC"), TemplateDir: templateDir(t, set)}
	out := t.TempDir()

	files, err := r.Render([]schedule.Record{
		record("2024-01-08", 9, 0, "Classroom 101", "Monday class"),
		record("2024-01-05", 9, 0, "Classroom 101", "Friday class"),
		record("2024-01-06", 9, 0, "Classroom 102", "Saturday class"),
		record("2024-01-06", 9, 0, "Classroom 101", "Saturday class"),
	}, out)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(out, "GBC 2024-01-05 Friday.docx"),
		filepath.Join(out, "GBC 2024-01-06 Saturday.docx"),
		filepath.Join(out, "GBC 2024-01-08 Monday.docx"),
	}, files)

	saturday := readPart(t, files[1], documentPart)
	assert.Equal(t, 1, strings.Count(saturday, `w:type="page"`))
	assert.NotContains(t, saturday, "Friday class")
}

func TestSignage_SanFranciscoLayout(t *testing.T) {
	set := profile.Default()
	r := &SignageRenderer{Set: set, Profile: mustProfile(t, set, "SFC"), TemplateDir: templateDir(t, set)}

	files, err := r.Render([]schedule.Record{
		record("2024-01-05", 18, 30, "Classroom 512", "Marketing"),
	}, t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "SFC 2024-01-05 Friday.docx", filepath.Base(files[0]))

	doc := readPart(t, files[0], documentPart)
	assert.Contains(t, doc, ">Friday<")
	assert.Contains(t, doc, "Room 512")
	assert.NotContains(t, doc, "Classroom 512")
	assert.Contains(t, doc, ">Course<")
	assert.Contains(t, doc, "6:30 PM - 8:00 PM")
	assert.Equal(t, 2, strings.Count(doc, "<w:tr>"), "header row plus one class")
	assert.Contains(t, doc, `w:orient="portrait"`)
}

func TestSignage_NoRecordsNoFiles(t *testing.T) {
	set := profile.Default()
	r := &SignageRenderer{Set: set, Profile: mustProfile(t, set, "GBC"), TemplateDir: t.TempDir()}

	files, err := r.Render(nil, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSignage_Errors(t *testing.T) {
	set := profile.Default()
	gbc := mustProfile(t, set, "GBC")
	recs := []schedule.Record{record("2024-01-05", 9, 0, "Classroom 101", "Algebra")}

	r := &SignageRenderer{Set: set, Profile: gbc, TemplateDir: t.TempDir()}
	_, err := r.Render(recs, t.TempDir())
	var tae *TemplateAssetError
	require.True(t, errors.As(err, &tae), "got %v", err)

	r.TemplateDir = templateDir(t, set)
	_, err = r.Render(recs, filepath.Join(t.TempDir(), "missing"))
	var owe *OutputWriteError
	require.True(t, errors.As(err, &owe), "got %v", err)
}

func TestFillBody_KeepsSectionProperties(t *testing.T) {
	l := profile.Default().Profiles[1].Signage
	doc := `<w:document><w:body><w:p><w:r><w:t>old</w:t></w:r></w:p>` +
		`<w:sectPr><w:pgSz w:w="1" w:h="2"/><w:pgMar w:top="0"/><w:cols w:space="720"/></w:sectPr></w:body></w:document>`

	got, err := fillBody(doc, "<w:p/>", l)
	require.NoError(t, err)
	assert.NotContains(t, got, "old")
	assert.Contains(t, got, `<w:cols w:space="720"/>`)
	assert.Contains(t, got, `<w:pgSz w:w="12240" w:h="15840" w:orient="portrait"/>`)
	assert.Contains(t, got, `<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720"`)

	got, err = fillBody(`<w:document><w:body><w:sectPr/></w:body></w:document>`, "", l)
	require.NoError(t, err)
	assert.Contains(t, got, `<w:sectPr><w:pgSz`)

	_, err = fillBody("<w:document/>", "", l)
	assert.Error(t, err)
}

func TestFillBody_KeepTemplateBody(t *testing.T) {
	l := profile.Default().Profiles[0].Signage
	require.True(t, l.KeepTemplateBody)
	doc := `<w:document><w:body><w:p><w:r><w:t>letterhead</w:t></w:r></w:p>` +
		`<w:sectPr><w:pgSz w:w="1" w:h="2"/></w:sectPr></w:body></w:document>`

	got, err := fillBody(doc, `<w:p><w:r><w:t>sign</w:t></w:r></w:p>`, l)
	require.NoError(t, err)
	kept := strings.Index(got, "letterhead")
	sign := strings.Index(got, "sign</w:t>")
	sect := strings.Index(got, "<w:sectPr>")
	require.GreaterOrEqual(t, kept, 0)
	assert.True(t, kept < sign && sign < sect, "template content, then signs, then section properties")
	assert.Equal(t, 1, strings.Count(got, "<w:sectPr"))
	assert.Contains(t, got, `<w:pgSz w:w="15840" w:h="12240" w:orient="landscape"/>`)
}

func TestSignage_TitleBreak(t *testing.T) {
	set := profile.Default()
	recs := []schedule.Record{record("2024-01-05", 9, 0, "Classroom 101", "Algebra")}

	gbc := &SignageRenderer{Set: set, Profile: mustProfile(t, set, "GBC"), TemplateDir: templateDir(t, set)}
	files, err := gbc.Render(recs, t.TempDir())
	require.NoError(t, err)
	doc := readPart(t, files[0], documentPart)
	title := strings.Index(doc, "Algebra")
	assert.Contains(t, doc[title:strings.Index(doc[title:], "</w:tc>")+title], "<w:br/>")

	sfc := &SignageRenderer{Set: set, Profile: mustProfile(t, set, "SFC"), TemplateDir: templateDir(t, set)}
	files, err = sfc.Render(recs, t.TempDir())
	require.NoError(t, err)
	doc = readPart(t, files[0], documentPart)
	title = strings.Index(doc, "Algebra")
	assert.NotContains(t, doc[title:strings.Index(doc[title:], "</w:tc>")+title], "<w:br/>")
}
