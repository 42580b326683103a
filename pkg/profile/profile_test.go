package profile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosigns/pkg/schedule"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestResolve(t *testing.T) {
	set := Default()

	tests := []struct {
		building string
		want     string
		ok       bool
	}{
		{"GBC - UC Berkeley Extension Golden Bear Center, 1995 University Ave.", "GBC", true},
		{"SFCAMPUS - San Francisco Campus, 160 Spear St.", "SFC", true},
		{"sfcampus - somewhere else", "SFC", true},
		{"  GBC  ", "GBC", true},
		{"ONLINE - Remote", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		p, ok := set.Resolve(tt.building)
		assert.Equal(t, tt.ok, ok, "building %q", tt.building)
		if ok {
			assert.Equal(t, tt.want, p.Name, "building %q", tt.building)
		}
	}
}

func TestToken(t *testing.T) {
	assert.Equal(t, "GBC", Token("GBC - UC Berkeley Extension Golden Bear Center"))
	assert.Equal(t, "SFCAMPUS", Token("SFCAMPUS"))
	assert.Equal(t, "A-B", Token("A-B - hyphenated code"))
}

func TestDumpParse_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Dump(&buf))
	assert.Contains(t, buf.String(), "17:00")

	parsed, err := Parse(buf.Bytes())
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), parsed); diff != "" {
		t.Errorf("profiles changed after a YAML round trip (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Dump(&buf))
	data := strings.Replace(buf.String(), "final_approval:", "final_aproval:", 1)

	_, err := Parse([]byte(data))
	assert.Error(t, err)
}

func TestValidate_BlocksMustTileTheDay(t *testing.T) {
	set := Default()
	set.Profiles[0].Blocks[1].From = schedule.NewClock(13, 0)

	err := set.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap or overlap")

	set = Default()
	set.Profiles[1].Blocks = set.Profiles[1].Blocks[:1]
	err = set.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instead of 24:00")
}

func TestValidate_SemanticChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Set)
		want   string
	}{
		{"unknown block slide", func(s *Set) { s.Profiles[0].Slides.BlockSlides[0].Block = "Night" }, "unknown block"},
		{"shared slide", func(s *Set) { s.Profiles[0].Slides.BlockSlides[1].Slide = 2 }, "more than one block"},
		{"rising density", func(s *Set) { s.Profiles[1].Slides.Density.Slope = 1 }, "slope"},
		{"zero width budget", func(s *Set) { s.Profiles[0].Slides.Width.Budget = 0 }, "positive budget"},
		{"duplicate profile", func(s *Set) { s.Profiles[1].Name = "gbc" }, "duplicate profile"},
		{"inverted floor", func(s *Set) { s.Profiles[1].Floors[1].Min = "Classroom 699" }, "above max"},
		{"bad time zone", func(s *Set) { s.Profiles[0].TimeZone = "Mars/Olympus" }, "time zone"},
		{"missing template", func(s *Set) { s.Profiles[0].Signage.Template = "" }, "Template"},
		{"bad row color", func(s *Set) { s.Profiles[0].Slides.RowColors[0] = "white!" }, "RowColors"},
		{"bad column field", func(s *Set) { s.Profiles[1].Slides.Columns[0] = "lecturer" }, "Columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Default()
			tt.mutate(set)
			err := set.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpandAndRooms(t *testing.T) {
	set := Default()
	gbc, _ := set.Lookup("gbc")
	sfc, _ := set.Lookup("SFC")
	date := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "UC Berkeley Extension Friday, January 5, 2024", gbc.Expand(gbc.Slides.HeaderText, date, ""))
	assert.Equal(t, "UC Berkeley Extension - Friday, January 5, 2024", sfc.Expand(sfc.Workbook.TitleText, date, ""))

	assert.Equal(t, "512", sfc.StripRoom("Classroom 512"))
	assert.Equal(t, "Room 512", sfc.SignRoom("Classroom 512"))
	assert.Equal(t, "Classroom 101", gbc.SignRoom("Classroom 101"))
}

func TestInstructor(t *testing.T) {
	set := Default()
	assert.Equal(t, "TBA", set.Instructor("Instructor To Be Announced", false))
	assert.Equal(t, "", set.Instructor("", false))
	assert.Equal(t, "TBA", set.Instructor("  ", true))
	assert.Equal(t, "Ann Lee", set.Instructor("Ann Lee", true))
}

func TestAsset(t *testing.T) {
	assert.Equal(t, "Template-GBC.docx", Asset("", "Template-GBC.docx"))
	assert.Equal(t, "/abs/Template-GBC.docx", Asset("/tmp", "/abs/Template-GBC.docx"))
	assert.Equal(t, "/tmp/Template-GBC.docx", Asset("/tmp", "Template-GBC.docx"))
}
