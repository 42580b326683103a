package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"autosigns/pkg/ooxml"
	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
	"autosigns/pkg/templates"
)

const gbcBuilding = "GBC - UC Berkeley Extension Golden Bear Center, 1995 University Ave."

func record(date string, hour, minute int, room, title string) schedule.Record {
	d, err := time.Parse(schedule.DateKeyLayout, date)
	if err != nil {
		panic(err)
	}
	start := schedule.NewClock(hour, minute)
	return schedule.Record{
		Date:           d,
		Start:          start,
		End:            start + 90,
		SectionNumber:  "X" + date[8:] + "-" + start.String(),
		SectionTitle:   title,
		Instructor:     "Ada Lovelace",
		Building:       gbcBuilding,
		Room:           room,
		ApprovalStatus: "Final Approval",
	}
}

// templateDir writes the starter templates of every default profile.
func templateDir(t *testing.T, set *profile.Set) string {
	t.Helper()
	dir := t.TempDir()
	_, err := templates.WriteAll(set, dir, false)
	require.NoError(t, err)
	return dir
}

func mustProfile(t *testing.T, set *profile.Set, name string) *profile.LocationProfile {
	t.Helper()
	p, ok := set.Lookup(name)
	require.True(t, ok, "profile %s", name)
	return p
}

func readPart(t *testing.T, path, part string) string {
	t.Helper()
	pkg, err := ooxml.Open(path)
	require.NoError(t, err)
	data, ok := pkg.Part(part)
	require.True(t, ok, "part %s missing in %s", part, path)
	return string(data)
}
