package exporter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"autosigns/pkg/atomicfile"
	"autosigns/pkg/logger"
	"autosigns/pkg/profile"
	"autosigns/pkg/schedule"
)

// CalendarRenderer writes every record as a calendar event.
type CalendarRenderer struct {
	Set     *profile.Set
	Profile *profile.LocationProfile
	// Now stamps the events; time.Now when nil.
	Now func() time.Time
}

// Render writes one .ics file covering all records and returns its path.
func (r *CalendarRenderer) Render(records []schedule.Record, outDir string) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	sorted := make([]schedule.Record, len(records))
	copy(sorted, records)
	schedule.SortTabular(sorted)

	first, last := sorted[0].Date, sorted[len(sorted)-1].Date
	path := filepath.Join(outDir, RangeFileName(r.Profile.Name, first, last, ".ics"))

	err := atomicfile.Write(path, func(w io.Writer) error {
		return r.Write(sorted, w)
	})
	if err != nil {
		return "", &OutputWriteError{Path: path, Err: err}
	}
	logger.Log.WithField("events", len(sorted)).Debugf("Wrote calendar %s", path)
	return path, nil
}

// Write serializes records as an ICS calendar to w. Times are local to the
// profile's time zone.
func (r *CalendarRenderer) Write(records []schedule.Record, w io.Writer) error {
	loc, err := r.Profile.Location()
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("%s %s", r.Profile.Title, r.Profile.Label()))

	stamp := now()
	for i, rec := range records {
		start := rec.Start.On(rec.Date, loc)
		end := rec.End.On(rec.Date, loc)

		event := cal.AddEvent(fmt.Sprintf("%s-%s-%d@%s", start.UTC().Format("20060102T150405Z"), rec.SectionNumber, i, strings.ToLower(r.Profile.Name)))
		event.SetCreatedTime(stamp)
		event.SetDtStampTime(stamp)
		event.SetModifiedAt(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(rec.SectionTitle)
		event.SetLocation(r.location(rec))

		description := fmt.Sprintf("Section: %s\nInstructor: %s", rec.SectionNumber, r.Set.Instructor(rec.Instructor, true))
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}

func (r *CalendarRenderer) location(rec schedule.Record) string {
	if rec.Building == "" {
		return rec.Room
	}
	return rec.Room + ", " + rec.Building
}
