package exporter

import (
	"fmt"
	"time"

	"autosigns/pkg/schedule"
)

// DayFileName names a per-day artifact: "GBC 2024-01-05 Friday.docx".
func DayFileName(location string, date time.Time, ext string) string {
	return fmt.Sprintf("%s %s %s%s", location, date.Format(schedule.DateKeyLayout), date.Weekday(), ext)
}

// RangeFileName names an artifact covering first..last. A single day falls
// back to DayFileName.
func RangeFileName(location string, first, last time.Time, ext string) string {
	if schedule.SameDay(first, last) {
		return DayFileName(location, first, ext)
	}
	return fmt.Sprintf("%s %s %s to %s %s%s", location,
		first.Format(schedule.DateKeyLayout), first.Weekday(),
		last.Format(schedule.DateKeyLayout), last.Weekday(), ext)
}
