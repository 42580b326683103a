package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"autosigns/pkg/schedule"
)

// Native date cells of .xls files come back from the reader as RFC3339.
var dateLayouts = []string{
	time.RFC3339,
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"Jan 2, 2006",
	"January 2, 2006",
	"Monday, January 2, 2006",
	"2 Jan 2006",
}

var timeLayouts = []string{
	time.RFC3339,
	"3:04PM",
	"03:04PM",
	"3:04 PM",
	"03:04 PM",
	"3:04:05 PM",
	"03:04:05 PM",
	"15:04",
	"15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
}

// ParseDate accepts an Excel serial or one of the date layouts seen in
// exports and returns the calendar date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 1 {
			return time.Time{}, fmt.Errorf("date serial %q out of range", value)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date serial %q: %w", value, err)
		}
		return schedule.Day(t), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return schedule.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ParseTime accepts "3:04 PM" style clock text, 24-hour text, a date-time, or
// an Excel serial whose fractional part is the time of day. A date-time keeps
// the clock of the zone it carries.
func ParseTime(value string) (schedule.Clock, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty time")
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 0 {
			return 0, fmt.Errorf("time serial %q out of range", value)
		}
		_, frac := math.Modf(serial)
		minutes := int(math.Round(frac * float64(schedule.DayEnd)))
		if minutes >= int(schedule.DayEnd) {
			minutes = 0
		}
		return schedule.Clock(minutes), nil
	}

	upper := strings.ToUpper(value)
	upper = strings.NewReplacer("A.M.", "AM", "P.M.", "PM").Replace(upper)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return schedule.ClockOf(t), nil
		}
	}
	return 0, fmt.Errorf("unrecognized time %q", value)
}
