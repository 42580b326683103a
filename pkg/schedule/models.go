package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts used across the renderers.
const (
	DateKeyLayout  = "2006-01-02"      // file names and sheet names
	LongDateLayout = "January 2, 2006" // headers, no zero padding
	KitchenLayout  = "3:04 PM"
)

// DayEnd is the exclusive upper bound of a day on the Clock scale.
const DayEnd Clock = 24 * 60

// Clock is a time of day in minutes since midnight.
type Clock int

// NewClock builds a Clock from hours and minutes.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ClockOf returns the time-of-day component of t.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String formats the clock as "15:04". DayEnd formats as "24:00".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Kitchen formats the clock as "9:00 AM", without a leading zero.
func (c Clock) Kitchen() string {
	return time.Date(2000, 1, 1, c.Hour(), c.Minute(), 0, 0, time.UTC).Format(KitchenLayout)
}

// On returns the instant the clock reaches on the given date in loc.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, loc)
}

// ParseClock parses "15:04" style values. "24:00" is accepted as DayEnd.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock minute in %q: %w", s, err)
	}
	c := NewClock(h, m)
	if h < 0 || m < 0 || m > 59 || c > DayEnd {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return c, nil
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Record is one scheduled class meeting taken from the section report.
type Record struct {
	Date           time.Time // midnight UTC
	Start          Clock
	End            Clock
	SectionNumber  string
	SectionTitle   string
	Instructor     string
	Building       string
	Room           string
	ApprovalStatus string
}

// DateKey returns the record date as "2006-01-02".
func (r Record) DateKey() string {
	return r.Date.Format(DateKeyLayout)
}

// Weekday returns the full English weekday name of the record date.
func (r Record) Weekday() string {
	return r.Date.Weekday().String()
}

// TimeRange renders "9:00 AM<sep>10:30 AM".
func (r Record) TimeRange(sep string) string {
	return r.Start.Kitchen() + sep + r.End.Kitchen()
}

// Day truncates t to a calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// TimeBlock is a named, half-open time-of-day interval [From, To).
type TimeBlock struct {
	Name  string `yaml:"name" validate:"required"`
	Label string `yaml:"label"`
	From  Clock  `yaml:"from"`
	To    Clock  `yaml:"to" validate:"gt=0"`
}

// Contains reports whether start falls inside the block (From <= start < To).
func (b TimeBlock) Contains(start Clock) bool {
	return b.From <= start && start < b.To
}

// FloorBucket groups rooms by a lexicographic range over the raw room text.
// An empty bound is open.
type FloorBucket struct {
	Name string `yaml:"name" validate:"required"`
	Min  string `yaml:"min,omitempty"`
	Max  string `yaml:"max,omitempty"`
}

// Contains reports whether room lies inside [Min, Max].
func (f FloorBucket) Contains(room string) bool {
	if f.Min != "" && strings.Compare(room, f.Min) < 0 {
		return false
	}
	if f.Max != "" && strings.Compare(room, f.Max) > 0 {
		return false
	}
	return true
}
