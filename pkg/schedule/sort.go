package schedule

import (
	"sort"
	"strings"
	"time"
)

func compareTail(a, b Record) int {
	if a.End != b.End {
		return int(a.End) - int(b.End)
	}
	if c := strings.Compare(a.SectionNumber, b.SectionNumber); c != 0 {
		return c
	}
	return strings.Compare(a.SectionTitle, b.SectionTitle)
}

func compareDate(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// SortSignage orders records by date, room (as text), then start time.
// This is the order the signage pagination walk expects.
func SortSignage(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if c := compareDate(a.Date, b.Date); c != 0 {
			return c < 0
		}
		if c := strings.Compare(a.Room, b.Room); c != 0 {
			return c < 0
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return compareTail(a, b) < 0
	})
}

// SortTabular orders records by date, start time, then room (as text).
// Workbook, slide and calendar output use this order.
func SortTabular(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if c := compareDate(a.Date, b.Date); c != 0 {
			return c < 0
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if c := strings.Compare(a.Room, b.Room); c != 0 {
			return c < 0
		}
		return compareTail(a, b) < 0
	})
}

// sortRoomStart orders records of a single block by room, then start time.
func sortRoomStart(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if c := strings.Compare(a.Room, b.Room); c != 0 {
			return c < 0
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return compareTail(a, b) < 0
	})
}

// Dates returns the distinct dates of records in order of first appearance.
func Dates(records []Record) []time.Time {
	seen := make(map[string]bool)
	var dates []time.Time
	for _, r := range records {
		if key := r.DateKey(); !seen[key] {
			seen[key] = true
			dates = append(dates, r.Date)
		}
	}
	return dates
}
