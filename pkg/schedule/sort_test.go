package schedule

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortSignage(t *testing.T) {
	records := []Record{
		rec(5, "B", 9, 0),
		rec(4, "B", 8, 0),
		rec(4, "A", 11, 0),
		rec(4, "A", 9, 0),
	}

	SortSignage(records)

	var got []string
	for _, r := range records {
		got = append(got, r.DateKey()+" "+r.Room+" "+r.Start.String())
	}
	want := []string{
		"2024-03-04 A 09:00",
		"2024-03-04 A 11:00",
		"2024-03-04 B 08:00",
		"2024-03-05 B 09:00",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("signage order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortTabular(t *testing.T) {
	records := []Record{
		rec(4, "B", 9, 0),
		rec(4, "A", 9, 0),
		rec(4, "C", 8, 0),
		rec(3, "Z", 20, 0),
	}

	SortTabular(records)

	var got []string
	for _, r := range records {
		got = append(got, r.DateKey()+" "+r.Start.String()+" "+r.Room)
	}
	want := []string{
		"2024-03-03 20:00 Z",
		"2024-03-04 08:00 C",
		"2024-03-04 09:00 A",
		"2024-03-04 09:00 B",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tabular order mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var records []Record
	for i := 0; i < 200; i++ {
		r := rec(1+rng.Intn(3), []string{"A", "B", "C"}[rng.Intn(3)], 8+rng.Intn(3), 0)
		r.SectionNumber = []string{"X1", "X2"}[rng.Intn(2)]
		records = append(records, r)
	}

	for name, sortFn := range map[string]func([]Record){
		"signage": SortSignage,
		"tabular": SortTabular,
	} {
		once := append([]Record(nil), records...)
		sortFn(once)
		twice := append([]Record(nil), once...)
		sortFn(twice)

		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("%s sort is not idempotent (-once +twice):\n%s", name, diff)
		}
	}
}

func TestDates(t *testing.T) {
	records := []Record{rec(4, "A", 9, 0), rec(4, "B", 9, 0), rec(6, "A", 9, 0)}
	dates := Dates(records)
	if len(dates) != 2 {
		t.Fatalf("expected 2 distinct dates, got %d", len(dates))
	}
	if dates[1].Day() != 6 {
		t.Errorf("expected second date to be the 6th, got %v", dates[1])
	}
}

func TestClock(t *testing.T) {
	c, err := ParseClock("09:05")
	if err != nil {
		t.Fatalf("ParseClock failed: %v", err)
	}
	if c.Kitchen() != "9:05 AM" {
		t.Errorf("expected 9:05 AM, got %s", c.Kitchen())
	}
	if NewClock(17, 30).Kitchen() != "5:30 PM" {
		t.Errorf("expected 5:30 PM, got %s", NewClock(17, 30).Kitchen())
	}

	end, err := ParseClock("24:00")
	if err != nil || end != DayEnd {
		t.Errorf("expected 24:00 to parse as DayEnd, got %v (%v)", end, err)
	}

	if _, err := ParseClock("24:30"); err == nil {
		t.Errorf("expected 24:30 to be rejected")
	}
	if _, err := ParseClock("noon"); err == nil {
		t.Errorf("expected malformed clock to be rejected")
	}
}

func TestFloorBucketLexicographic(t *testing.T) {
	sixth := FloorBucket{Name: "6th Floor", Min: "Classroom 602", Max: "Classroom 613"}
	if !sixth.Contains("Classroom 610") {
		t.Errorf("expected Classroom 610 on the 6th floor")
	}
	// Lexicographic comparison: "Classroom 61" sorts before "Classroom 613".
	if !sixth.Contains("Classroom 61") {
		t.Errorf("expected lexicographic comparison to place Classroom 61 inside the range")
	}
	if sixth.Contains("Classroom 7") {
		t.Errorf("expected Classroom 7 outside the 6th floor range")
	}
}
