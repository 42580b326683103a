package pagination

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"autosigns/pkg/schedule"
)

func rec(day int, room string, hour int) schedule.Record {
	return schedule.Record{
		Date:         time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC),
		Start:        schedule.NewClock(hour, 0),
		End:          schedule.NewClock(hour+1, 0),
		Room:         room,
		SectionTitle: room + " class",
	}
}

func actions(steps []Step) []Action {
	out := make([]Action, len(steps))
	for i, s := range steps {
		out[i] = s.Action
	}
	return out
}

func TestWalk_SingleDayTwoRooms(t *testing.T) {
	records := []schedule.Record{
		rec(5, "Classroom 101", 9),
		rec(5, "Classroom 101", 13),
		rec(5, "Classroom 102", 9),
	}

	steps := Walk(records)
	want := []Action{NewFile, AppendRow, NewPage}
	if diff := cmp.Diff(want, actions(steps)); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}

	for i, s := range steps {
		if s.CloseFile != nil {
			t.Errorf("step %d closes a file on a single-day walk", i)
		}
	}
	if steps[0].PageBreak() || steps[1].PageBreak() || !steps[2].PageBreak() {
		t.Errorf("page break must be emitted only before the second room")
	}

	date, ok := Final(records)
	if !ok || date.Day() != 5 {
		t.Errorf("expected the final file to be the 5th, got %v (ok=%v)", date, ok)
	}
}

func TestWalk_DateChangeClosesPreviousFile(t *testing.T) {
	records := []schedule.Record{
		rec(5, "Classroom 101", 9),
		rec(6, "Classroom 101", 9),
	}

	steps := Walk(records)
	want := []Action{NewFile, NewFile}
	if diff := cmp.Diff(want, actions(steps)); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
	if steps[1].CloseFile == nil || steps[1].CloseFile.Day() != 5 {
		t.Fatalf("expected the second step to close the file of the 5th, got %v", steps[1].CloseFile)
	}
	if steps[1].PageBreak() {
		t.Errorf("a new file must not start with a page break")
	}
}

func TestWalk_SameRoomOnNewDateIsNewFile(t *testing.T) {
	if got := Next(&schedule.Record{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Room: "A"}, rec(6, "A", 9)); got != NewFile {
		t.Errorf("expected NewFile, got %s", got)
	}
}

func TestWalk_FileAndPageCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rooms := []string{"Classroom 101", "Classroom 102", "Classroom 205", "Lab"}

	for iter := 0; iter < 100; iter++ {
		var records []schedule.Record
		n := rng.Intn(30)
		for i := 0; i < n; i++ {
			records = append(records, rec(1+rng.Intn(4), rooms[rng.Intn(len(rooms))], 8+rng.Intn(10)))
		}
		schedule.SortSignage(records)

		dates := make(map[string]bool)
		runs := 0
		for i, r := range records {
			dates[r.DateKey()] = true
			if i == 0 || records[i-1].DateKey() != r.DateKey() || records[i-1].Room != r.Room {
				runs++
			}
		}

		sum := Summarize(Walk(records))
		if sum.Files != len(dates) {
			t.Fatalf("expected %d files for %d dates, got %d", len(dates), len(dates), sum.Files)
		}
		if sum.Pages != runs {
			t.Fatalf("expected %d pages for %d room runs, got %d", runs, runs, sum.Pages)
		}
		if sum.Rows != len(records) {
			t.Fatalf("expected every record to produce one row")
		}
	}
}

func TestWalk_Empty(t *testing.T) {
	if steps := Walk(nil); len(steps) != 0 {
		t.Errorf("expected no steps, got %d", len(steps))
	}
	if _, ok := Final(nil); ok {
		t.Errorf("expected no final file for an empty walk")
	}
}
