package tui

import (
	"strings"
	"testing"
	"time"

	"autosigns/pkg/config"
	"autosigns/pkg/pipeline"
	"autosigns/pkg/profile"
	"autosigns/pkg/report"
	"autosigns/pkg/schedule"
)

func TestSummaryEmpty(t *testing.T) {
	res := &pipeline.Result{Report: &report.Report{Rows: 2, Filtered: 2}}
	out := Summary(res)
	if !strings.Contains(out, pipeline.EmptyMessage) {
		t.Errorf("expected empty message, got %q", out)
	}
	if !strings.Contains(out, "2 row(s) not final-approved") {
		t.Errorf("expected filter count, got %q", out)
	}
}

func TestSummaryListsFiles(t *testing.T) {
	gbc, _ := profile.Default().Lookup("GBC")
	res := &pipeline.Result{
		Report: &report.Report{
			Profile: gbc,
			Records: []schedule.Record{{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}},
		},
		Files: []string{"out/GBC 2024-01-05 Friday.docx"},
	}
	out := Summary(res)
	for _, want := range []string{"Golden Bear Center", "1 classes on 1 day(s)", "GBC 2024-01-05 Friday.docx"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestDescribe(t *testing.T) {
	out := Describe(&config.AppConfig{OutputDir: "/srv/out", Outputs: []string{"signs", "daily"}})
	if !strings.Contains(out, "Output Folder: /srv/out") {
		t.Errorf("missing output folder in %q", out)
	}
	if !strings.Contains(out, "Default Outputs: signs, daily") {
		t.Errorf("missing outputs in %q", out)
	}
}
