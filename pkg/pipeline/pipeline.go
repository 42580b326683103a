// Package pipeline ingests a report once and runs the selected renderers
// over it.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"autosigns/pkg/exporter"
	"autosigns/pkg/logger"
	"autosigns/pkg/pagination"
	"autosigns/pkg/profile"
	"autosigns/pkg/report"
	"autosigns/pkg/schedule"
)

// Output is one kind of artifact.
type Output string

const (
	OutputSigns    Output = "signs"
	OutputWorkbook Output = "daily"
	OutputSlides   Output = "slides"
	OutputCalendar Output = "ics"
)

// AllOutputs lists every artifact in the order they are produced.
var AllOutputs = []Output{OutputSigns, OutputWorkbook, OutputSlides, OutputCalendar}

// ErrNoOutputs is returned when no artifact was selected.
var ErrNoOutputs = errors.New("no outputs selected")

// EmptyMessage is what the CLI prints when nothing survived filtering.
const EmptyMessage = "No classes scheduled in date range."

// ParseOutputs turns names like "signs,daily" into Outputs. Unknown names
// are an error; duplicates are dropped.
func ParseOutputs(names []string) ([]Output, error) {
	seen := make(map[Output]bool)
	var out []Output
	for _, raw := range names {
		for _, name := range strings.Split(raw, ",") {
			o := Output(strings.ToLower(strings.TrimSpace(name)))
			if o == "" {
				continue
			}
			if !o.valid() {
				return nil, fmt.Errorf("unknown output %q (want one of %s)", name, strings.Join(outputNames(), ", "))
			}
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out, nil
}

func (o Output) valid() bool {
	for _, known := range AllOutputs {
		if o == known {
			return true
		}
	}
	return false
}

func outputNames() []string {
	names := make([]string, len(AllOutputs))
	for i, o := range AllOutputs {
		names[i] = string(o)
	}
	return names
}

// Options configures one run.
type Options struct {
	ReportPath  string
	OutDir      string
	TemplateDir string
	Outputs     []Output
	// Profiles defaults to profile.Default().
	Profiles *profile.Set
	// Layout defaults to report.DefaultLayout().
	Layout *report.Layout
}

// Result describes what a run produced.
type Result struct {
	Report  *report.Report
	Files   []string
	Signage pagination.Summary
}

// Empty reports whether the report held no final-approved classes.
func (r *Result) Empty() bool {
	return r.Report == nil || r.Report.Empty()
}

// Run ingests opts.ReportPath and renders every selected output into
// opts.OutDir.
func Run(opts Options) (*Result, error) {
	if len(opts.Outputs) == 0 {
		return nil, ErrNoOutputs
	}
	set := opts.Profiles
	if set == nil {
		set = profile.Default()
	}
	layout := report.DefaultLayout()
	if opts.Layout != nil {
		layout = *opts.Layout
	}

	rep, err := report.Load(opts.ReportPath, layout, set)
	if err != nil {
		return nil, err
	}
	return Render(rep, set, opts)
}

// Render runs the selected renderers over an ingested report. Files already
// written stay on disk when a later renderer fails.
func Render(rep *report.Report, set *profile.Set, opts Options) (*Result, error) {
	res := &Result{Report: rep}
	log := logger.Log.WithFields(logrus.Fields{
		"rows":     rep.Rows,
		"filtered": rep.Filtered,
		"skipped":  rep.Skipped,
	})
	for _, p := range rep.Problems {
		logger.Log.Warnf("Skipped %v", p)
	}
	if rep.Empty() {
		log.Info(EmptyMessage)
		return res, nil
	}

	p := rep.Profile
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, &exporter.OutputWriteError{Path: opts.OutDir, Err: err}
	}

	var days []schedule.DayGroup
	if wants(opts.Outputs, OutputWorkbook) || wants(opts.Outputs, OutputSlides) {
		days = schedule.Partition(rep.Records, p.Blocks, p.Floors)
	}

	for _, o := range AllOutputs {
		if !wants(opts.Outputs, o) {
			continue
		}
		files, err := renderOne(o, rep, days, set, opts)
		res.Files = append(res.Files, files...)
		if err != nil {
			return res, fmt.Errorf("%s: %w", o, err)
		}
		if o == OutputSigns {
			sorted := append([]schedule.Record(nil), rep.Records...)
			schedule.SortSignage(sorted)
			res.Signage = pagination.Summarize(pagination.Walk(sorted))
		}
	}

	log.WithFields(logrus.Fields{
		"location": p.Name,
		"records":  len(rep.Records),
		"files":    len(res.Files),
	}).Info("Render finished")
	return res, nil
}

func renderOne(o Output, rep *report.Report, days []schedule.DayGroup, set *profile.Set, opts Options) ([]string, error) {
	p := rep.Profile
	switch o {
	case OutputSigns:
		r := &exporter.SignageRenderer{Set: set, Profile: p, TemplateDir: opts.TemplateDir}
		return r.Render(rep.Records, opts.OutDir)
	case OutputWorkbook:
		r := &exporter.WorkbookRenderer{Set: set, Profile: p}
		return single(r.Render(days, opts.OutDir))
	case OutputSlides:
		r := &exporter.SlideRenderer{Set: set, Profile: p, TemplateDir: opts.TemplateDir}
		return r.Render(days, opts.OutDir)
	case OutputCalendar:
		r := &exporter.CalendarRenderer{Set: set, Profile: p}
		return single(r.Render(rep.Records, opts.OutDir))
	}
	return nil, fmt.Errorf("unknown output %q", o)
}

func single(path string, err error) ([]string, error) {
	if path == "" {
		return nil, err
	}
	return []string{path}, err
}

func wants(outputs []Output, o Output) bool {
	for _, x := range outputs {
		if x == o {
			return true
		}
	}
	return false
}
