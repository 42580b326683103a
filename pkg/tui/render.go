package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"autosigns/pkg/config"
	"autosigns/pkg/pipeline"
	"autosigns/pkg/profile"
)

var outputLabels = map[pipeline.Output]string{
	pipeline.OutputSigns:    "Classroom signs (.docx)",
	pipeline.OutputWorkbook: "Daily schedule workbook (.xlsx)",
	pipeline.OutputSlides:   "Lobby slides (.pptx)",
	pipeline.OutputCalendar: "Calendar (.ics)",
}

// RunRenderTUI asks for a report and the outputs to produce, then renders.
func RunRenderTUI() error {
	fmt.Println(accentStyle.Render("Welcome to AutoSigns!"))

	cfg, err := config.Effective()
	if err != nil {
		return err
	}

	reportPath := cfg.ReportPath
	outDir := cfg.OutputDir
	selected := append([]string(nil), cfg.Outputs...)

	chosen := make(map[string]bool)
	for _, o := range selected {
		chosen[o] = true
	}
	var options []huh.Option[string]
	for _, o := range pipeline.AllOutputs {
		opt := huh.NewOption(outputLabels[o], string(o))
		if chosen[string(o)] {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Section Schedule Daily Summary export").
				Description("Path to the .xls, .xlsx, .html or .csv report.").
				Value(&reportPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("report path cannot be empty")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("cannot open %s", s)
					}
					return nil
				}),

			huh.NewInput().
				Title("Output folder").
				Value(&outDir),

			huh.NewMultiSelect[string]().
				Title("What should be produced?").
				Description("Space = toggle, Enter = confirm").
				Options(options...).
				Value(&selected).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return fmt.Errorf("select at least one output")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	outputs, err := pipeline.ParseOutputs(selected)
	if err != nil {
		return err
	}
	set, err := profile.LoadOrDefault(cfg.ProfilesPath)
	if err != nil {
		return err
	}

	var res *pipeline.Result
	var runErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Rendering %s...", filepath.Base(reportPath))).
		Action(func() {
			res, runErr = pipeline.Run(pipeline.Options{
				ReportPath:  reportPath,
				OutDir:      outDir,
				TemplateDir: cfg.TemplateDir,
				Outputs:     outputs,
				Profiles:    set,
			})
		}).
		Run()

	if res != nil {
		fmt.Println(Summary(res))
	}
	if runErr != nil {
		return runErr
	}

	// Remember the choices for next time.
	saved, err := config.Load()
	if err == nil {
		saved.ReportPath = reportPath
		saved.OutputDir = outDir
		saved.Outputs = selected
		_ = config.Save(saved)
	}
	return nil
}

// Summary renders the outcome of a run for the terminal.
func Summary(res *pipeline.Result) string {
	var b strings.Builder
	rep := res.Report
	if res.Empty() {
		b.WriteString(accentStyle.Render(pipeline.EmptyMessage))
	} else {
		b.WriteString(accentStyle.Render(fmt.Sprintf("\nSuccess! %s: %d classes on %d day(s), %d file(s) written.",
			rep.Profile.Label(), len(rep.Records), len(rep.Dates()), len(res.Files))))
		for _, f := range res.Files {
			b.WriteString("\n  " + f)
		}
	}
	if rep != nil && (rep.Filtered > 0 || rep.Skipped > 0) {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d row(s) not final-approved, %d row(s) skipped.", rep.Filtered, rep.Skipped)))
	}
	return b.String()
}
