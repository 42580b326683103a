package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"autosigns/pkg/config"
	"autosigns/pkg/pipeline"
	"autosigns/pkg/profile"
	"autosigns/pkg/tui"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render signs and schedules from a Daily Summary export",
	Long: `Render classroom signs, the daily schedule workbook, lobby slides or a
calendar from a Section Schedule Daily Summary export without using the
interactive TUI. With no output flags the configured defaults are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Effective()
		if err != nil {
			return err
		}

		reportPath, _ := cmd.Flags().GetString("report")
		outDir, _ := cmd.Flags().GetString("out")
		profilesPath, _ := cmd.Flags().GetString("profiles")
		templateDir, _ := cmd.Flags().GetString("templates")
		if outDir == "" {
			outDir = cfg.OutputDir
		}
		if profilesPath == "" {
			profilesPath = cfg.ProfilesPath
		}
		if templateDir == "" {
			templateDir = cfg.TemplateDir
		}

		var names []string
		for _, o := range pipeline.AllOutputs {
			if on, _ := cmd.Flags().GetBool(string(o)); on {
				names = append(names, string(o))
			}
		}
		if len(names) == 0 {
			names = cfg.Outputs
		}
		outputs, err := pipeline.ParseOutputs(names)
		if err != nil {
			return err
		}

		set, err := profile.LoadOrDefault(profilesPath)
		if err != nil {
			return err
		}

		var res *pipeline.Result
		var runErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Rendering %s into %s...", filepath.Base(reportPath), outDir)).
			Action(func() {
				res, runErr = pipeline.Run(pipeline.Options{
					ReportPath:  reportPath,
					OutDir:      outDir,
					TemplateDir: templateDir,
					Outputs:     outputs,
					Profiles:    set,
				})
			}).
			Run()

		if runErr != nil {
			return runErr
		}
		fmt.Println(tui.Summary(res))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("report", "r", "", "Daily Summary export (.xls, .xlsx, .html or .csv)")
	renderCmd.Flags().StringP("out", "o", "", "Output folder (defaults to the configured folder)")
	renderCmd.Flags().Bool(string(pipeline.OutputSigns), false, "Render classroom signs (.docx)")
	renderCmd.Flags().Bool(string(pipeline.OutputWorkbook), false, "Render the daily schedule workbook (.xlsx)")
	renderCmd.Flags().Bool(string(pipeline.OutputSlides), false, "Render lobby slides (.pptx)")
	renderCmd.Flags().Bool(string(pipeline.OutputCalendar), false, "Render a calendar (.ics)")
	renderCmd.Flags().String("profiles", "", "YAML file replacing the built-in location profiles")
	renderCmd.Flags().String("templates", "", "Folder holding the Word and PowerPoint templates")
	renderCmd.MarkFlagRequired("report")
}
