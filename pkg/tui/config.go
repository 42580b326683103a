package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"autosigns/pkg/config"
	"autosigns/pkg/pipeline"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Output Folder", "output"),
						huh.NewOption("Set Template Folder", "templates"),
						huh.NewOption("Set Default Outputs", "outputs"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "output":
			err = runSetPathTUI(cfg, "Output folder", "Where signs, workbooks and slides are written.", &cfg.OutputDir)
		case "templates":
			err = runSetPathTUI(cfg, "Template folder", "Folder holding Template-GBC.docx, Template-SFC.pptx and friends.", &cfg.TemplateDir)
		case "outputs":
			err = runSetOutputsTUI(cfg)
		case "view":
			path, _ := config.Path()
			fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Current Configuration (%s) ---", path)))
			fmt.Print(Describe(cfg))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

// Describe lists the saved settings, one per line.
func Describe(cfg *config.AppConfig) string {
	orNotSet := func(s string) string {
		if s == "" {
			return mutedStyle.Render("Not set")
		}
		return s
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Last Report: %s\n", orNotSet(cfg.ReportPath))
	fmt.Fprintf(&b, "Output Folder: %s\n", orNotSet(cfg.OutputDir))
	fmt.Fprintf(&b, "Template Folder: %s\n", orNotSet(cfg.TemplateDir))
	fmt.Fprintf(&b, "Profiles File: %s\n", orNotSet(cfg.ProfilesPath))
	fmt.Fprintf(&b, "Default Outputs: %s\n", orNotSet(strings.Join(cfg.Outputs, ", ")))
	fmt.Fprintf(&b, "Accent Color: %s\n", orNotSet(cfg.AccentColor))
	fmt.Fprintf(&b, "Log Level: %s\n", orNotSet(cfg.LogLevel))
	return b.String()
}

func runSetPathTUI(cfg *config.AppConfig, title, description string, target *string) error {
	input := *target

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	*target = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ %s saved.\n", title)))
	return nil
}

func runSetOutputsTUI(cfg *config.AppConfig) error {
	existing := make(map[string]bool)
	for _, o := range cfg.Outputs {
		existing[o] = true
	}

	var options []huh.Option[string]
	for _, o := range pipeline.AllOutputs {
		opt := huh.NewOption(outputLabels[o], string(o))
		if existing[string(o)] {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Default outputs").
				Description("Space = toggle, Enter = confirm").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Outputs = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d default output(s).\n", len(selected))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for autosigns").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Extension Blue", colorBlock("33")), "33"),
					huh.NewOption(fmt.Sprintf("%s California Gold", colorBlock("220")), "220"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
