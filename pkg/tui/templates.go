package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"autosigns/pkg/config"
	"autosigns/pkg/profile"
	"autosigns/pkg/templates"
)

// RunTemplatesTUI writes the starter templates into a folder of the user's
// choice.
func RunTemplatesTUI() error {
	cfg, err := config.Effective()
	if err != nil {
		return err
	}

	dir := cfg.TemplateDir
	var overwrite bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template folder").
				Value(&dir),
			huh.NewConfirm().
				Title("Replace templates that already exist?").
				Value(&overwrite),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	set, err := profile.LoadOrDefault(cfg.ProfilesPath)
	if err != nil {
		return err
	}
	written, err := templates.WriteAll(set, dir, overwrite)
	if err != nil {
		return err
	}

	if len(written) == 0 {
		fmt.Println(mutedStyle.Render("All templates already exist; nothing written."))
		return nil
	}
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Wrote %d template(s) to %s", len(written), dir)))
	return nil
}
