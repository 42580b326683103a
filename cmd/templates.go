package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"autosigns/pkg/config"
	"autosigns/pkg/profile"
	"autosigns/pkg/templates"
	"autosigns/pkg/tui"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage the Word and PowerPoint templates",
}

var templatesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write starter templates for every location",
	Long: `Write a starter Word template for the classroom signs and a starter
PowerPoint deck for the lobby slides of every location profile. Existing
files are kept unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		force, _ := cmd.Flags().GetBool("force")
		profilesPath, _ := cmd.Flags().GetString("profiles")

		if dir == "" || profilesPath == "" {
			cfg, err := config.Effective()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.TemplateDir
			}
			if profilesPath == "" {
				profilesPath = cfg.ProfilesPath
			}
		}

		set, err := profile.LoadOrDefault(profilesPath)
		if err != nil {
			return err
		}
		written, err := templates.WriteAll(set, dir, force)
		if err != nil {
			return err
		}

		if len(written) == 0 {
			fmt.Println("All templates already exist; use --force to replace them.")
			return nil
		}
		fmt.Println(tui.Accent(fmt.Sprintf("✅ Wrote %d template(s):", len(written))))
		for _, p := range written {
			fmt.Println("  " + p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesInitCmd)

	templatesInitCmd.Flags().StringP("dir", "d", "", "Template folder (defaults to the configured folder)")
	templatesInitCmd.Flags().BoolP("force", "f", false, "Replace templates that already exist")
	templatesInitCmd.Flags().String("profiles", "", "YAML file replacing the built-in location profiles")
}
