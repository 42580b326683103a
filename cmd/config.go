package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"autosigns/pkg/config"
	"autosigns/pkg/pipeline"
	"autosigns/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage autosigns configuration",
	Long:  "View or edit your local configuration settings (output folder, template folder, default outputs).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		show, _ := cmd.Flags().GetBool("show")
		setOutput, _ := cmd.Flags().GetString("set-output")
		setTemplates, _ := cmd.Flags().GetString("set-templates")
		setOutputs, _ := cmd.Flags().GetString("set-outputs")

		changed := false
		if setOutput != "" {
			cfg.OutputDir = setOutput
			changed = true
		}
		if setTemplates != "" {
			cfg.TemplateDir = setTemplates
			changed = true
		}
		if setOutputs != "" {
			outputs, err := pipeline.ParseOutputs(strings.Split(setOutputs, ","))
			if err != nil {
				return err
			}
			cfg.Outputs = cfg.Outputs[:0]
			for _, o := range outputs {
				cfg.Outputs = append(cfg.Outputs, string(o))
			}
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println(tui.Accent("✅ Configuration saved."))
		}
		if show {
			fmt.Print(tui.Describe(cfg))
		}
		if changed || show {
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("show", false, "Print the saved configuration")
	configCmd.Flags().String("set-output", "", "Set the default output folder")
	configCmd.Flags().String("set-templates", "", "Set the template folder")
	configCmd.Flags().String("set-outputs", "", "Set the default outputs, e.g. signs,daily,slides")
}
