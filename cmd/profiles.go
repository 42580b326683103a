package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"autosigns/pkg/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect location profiles",
}

var profilesDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the location profiles as YAML",
	Long: `Print the built-in location profiles as YAML. The output is a valid
--profiles file and is the easiest starting point for a custom one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("profiles")
		set, err := profile.LoadOrDefault(path)
		if err != nil {
			return err
		}
		return set.Dump(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesDumpCmd)
	profilesDumpCmd.Flags().String("profiles", "", "Validate and print this YAML file instead")
}
