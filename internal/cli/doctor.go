package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xylo-dev/webgen/internal/doctor"
)

var (
	doctorConfigPath string
	doctorFix        bool
)

func init() {
	doctorCmd.Flags().StringVar(&doctorConfigPath, "config", "", "Validate this project configuration instead of the built-in one")
	doctorCmd.Flags().StringVar(&templatesDir, "templates", "", "Check this template directory instead of the built-in set")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create the settings directory if missing")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check generators, templates, and configuration",
	Long:  `Run diagnostic checks on the generator executables, the template set, and the project configuration.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		problems := doctor.CheckGenerators(cmd.Context(), w, doctor.Requirements())

		tfs, err := openTemplates()
		if err != nil {
			fmt.Fprintf(w, "Template check:\n  [FAIL] %v\n", err)
			problems++
		} else {
			problems += doctor.CheckTemplates(w, tfs)
			problems += doctor.CheckProject(w, tfs, doctorConfigPath)
		}

		problems += doctor.CheckSettings(w, doctorFix)
		doctor.CheckSymlinks(w)

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		fmt.Fprintln(w, "\nNo problems found.")
		return nil
	},
}
