package cli

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xylo-dev/webgen/internal/config"
	"github.com/xylo-dev/webgen/internal/generator"
	"github.com/xylo-dev/webgen/internal/scaffold"
	"github.com/xylo-dev/webgen/internal/templates"
)

var (
	projectConfigPath string
	templatesDir      string
)

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, generateCmd} {
		cmd.Flags().StringVar(&projectConfigPath, "config", "", "Path to a project configuration file (default: built-in config)")
		cmd.Flags().StringVar(&templatesDir, "templates", "", "Template directory to overlay (default: built-in templates)")
	}
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <app_name>",
	Short: "Generate a fullstack project",
	Long: `Generate a fullstack project. Same as running the root command, but also
accepts app names that collide with a subcommand, such as "doctor".`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

// appNameArg validates the root command's single argument. Names close to
// a subcommand are taken as typos rather than project names.
func appNameArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q, did you mean %q? To create a project with this name, run '%s generate %s'",
			args[0], suggestions[0], cmd.Root().Name(), args[0])
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	appName := args[0]
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("app name must not be empty")
	}

	tfs, err := openTemplates()
	if err != nil {
		return err
	}

	project, err := loadProject(tfs, projectConfigPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	stager := scaffold.New(tfs,
		&generator.Command{Name: config.Get(config.KeyFrontendGenerator), Stdout: out, Stderr: cmd.ErrOrStderr()},
		&generator.Command{Name: config.Get(config.KeyBackendGenerator), Stdout: out, Stderr: cmd.ErrOrStderr()},
		logger,
	)

	result, err := stager.Run(cmd.Context(), appName, project)
	if result != nil {
		printResult(out, result)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nProject %s has been successfully generated!\n", appName)
	fmt.Fprintln(out, "To get started, navigate to the project directory:")
	fmt.Fprintf(out, "  cd %s\n", appName)
	return nil
}

// openTemplates resolves the template set from --templates, then the
// templates_dir setting, then the built-in set.
func openTemplates() (fs.FS, error) {
	dir := templatesDir
	if dir == "" {
		dir = config.Get(config.KeyTemplatesDir)
	}
	tfs, err := templates.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening templates %s: %w", dir, err)
	}
	return tfs, nil
}

func loadProject(tfs fs.FS, path string) (*config.Project, error) {
	if path == "" {
		return config.DefaultProject(tfs)
	}
	return config.LoadProject(path)
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Staged project at %s/\n", result.BaseDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
}
