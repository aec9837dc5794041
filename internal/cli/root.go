package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xylo-dev/webgen/internal/branding"
	"github.com/xylo-dev/webgen/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <app_name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a fullstack project directory: it runs the
frontend and backend generators, moves their output into <app_name>/frontend
and <app_name>/backend, overlays the branded layout templates, and writes a README.

Names close to a subcommand (for example "doctr") are rejected as typos.
Use "generate <app_name>" to create a project with such a name.

Examples:
  ` + branding.CLIName() + ` demo
  ` + branding.CLIName() + ` shop --config ./acme.json
  ` + branding.CLIName() + ` generate doctor`,
	Args:                       appNameArg,
	SuggestionsMinimumDistance: 2,
	SilenceUsage:               true,
	SilenceErrors:              true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.DisableStacktrace = true
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT and SIGTERM cancel the running command.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
