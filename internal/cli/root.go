package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/movekit-dev/movekit/internal/branding"
	"github.com/movekit-dev/movekit/internal/config"
	"github.com/movekit-dev/movekit/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string
	logger   = hclog.NewNullLogger()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates new Sui Move packages with a ready-to-build Move.toml
and checks existing manifests against the expected layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		name := logLevel
		if !cmd.Flags().Changed("log-level") {
			name = config.Get(config.KeyLogLevel)
		}
		level, err := logging.ParseLevel(name)
		if err != nil {
			return err
		}
		logger = logging.New(cmd.ErrOrStderr(), level)
		logger.Debug("configuration loaded", "file", config.FilePath())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error or off (default "+logging.DefaultLevel+")")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// Run executes the CLI and returns the process exit code. Errors are printed
// to stderr as-is.
func Run(version, commit, date string) int {
	if err := Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
