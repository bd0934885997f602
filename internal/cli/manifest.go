package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/movekit-dev/movekit/internal/manifest"
)

func init() {
	manifestCmd.AddCommand(manifestValidateCmd)
	manifestCmd.AddCommand(manifestShowCmd)
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect Move.toml manifests",
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a Move.toml against the manifest schema",
	Long: `Validate a Move.toml against the manifest schema. PATH may be the manifest
itself or the package directory containing it (default: current directory).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := manifestPath(args)
		logger.Debug("validating manifest", "path", path)

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s is valid\n", path)
			return nil
		}
		fmt.Fprintf(out, "%s is invalid:\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return fmt.Errorf("%s: %d validation issue(s)", path, len(result.Issues))
	},
}

var manifestShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a decoded Move.toml as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Parse(manifestPath(args))
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// manifestPath resolves the optional path argument to a manifest file.
func manifestPath(args []string) string {
	if len(args) == 0 {
		return manifest.FileName
	}
	path := args[0]
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, manifest.FileName)
	}
	return path
}
