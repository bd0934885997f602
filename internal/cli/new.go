package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/movekit-dev/movekit/internal/branding"
	"github.com/movekit-dev/movekit/internal/config"
	"github.com/movekit-dev/movekit/internal/framework"
	"github.com/movekit-dev/movekit/internal/scaffold"
)

var (
	newPath       string
	newWithModule bool
)

func init() {
	newCmd.Flags().StringVarP(&newPath, "path", "p", "", "Target directory (default: ./<name>)")
	newCmd.Flags().BoolVar(&newWithModule, "with-module", false, "Seed sources/<name>.move with an empty module")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new Move package",
	Long: `Create a new Move package with a Move.toml that depends on the Sui framework
and binds the package's own named address to 0x0.

The package name is lower-cased and used as the directory name and the named
address. The target directory must not exist or must be empty.

Examples:
  movekit new Coin
  movekit new nft --path ./contracts/nft --with-module`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		withModule := newWithModule
		if !cmd.Flags().Changed("with-module") {
			withModule = config.GetBool(config.KeyNewWithModule)
		}
		var seed string
		if withModule {
			seed = framework.SeedModule(name)
		}

		gen := scaffold.New(scaffold.WithLogger(logger.Named("scaffold")))
		result, err := gen.Generate(framework.Sui().Request(name, newPath, seed))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printResult(out, scaffold.NormalizeName(name), result)

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. Add modules under %s/\n", scaffold.SourcesDir)
		fmt.Fprintf(out, "  2. Run '%s manifest validate %s' after editing Move.toml\n", branding.CLIName(), result.OutputDir)
		return nil
	},
}

func printResult(w io.Writer, name string, result *scaffold.Result) {
	fmt.Fprintf(w, "Created package %s at %s/\n", name, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}
