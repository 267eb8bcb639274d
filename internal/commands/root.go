// Package commands wires the CLI: the cobra root command and the
// interactive menu loop it runs.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/ledger"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// NewRootCommand creates the root CLI command. Running it starts an
// interactive session over a fresh, empty ledger.
func NewRootCommand() *cobra.Command {
	var configPath string
	var importPath string
	var importFormat string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Interactive personal finance ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}

			// .env is optional; absence is the normal case.
			_ = godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			l := ledger.New()
			if importPath != "" {
				n, err := importer.ImportFile(l, importer.DefaultRegistry(), importFormat, importPath)
				if err != nil {
					return err
				}
				logger.Debug().Str("file", importPath).Int("transactions", n).Msg("seeded session from import")
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s.\n", n, importPath)
				auditImport(cfg, importPath, n)
			}

			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), l, cfg)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "tally.yaml", "config file path")
	rootCmd.Flags().StringVar(&importPath, "import", "", "seed the session from a transaction CSV")
	rootCmd.Flags().StringVar(&importFormat, "format", "standard", "import file format")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return rootCmd
}
