package cli

import (
	"os"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var flagVerbose bool

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vla-calibrators",
		Short: "Scrape and query the VLA calibrator list",
		Long: `A CLI tool for working with the VLA calibrator list.
Scrapes calibrator positions, flux densities, and UV limits from the
fixed-width tables on the NRAO calibrator page into an XML database,
then queries or exports the saved database offline.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging and diagnostics")

	// Add subcommands
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
