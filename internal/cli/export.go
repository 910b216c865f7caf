package cli

import (
	"fmt"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/export"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagExportInput  string
	flagExportOutput string
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Flatten a calibrator XML file into Parquet or JSON lines",
		Long: `Flatten a calibrator XML file into one row per band observation.

The output extension selects the format: .parquet writes a Parquet file,
.jsonl or .json writes JSON lines.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagExportInput, "input", "", "Calibrator XML file (default: probe the usual output names)")
	cmd.Flags().StringVar(&flagExportOutput, "output", "calibrators.parquet", "Output file; the extension picks the format")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	path, err := storage.Resolve(flagExportInput)
	if err != nil {
		return err
	}

	col, err := storage.Load(path)
	if err != nil {
		return fmt.Errorf("loading calibrators: %w", err)
	}

	rows := export.Flatten(col)
	if err := export.WriteFile(flagExportOutput, rows); err != nil {
		return fmt.Errorf("exporting calibrators: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d band rows from %d calibrators to %s\n",
		len(rows), col.Len(), flagExportOutput)
	return nil
}
