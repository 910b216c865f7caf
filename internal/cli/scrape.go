package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/config"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/diag"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/logger"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/scraper"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagScrapeURL    string
	flagScrapeOutput string
	flagScrapeInput  string
	flagScrapeConfig string
)

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch the VLA calibrator list and save it as XML",
		RunE:  runScrape,
	}

	cmd.Flags().StringVar(&flagScrapeURL, "url", "", "Calibrator list URL (default: the published NRAO page)")
	cmd.Flags().StringVar(&flagScrapeOutput, "output", "", "Output XML file (default: "+storage.DefaultOutputFile+")")
	cmd.Flags().StringVar(&flagScrapeInput, "input", "", "Parse a saved HTML file instead of fetching")
	cmd.Flags().StringVar(&flagScrapeConfig, "config", "", "YAML config file")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if flagScrapeConfig != "" {
		var err error
		cfg, err = config.Load(flagScrapeConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	cfg.ApplyEnv()

	// Flags win over the config file and the environment.
	if flagScrapeURL != "" {
		cfg.SourceURL = flagScrapeURL
	}
	if flagScrapeOutput != "" {
		cfg.OutputFile = flagScrapeOutput
	}

	out := cmd.OutOrStdout()
	rec := diag.NewRecorder()
	s := scraper.New(cfg.SourceURL, cfg.Thresholds())

	var (
		col *calibrator.Collection
		err error
	)
	if flagScrapeInput != "" {
		fmt.Fprintf(out, "Parsing local calibrator list: %s\n", flagScrapeInput)
		logger.Info("parsing local calibrator list", logger.Fields{"path": flagScrapeInput})
		f, openErr := os.Open(flagScrapeInput)
		if openErr != nil {
			return fmt.Errorf("opening input file: %w", openErr)
		}
		col, err = s.Parse(f, rec)
		f.Close()
	} else {
		fmt.Fprintf(out, "Scraping VLA calibrator list from: %s\n", cfg.SourceURL)
		logger.Info("fetching calibrator list", logger.Fields{"url": cfg.SourceURL})
		start := time.Now()
		col, err = s.Fetch(rec)
		logger.RecordTiming("scrape.fetch", time.Since(start))
	}
	if err != nil {
		return fmt.Errorf("scraping calibrator list: %w", err)
	}

	logger.Info("parsed calibrator list", logger.Fields{
		"calibrators": col.Len(),
		"warnings":    rec.Count(diag.LevelWarn),
		"errors":      rec.Count(diag.LevelError),
	})

	logger.AddCounter("scrape.blocks_parsed", int64(col.Len()))
	logger.AddCounter("scrape.blocks_skipped", int64(rec.Count(diag.LevelError)))
	logger.SetGauge("scrape.calibrators", float64(col.Len()))

	if err := storage.Save(cfg.OutputFile, col); err != nil {
		return fmt.Errorf("saving calibrators: %w", err)
	}
	logger.Info("saved collection", logger.Fields{"path": cfg.OutputFile})

	fmt.Fprintf(out, "Extracted %d calibrators. XML saved as %s\n", col.Len(), cfg.OutputFile)
	WriteSummary(out, col)
	WriteDiagnostics(cmd.ErrOrStderr(), rec, flagVerbose)
	logger.Debug("scrape metrics", logger.Fields(logger.MetricsSnapshot()))
	return nil
}
