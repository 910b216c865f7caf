// Package cli implements the command-line interface for vla-calibrators.
//
// The cli package provides the Cobra-based CLI with subcommands for scraping the
// VLA calibrator list into XML, querying a saved list (interactively or with
// one-shot flags), and exporting flattened band tables to Parquet or JSON lines.
// It coordinates the scraper, storage, query, and export packages.
package cli
