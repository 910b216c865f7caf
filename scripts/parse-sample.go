package main

import (
	"fmt"
	"os"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/cli"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/diag"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/parse"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/scraper"
)

// Manual harness: parse a saved calibrator page and dump every record plus
// the collected diagnostics. Run from the repo root:
//
//	go run scripts/parse-sample.go [file.html]
func main() {
	path := "testdata/fixtures/callist_sample.html"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	s := scraper.New("", parse.DefaultThresholds())
	rec := diag.NewRecorder()
	col, err := s.Parse(f, rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d calibrators from %s\n\n", col.Len(), path)
	for _, cal := range col.Calibrators {
		cli.WriteCalibrator(os.Stdout, cal)
	}

	if rec.Len() > 0 {
		fmt.Println("\nDiagnostics:")
		for _, ev := range rec.Events() {
			fmt.Printf("  %s\n", ev)
		}
	}
}
