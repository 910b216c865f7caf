package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/diag"
)

// WriteCalibrator writes one calibrator record in the readable text layout.
// Absent values print as empty fields so the line shape stays stable.
func WriteCalibrator(w io.Writer, cal *calibrator.Calibrator) {
	if cal == nil {
		fmt.Fprintln(w, "No calibrator data to display.")
		return
	}

	j := cal.J2000
	fmt.Fprintf(w, "Calibrator: %s (J2000)\n", j.IAUName)
	fmt.Fprintf(w, "  RA: %s\n", j.RA)
	fmt.Fprintf(w, "  DEC: %s\n", j.Dec)
	fmt.Fprintf(w, "  Position Code: %s\n", j.PositionCode)
	fmt.Fprintf(w, "  Position Reference: %s\n", j.PosRef)
	fmt.Fprintf(w, "  Alt Name: %s\n", j.AltName)

	if cal.HasB1950() {
		b := cal.B1950
		fmt.Fprintf(w, "B1950 Name: %s\n", b.IAUName)
		fmt.Fprintf(w, "  RA: %s\n", b.RA)
		fmt.Fprintf(w, "  DEC: %s\n", b.Dec)
	}

	fmt.Fprintln(w, "Bands:")
	if len(cal.Bands) == 0 {
		fmt.Fprintln(w, "  No band data available")
	} else {
		for _, b := range cal.Bands {
			fmt.Fprintf(w, "  %s [%s]: A=%s B=%s C=%s D=%s Flux=%s Jy UVMIN=%s UVMAX=%s\n",
				b.Band, b.BandCode, b.ACode, b.BCode, b.CCode, b.DCode,
				b.FluxJy, b.UVMinKLambda, b.UVMaxKLambda)
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
}

// WriteSummary prints the post-scrape digest: the first five records with
// their band counts and up to three band lines each.
func WriteSummary(w io.Writer, col *calibrator.Collection) {
	fmt.Fprintln(w, "\n=== SUMMARY ===")

	cals := col.Calibrators
	if len(cals) > 5 {
		cals = cals[:5]
	}
	for i, cal := range cals {
		fmt.Fprintf(w, "%d. %s: %d bands\n", i+1, cal.Name(), len(cal.Bands))

		bands := cal.Bands
		if len(bands) > 3 {
			bands = bands[:3]
		}
		for _, b := range bands {
			fmt.Fprintf(w, "   %s: Codes=[%s,%s,%s,%s] UVMIN=%s, UVMAX=%s\n",
				b.Band, b.ACode, b.BCode, b.CCode, b.DCode,
				b.UVMinKLambda, b.UVMaxKLambda)
		}
	}
}

// WriteDiagnostics summarizes recorded parse problems. With verbose set,
// every recorded event is listed.
func WriteDiagnostics(w io.Writer, rec *diag.Recorder, verbose bool) {
	warns := rec.Count(diag.LevelWarn)
	errs := rec.Count(diag.LevelError)
	if warns == 0 && errs == 0 {
		return
	}

	fmt.Fprintf(w, "Diagnostics: %d warnings, %d errors\n", warns, errs)
	if !verbose {
		return
	}
	for _, ev := range rec.Events() {
		fmt.Fprintf(w, "  %s\n", ev.String())
	}
}
