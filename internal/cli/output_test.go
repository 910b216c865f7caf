package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/diag"
)

func TestWriteCalibratorFullRecord(t *testing.T) {
	cal := &calibrator.Calibrator{
		J2000: calibrator.Position{
			IAUName:      "0134+329",
			Equinox:      calibrator.EquinoxJ2000,
			PositionCode: "B",
			RA:           "01h37m41.30s",
			Dec:          "+33d09m35.1s",
			PosRef:       "ICRF",
			AltName:      "3C48",
		},
		B1950: calibrator.Position{
			IAUName:      "0137+331",
			Equinox:      calibrator.EquinoxB1950,
			PositionCode: "B",
			RA:           "01h34m49.83s",
			Dec:          "+32d54m20.5s",
		},
		Bands: []calibrator.Band{
			{
				Band: "20cm", BandCode: "L",
				ACode: "J", BCode: "S", CCode: "S", DCode: "X",
				FluxJy: "7.10", UVMinKLambda: "40.0", UVMaxKLambda: "100",
			},
			{
				Band: "6cm", BandCode: "C",
				ACode: "P", BCode: "P", CCode: "P", DCode: "P",
				FluxJy: "16.00",
			},
		},
	}

	var buf bytes.Buffer
	WriteCalibrator(&buf, cal)

	want := strings.Join([]string{
		"Calibrator: 0134+329 (J2000)",
		"  RA: 01h37m41.30s",
		"  DEC: +33d09m35.1s",
		"  Position Code: B",
		"  Position Reference: ICRF",
		"  Alt Name: 3C48",
		"B1950 Name: 0137+331",
		"  RA: 01h34m49.83s",
		"  DEC: +32d54m20.5s",
		"Bands:",
		"  20cm [L]: A=J B=S C=S D=X Flux=7.10 Jy UVMIN=40.0 UVMAX=100",
		"  6cm [C]: A=P B=P C=P D=P Flux=16.00 Jy UVMIN= UVMAX=",
		strings.Repeat("-", 60),
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("WriteCalibrator output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteCalibratorMinimalRecord(t *testing.T) {
	cal := &calibrator.Calibrator{
		J2000: calibrator.Position{
			IAUName:      "0005+383",
			Equinox:      calibrator.EquinoxJ2000,
			PositionCode: "A",
			RA:           "00h08m22.34s",
			Dec:          "+38d24m13.0s",
		},
	}

	var buf bytes.Buffer
	WriteCalibrator(&buf, cal)
	got := buf.String()

	if strings.Contains(got, "B1950") {
		t.Error("output mentions B1950 for a record without one")
	}
	if !strings.Contains(got, "  No band data available\n") {
		t.Error("output missing the empty-bands line")
	}
	if !strings.Contains(got, "  Position Reference: \n") {
		t.Error("absent position reference should print as an empty field")
	}
}

func TestWriteCalibratorNil(t *testing.T) {
	var buf bytes.Buffer
	WriteCalibrator(&buf, nil)

	if got := buf.String(); got != "No calibrator data to display.\n" {
		t.Errorf("WriteCalibrator(nil) = %q", got)
	}
}

func TestWriteSummary(t *testing.T) {
	col := calibrator.NewCollection()
	col.Add(&calibrator.Calibrator{
		J2000: calibrator.Position{IAUName: "0000+000", Equinox: calibrator.EquinoxJ2000},
		Bands: []calibrator.Band{
			{Band: "90cm", ACode: "S", BCode: "S", CCode: "S", DCode: "S"},
			{Band: "20cm", ACode: "P", BCode: "P", CCode: "P", DCode: "P", UVMinKLambda: "40.0", UVMaxKLambda: "100"},
			{Band: "6cm", ACode: "P", BCode: "P", CCode: "P", DCode: "P"},
			{Band: "2cm", ACode: "X", BCode: "X", CCode: "X", DCode: "X"},
		},
	})
	for i := 1; i <= 5; i++ {
		col.Add(&calibrator.Calibrator{
			J2000: calibrator.Position{IAUName: fmt.Sprintf("000%d+111", i), Equinox: calibrator.EquinoxJ2000},
		})
	}

	var buf bytes.Buffer
	WriteSummary(&buf, col)
	got := buf.String()

	if !strings.Contains(got, "=== SUMMARY ===") {
		t.Errorf("missing summary header in %q", got)
	}
	if !strings.Contains(got, "1. 0000+000: 4 bands") {
		t.Errorf("missing first record line in %q", got)
	}
	if !strings.Contains(got, "   20cm: Codes=[P,P,P,P] UVMIN=40.0, UVMAX=100") {
		t.Errorf("missing band detail line in %q", got)
	}
	if strings.Contains(got, "   2cm:") {
		t.Error("fourth band should be capped out of the summary")
	}
	if strings.Contains(got, "0005+111") {
		t.Error("sixth record should be capped out of the summary")
	}
}

func TestWriteDiagnostics(t *testing.T) {
	t.Run("silent when empty", func(t *testing.T) {
		var buf bytes.Buffer
		WriteDiagnostics(&buf, diag.NewRecorder(), true)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("summary only", func(t *testing.T) {
		rec := diag.NewRecorder()
		rec.Warn(diag.StageBand, 2, "20cm", "no flux density token found")
		rec.Error(diag.StageBlock, 3, "", "no J2000 header matched")

		var buf bytes.Buffer
		WriteDiagnostics(&buf, rec, false)
		if got := buf.String(); got != "Diagnostics: 1 warnings, 1 errors\n" {
			t.Errorf("WriteDiagnostics summary = %q", got)
		}
	})

	t.Run("verbose lists events", func(t *testing.T) {
		rec := diag.NewRecorder()
		rec.Warn(diag.StageBand, 2, "20cm", "no flux density token found")

		var buf bytes.Buffer
		WriteDiagnostics(&buf, rec, true)
		got := buf.String()
		if !strings.Contains(got, "Diagnostics: 1 warnings, 0 errors\n") {
			t.Errorf("missing summary line in %q", got)
		}
		if !strings.Contains(got, "no flux density token found") {
			t.Errorf("missing event detail in %q", got)
		}
	})
}
