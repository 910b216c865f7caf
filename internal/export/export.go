// Package export flattens a calibrator collection into per-band rows for
// analysis tools. Each row joins one band observation with its source's
// J2000 position; numeric columns are parsed so spreadsheets and dataframe
// libraries see numbers, with absent values kept as nulls rather than
// zeros. Supported sinks are Parquet and JSON Lines.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
	"github.com/parquet-go/parquet-go"
)

// BandRow is one band observation joined with its calibrator's identity.
// The numeric fields carry no omitempty: an absent value is an explicit
// JSON null, so downstream readers see every column on every row.
type BandRow struct {
	IAUName      string   `json:"iau_name" parquet:"iau_name"`
	AltName      string   `json:"alt_name,omitempty" parquet:"alt_name,optional"`
	PositionCode string   `json:"pc" parquet:"pc"`
	PosRef       string   `json:"pos_ref,omitempty" parquet:"pos_ref,optional"`
	RA           string   `json:"ra" parquet:"ra"`
	Dec          string   `json:"dec" parquet:"dec"`
	Band         string   `json:"band" parquet:"band"`
	BandCode     string   `json:"band_code" parquet:"band_code"`
	ACode        string   `json:"a_code" parquet:"a_code"`
	BCode        string   `json:"b_code" parquet:"b_code"`
	CCode        string   `json:"c_code" parquet:"c_code"`
	DCode        string   `json:"d_code" parquet:"d_code"`
	FluxJy       *float64 `json:"flux_jy" parquet:"flux_jy,optional"`
	UVMinKLambda *float64 `json:"uvmin_klambda" parquet:"uvmin_klambda,optional"`
	UVMaxKLambda *float64 `json:"uvmax_klambda" parquet:"uvmax_klambda,optional"`
}

// Flatten produces one row per band observation, in collection order.
// Calibrators without band rows contribute nothing.
func Flatten(col *calibrator.Collection) []BandRow {
	var rows []BandRow
	for _, cal := range col.Calibrators {
		for _, b := range cal.Bands {
			row := BandRow{
				IAUName:      cal.Name(),
				AltName:      cal.J2000.AltName,
				PositionCode: cal.J2000.PositionCode,
				PosRef:       cal.J2000.PosRef,
				RA:           cal.J2000.RA,
				Dec:          cal.J2000.Dec,
				Band:         b.Band,
				BandCode:     b.BandCode,
				ACode:        b.ACode,
				BCode:        b.BCode,
				CCode:        b.CCode,
				DCode:        b.DCode,
			}
			if v, ok := b.FluxValue(); ok {
				row.FluxJy = &v
			}
			if v, ok := b.UVMinValue(); ok {
				row.UVMinKLambda = &v
			}
			if v, ok := b.UVMaxValue(); ok {
				row.UVMaxKLambda = &v
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteParquet writes rows as a Parquet file.
func WriteParquet(w io.Writer, rows []BandRow) error {
	pw := parquet.NewGenericWriter[BandRow](w)
	if _, err := pw.Write(rows); err != nil {
		pw.Close()
		return fmt.Errorf("writing parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return nil
}

// WriteJSONL writes rows as JSON Lines, one object per row.
func WriteJSONL(w io.Writer, rows []BandRow) error {
	enc := json.NewEncoder(w)
	for i, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}
	}
	return nil
}

// WriteFile writes rows to path, picking the format from the extension.
func WriteFile(path string, rows []BandRow) error {
	var write func(io.Writer, []BandRow) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".parquet":
		write = WriteParquet
	case ".jsonl", ".json":
		write = WriteJSONL
	default:
		return fmt.Errorf("unsupported export format %q (supported: .parquet, .jsonl)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := write(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
