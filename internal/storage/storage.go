package storage

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
)

// DefaultOutputFile is the filename the scraper writes when none is given.
const DefaultOutputFile = "vla_calibrators_from_web_fixed.xml"

// DefaultFilenames are probed in order when no explicit path is given to
// Resolve. The later names were written by earlier versions of these
// tools and are still accepted.
var DefaultFilenames = []string{
	DefaultOutputFile,
	"vla_calibrators_from_web.xml",
	"calibrators.xml",
}

// Wire representation of the XML document. Field order follows the source
// table columns and is part of the format.
type xmlCollection struct {
	XMLName xml.Name        `xml:"calibrators"`
	Items   []xmlCalibrator `xml:"calibrator"`
}

type xmlCalibrator struct {
	Header xmlHeader `xml:"header"`
	Bands  xmlBands  `xml:"bands"`
}

// xmlHeader always carries both equinox sub-elements. A record without a
// B1950 header serializes it with empty children, keeping the document
// shape positionally stable.
type xmlHeader struct {
	J2000 xmlJ2000Position `xml:"j2000"`
	B1950 xmlB1950Position `xml:"b1950"`
}

// xmlBands keeps the <bands> element present even when a record has no
// band rows.
type xmlBands struct {
	Bands []xmlBand `xml:"band"`
}

type xmlJ2000Position struct {
	IAUName string `xml:"IAU_NAME"`
	Equinox string `xml:"EQUINOX"`
	PC      string `xml:"PC"`
	RA      string `xml:"RA"`
	Dec     string `xml:"DEC"`
	PosRef  string `xml:"POS_REF"`
	AltName string `xml:"ALT_NAME"`
}

type xmlB1950Position struct {
	IAUName string `xml:"IAU_NAME"`
	Equinox string `xml:"EQUINOX"`
	PC      string `xml:"PC"`
	RA      string `xml:"RA"`
	Dec     string `xml:"DEC"`
}

type xmlBand struct {
	Band    string `xml:"BAND"`
	Code    string `xml:"BAND_CODE"`
	ACode   string `xml:"A_CODE"`
	BCode   string `xml:"B_CODE"`
	CCode   string `xml:"C_CODE"`
	DCode   string `xml:"D_CODE"`
	FluxJy  string `xml:"FLUX_JY"`
	UVMinKL string `xml:"UVMIN_KLAMBDA"`
	UVMaxKL string `xml:"UVMAX_KLAMBDA"`
}

// Save writes the collection to path as indented XML with a standard
// declaration header.
func Save(path string, col *calibrator.Collection) error {
	data, err := xml.MarshalIndent(encode(col), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding calibrator list: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(data)+1)
	out = append(out, xml.Header...)
	out = append(out, data...)
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing calibrator list: %w", err)
	}
	return nil
}

// Load reads a collection from an XML file written by Save or by earlier
// versions of these tools.
func Load(path string) (*calibrator.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calibrator list: %w", err)
	}

	var doc xmlCollection
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing calibrator list %s: %w", path, err)
	}
	return decode(doc), nil
}

// Resolve picks the calibrator file to read. An explicit path wins; with an
// empty path the default filenames are probed in order.
func Resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	for _, name := range DefaultFilenames {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no calibrator file found; tried %s", strings.Join(DefaultFilenames, ", "))
}

func encode(col *calibrator.Collection) xmlCollection {
	doc := xmlCollection{Items: make([]xmlCalibrator, 0, col.Len())}
	for _, cal := range col.Calibrators {
		item := xmlCalibrator{
			Header: xmlHeader{
				J2000: xmlJ2000Position{
					IAUName: cal.J2000.IAUName,
					Equinox: cal.J2000.Equinox,
					PC:      cal.J2000.PositionCode,
					RA:      cal.J2000.RA,
					Dec:     cal.J2000.Dec,
					PosRef:  cal.J2000.PosRef,
					AltName: cal.J2000.AltName,
				},
				B1950: xmlB1950Position{
					IAUName: cal.B1950.IAUName,
					Equinox: cal.B1950.Equinox,
					PC:      cal.B1950.PositionCode,
					RA:      cal.B1950.RA,
					Dec:     cal.B1950.Dec,
				},
			},
		}
		for _, b := range cal.Bands {
			item.Bands.Bands = append(item.Bands.Bands, xmlBand{
				Band:    b.Band,
				Code:    b.BandCode,
				ACode:   b.ACode,
				BCode:   b.BCode,
				CCode:   b.CCode,
				DCode:   b.DCode,
				FluxJy:  b.FluxJy,
				UVMinKL: b.UVMinKLambda,
				UVMaxKL: b.UVMaxKLambda,
			})
		}
		doc.Items = append(doc.Items, item)
	}
	return doc
}

func decode(doc xmlCollection) *calibrator.Collection {
	col := calibrator.NewCollection()
	for _, item := range doc.Items {
		cal := &calibrator.Calibrator{
			J2000: calibrator.Position{
				IAUName:      item.Header.J2000.IAUName,
				Equinox:      item.Header.J2000.Equinox,
				PositionCode: item.Header.J2000.PC,
				RA:           item.Header.J2000.RA,
				Dec:          item.Header.J2000.Dec,
				PosRef:       item.Header.J2000.PosRef,
				AltName:      item.Header.J2000.AltName,
			},
			B1950: calibrator.Position{
				IAUName:      item.Header.B1950.IAUName,
				Equinox:      item.Header.B1950.Equinox,
				PositionCode: item.Header.B1950.PC,
				RA:           item.Header.B1950.RA,
				Dec:          item.Header.B1950.Dec,
			},
		}
		for _, b := range item.Bands.Bands {
			cal.Bands = append(cal.Bands, calibrator.Band{
				Band:         b.Band,
				BandCode:     b.Code,
				ACode:        b.ACode,
				BCode:        b.BCode,
				CCode:        b.CCode,
				DCode:        b.DCode,
				FluxJy:       b.FluxJy,
				UVMinKLambda: b.UVMinKL,
				UVMaxKLambda: b.UVMaxKL,
			})
		}
		col.Add(cal)
	}
	return col
}
