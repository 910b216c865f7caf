package calibrator

import (
	"strconv"
	"strings"
)

// Equinox labels for position records.
const (
	EquinoxJ2000 = "J2000"
	EquinoxB1950 = "B1950"
)

// Position is the coordinate header of a calibrator in one equinox.
// PosRef and AltName are only populated for J2000 headers; the B1950
// table rows do not carry them.
type Position struct {
	IAUName      string
	Equinox      string
	PositionCode string
	RA           string
	Dec          string
	PosRef       string
	AltName      string
}

// IsZero reports whether the position was never populated. The parser
// leaves the B1950 position zero when a block has no B1950 header line.
func (p Position) IsZero() bool {
	return p.IAUName == "" && p.Equinox == "" && p.PositionCode == "" &&
		p.RA == "" && p.Dec == "" && p.PosRef == "" && p.AltName == ""
}

// Band is one frequency-band observation row of a calibrator block.
// ACode through DCode rate the calibrator in the four VLA array
// configurations. FluxJy, UVMinKLambda, and UVMaxKLambda hold the raw
// source tokens; empty string means the value was not recoverable.
type Band struct {
	Band         string
	BandCode     string
	ACode        string
	BCode        string
	CCode        string
	DCode        string
	FluxJy       string
	UVMinKLambda string
	UVMaxKLambda string
}

// FluxValue parses the flux token. ok is false when the field is absent
// or not a number.
func (b Band) FluxValue() (float64, bool) {
	return parseDecimal(b.FluxJy)
}

// UVMinValue parses the UV-min token. ok is false when absent.
func (b Band) UVMinValue() (float64, bool) {
	return parseDecimal(b.UVMinKLambda)
}

// UVMaxValue parses the UV-max token. ok is false when absent.
func (b Band) UVMaxValue() (float64, bool) {
	return parseDecimal(b.UVMaxKLambda)
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Calibrator is one scraped record: the J2000 header, the optional B1950
// header, and the band rows in source order. Duplicate bands are kept.
type Calibrator struct {
	J2000 Position
	B1950 Position
	Bands []Band
}

// Name returns the trimmed J2000 IAU name, the key used for lookups.
func (c *Calibrator) Name() string {
	return strings.TrimSpace(c.J2000.IAUName)
}

// HasB1950 reports whether the record carries a B1950 header.
func (c *Calibrator) HasB1950() bool {
	return strings.TrimSpace(c.B1950.IAUName) != ""
}

// HasBand reports whether any band row matches the given label exactly
// (after trimming the stored label).
func (c *Calibrator) HasBand(label string) bool {
	for _, b := range c.Bands {
		if strings.TrimSpace(b.Band) == label {
			return true
		}
	}
	return false
}

// Collection is the ordered result of one scrape run. Order is scrape
// order; it is preserved through serialization and reload. Names are not
// required to be unique; lookups return the first match.
type Collection struct {
	Calibrators []*Calibrator
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{Calibrators: make([]*Calibrator, 0)}
}

// Add appends a record, preserving insertion order.
func (c *Collection) Add(cal *Calibrator) {
	c.Calibrators = append(c.Calibrators, cal)
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.Calibrators)
}
