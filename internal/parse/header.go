package parse

import (
	"regexp"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
)

// Position header patterns. The IAU name can survive as a markdown link when
// a line dodged sanitizing, so both patterns accept a bracketed or a plain
// first token. The J2000 form carries two optional trailing fields (position
// reference and alternate name); the B1950 form has neither.
var (
	j2000HeaderPattern = regexp.MustCompile(
		`^(?:\[(\S+)\]\([^)]+\)|(\S+))\s+J2000\s+(\w)\s+(\S+)\s+(\S+)\s*([A-Za-z0-9]+)?\s*([A-Za-z0-9.]+)?`)
	b1950HeaderPattern = regexp.MustCompile(
		`^(?:\[(\S+)\]|(\S+))\s+B1950\s+(\w)\s+(\S+)\s+(\S+)`)
)

// matchJ2000Header extracts the J2000 position from a sanitized header line.
func matchJ2000Header(line string) (calibrator.Position, bool) {
	m := j2000HeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return calibrator.Position{}, false
	}
	name := m[1]
	if name == "" {
		name = m[2]
	}
	return calibrator.Position{
		IAUName:      name,
		Equinox:      calibrator.EquinoxJ2000,
		PositionCode: m[3],
		RA:           m[4],
		Dec:          m[5],
		PosRef:       m[6],
		AltName:      m[7],
	}, true
}

// matchB1950Header extracts the B1950 position from a sanitized header line.
func matchB1950Header(line string) (calibrator.Position, bool) {
	m := b1950HeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return calibrator.Position{}, false
	}
	name := m[1]
	if name == "" {
		name = m[2]
	}
	return calibrator.Position{
		IAUName:      name,
		Equinox:      calibrator.EquinoxB1950,
		PositionCode: m[3],
		RA:           m[4],
		Dec:          m[5],
	}, true
}
