package parse

import (
	"fmt"
	"strings"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/diag"
)

// Parser turns segmented blocks into calibrator records. The zero value is
// not usable; construct with NewParser.
type Parser struct {
	thresholds Thresholds
	rec        *diag.Recorder
}

// NewParser returns a Parser using the given column thresholds. rec may be
// nil when no diagnostics are wanted.
func NewParser(th Thresholds, rec *diag.Recorder) *Parser {
	return &Parser{thresholds: th, rec: rec}
}

// ParseBlock extracts one calibrator record from the raw lines of a block.
// index is the 1-based position of the block in its document and is used
// only for diagnostics. Malformed band rows and duplicate headers are
// recorded and skipped; the only error is a block whose J2000 header cannot
// be matched, which callers are expected to skip.
func (p *Parser) ParseBlock(index int, rawLines []string) (*calibrator.Calibrator, error) {
	th := p.thresholds
	if uvMin, uvMax, ok := deriveColumns(rawLines); ok {
		th.UVMinColumn = uvMin
		th.UVMaxColumn = uvMax
	}

	cal := &calibrator.Calibrator{}
	for _, raw := range rawLines {
		if skipBlockLine(raw) {
			continue
		}
		line := CleanLine(raw)

		if pos, ok := matchJ2000Header(line); ok {
			if cal.J2000.IsZero() {
				cal.J2000 = pos
			} else {
				p.rec.Warn(diag.StageHeader, index, line, "duplicate J2000 header ignored")
			}
			continue
		}
		if pos, ok := matchB1950Header(line); ok {
			if cal.B1950.IsZero() {
				cal.B1950 = pos
			} else {
				p.rec.Warn(diag.StageHeader, index, line, "duplicate B1950 header ignored")
			}
			continue
		}
		if isBandRow(line) {
			if band, ok := p.parseBandRow(index, line, th); ok {
				cal.Bands = append(cal.Bands, band)
			}
		}
	}

	if cal.J2000.IsZero() {
		p.rec.Error(diag.StageBlock, index, "", "no J2000 header matched")
		return nil, fmt.Errorf("parsing block %d: no J2000 header matched", index)
	}
	return cal, nil
}

// skipBlockLine reports whether a raw block line is structural noise: blank
// lines, horizontal rules, and the column header row.
func skipBlockLine(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" ||
		strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, "=") ||
		strings.HasPrefix(trimmed, "BAND")
}

// deriveColumns recovers the UV column offsets from a block's own column
// header row, the line carrying both the UVMIN and UVMAX labels. Offsets
// read from the block override the configured thresholds. ok is false when
// the block has no such row or the labels are out of order.
func deriveColumns(rawLines []string) (uvMin, uvMax int, ok bool) {
	for _, raw := range rawLines {
		line := CleanLine(raw)
		minIdx := strings.Index(line, "UVMIN")
		if minIdx < 0 {
			continue
		}
		maxIdx := strings.Index(line, "UVMAX")
		if maxIdx <= minIdx {
			continue
		}
		return minIdx, maxIdx, true
	}
	return 0, 0, false
}
