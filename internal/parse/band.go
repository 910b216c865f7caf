package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/diag"
)

// Thresholds hold the column heuristics for band rows. UV distances are
// right-aligned in the source tables, so a numeric token is classified by
// the character offset where it appears: at or past UVMaxColumn it is a
// UV-max, at or past UVMinColumn a UV-min, left of both it is discarded.
// FluxFloor separates the flux density from small leading numerics.
type Thresholds struct {
	UVMinColumn int
	UVMaxColumn int
	FluxFloor   float64
}

// DefaultThresholds returns the column offsets and flux floor observed in
// the published list.
func DefaultThresholds() Thresholds {
	return Thresholds{UVMinColumn: 35, UVMaxColumn: 46, FluxFloor: 0.05}
}

const (
	// A usable band row has at least a band label, five configuration
	// codes, and a flux density.
	minBandTokens = 7
	// Band code plus the A, B, C and D array configuration codes.
	minCodeTokens = 5
)

var (
	// A band row starts with a wavelength label and a single-letter band
	// code, e.g. "20cm    L".
	bandRowPattern = regexp.MustCompile(`^\s*([0-9.]+(?:cm|mm))\s+([A-Z])\s+`)
	// An unsigned decimal token.
	decimalPattern = regexp.MustCompile(`^\d*\.?\d+$`)
	// Trailing "visplot" link text left over from sanitizing.
	visplotPattern = regexp.MustCompile(`\s+visplot\s*$`)
)

// isBandRow reports whether a sanitized line looks like a band observation.
func isBandRow(line string) bool {
	return bandRowPattern.MatchString(line)
}

// parseBandRow extracts one band observation from a sanitized line. It
// returns false when the row is malformed; the reason is recorded against
// the given block.
func (p *Parser) parseBandRow(block int, line string, th Thresholds) (calibrator.Band, bool) {
	stripped := strings.TrimSpace(visplotPattern.ReplaceAllString(line, ""))
	tokens := strings.Fields(stripped)
	if len(tokens) < minBandTokens {
		p.rec.Warn(diag.StageBand, block, line,
			fmt.Sprintf("band row has %d tokens, need at least %d", len(tokens), minBandTokens))
		return calibrator.Band{}, false
	}

	// The flux density is the first numeric token above the floor; smaller
	// numerics before it belong to other columns.
	fluxIdx := -1
	for i := 1; i < len(tokens); i++ {
		if !decimalPattern.MatchString(tokens[i]) {
			continue
		}
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err == nil && v > th.FluxFloor {
			fluxIdx = i
			break
		}
	}
	if fluxIdx < 0 {
		p.rec.Warn(diag.StageBand, block, line, "no flux density token found")
		return calibrator.Band{}, false
	}

	codes := tokens[1:fluxIdx]
	if len(codes) < minCodeTokens {
		p.rec.Warn(diag.StageBand, block, line,
			fmt.Sprintf("band row has %d code tokens before the flux, need at least %d", len(codes), minCodeTokens))
		return calibrator.Band{}, false
	}

	band := calibrator.Band{
		Band:     tokens[0],
		BandCode: codes[0],
		ACode:    codes[1],
		BCode:    codes[2],
		CCode:    codes[3],
		DCode:    codes[4],
		FluxJy:   tokens[fluxIdx],
	}

	// Numeric tokens after the flux are UV-distance candidates. Each is
	// located by its first occurrence past the flux in the original line so
	// the character-offset rule can classify it; a value that repeats in
	// both UV columns resolves both candidates to the first occurrence.
	searchStart := strings.Index(line, band.FluxJy) + len(band.FluxJy)
	type uvCandidate struct {
		value string
		pos   int
	}
	var candidates []uvCandidate
	for i := fluxIdx + 1; i < len(tokens); i++ {
		if !decimalPattern.MatchString(tokens[i]) {
			continue
		}
		pos := -1
		if rel := strings.Index(line[searchStart:], tokens[i]); rel >= 0 {
			pos = searchStart + rel
		}
		candidates = append(candidates, uvCandidate{value: tokens[i], pos: pos})
	}

	for _, cand := range candidates {
		switch {
		case cand.pos < 0:
			// Left for the fallback below.
		case cand.pos >= th.UVMaxColumn:
			if band.UVMaxKLambda == "" {
				band.UVMaxKLambda = cand.value
			}
		case cand.pos >= th.UVMinColumn:
			if band.UVMinKLambda == "" {
				band.UVMinKLambda = cand.value
			}
		default:
			p.rec.Warn(diag.StageBand, block, line,
				fmt.Sprintf("numeric token %q at offset %d is left of the UV columns, discarded", cand.value, cand.pos))
		}
	}

	// A candidate that could not be located at all carries no offset to
	// classify by. If no UV value was placed, treat the first such
	// candidate as the UV-max, which is the more commonly present column.
	if band.UVMinKLambda == "" && band.UVMaxKLambda == "" {
		for _, cand := range candidates {
			if cand.pos < 0 {
				band.UVMaxKLambda = cand.value
				p.rec.Warn(diag.StageBand, block, line,
					fmt.Sprintf("UV token %q could not be located by offset, assuming UV-max", cand.value))
				break
			}
		}
	}

	return band, true
}
