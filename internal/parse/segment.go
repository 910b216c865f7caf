package parse

import "strings"

// blockMarker anchors the start of a calibrator block. Every block's first
// line is the J2000 position header, which always carries this equinox tag.
const blockMarker = "J2000"

// SegmentBlocks groups the raw lines of one preformatted region into
// calibrator blocks. A line containing the J2000 marker starts a new block;
// if a block is already open its buffered lines are discarded, so a header
// with no complete body never produces a partial record. An open block is
// closed when the line just appended is the last line of input or the next
// line is blank; the terminating blank line is not part of the block. Lines
// before the first marker and between blocks are ignored.
func SegmentBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string
	inBlock := false

	for i, line := range lines {
		if strings.Contains(line, blockMarker) {
			current = []string{line}
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		current = append(current, line)
		if i+1 == len(lines) || strings.TrimSpace(lines[i+1]) == "" {
			blocks = append(blocks, current)
			current = nil
			inBlock = false
		}
	}
	// A marker on the final line of input never reaches the close check.
	if inBlock && len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}
