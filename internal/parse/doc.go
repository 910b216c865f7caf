// Package parse implements the text-to-record extraction pipeline for the
// NRAO VLA calibrator list.
//
// The list is published as fixed-width plain-text tables inside preformatted
// HTML regions. Each calibrator occupies one block: a J2000 position header,
// an optional B1950 header, and a variable number of band observation rows
// whose numeric UV columns are right-aligned at approximate character
// offsets. SegmentBlocks groups raw lines into J2000-anchored blocks and
// CleanLine strips markdown links and URLs from each line before matching.
// Parser then turns one block into a calibrator record, matching headers by
// pattern and band rows by a token and column hybrid that classifies UV
// values by character offset.
//
// Failures are isolated: a band row that cannot be parsed or a block without
// a usable J2000 header is skipped and recorded on the diag.Recorder instead
// of aborting the run.
package parse
