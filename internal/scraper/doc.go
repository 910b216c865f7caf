// Package scraper provides HTTP fetching and HTML parsing for the VLA calibrator list.
//
// The scraper package fetches the public calibrator list page from science.nrao.edu
// and extracts calibrator records from the fixed-width tables embedded in its <pre>
// regions. Transient HTTP failures are retried with exponential backoff; parse
// problems inside individual calibrator blocks are recorded as diagnostics and never
// abort the run.
package scraper
