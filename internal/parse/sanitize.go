package parse

import (
	"regexp"
	"strings"
)

var (
	// [label](target) markdown links left behind by HTML-to-text conversion.
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	// A parenthesized URL, e.g. "(https://example.org/plot)".
	parenURLPattern = regexp.MustCompile(`\([^\s)]+://[^\s)]+\)`)
	// A bare URL with any scheme.
	bareURLPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.-]*://\S+`)
)

// CleanLine strips markup artifacts from one raw table line: markdown links
// are unwrapped to their label, parenthesized and bare URLs are removed, and
// the result is trimmed of surrounding whitespace. The order matters: a URL
// revealed by unwrapping a markdown link is removed in the same pass, which
// keeps CleanLine idempotent.
func CleanLine(line string) string {
	line = markdownLinkPattern.ReplaceAllString(line, "$1")
	line = parenURLPattern.ReplaceAllString(line, "")
	line = bareURLPattern.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}
