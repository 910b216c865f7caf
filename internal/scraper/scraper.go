package scraper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/diag"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/parse"
	"github.com/cenkalti/backoff/v4"
)

const (
	CalibratorListURL = "https://science.nrao.edu/facilities/vla/observing/callist"
	UserAgent         = "vla-calibrators/1.0 (github.com/arpan-52/VLA-Calibrator-Database-Tools)"
	Timeout           = 30 * time.Second

	maxRetries = 3
)

// Scraper handles fetching and parsing the VLA calibrator list
type Scraper struct {
	client     *http.Client
	url        string
	thresholds parse.Thresholds

	// newBackoff builds the retry policy for Fetch. Tests swap it for a
	// zero-wait policy.
	newBackoff func() backoff.BackOff
}

// New creates a new Scraper instance. An empty url selects the published
// calibrator list.
func New(url string, thresholds parse.Thresholds) *Scraper {
	if url == "" {
		url = CalibratorListURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:        url,
		thresholds: thresholds,
		newBackoff: defaultBackoff,
	}
}

func defaultBackoff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
}

// Fetch downloads the calibrator list page and parses every calibrator block
// found in its <pre> regions. Transient HTTP failures (network errors and 5xx
// responses) are retried; any other non-200 status fails immediately.
func (s *Scraper) Fetch(rec *diag.Recorder) (*calibrator.Collection, error) {
	var body []byte
	op := func() error {
		var err error
		body, err = s.get()
		return err
	}
	if err := backoff.Retry(op, s.newBackoff()); err != nil {
		return nil, fmt.Errorf("fetching calibrator list: %w", err)
	}

	return s.Parse(bytes.NewReader(body), rec)
}

func (s *Scraper) get() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, s.url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// Parse extracts calibrator records from an HTML document. Only text inside
// <pre> elements is scanned. Blocks that fail to parse are recorded on rec and
// skipped; the returned collection holds every block that parsed cleanly.
func (s *Scraper) Parse(r io.Reader, rec *diag.Recorder) (*calibrator.Collection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	col := calibrator.NewCollection()
	parser := parse.NewParser(s.thresholds, rec)

	blockIndex := 0
	doc.Find("pre").Each(func(_ int, sel *goquery.Selection) {
		lines := strings.Split(sel.Text(), "\n")
		for _, block := range parse.SegmentBlocks(lines) {
			blockIndex++
			cal, err := parser.ParseBlock(blockIndex, block)
			if err != nil {
				// Already recorded as a diagnostic; keep going.
				continue
			}
			col.Add(cal)
		}
	})

	if col.Len() == 0 {
		rec.Warn(diag.StageDocument, 0, "", "no calibrator blocks found in any <pre> region")
	}
	return col, nil
}
