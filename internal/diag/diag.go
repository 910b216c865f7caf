// Package diag collects leveled diagnostics from the extraction pipeline.
//
// The scraper isolates parse failures at block and line granularity: a bad
// line or block is skipped and the run continues. Instead of printing those
// failures inline, the pipeline records them on a Recorder keyed by block
// ordinal and offending line, so callers decide how to surface them and
// tests can assert on them directly.
package diag

import "fmt"

// Level is the severity of a diagnostic event.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Pipeline stages that emit diagnostics.
const (
	StageDocument = "document"
	StageBlock    = "block"
	StageHeader   = "header"
	StageBand     = "band"
)

// Event is one recorded diagnostic. Block is the 1-based ordinal of the
// calibrator block within the scraped document, or 0 when the event is not
// block-scoped. Line holds the offending line content when line-scoped.
type Event struct {
	Level   Level
	Stage   string
	Block   int
	Line    string
	Message string
}

// String renders the event for log output.
func (e Event) String() string {
	s := fmt.Sprintf("%s %s", e.Level, e.Stage)
	if e.Block > 0 {
		s = fmt.Sprintf("%s block %d", s, e.Block)
	}
	s += ": " + e.Message
	if e.Line != "" {
		s = fmt.Sprintf("%s: %q", s, e.Line)
	}
	return s
}

// Recorder accumulates events in the order they were produced. A nil
// Recorder is valid and discards everything, so pipeline code never has to
// guard its recording calls.
type Recorder struct {
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{events: make([]Event, 0)}
}

// Record appends an event. No-op on a nil receiver.
func (r *Recorder) Record(level Level, stage string, block int, line, message string) {
	if r == nil {
		return
	}
	r.events = append(r.events, Event{
		Level:   level,
		Stage:   stage,
		Block:   block,
		Line:    line,
		Message: message,
	})
}

// Info records an informational event.
func (r *Recorder) Info(stage string, block int, line, message string) {
	r.Record(LevelInfo, stage, block, line, message)
}

// Warn records a recovered failure (a skipped line, a discarded token).
func (r *Recorder) Warn(stage string, block int, line, message string) {
	r.Record(LevelWarn, stage, block, line, message)
}

// Error records a block-level failure (the whole block was skipped).
func (r *Recorder) Error(stage string, block int, line, message string) {
	r.Record(LevelError, stage, block, line, message)
}

// Events returns a copy of the recorded events in order.
func (r *Recorder) Events() []Event {
	if r == nil {
		return nil
	}
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.events)
}

// Count returns the number of events at the given level.
func (r *Recorder) Count(level Level) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, e := range r.events {
		if e.Level == level {
			n++
		}
	}
	return n
}
