// Package diag collects non-fatal diagnostics emitted by pipeline stages.
//
// Stages never log directly. They emit a [Diagnostic] into the [Sink] they
// were given; the CLI renders the collected diagnostics at the end of a run
// and the report includes them.
package diag

import (
	"fmt"
	"sort"
	"sync"
)

// Severity orders diagnostics by importance.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText renders the severity by name in JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Stage names used in diagnostics.
const (
	StageConfig  = "config"
	StageScan    = "scan"
	StageParse   = "parse"
	StageFilter  = "filter"
	StageResolve = "resolve"
	StagePatch   = "patch"
)

// Diagnostic is one non-fatal event.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Stage    string   `json:"stage" yaml:"stage"`
	Subject  string   `json:"subject,omitempty" yaml:"subject,omitempty"` // file path, import or package name
	Message  string   `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	if d.Subject == "" {
		return fmt.Sprintf("[%s] %s", d.Stage, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Stage, d.Subject, d.Message)
}

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(Diagnostic)
}

// Discard drops every diagnostic.
type Discard struct{}

func (Discard) Emit(Diagnostic) {}

// Collector stores diagnostics in memory.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Emit records d.
func (c *Collector) Emit(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// All returns the recorded diagnostics ordered by stage of arrival, then
// subject, so concurrent emitters still produce a stable report.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	out := append([]Diagnostic(nil), c.items...)
	c.mu.Unlock()

	rank := map[string]int{StageConfig: 0, StageScan: 1, StageParse: 2, StageFilter: 3, StageResolve: 4, StagePatch: 5}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank[out[i].Stage], rank[out[j].Stage]
		if ri != rj {
			return ri < rj
		}
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// Count returns how many diagnostics have at least severity floor.
func (c *Collector) Count(floor Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.items {
		if d.Severity >= floor {
			n++
		}
	}
	return n
}

// Emitf is a convenience for building and emitting a diagnostic.
// A nil sink discards.
func Emitf(s Sink, sev Severity, stage, subject, format string, args ...any) {
	if s == nil {
		return
	}
	s.Emit(Diagnostic{Severity: sev, Stage: stage, Subject: subject, Message: fmt.Sprintf(format, args...)})
}
