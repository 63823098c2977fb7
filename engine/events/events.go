// Package events keeps the adventure journal: a per-session record of
// completed scenarios and maintenance actions built from emitted events.
// The journal is not persisted.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nathoo/frogquest/engine/effects"
	"github.com/nathoo/frogquest/types"
)

// Entry kinds.
const (
	KindScenario = "scenario"
	KindAction   = "action"
	KindHatch    = "hatch"
)

// Entry is one journal line group.
type Entry struct {
	Kind   string
	Frog   string
	Title  string // scenario title or action name
	Choice string // choice text, scenario entries only
	Lines  []string
	Items  []string
	At     time.Time
}

// Log is the journal for one session.
type Log struct {
	SessionID uuid.UUID
	entries   []Entry
	now       func() time.Time
}

// NewLog starts a journal with a fresh session id.
func NewLog() *Log {
	return &Log{SessionID: uuid.New(), now: time.Now}
}

// Record appends an entry, stamping it if At is zero.
func (l *Log) Record(e Entry) {
	if e.At.IsZero() {
		e.At = l.now()
	}
	l.entries = append(l.entries, e)
}

// Entries returns the recorded entries in order.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Len is the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Scenarios counts completed scenario entries.
func (l *Log) Scenarios() int {
	n := 0
	for _, e := range l.entries {
		if e.Kind == KindScenario {
			n++
		}
	}
	return n
}

// ItemsFound extracts item names from item_found events, in emission order.
// Single pass, other event types are ignored.
func ItemsFound(evts []types.Event) []string {
	var items []string
	for _, ev := range evts {
		if ev.Type != effects.EventItemFound {
			continue
		}
		if item, ok := ev.Data["item"].(string); ok {
			items = append(items, item)
		}
	}
	return items
}

// Format renders the journal for display.
func (l *Log) Format() []string {
	if len(l.entries) == 0 {
		return []string{"The journal is empty."}
	}

	lines := []string{fmt.Sprintf("Journal %s", l.SessionID.String()[:8])}
	for i, e := range l.entries {
		stamp := e.At.Format("15:04:05")
		switch e.Kind {
		case KindScenario:
			lines = append(lines, fmt.Sprintf("%d. [%s] %s: %s - %s", i+1, stamp, e.Frog, e.Title, e.Choice))
		default:
			lines = append(lines, fmt.Sprintf("%d. [%s] %s: %s", i+1, stamp, e.Frog, e.Title))
		}
		for _, ln := range e.Lines {
			if ln == "" {
				continue
			}
			lines = append(lines, "     "+ln)
		}
		for _, item := range e.Items {
			lines = append(lines, "     + "+item)
		}
	}
	return lines
}

// FormatTrace lists the effects and events of one step for debug output.
func FormatTrace(effs []types.Effect, evts []types.Event) []string {
	var lines []string
	if len(effs) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] effects=%d", len(effs)))
		for _, e := range effs {
			lines = append(lines, fmt.Sprintf("[trace]   %-16s %v", e.Type, e.Params))
		}
	}
	if len(evts) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] events=%d", len(evts)))
		for _, ev := range evts {
			lines = append(lines, fmt.Sprintf("[trace]   %-16s %v", ev.Type, ev.Data))
		}
	}
	return lines
}
