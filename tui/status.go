package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/frogquest/engine"
	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
)

const meterCells = 10

var titleCaser = cases.Title(language.English)

// snapshot is the part of the session the view renders. It is copied out
// of the engine after each step so View never reads engine state while a
// step is running.
type snapshot struct {
	frog       *types.Frog
	adventures int
	mode       types.Mode
	prompt     string
}

func takeSnapshot(eng *engine.Engine) snapshot {
	s := snapshot{
		adventures: eng.State.Adventures,
		mode:       eng.State.Mode,
		prompt:     eng.Prompt(),
	}
	if f := eng.State.Frog; f != nil {
		c := *f
		c.Items = append([]string(nil), f.Items...)
		s.frog = &c
	}
	return s
}

// displayType title-cases generated species names, which arrive in
// whatever case the model chose.
func displayType(f *types.Frog) string {
	if f.IsCustom() {
		return titleCaser.String(f.Species)
	}
	return f.Archetype.String()
}

// meter draws a fixed-width bar for a 0..100 resource.
func meter(v int) string {
	v = state.Clamp(v)
	filled := (v*meterCells + state.MaxResource/2) / state.MaxResource
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterCells-filled)
	if v < state.TiredBelow {
		return styleMeterLow.Render(bar)
	}
	return styleMeterFull.Render(bar)
}

// renderStatusBar produces a full-width status line showing the frog,
// its resources, mood, items and the adventure count.
func (m Model) renderStatusBar() string {
	f := m.snap.frog
	if f == nil {
		return styleStatusBar.Width(m.width).Render(" 🐸 waiting for an egg to hatch...")
	}

	left := fmt.Sprintf(" %s the %s %s", f.Name, displayType(f), state.Mood(f))
	stats := fmt.Sprintf("E %s %3d  H %s %3d", meter(f.Energy), f.Energy, meter(f.Happiness), f.Happiness)
	right := fmt.Sprintf("Adv:%d ", m.snap.adventures)

	if n := len(f.Items); n > 0 {
		candidate := fmt.Sprintf("Items: %s | Adv:%d ", strings.Join(f.Items, " "), m.snap.adventures)
		if lipgloss.Width(left)+lipgloss.Width(stats)+lipgloss.Width(candidate)+4 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Items: %d | Adv:%d ", n, m.snap.adventures)
		}
	}

	middle := "  " + stats + "  "
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + middle + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
