package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("22")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleMenu = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleGood = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleMeterFull = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	styleMeterLow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHeading
	kindMenu
	kindGood
	kindWarning
	kindSystem
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "✨ ") && strings.HasSuffix(line, " ✨"),
		strings.HasPrefix(line, "Meet "):
		return kindHeading
	case isMenuLine(line):
		return kindMenu
	case strings.HasPrefix(line, "🏁"),
		strings.HasPrefix(line, "💾"),
		strings.HasPrefix(line, "+ "):
		return kindGood
	case strings.Contains(line, "too tired"),
		strings.HasPrefix(line, "Save failed"),
		strings.HasPrefix(line, "Invalid choice"),
		strings.HasPrefix(line, "Please "):
		return kindWarning
	default:
		return kindNarrative
	}
}

// isMenuLine matches numbered options like "2. Rest".
func isMenuLine(line string) bool {
	i := strings.Index(line, ". ")
	if i <= 0 || i > 2 {
		return false
	}
	for _, r := range line[:i] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindMenu:
		return styleMenu.Render(line)
	case kindGood:
		return styleGood.Render(line)
	case kindWarning:
		return styleWarning.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
