package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
)

// Status describes the current frog and progress.
func (e *Engine) Status() []string {
	f := e.State.Frog
	if f == nil {
		return []string{"No frog yet."}
	}

	lines := []string{
		fmt.Sprintf("🐸 %s the %s %s", f.Name, f.DisplayType(), state.Mood(f)),
		"   " + f.Description,
		"   Ability: " + f.Ability,
		fmt.Sprintf("   Energy: %d/%d   Happiness: %d/%d", f.Energy, state.MaxResource, f.Happiness, state.MaxResource),
	}
	if f.IsCustom() && f.Personality != "" {
		lines = append(lines, "   Personality: "+f.Personality)
	}
	if len(f.Items) == 0 {
		lines = append(lines, "   Items: none yet")
	} else {
		lines = append(lines, "   Items: "+strings.Join(f.Items, ", "))
	}
	lines = append(lines, fmt.Sprintf("   Adventures completed: %d", e.State.Adventures))
	if state.Tired(f) {
		lines = append(lines, "   "+f.Name+" looks exhausted.")
	}
	return lines
}

// Menu lists the idle actions.
func Menu() []string {
	return []string{
		"1. Go on an adventure",
		"2. Rest",
		"3. Feed",
		"4. Save game",
		"5. Switch frog",
		"6. Exit",
	}
}

// Prompt returns the question the session is waiting on.
func (e *Engine) Prompt() string {
	switch e.State.Mode {
	case types.ModeResume:
		return "Continue (1) or start new (2)?"
	case types.ModeIdle:
		return "What would you like to do? (1-6)"
	case types.ModeScenario:
		if sc := e.State.Scenario; sc != nil {
			return fmt.Sprintf("Choose (%s):", labels(sc))
		}
		return "Choose:"
	case types.ModeConfirmExit:
		return "Save before exiting? (y/n)"
	case types.ModeDone:
		return ""
	default:
		return "Press enter to begin."
	}
}
