package loader

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nathoo/frogquest/engine/scenario"
	"github.com/nathoo/frogquest/engine/state"
)

// Choice count bounds per scenario.
const (
	minChoices = 2
	maxChoices = 3
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for consistency and that every choice
// is bound to a registered outcome handler.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}

	if len(defs.Names) == 0 {
		ve.Errors = append(ve.Errors, "at least one name is required")
	}
	seenNames := map[string]bool{}
	for _, n := range defs.Names {
		if strings.TrimSpace(n) == "" {
			ve.Errors = append(ve.Errors, "names must not be empty")
			continue
		}
		if seenNames[n] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("duplicate name %q", n))
		}
		seenNames[n] = true
	}

	if len(defs.Scenarios) == 0 {
		ve.Errors = append(ve.Errors, "at least one scenario is required")
	}

	scenarioIDs := map[string]bool{}
	for _, sc := range defs.Scenarios {
		if scenarioIDs[sc.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate scenario ID %q", sc.ID))
		}
		scenarioIDs[sc.ID] = true

		if sc.Title == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("scenario %q has no title", sc.ID))
		}
		if sc.Description == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("scenario %q has no description", sc.ID))
		}
		if n := len(sc.Choices); n < minChoices || n > maxChoices {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"scenario %q has %d choices, want %d-%d", sc.ID, n, minChoices, maxChoices))
		}

		labels := map[string]bool{}
		for _, c := range sc.Choices {
			if c.Label == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf("scenario %q has a choice without a label", sc.ID))
			} else if labels[c.Label] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"scenario %q has duplicate choice label %q", sc.ID, c.Label))
			}
			labels[c.Label] = true

			if _, ok := scenario.Lookup(c.Handler); !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"scenario %q choice %q uses unknown handler %q", sc.ID, c.Label, c.Handler))
			}
		}
	}

	for _, w := range ve.Warnings {
		slog.Warn("content warning", "warning", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
