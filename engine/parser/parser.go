// Package parser converts menu and prompt answers into Intent structs.
// Intentionally dumb: no NLP, just lookup tables keyed by the prompt being answered.
package parser

import (
	"strings"

	"github.com/nathoo/frogquest/types"
)

// Verbs produced by Parse.
const (
	VerbAdventure = "adventure"
	VerbRest      = "rest"
	VerbFeed      = "feed"
	VerbSave      = "save"
	VerbSwitch    = "switch"
	VerbExit      = "exit"
	VerbContinue  = "continue"
	VerbNew       = "new"
	VerbYes       = "yes"
	VerbNo        = "no"
	VerbChoose    = "choose"
)

var menuAliases = map[string]string{
	"1":         VerbAdventure,
	"adventure": VerbAdventure,
	"adv":       VerbAdventure,
	"a":         VerbAdventure,
	"explore":   VerbAdventure,
	"go":        VerbAdventure,

	"2":     VerbRest,
	"rest":  VerbRest,
	"r":     VerbRest,
	"sleep": VerbRest,
	"nap":   VerbRest,

	"3":    VerbFeed,
	"feed": VerbFeed,
	"f":    VerbFeed,
	"eat":  VerbFeed,

	"4":    VerbSave,
	"save": VerbSave,
	"s":    VerbSave,

	"5":      VerbSwitch,
	"switch": VerbSwitch,
	"new":    VerbSwitch,

	"6":    VerbExit,
	"exit": VerbExit,
	"quit": VerbExit,
	"q":    VerbExit,
	"bye":  VerbExit,
}

var resumeAliases = map[string]string{
	"1":        VerbContinue,
	"continue": VerbContinue,
	"c":        VerbContinue,
	"load":     VerbContinue,
	"resume":   VerbContinue,

	"2":       VerbNew,
	"new":     VerbNew,
	"n":       VerbNew,
	"restart": VerbNew,
	"start":   VerbNew,
}

var confirmAliases = map[string]string{
	"y":   VerbYes,
	"yes": VerbYes,
	"n":   VerbNo,
	"no":  VerbNo,
}

// Multi-word phrases collapsed to a single menu word before lookup.
var menuPhrases = map[string]string{
	"go on adventure":    "adventure",
	"go on an adventure": "adventure",
	"take nap":           "nap",
	"take a nap":         "nap",
	"switch frog":        "switch",
	"new frog":           "switch",
	"save game":          "save",
	"feed frog":          "feed",
}

// Parse converts a raw answer into an Intent for the prompt shown in mode.
// Unrecognized answers produce an Intent with an empty Verb. In scenario
// mode every non-empty answer becomes a choose intent carrying the raw label.
func Parse(mode types.Mode, input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	if mode == types.ModeScenario {
		return types.Intent{Verb: VerbChoose, Object: input}
	}

	key := normalize(input)

	var table map[string]string
	switch mode {
	case types.ModeIdle:
		table = menuAliases
		if phrase, ok := menuPhrases[key]; ok {
			key = phrase
		}
	case types.ModeResume:
		table = resumeAliases
	case types.ModeConfirmExit:
		table = confirmAliases
	default:
		return types.Intent{Object: input}
	}

	return types.Intent{Verb: table[key], Object: input}
}

// normalize lowercases, collapses whitespace and strips a trailing period
// so "1." and "  Rest " match their table entries.
func normalize(s string) string {
	words := strings.Fields(strings.ToLower(s))
	out := strings.Join(words, " ")
	return strings.TrimSuffix(out, ".")
}
