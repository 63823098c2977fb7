package cli

import (
	"fmt"
	"strings"

	"github.com/nathoo/frogquest/engine"
)

// MetaResult is the outcome of a slash command.
type MetaResult struct {
	Lines       []string
	Notice      bool // Lines are short system notices rather than content
	ToggleTrace bool
	Quit        bool
}

// Meta runs a slash command against the engine. The front end owns the
// trace flag and applies ToggleTrace itself.
func Meta(eng *engine.Engine, input string) MetaResult {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return MetaResult{}
	}

	switch fields[0] {
	case "/quit", "/exit":
		return MetaResult{Lines: []string{"Goodbye."}, Notice: true, Quit: true}

	case "/help":
		return MetaResult{Lines: helpLines}

	case "/status", "/state":
		lines := eng.Status()
		lines = append(lines, fmt.Sprintf("Seed %d, RNG position %d", eng.State.RNGSeed, eng.RNG.Position()))
		return MetaResult{Lines: lines}

	case "/journal":
		return MetaResult{Lines: eng.Journal.Format()}

	case "/save":
		return MetaResult{Lines: eng.Save().Output}

	case "/trace":
		return MetaResult{ToggleTrace: true, Notice: true}

	default:
		return MetaResult{
			Lines:  []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", fields[0])},
			Notice: true,
		}
	}
}

// TraceNotice is the message shown after toggling trace output.
func TraceNotice(on bool) string {
	if on {
		return "Trace output enabled."
	}
	return "Trace output disabled."
}

var helpLines = []string{
	"System:",
	"  /status   - Show your frog",
	"  /journal  - Show this session's adventure journal",
	"  /save     - Save now",
	"  /trace    - Toggle debug trace output",
	"  /quit     - Exit without the save prompt",
	"  /help     - Show this help",
	"",
	"Menu:",
	"  1 adventure  - Go on an adventure (needs energy 20+)",
	"  2 rest       - Restore 30 energy",
	"  3 feed       - Add 20 happiness",
	"  4 save       - Save your frog",
	"  5 switch     - Hatch a different frog (keeps your adventure count)",
	"  6 exit       - Leave the pond",
	"  again (g)    - Repeat your last command",
}
