// Package types defines the shared data structures for the frog adventure engine.
// This package contains only type definitions and their trivial accessors.
package types

// Archetype is the kind of frog. The six catalog archetypes carry fixed
// ability and description text; Custom frogs carry their own.
type Archetype int

const (
	TreeFrog Archetype = iota
	PoisonDartFrog
	Bullfrog
	GlassFrog
	RocketFrog
	RainFrog
	Custom
)

// CatalogArchetypes lists the archetypes the catalog generator may pick.
var CatalogArchetypes = []Archetype{
	TreeFrog, PoisonDartFrog, Bullfrog, GlassFrog, RocketFrog, RainFrog,
}

var archetypeNames = map[Archetype]string{
	TreeFrog:       "Tree Frog",
	PoisonDartFrog: "Poison Dart Frog",
	Bullfrog:       "Bullfrog",
	GlassFrog:      "Glass Frog",
	RocketFrog:     "Rocket Frog",
	RainFrog:       "Rain Frog",
	Custom:         "Custom",
}

// String returns the stable display name. It is also the save file tag.
func (a Archetype) String() string {
	if s, ok := archetypeNames[a]; ok {
		return s
	}
	return "Unknown"
}

// ParseArchetype maps a display name back to its archetype.
func ParseArchetype(s string) (Archetype, bool) {
	for a, name := range archetypeNames {
		if name == s {
			return a, true
		}
	}
	return 0, false
}

// Frog is the player's creature.
type Frog struct {
	Name        string
	Archetype   Archetype
	Ability     string
	Description string
	Energy      int
	Happiness   int
	Items       []string // acquisition order, duplicates allowed

	// Only populated for Custom frogs.
	Species     string
	Personality string
	Backstory   string
}

// IsCustom reports whether the frog came from the generative path.
func (f *Frog) IsCustom() bool {
	return f.Archetype == Custom
}

// DisplayType is the species for custom frogs, the archetype name otherwise.
func (f *Frog) DisplayType() string {
	if f.IsCustom() {
		return f.Species
	}
	return f.Archetype.String()
}

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title string
	Intro string
}

// ChoiceDef is one labeled option within a scenario.
type ChoiceDef struct {
	Label   string // what the player types, e.g. "1"
	Text    string
	Handler string // registered outcome handler name
}

// ScenarioDef is one narrative encounter.
type ScenarioDef struct {
	ID          string
	Title       string
	Description string
	Choices     []ChoiceDef
}

// Effect is a single atomic state mutation instruction.
type Effect struct {
	Type   string
	Params map[string]any
}

// Event is emitted after effects are applied.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single step.
type Result struct {
	Effects []Effect
	Events  []Event
	Output  []string
	Quit    bool
}

// Intent is the parsed representation of a menu or prompt answer.
type Intent struct {
	Verb   string
	Object string // the raw answer, for scenario choice labels
}

// Mode is where the session controller is in its turn cycle.
type Mode int

const (
	ModeStart Mode = iota
	ModeResume
	ModeIdle
	ModeScenario
	ModeConfirmExit
	ModeDone
)

// State is the explicit session context: the current frog, the progress
// counter and the controller's position in the turn cycle.
type State struct {
	Frog       *Frog // nil before a frog has been hatched
	Adventures int
	Mode       Mode
	Scenario   *ScenarioDef // pending scenario while Mode == ModeScenario
	RNGSeed    int64
}
