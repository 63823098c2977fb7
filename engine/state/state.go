// Package state manages the session state and the immutable content
// definitions it is played against.
package state

import "github.com/nathoo/frogquest/types"

// Resource bounds shared by energy and happiness.
const (
	MinResource = 0
	MaxResource = 100

	DefaultEnergy    = 100
	DefaultHappiness = 50

	// TiredBelow is the energy level under which a frog cannot adventure.
	TiredBelow = 20
)

// Defs holds the immutable content loaded from Lua.
type Defs struct {
	Game      types.GameDef
	Names     []string
	Scenarios []types.ScenarioDef
}

// NewState creates an empty session with no frog.
func NewState(seed int64) *types.State {
	return &types.State{
		Mode:    types.ModeStart,
		RNGSeed: seed,
	}
}

// Clamp bounds v to [MinResource, MaxResource].
func Clamp(v int) int {
	if v < MinResource {
		return MinResource
	}
	if v > MaxResource {
		return MaxResource
	}
	return v
}

// AdjustEnergy adds delta to the frog's energy and clamps the result.
func AdjustEnergy(f *types.Frog, delta int) {
	f.Energy = Clamp(f.Energy + delta)
}

// AdjustHappiness adds delta to the frog's happiness and clamps the result.
func AdjustHappiness(f *types.Frog, delta int) {
	f.Happiness = Clamp(f.Happiness + delta)
}

// AddItem appends an item. Duplicates are kept.
func AddItem(f *types.Frog, item string) {
	f.Items = append(f.Items, item)
}

// Tired reports whether the frog is too tired to adventure.
func Tired(f *types.Frog) bool {
	return f.Energy < TiredBelow
}

// Happy reports whether the frog is in high spirits.
func Happy(f *types.Frog) bool {
	return f.Happiness > 70
}

// Sad reports whether the frog is feeling low.
func Sad(f *types.Frog) bool {
	return f.Happiness < 30
}

// Mood returns a face for the frog's happiness.
func Mood(f *types.Frog) string {
	switch {
	case Happy(f):
		return "😊"
	case Sad(f):
		return "😔"
	default:
		return "🙂"
	}
}

// FindChoice returns the choice with the given label, if any.
func FindChoice(sc *types.ScenarioDef, label string) (types.ChoiceDef, bool) {
	for _, c := range sc.Choices {
		if c.Label == label {
			return c, true
		}
	}
	return types.ChoiceDef{}, false
}
