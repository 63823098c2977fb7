// Package scenario holds the outcome handlers that scenario choices are
// bound to, and picks and resolves scenarios against a frog.
package scenario

import (
	"errors"
	"fmt"

	"github.com/nathoo/frogquest/engine/effects"
	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
)

// ErrUnknownChoice is returned when a label is not one of the scenario's choices.
var ErrUnknownChoice = errors.New("unknown choice")

// Rand is the random source handlers draw from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Handler produces the effects of a choice. Handlers never mutate the frog
// directly; effects.Apply does.
type Handler func(f *types.Frog, r Rand) []types.Effect

// Success probabilities.
const (
	PondDiveChance     = 0.5
	AbilityBonusChance = 0.7
	StreamSearchChance = 0.6
	TempleScrollChance = 0.5
)

// Item labels.
const (
	ItemGlowingPearl  = "✨ Glowing Pearl"
	ItemHeroMedal     = "🏅 Hero Medal"
	ItemAncientScroll = "📜 Ancient Scroll"
	ItemHistory       = "📖 History Knowledge"
	ItemStrengthBadge = "🦸 Strength Champion Badge"
)

// AbilityRewards is the pool the ability bonus item is drawn from.
var AbilityRewards = []string{
	"🌺 Rare Flower",
	"🍄 Magic Mushroom",
	"💎 Tiny Crystal",
	"🌟 Stardust",
}

var areaFindings = []string{
	"You find ancient frog footprints leading somewhere interesting...",
	"A friendly beetle shares local wisdom with you!",
	"You discover a hidden cache of tasty flies!",
}

var handlers = map[string]Handler{
	"pond_dive":         pondDive,
	"use_ability":       useAbility,
	"investigate_area":  investigateArea,
	"search_stream":     searchStream,
	"comfort_tadpole":   comfortTadpole,
	"enter_temple":      enterTemple,
	"study_hieroglyphs": studyHieroglyphs,
	"move_tree":         moveTree,
	"find_route":        findRoute,
}

// Lookup returns the handler registered under name.
func Lookup(name string) (Handler, bool) {
	h, ok := handlers[name]
	return h, ok
}

// chance draws once and reports whether the draw landed in the success band.
func chance(r Rand, p float64) bool {
	return r.Float64() <= p
}

// Pick selects a scenario uniformly at random. Scenarios never retire.
func Pick(defs *state.Defs, r Rand) *types.ScenarioDef {
	if len(defs.Scenarios) == 0 {
		return nil
	}
	sc := defs.Scenarios[r.Intn(len(defs.Scenarios))]
	return &sc
}

// Intro returns the lines that present a scenario and its choices.
func Intro(sc *types.ScenarioDef) []string {
	lines := []string{
		fmt.Sprintf("✨ %s ✨", sc.Title),
		"",
		sc.Description,
		"",
		"What do you do?",
	}
	for _, c := range sc.Choices {
		lines = append(lines, fmt.Sprintf("%s. %s", c.Label, c.Text))
	}
	return lines
}

// Resolve runs the handler bound to label and applies its effects to the
// frog. An unknown label returns ErrUnknownChoice and leaves the frog as is.
func Resolve(sc *types.ScenarioDef, label string, f *types.Frog, r Rand) (types.Result, error) {
	var result types.Result

	choice, ok := state.FindChoice(sc, label)
	if !ok {
		return result, fmt.Errorf("%w %q for %s", ErrUnknownChoice, label, sc.ID)
	}
	h, ok := Lookup(choice.Handler)
	if !ok {
		return result, fmt.Errorf("no handler %q for choice %s of %s", choice.Handler, label, sc.ID)
	}

	effs := h(f, r)
	evts, output := effects.Apply(f, effs)
	result.Effects = effs
	result.Events = evts
	result.Output = output
	return result, nil
}
