// Package effects implements centralized frog mutation via the Apply function.
// Every effect type is one atomic operation. No logic in effects.
package effects

import (
	"strings"

	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
)

// Effect type names.
const (
	Say             = "say"
	AdjustEnergy    = "adjust_energy"
	AdjustHappiness = "adjust_happiness"
	GiveItem        = "give_item"
)

// Event type names.
const (
	EventItemFound    = "item_found"
	EventStatsChanged = "stats_changed"
)

// SayText builds a say effect.
func SayText(text string) types.Effect {
	return types.Effect{Type: Say, Params: map[string]any{"text": text}}
}

// Energy builds an energy adjustment effect.
func Energy(amount int) types.Effect {
	return types.Effect{Type: AdjustEnergy, Params: map[string]any{"amount": amount}}
}

// Happiness builds a happiness adjustment effect.
func Happiness(amount int) types.Effect {
	return types.Effect{Type: AdjustHappiness, Params: map[string]any{"amount": amount}}
}

// Item builds an item grant effect.
func Item(item string) types.Effect {
	return types.Effect{Type: GiveItem, Params: map[string]any{"item": item}}
}

// Apply applies a list of effects to the frog, mutating it. Energy and
// happiness are clamped after every adjustment. Returns events emitted and
// output text collected.
func Apply(f *types.Frog, effects []types.Effect) ([]types.Event, []string) {
	var events []types.Event
	var output []string

	for _, eff := range effects {
		switch eff.Type {
		case Say:
			text, _ := eff.Params["text"].(string)
			output = append(output, interpolate(text, f))

		case AdjustEnergy:
			before := f.Energy
			state.AdjustEnergy(f, toInt(eff.Params["amount"]))
			events = append(events, types.Event{
				Type: EventStatsChanged,
				Data: map[string]any{"stat": "energy", "from": before, "to": f.Energy},
			})

		case AdjustHappiness:
			before := f.Happiness
			state.AdjustHappiness(f, toInt(eff.Params["amount"]))
			events = append(events, types.Event{
				Type: EventStatsChanged,
				Data: map[string]any{"stat": "happiness", "from": before, "to": f.Happiness},
			})

		case GiveItem:
			item, _ := eff.Params["item"].(string)
			if item == "" {
				continue
			}
			state.AddItem(f, item)
			events = append(events, types.Event{
				Type: EventItemFound,
				Data: map[string]any{"item": item},
			})
		}
	}

	return events, output
}

// interpolate replaces {name}, {ability} and {type} with the frog's values.
func interpolate(text string, f *types.Frog) string {
	if !strings.Contains(text, "{") {
		return text
	}
	r := strings.NewReplacer(
		"{name}", f.Name,
		"{ability}", f.Ability,
		"{type}", f.DisplayType(),
	)
	return r.Replace(text)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}
