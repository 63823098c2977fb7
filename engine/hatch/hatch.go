// Package hatch produces new frogs, either from the built-in archetype
// catalog or from a generative Source.
package hatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
)

// ErrInvalidPayload is wrapped by FromPayload for any rejected payload.
var ErrInvalidPayload = errors.New("invalid frog payload")

// Rand is the randomness the catalog generator needs.
type Rand interface {
	Intn(n int) int
}

// Source produces an untyped JSON description of a frog.
type Source interface {
	Hatch(ctx context.Context) ([]byte, error)
}

type template struct {
	Ability     string
	Description string
}

var catalog = map[types.Archetype]template{
	types.TreeFrog:       {"Climb anywhere", "A nimble green frog with sticky toe pads"},
	types.PoisonDartFrog: {"Intimidate predators", "A brilliantly colored frog that warns danger away"},
	types.Bullfrog:       {"Powerful leap", "A large, strong frog with a booming voice"},
	types.GlassFrog:      {"Near invisibility", "A translucent frog that can hide in plain sight"},
	types.RocketFrog:     {"Super speed", "A tiny frog that moves like lightning"},
	types.RainFrog:       {"Weather prediction", "A round, grumpy-looking frog that senses storms"},
}

const fallbackName = "Frog"

// FromCatalog picks an archetype and a name, independently and uniformly.
func FromCatalog(names []string, r Rand) types.Frog {
	a := types.CatalogArchetypes[r.Intn(len(types.CatalogArchetypes))]
	name := fallbackName
	if len(names) > 0 {
		name = names[r.Intn(len(names))]
	}
	t := catalog[a]
	return newFrog(types.Frog{
		Name:        name,
		Archetype:   a,
		Ability:     t.Ability,
		Description: t.Description,
	})
}

// Payload is the generative description of a frog.
type Payload struct {
	Name               string `json:"name"`
	Species            string `json:"species"`
	Appearance         string `json:"appearance"`
	Personality        string `json:"personality"`
	SpecialAbility     string `json:"special_ability"`
	AbilityDescription string `json:"ability_description"`
	FavoriteFood       string `json:"favorite_food"`
	UniqueTrait        string `json:"unique_trait"`
	Backstory          string `json:"backstory"`
}

// FromPayload converts a generative payload into a custom frog. Every field
// must be present as a non-empty string.
func FromPayload(data []byte) (types.Frog, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.Frog{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var missing []string
	for _, key := range PayloadFields {
		s, ok := raw[key].(string)
		if !ok || strings.TrimSpace(s) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return types.Frog{}, fmt.Errorf("%w: missing or empty %s", ErrInvalidPayload, strings.Join(missing, ", "))
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return types.Frog{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return newFrog(types.Frog{
		Name:        p.Name,
		Archetype:   types.Custom,
		Ability:     p.SpecialAbility,
		Description: p.Appearance + " " + p.Personality,
		Species:     p.Species,
		Personality: p.Personality,
		Backstory:   p.Backstory,
	}), nil
}

// PayloadFields lists the required payload keys in schema order.
var PayloadFields = []string{
	"name",
	"species",
	"appearance",
	"personality",
	"special_ability",
	"ability_description",
	"favorite_food",
	"unique_trait",
	"backstory",
}

func newFrog(f types.Frog) types.Frog {
	f.Energy = state.DefaultEnergy
	f.Happiness = state.DefaultHappiness
	f.Items = []string{}
	return f
}

// Hatched is a new frog and whether the generative path produced it.
type Hatched struct {
	Frog      types.Frog
	Generated bool
}

// Generator hatches frogs. Source is optional.
type Generator struct {
	Names  []string
	Rand   Rand
	Source Source
	Log    *slog.Logger
}

// Generate returns a new frog. Generative failures fall back to the catalog.
func (g *Generator) Generate(ctx context.Context) Hatched {
	if g.Source != nil {
		f, err := g.generate(ctx)
		if err == nil {
			return Hatched{Frog: f, Generated: true}
		}
		g.logger().Warn("generative hatch failed, using catalog", "error", err)
	}
	return Hatched{Frog: FromCatalog(g.Names, g.Rand)}
}

func (g *Generator) generate(ctx context.Context) (types.Frog, error) {
	data, err := g.Source.Hatch(ctx)
	if err != nil {
		return types.Frog{}, fmt.Errorf("source: %w", err)
	}
	return FromPayload(data)
}

func (g *Generator) logger() *slog.Logger {
	if g.Log != nil {
		return g.Log
	}
	return slog.Default()
}
