// Package save implements JSON serialization of the frog and progress
// counter, and the single-file store that holds them.
package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
)

// ErrMissingField is wrapped by Unmarshal when a required key is absent.
var ErrMissingField = errors.New("missing required field")

// FrogData is the JSON form of a frog.
type FrogData struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Ability     string   `json:"ability"`
	Description string   `json:"description"`
	Energy      int      `json:"energy"`
	Happiness   int      `json:"happiness"`
	Items       []string `json:"items"`
	Species     string   `json:"species"`
	Personality string   `json:"personality"`
	Backstory   string   `json:"backstory"`
}

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Frog       FrogData `json:"frog"`
	Adventures int      `json:"adventures_completed"`
}

// Record is a decoded save: the frog and the progress counter.
type Record struct {
	Frog       types.Frog
	Adventures int
}

// wireFrog detects absent keys on load. Optional narrative fields are plain
// strings and default to "".
type wireFrog struct {
	Name        *string   `json:"name"`
	Type        *string   `json:"type"`
	Ability     *string   `json:"ability"`
	Description *string   `json:"description"`
	Energy      *int      `json:"energy"`
	Happiness   *int      `json:"happiness"`
	Items       *[]string `json:"items"`
	Species     string    `json:"species"`
	Personality string    `json:"personality"`
	Backstory   string    `json:"backstory"`
}

type wireSave struct {
	Frog       *wireFrog `json:"frog"`
	Adventures *int      `json:"adventures_completed"`
}

// Marshal serializes a frog and progress counter to indented JSON.
func Marshal(f *types.Frog, adventures int) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("no frog to save")
	}
	items := f.Items
	if items == nil {
		items = []string{}
	}
	data := SaveData{
		Frog: FrogData{
			Name:        f.Name,
			Type:        f.Archetype.String(),
			Ability:     f.Ability,
			Description: f.Description,
			Energy:      f.Energy,
			Happiness:   f.Happiness,
			Items:       items,
			Species:     f.Species,
			Personality: f.Personality,
			Backstory:   f.Backstory,
		},
		Adventures: adventures,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Unmarshal decodes and validates save bytes. It rejects missing required
// keys, unknown archetype tags and out-of-range values. The returned
// frog's Items is never nil, so a frog saved with nil Items reloads with
// an empty slice.
func Unmarshal(data []byte) (*Record, error) {
	var ws wireSave
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decoding save: %w", err)
	}
	if ws.Frog == nil {
		return nil, fmt.Errorf("%w: frog", ErrMissingField)
	}
	if ws.Adventures == nil {
		return nil, fmt.Errorf("%w: adventures_completed", ErrMissingField)
	}

	wf := ws.Frog
	required := []struct {
		name    string
		present bool
	}{
		{"frog.name", wf.Name != nil},
		{"frog.type", wf.Type != nil},
		{"frog.ability", wf.Ability != nil},
		{"frog.description", wf.Description != nil},
		{"frog.energy", wf.Energy != nil},
		{"frog.happiness", wf.Happiness != nil},
		{"frog.items", wf.Items != nil},
	}
	for _, r := range required {
		if !r.present {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, r.name)
		}
	}

	archetype, ok := types.ParseArchetype(*wf.Type)
	if !ok {
		return nil, fmt.Errorf("unknown frog type %q", *wf.Type)
	}
	if *wf.Energy != state.Clamp(*wf.Energy) {
		return nil, fmt.Errorf("energy %d out of range", *wf.Energy)
	}
	if *wf.Happiness != state.Clamp(*wf.Happiness) {
		return nil, fmt.Errorf("happiness %d out of range", *wf.Happiness)
	}
	if *ws.Adventures < 0 {
		return nil, fmt.Errorf("adventures_completed %d is negative", *ws.Adventures)
	}

	items := *wf.Items
	if items == nil {
		items = []string{}
	}

	return &Record{
		Frog: types.Frog{
			Name:        *wf.Name,
			Archetype:   archetype,
			Ability:     *wf.Ability,
			Description: *wf.Description,
			Energy:      *wf.Energy,
			Happiness:   *wf.Happiness,
			Items:       items,
			Species:     wf.Species,
			Personality: wf.Personality,
			Backstory:   wf.Backstory,
		},
		Adventures: *ws.Adventures,
	}, nil
}
