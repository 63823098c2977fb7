// Package loader loads Lua content into Go structs at startup.
// The Lua VM is discarded after loading; no Lua runs at runtime.
package loader

import (
	"fmt"
	"sort"

	"github.com/nathoo/frogquest/engine/state"
	"github.com/nathoo/frogquest/types"
	lua "github.com/yuin/gopher-lua"
)

// rawScenario holds a scenario table before compilation.
type rawScenario struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStrings converts the array part of a Lua table to strings.
// Non-string entries are reported as errors.
func tableToStrings(tbl *lua.LTable) ([]string, error) {
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("entry %d is %s, want string", i, tbl.RawGetInt(i).Type())
		}
		out = append(out, string(s))
	}
	return out, nil
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = compileGame(coll.game)

	for _, tbl := range coll.names {
		names, err := tableToStrings(tbl)
		if err != nil {
			return nil, fmt.Errorf("compiling names: %w", err)
		}
		defs.Names = append(defs.Names, names...)
	}

	// Scenarios keep declaration order so seeded picks replay exactly.
	for _, raw := range coll.scenarios {
		sc, err := compileScenario(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling scenario %s: %w", raw.id, err)
		}
		defs.Scenarios = append(defs.Scenarios, sc)
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title: getString(tbl, "title"),
		Intro: getString(tbl, "intro"),
	}
}

func compileScenario(raw rawScenario) (types.ScenarioDef, error) {
	sc := types.ScenarioDef{
		ID:          raw.id,
		Title:       getString(raw.table, "title"),
		Description: getString(raw.table, "description"),
	}

	choices := getTable(raw.table, "choices")
	if choices == nil {
		return sc, fmt.Errorf("missing choices")
	}
	for i := 1; i <= choices.MaxN(); i++ {
		tbl, ok := choices.RawGetInt(i).(*lua.LTable)
		if !ok {
			return sc, fmt.Errorf("choice %d is not a table", i)
		}
		sc.Choices = append(sc.Choices, types.ChoiceDef{
			Label:   getString(tbl, "label"),
			Text:    getString(tbl, "text"),
			Handler: getString(tbl, "handler"),
		})
	}
	return sc, nil
}

// sortedLuaFiles returns .lua files with game.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
