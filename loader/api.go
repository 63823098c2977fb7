package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", intro = "..." }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Names { "Ribbit", "Lily", ... } may be called more than once.
	L.SetGlobal("Names", L.NewFunction(func(L *lua.LState) int {
		coll.names = append(coll.names, L.CheckTable(1))
		return 0
	}))

	// Scenario "id" { ... } is curried: Scenario("id") returns a function that takes a table.
	L.SetGlobal("Scenario", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.scenarios = append(coll.scenarios, rawScenario{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Choice("1", "Dive in to investigate", "pond_dive")
	L.SetGlobal("Choice", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("label", lua.LString(L.CheckString(1)))
		tbl.RawSetString("text", lua.LString(L.CheckString(2)))
		tbl.RawSetString("handler", lua.LString(L.CheckString(3)))
		L.Push(tbl)
		return 1
	}))
}
