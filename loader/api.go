package loader

import (
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the rule constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Victory "Rock" { against = "Scissors", text = "..." }
	// Victory "Rock" { against = { Scissors = "...", Lizard = "..." } }
	// Curried: Victory("Rock") returns a function that takes a table.
	L.SetGlobal("Victory", L.NewFunction(func(L *lua.LState) int {
		winner := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			switch against := tbl.RawGetString("against").(type) {
			case lua.LString:
				text, ok := tbl.RawGetString("text").(lua.LString)
				if !ok {
					L.ArgError(1, "victory "+winner+" over "+string(against)+" needs a text string")
				}
				coll.add(winner, string(against), string(text))
			case *lua.LTable:
				victims := map[string]string{}
				against.ForEach(func(k, v lua.LValue) {
					ks, kok := k.(lua.LString)
					vs, vok := v.(lua.LString)
					if !kok || !vok {
						L.ArgError(1, "victory "+winner+": against entries must map choice names to text")
					}
					victims[string(ks)] = string(vs)
				})
				losers := make([]string, 0, len(victims))
				for l := range victims {
					losers = append(losers, l)
				}
				sort.Strings(losers)
				for _, l := range losers {
					coll.add(winner, l, victims[l])
				}
			default:
				L.ArgError(1, "victory "+winner+" needs an against field")
			}
			return 0
		}))
		return 1
	}))
}
