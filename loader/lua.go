package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates records during Lua file execution.
type collector struct {
	source  string
	records []rawRecord
}

func (c *collector) add(winner, loser, text string) {
	c.records = append(c.records, rawRecord{
		source: c.source,
		index:  len(c.records) + 1,
		winner: winner,
		loser:  loser,
		text:   text,
	})
}

// decodeLua executes a rule script in a sandboxed VM and returns the
// records it declared.
func decodeLua(path string) ([]rawRecord, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{source: path}
	registerAPI(L, coll)

	if err := L.DoFile(path); err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	return coll.records, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	// Table library (table.insert, table.sort, etc.)
	lua.OpenTable(L)
	// String library (string.format, string.sub, etc.)
	lua.OpenString(L)
}

// sandbox removes globals that reach outside the script.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}
