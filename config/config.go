// Package config loads linepad settings from an optional Lua config file.
// The file is executed in a sandboxed VM and declares a single table:
//
//	Config {
//	    history_max = 50,
//	    max_results = 10,
//	    prompt      = "> ",
//	}
package config

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// Settings holds the runtime configuration.
type Settings struct {
	HistoryMax int    // input history capacity; 0 disables history
	MaxResults int    // picker result limit
	Prompt     string // input line prompt
}

// Defaults returns the settings used when no config file is present.
func Defaults() *Settings {
	return &Settings{
		HistoryMax: 50,
		MaxResults: 10,
		Prompt:     "> ",
	}
}

// Load reads settings from the Lua file at path. A missing file is not an
// error: the defaults are returned. Keys absent from the Config table keep
// their default values; unknown keys are ignored.
func Load(path string) (*Settings, error) {
	settings := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	var tbl *lua.LTable
	L.SetGlobal("Config", L.NewFunction(func(L *lua.LState) int {
		tbl = L.CheckTable(1)
		return 0
	}))

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", path, err)
	}
	if tbl == nil {
		return nil, fmt.Errorf("%s: no Config table declared", path)
	}

	if err := apply(settings, tbl); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// apply copies recognized keys from the Lua table onto settings.
func apply(settings *Settings, tbl *lua.LTable) error {
	if v, ok, err := intField(tbl, "history_max"); err != nil {
		return err
	} else if ok {
		settings.HistoryMax = v
	}
	if v, ok, err := intField(tbl, "max_results"); err != nil {
		return err
	} else if ok {
		if v < 1 {
			return fmt.Errorf("max_results must be positive, got %d", v)
		}
		settings.MaxResults = v
	}
	if v := tbl.RawGetString("prompt"); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fmt.Errorf("prompt must be a string, got %s", v.Type())
		}
		settings.Prompt = string(s)
	}
	return nil
}

// intField reads a non-negative integer key from tbl. The second return
// reports whether the key was present.
func intField(tbl *lua.LTable, key string) (int, bool, error) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return 0, false, nil
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, false, fmt.Errorf("%s must be a number, got %s", key, v.Type())
	}
	if n < 0 {
		return 0, false, fmt.Errorf("%s must not be negative, got %v", key, n)
	}
	return int(n), true, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals a config file has no business calling.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}
