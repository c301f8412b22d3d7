package config

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// luaGlobalConfig is the binding name under which the configuration is
// exposed to rc scripts.
const luaGlobalConfig = "config"

// noopSentinel is the return value an rc script may use to mean "I mutated
// the configuration directly, there is nothing to merge". It is recognized
// and ignored.
const noopSentinel = 1

// scriptableOptions are the option keys exposed to rc scripts as setter
// functions on the config binding. Options whose values are Go objects
// (codeCleaner, loop, presenters) cannot be built from a script and are
// reachable only through the Go API.
var scriptableOptions = []string{
	optDefaultIncludes,
	optUseReadline,
	optUseLineEditing,
	optUsePcntl,
	optPager,
	optTempDir,
	optHistoryFile,
	optManualDBFile,
	optCommands,
	optPrompt,
	optStartupMessage,
	optColorMode,
	optInteractiveMode,
	optVerbosity,
	optHistorySize,
	optEraseDuplicates,
	optRequireSemicolons,
	optErrorLoggingLevel,
}

// LoadFile executes an rc script in a sandboxed Lua VM with the
// configuration bound as the global "config".
//
// A script has two legal outcomes: it mutates the configuration through
// the config setters and returns nothing (or the no-op sentinel 1), or it
// returns an option table that is merged through ApplyOptions. Any other
// return value is a fatal *InvalidConfigShapeError.
//
// The script runs with full privilege over the configuration. This loader
// must never be pointed at untrusted input; that is the accepted trust
// boundary of config-as-script, not a sandbox guarantee.
func (c *Config) LoadFile(path string) error {
	L := newSandboxedVM()
	defer L.Close()
	registerConfigAPI(L, c)

	c.scriptErr = nil
	if err := L.DoFile(path); err != nil {
		if c.scriptErr != nil {
			return c.scriptErr
		}
		return &LoadError{Path: path, Detail: err.Error()}
	}
	return c.mergeScriptResult(path, L)
}

// loadString is LoadFile for in-memory scripts. Tests use it to exercise
// the loading protocol without touching disk.
func (c *Config) loadString(code string) error {
	L := newSandboxedVM()
	defer L.Close()
	registerConfigAPI(L, c)

	c.scriptErr = nil
	if err := L.DoString(code); err != nil {
		if c.scriptErr != nil {
			return c.scriptErr
		}
		return &LoadError{Path: "(inline)", Detail: err.Error()}
	}
	return c.mergeScriptResult("(inline)", L)
}

// mergeScriptResult inspects what the script returned and routes an option
// table through the merger.
func (c *Config) mergeScriptResult(path string, L *lua.LState) error {
	if L.GetTop() == 0 {
		return nil
	}
	ret := L.Get(1)

	switch val := ret.(type) {
	case *lua.LNilType:
		return nil
	case lua.LNumber:
		if float64(val) == noopSentinel {
			return nil
		}
		return &InvalidConfigShapeError{Path: path, Got: ret.Type().String()}
	case *lua.LTable:
		opts, ok := luaTableToGo(val).(map[string]any)
		if !ok {
			return &InvalidConfigShapeError{Path: path, Got: "array"}
		}
		return c.ApplyOptions(opts)
	default:
		return &InvalidConfigShapeError{Path: path, Got: ret.Type().String()}
	}
}

// registerConfigAPI builds the narrow mutation surface rc scripts see:
// a "config" table whose functions dispatch into the same option handlers
// the merger uses. Setters are called with dot syntax, e.g.
// config.setPager("less -R").
func registerConfigAPI(L *lua.LState, c *Config) {
	tbl := L.NewTable()
	for _, key := range scriptableOptions {
		handler := optionHandlers[key]
		L.SetField(tbl, luaSetterName(key), L.NewFunction(func(L *lua.LState) int {
			v := luaToGo(L.Get(1))
			if err := handler(c, v); err != nil {
				c.scriptErr = err
				L.RaiseError("%s", err.Error())
			}
			return 0
		}))
	}
	L.SetGlobal(luaGlobalConfig, tbl)
}

// luaSetterName maps an option key to its script setter name: "pager"
// becomes "setPager", the additive "commands" becomes "addCommands".
func luaSetterName(key string) string {
	if key == optCommands {
		return "addCommands"
	}
	return "set" + strings.ToUpper(key[:1]) + key[1:]
}

// luaToGo converts a Lua value to its Go equivalent. Numbers arrive as
// float64; the option coercions narrow them where an int is expected.
func luaToGo(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LString:
		return string(val)
	case lua.LNumber:
		return float64(val)
	case *lua.LTable:
		return luaTableToGo(val)
	default:
		return nil
	}
}

// luaTableToGo converts a table to []any when it is a sequence and to
// map[string]any otherwise. Non-string keys in map form are dropped.
func luaTableToGo(t *lua.LTable) any {
	if n := t.MaxN(); n > 0 {
		out := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			out = append(out, luaToGo(t.RawGetInt(i)))
		}
		return out
	}
	out := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		if key, ok := k.(lua.LString); ok {
			out[string(key)] = luaToGo(v)
		}
	})
	return out
}
