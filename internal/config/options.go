package config

import (
	"sort"

	"github.com/macomamio/psysh/internal/cleaner"
	"github.com/macomamio/psysh/internal/command"
	"github.com/macomamio/psysh/internal/loop"
	"github.com/macomamio/psysh/internal/present"
)

// Option map keys. configDir and configFile are consumed by New before
// any other processing and are not part of the handler table.
const (
	optConfigDir  = "configDir"
	optConfigFile = "configFile"

	optDefaultIncludes   = "defaultIncludes"
	optUseReadline       = "useReadline"
	optUseLineEditing    = "useLineEditing" // alias of useReadline
	optUsePcntl          = "usePcntl"
	optCodeCleaner       = "codeCleaner"
	optPager             = "pager"
	optLoop              = "loop"
	optTempDir           = "tempDir"
	optHistoryFile       = "historyFile"
	optManualDBFile      = "manualDbFile"
	optPresenters        = "presenters"
	optCommands          = "commands"
	optPrompt            = "prompt"
	optStartupMessage    = "startupMessage"
	optColorMode         = "colorMode"
	optInteractiveMode   = "interactiveMode"
	optVerbosity         = "verbosity"
	optHistorySize       = "historySize"
	optEraseDuplicates   = "eraseDuplicates"
	optRequireSemicolons = "requireSemicolons"
	optErrorLoggingLevel = "errorLoggingLevel"
)

// optionHandler applies one option value to the configuration.
type optionHandler func(c *Config, v any) error

// optionHandlers is the closed table of recognized option keys. Every key
// dispatches to a single-value setter except "commands", which appends
// across repeated merges. Keys absent from this table are ignored so old
// binaries can load config files written against newer option sets.
var optionHandlers = map[string]optionHandler{
	optDefaultIncludes: func(c *Config, v any) error {
		includes, err := asStringSlice(optDefaultIncludes, v)
		if err != nil {
			return err
		}
		c.SetDefaultIncludes(includes)
		return nil
	},
	optUseReadline:    applyUseReadline,
	optUseLineEditing: applyUseReadline,
	optUsePcntl: func(c *Config, v any) error {
		use, err := asBool(optUsePcntl, v)
		if err != nil {
			return err
		}
		c.SetUsePcntl(use)
		return nil
	},
	optCodeCleaner: func(c *Config, v any) error {
		cl, ok := v.(*cleaner.Cleaner)
		if !ok {
			return &InvalidArgumentError{Name: optCodeCleaner, Value: v, Expected: "a *cleaner.Cleaner"}
		}
		c.SetCodeCleaner(cl)
		return nil
	},
	optPager: func(c *Config, v any) error {
		return c.SetPager(v)
	},
	optLoop: func(c *Config, v any) error {
		l, ok := v.(loop.Loop)
		if !ok {
			return &InvalidArgumentError{Name: optLoop, Value: v, Expected: "a loop.Loop"}
		}
		c.SetLoop(l)
		return nil
	},
	optTempDir: func(c *Config, v any) error {
		dir, err := asString(optTempDir, v)
		if err != nil {
			return err
		}
		c.SetTempDir(dir)
		return nil
	},
	optHistoryFile: func(c *Config, v any) error {
		path, err := asString(optHistoryFile, v)
		if err != nil {
			return err
		}
		c.SetHistoryFile(path)
		return nil
	},
	optManualDBFile: func(c *Config, v any) error {
		path, err := asString(optManualDBFile, v)
		if err != nil {
			return err
		}
		c.SetManualDBFile(path)
		return nil
	},
	optPresenters: func(c *Config, v any) error {
		presenters, err := asPresenters(v)
		if err != nil {
			return err
		}
		c.AddPresenters(presenters...)
		return nil
	},
	optCommands: func(c *Config, v any) error {
		cmds, err := asCommands(v)
		if err != nil {
			return err
		}
		c.AddCommands(cmds...)
		return nil
	},
	optPrompt: func(c *Config, v any) error {
		prompt, err := asString(optPrompt, v)
		if err != nil {
			return err
		}
		c.SetPrompt(prompt)
		return nil
	},
	optStartupMessage: func(c *Config, v any) error {
		msg, err := asString(optStartupMessage, v)
		if err != nil {
			return err
		}
		c.SetStartupMessage(msg)
		return nil
	},
	optColorMode: func(c *Config, v any) error {
		if mode, ok := v.(ColorMode); ok {
			c.SetColorMode(mode)
			return nil
		}
		s, err := asString(optColorMode, v)
		if err != nil {
			return err
		}
		mode, err := ParseColorMode(s)
		if err != nil {
			return &InvalidArgumentError{Name: optColorMode, Value: v, Expected: `"auto", "forced" or "disabled"`}
		}
		c.SetColorMode(mode)
		return nil
	},
	optInteractiveMode: func(c *Config, v any) error {
		if mode, ok := v.(InteractiveMode); ok {
			c.SetInteractiveMode(mode)
			return nil
		}
		s, err := asString(optInteractiveMode, v)
		if err != nil {
			return err
		}
		mode, err := ParseInteractiveMode(s)
		if err != nil {
			return &InvalidArgumentError{Name: optInteractiveMode, Value: v, Expected: `"auto", "forced" or "disabled"`}
		}
		c.SetInteractiveMode(mode)
		return nil
	},
	optVerbosity: func(c *Config, v any) error {
		if level, ok := v.(Verbosity); ok {
			c.SetVerbosity(level)
			return nil
		}
		s, err := asString(optVerbosity, v)
		if err != nil {
			return err
		}
		level, err := ParseVerbosity(s)
		if err != nil {
			return &InvalidArgumentError{Name: optVerbosity, Value: v, Expected: `"quiet", "normal", "verbose" or "debug"`}
		}
		c.SetVerbosity(level)
		return nil
	},
	optHistorySize: func(c *Config, v any) error {
		size, err := asInt(optHistorySize, v)
		if err != nil {
			return err
		}
		c.SetHistorySize(size)
		return nil
	},
	optEraseDuplicates: func(c *Config, v any) error {
		erase, err := asBool(optEraseDuplicates, v)
		if err != nil {
			return err
		}
		c.SetEraseDuplicates(erase)
		return nil
	},
	optRequireSemicolons: func(c *Config, v any) error {
		require, err := asBool(optRequireSemicolons, v)
		if err != nil {
			return err
		}
		c.SetRequireSemicolons(require)
		return nil
	},
	optErrorLoggingLevel: func(c *Config, v any) error {
		level, err := asString(optErrorLoggingLevel, v)
		if err != nil {
			return err
		}
		c.SetErrorLoggingLevel(level)
		return nil
	},
}

func applyUseReadline(c *Config, v any) error {
	use, err := asBool(optUseReadline, v)
	if err != nil {
		return err
	}
	c.SetUseReadline(use)
	return nil
}

// ApplyOptions applies a named option map. Keys are applied in sorted
// order so repeated merges behave deterministically. Unrecognized keys
// are ignored, not errors.
func (c *Config) ApplyOptions(opts map[string]any) error {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		handler, ok := optionHandlers[k]
		if !ok {
			c.logger.Debug("ignoring unrecognized option", "key", k)
			continue
		}
		if err := handler(c, opts[k]); err != nil {
			return err
		}
	}
	return nil
}

func asString(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &InvalidArgumentError{Name: name, Value: v, Expected: "a string"}
	}
	return s, nil
}

func asBool(name string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &InvalidArgumentError{Name: name, Value: v, Expected: "a bool"}
	}
	return b, nil
}

// asInt accepts int and float64; Lua numbers arrive as float64.
func asInt(name string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, &InvalidArgumentError{Name: name, Value: v, Expected: "an integer"}
	}
}

func asStringSlice(name string, v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &InvalidArgumentError{Name: name, Value: item, Expected: "a list of strings"}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &InvalidArgumentError{Name: name, Value: v, Expected: "a list of strings"}
	}
}

func asPresenters(v any) ([]present.Presenter, error) {
	switch list := v.(type) {
	case []present.Presenter:
		return list, nil
	case present.Presenter:
		return []present.Presenter{list}, nil
	case []any:
		out := make([]present.Presenter, 0, len(list))
		for _, item := range list {
			p, ok := item.(present.Presenter)
			if !ok {
				return nil, &InvalidArgumentError{Name: optPresenters, Value: item, Expected: "a list of present.Presenter"}
			}
			out = append(out, p)
		}
		return out, nil
	default:
		return nil, &InvalidArgumentError{Name: optPresenters, Value: v, Expected: "a list of present.Presenter"}
	}
}

// asCommands accepts command values directly or descriptor maps of the
// shape produced by config scripts: {name=..., aliases={...},
// description=...}.
func asCommands(v any) ([]command.Command, error) {
	switch list := v.(type) {
	case []command.Command:
		return list, nil
	case command.Command:
		return []command.Command{list}, nil
	case []any:
		out := make([]command.Command, 0, len(list))
		for _, item := range list {
			cmd, err := asCommand(item)
			if err != nil {
				return nil, err
			}
			out = append(out, cmd)
		}
		return out, nil
	default:
		return nil, &InvalidArgumentError{Name: optCommands, Value: v, Expected: "a list of commands"}
	}
}

func asCommand(v any) (command.Command, error) {
	switch item := v.(type) {
	case command.Command:
		return item, nil
	case map[string]any:
		var cmd command.Command
		if name, ok := item["name"].(string); ok && name != "" {
			cmd.Name = name
		} else {
			return command.Command{}, &InvalidArgumentError{Name: optCommands, Value: v, Expected: "a command with a name"}
		}
		if desc, ok := item["description"].(string); ok {
			cmd.Description = desc
		}
		if aliases, ok := item["aliases"]; ok {
			list, err := asStringSlice(optCommands, aliases)
			if err != nil {
				return command.Command{}, err
			}
			cmd.Aliases = list
		}
		return cmd, nil
	default:
		return command.Command{}, &InvalidArgumentError{Name: optCommands, Value: v, Expected: "a command descriptor"}
	}
}
