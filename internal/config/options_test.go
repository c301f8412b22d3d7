package config

import (
	"testing"

	"github.com/macomamio/psysh/internal/command"
)

func TestApplyOptions_ScalarKeys(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	err := c.ApplyOptions(map[string]any{
		"defaultIncludes":   []string{"init.lua", "extra.lua"},
		"prompt":            "psy> ",
		"startupMessage":    "hello",
		"tempDir":           "/tmp/elsewhere",
		"historyFile":       "/tmp/hist",
		"manualDbFile":      "/tmp/manual.db",
		"historySize":       100,
		"eraseDuplicates":   false,
		"requireSemicolons": true,
		"colorMode":         "disabled",
		"interactiveMode":   "forced",
		"verbosity":         "debug",
	})
	if err != nil {
		t.Fatalf("ApplyOptions() error = %v", err)
	}

	if got := c.DefaultIncludes(); len(got) != 2 || got[0] != "init.lua" {
		t.Errorf("DefaultIncludes() = %v", got)
	}
	if c.Prompt() != "psy> " {
		t.Errorf("Prompt() = %q", c.Prompt())
	}
	if c.StartupMessage() != "hello" {
		t.Errorf("StartupMessage() = %q", c.StartupMessage())
	}
	if c.TempDir() != "/tmp/elsewhere" {
		t.Errorf("TempDir() = %q", c.TempDir())
	}
	if c.HistoryFile() != "/tmp/hist" {
		t.Errorf("HistoryFile() = %q", c.HistoryFile())
	}
	if c.ManualDBFile() != "/tmp/manual.db" {
		t.Errorf("ManualDBFile() = %q", c.ManualDBFile())
	}
	if c.HistorySize() != 100 {
		t.Errorf("HistorySize() = %d", c.HistorySize())
	}
	if c.EraseDuplicates() {
		t.Errorf("EraseDuplicates() = true, want false")
	}
	if !c.RequireSemicolons() {
		t.Errorf("RequireSemicolons() = false, want true")
	}
	if c.ColorMode() != ColorDisabled {
		t.Errorf("ColorMode() = %v", c.ColorMode())
	}
	if c.InteractiveMode() != InteractiveForced {
		t.Errorf("InteractiveMode() = %v", c.InteractiveMode())
	}
	if c.Verbosity() != VerbosityDebug {
		t.Errorf("Verbosity() = %v", c.Verbosity())
	}
}

func TestApplyOptions_UsageFlags(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	if err := c.ApplyOptions(map[string]any{"useReadline": true, "usePcntl": false}); err != nil {
		t.Fatalf("ApplyOptions() error = %v", err)
	}
	if c.useReadline == nil || !*c.useReadline {
		t.Errorf("useReadline flag not set")
	}
	if c.usePcntl == nil || *c.usePcntl {
		t.Errorf("usePcntl flag = %v, want false", c.usePcntl)
	}
}

func TestApplyOptions_UseLineEditingAlias(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	if err := c.ApplyOptions(map[string]any{"useLineEditing": false}); err != nil {
		t.Fatalf("ApplyOptions() error = %v", err)
	}
	if c.useReadline == nil || *c.useReadline {
		t.Errorf("useLineEditing alias did not set the readline usage flag")
	}
}

func TestApplyOptions_UnrecognizedKeysIgnored(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	err := c.ApplyOptions(map[string]any{
		"someFutureOption": "whatever",
		"prompt":           "ok> ",
	})
	if err != nil {
		t.Fatalf("ApplyOptions() error = %v, unrecognized keys must be ignored", err)
	}
	if c.Prompt() != "ok> " {
		t.Errorf("recognized key was not applied alongside unrecognized one")
	}
}

func TestApplyOptions_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]any
	}{
		{"prompt", map[string]any{"prompt": 7}},
		{"usePcntl", map[string]any{"usePcntl": "yes"}},
		{"historySize", map[string]any{"historySize": "many"}},
		{"defaultIncludes", map[string]any{"defaultIncludes": 3}},
		{"colorMode", map[string]any{"colorMode": "sometimes"}},
		{"loop", map[string]any{"loop": "plain"}},
		{"codeCleaner", map[string]any{"codeCleaner": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t)
			c := newTestConfig(t, p, nil)

			err := c.ApplyOptions(tt.opts)
			if err == nil {
				t.Fatal("ApplyOptions() expected error")
			}
			if _, ok := err.(*InvalidArgumentError); !ok {
				t.Errorf("ApplyOptions() error = %T, want *InvalidArgumentError", err)
			}
		})
	}
}

func TestApplyOptions_CommandsAreAdditive(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	first := map[string]any{"commands": []command.Command{{Name: "a"}, {Name: "b"}}}
	second := map[string]any{"commands": []command.Command{{Name: "c"}}}
	if err := c.ApplyOptions(first); err != nil {
		t.Fatalf("ApplyOptions() error = %v", err)
	}
	if err := c.ApplyOptions(second); err != nil {
		t.Fatalf("ApplyOptions() error = %v", err)
	}

	sink := &recordingShell{}
	c.AttachShell(sink)
	if got := names(sink.received); got != "a,b,c" {
		t.Errorf("commands = %s, want a,b,c", got)
	}
}

func TestApplyOptions_CommandDescriptorMaps(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	err := c.ApplyOptions(map[string]any{
		"commands": []any{
			map[string]any{
				"name":        "greet",
				"description": "Say hello",
				"aliases":     []any{"hello", "hi"},
			},
		},
	})
	if err != nil {
		t.Fatalf("ApplyOptions() error = %v", err)
	}

	sink := &recordingShell{}
	c.AttachShell(sink)
	if len(sink.received) != 1 {
		t.Fatalf("received %d commands, want 1", len(sink.received))
	}
	cmd := sink.received[0]
	if cmd.Name != "greet" || cmd.Description != "Say hello" || len(cmd.Aliases) != 2 {
		t.Errorf("command = %+v", cmd)
	}
}

func TestApplyOptions_CommandWithoutName(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	err := c.ApplyOptions(map[string]any{
		"commands": []any{map[string]any{"description": "nameless"}},
	})
	if err == nil {
		t.Fatal("ApplyOptions() expected error for a command without a name")
	}
}
