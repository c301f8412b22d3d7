package config

import "fmt"

// InvalidConfigShapeError is returned when a config script returns a value
// that is neither an option table nor the no-op sentinel.
type InvalidConfigShapeError struct {
	Path string // Script that produced the value
	Got  string // Lua type of the offending value
}

func (e *InvalidConfigShapeError) Error() string {
	return fmt.Sprintf("config file %s must return an option table or nothing, got %s", e.Path, e.Got)
}

// InvalidArgumentError is returned when a setter receives a value of the
// wrong shape, for example a pager that is neither a command string nor a
// Pager.
type InvalidArgumentError struct {
	Name     string // Option or setter name
	Value    any    // Offending value
	Expected string // Human-readable description of the accepted shapes
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: expected %s, got %T", e.Name, e.Expected, e.Value)
}

// LoadError represents a config script that failed to execute.
type LoadError struct {
	Path   string // Script path
	Detail string // Raw interpreter error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading config file %s: %s", e.Path, e.Detail)
}
