// Package present renders evaluation results for display.
package present

import "fmt"

// Presenter renders values of a kind it recognizes.
type Presenter interface {
	// CanPresent reports whether this presenter handles v.
	CanPresent(v any) bool

	// Present renders v for display.
	Present(v any) string
}

// Manager holds an ordered presenter list. Later registrations take
// precedence over earlier ones, so user presenters override defaults.
type Manager struct {
	presenters []Presenter
}

// NewManager creates a manager with the default presenters.
func NewManager() *Manager {
	return &Manager{
		presenters: []Presenter{
			stringPresenter{},
			errorPresenter{},
		},
	}
}

// Add registers presenters, keeping registration order.
func (m *Manager) Add(presenters ...Presenter) {
	m.presenters = append(m.presenters, presenters...)
}

// Present renders v using the most recently registered presenter that
// recognizes it, falling back to a Go-syntax rendering.
func (m *Manager) Present(v any) string {
	for i := len(m.presenters) - 1; i >= 0; i-- {
		if m.presenters[i].CanPresent(v) {
			return m.presenters[i].Present(v)
		}
	}
	return fmt.Sprintf("%#v", v)
}

type stringPresenter struct{}

func (stringPresenter) CanPresent(v any) bool {
	_, ok := v.(string)
	return ok
}

func (stringPresenter) Present(v any) string {
	return fmt.Sprintf("%q", v)
}

type errorPresenter struct{}

func (errorPresenter) CanPresent(v any) bool {
	_, ok := v.(error)
	return ok
}

func (errorPresenter) Present(v any) string {
	return fmt.Sprintf("error: %v", v)
}
