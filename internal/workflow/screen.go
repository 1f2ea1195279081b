// Package workflow orchestrates the screen-scoped reservation flows: it owns
// field validation, the submit state machine, and the navigation outcome each
// backend result maps to. Rendering is left to the caller.
package workflow

import (
	"errors"
	"sync"
)

// ErrScreenGone reports that a result arrived after the originating screen
// was torn down and was discarded unseen.
var ErrScreenGone = errors.New("resultado descartado: tela encerrada")

// Navigation tells the caller where to go after an operation completes.
type Navigation int

const (
	NavStay Navigation = iota
	// NavBack pops a single screen, used after a confirmed reservation.
	NavBack
	// NavRoot pops the whole stack back to the home screen, used after a
	// confirmed removal.
	NavRoot
	// NavLogin means the stored session is unusable and the user must
	// re-authenticate before retrying.
	NavLogin
)

// Outcome is the screen-visible result of a workflow operation.
type Outcome struct {
	Nav     Navigation
	Message string
}

// Screen tracks whether a screen instance is still alive. A response that
// arrives after Teardown must not mutate the screen's state, so every flow
// delivers its result through deliver and drops it once the screen is gone.
type Screen struct {
	mu     sync.Mutex
	active bool
}

func NewScreen() *Screen {
	return &Screen{active: true}
}

// Teardown marks the screen as gone. In-flight requests keep running but
// their results are discarded on arrival.
func (s *Screen) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func (s *Screen) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// deliver runs fn only while the screen is still active and reports whether
// it ran. The screen lock is held during fn so teardown cannot interleave
// with a state mutation.
func (s *Screen) deliver(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return false
	}
	fn()
	return true
}
