package services

import (
	"sync"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// part identifies the collections a change touched. Routes and
// deliveries are stored separately, so each tracks its own unsaved state.
type part uint8

const (
	routesPart part = 1 << iota
	deliveriesPart

	noPart   part = 0
	allParts      = routesPart | deliveriesPart
)

// Session owns the workspace shared by the services. The TUI calls
// services from bubbletea commands, so access goes through the lock.
type Session struct {
	mu    sync.RWMutex
	ws    *domain.Workspace
	dirty part
}

// NewSession wraps ws. A nil workspace starts empty.
func NewSession(ws *domain.Workspace) *Session {
	if ws == nil {
		ws = domain.NewWorkspace()
	}
	return &Session{ws: ws}
}

// read runs fn with the workspace under a read lock.
func (s *Session) read(fn func(ws *domain.Workspace) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.ws)
}

// write runs fn under the write lock and marks the parts fn reports as
// changed. Nothing is marked when fn fails.
func (s *Session) write(fn func(ws *domain.Workspace) (changed part, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed, err := fn(s.ws)
	if err != nil {
		return err
	}
	s.dirty |= changed
	return nil
}

// clean clears the unsaved marks for p.
func (s *Session) clean(p part) {
	s.mu.Lock()
	s.dirty &^= p
	s.mu.Unlock()
}

// Dirty reports whether the workspace changed since the last load or save.
func (s *Session) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty != noPart
}
