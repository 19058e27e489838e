// Package session remembers where the carousel was left so the next run can
// resume on the same slide.
package session

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	sessionObject   = "session"
	sessionProperty = "last"
)

// State is the persisted session.
type State struct {
	DeckID   string `yaml:"deckID"`   // deck path, or "demo" for the built-in deck
	Slide    int    `yaml:"slide"`    // last settled real index
	AutoPlay bool   `yaml:"autoplay"` // autoplay toggle at exit
}

// Store persists State through gdata. A nil manager keeps the state in
// memory only.
type Store struct {
	manager *gdata.Manager
	state   State
	log     *zap.Logger
}

// Open creates a gdata-backed store for appName. When gdata cannot be opened
// the store degrades to memory and the error is logged.
func Open(appName string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("session storage unavailable, using memory", zap.Error(err))
		m = nil
	}
	return New(m, log)
}

// New wraps an existing manager, which may be nil.
func New(m *gdata.Manager, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{manager: m, log: log}
}

// Load reads the saved session. ok is false when nothing was saved.
func (s *Store) Load() (state State, ok bool, err error) {
	if s.manager == nil {
		return s.state, false, nil
	}
	if !s.manager.ObjectPropExists(sessionObject, sessionProperty) {
		return State{}, false, nil
	}
	data, err := s.manager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return State{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return State{}, false, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	s.state = state
	return state, true, nil
}

// Save stores state, in memory and through gdata when available.
func (s *Store) Save(state State) error {
	s.state = state
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.manager.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.log.Debug("session saved", zap.Int("slide", state.Slide))
	return nil
}

// Current returns the last state loaded or saved.
func (s *Store) Current() State { return s.state }

// Resume returns the slide to start on for the deck deckID of n slides. It
// falls back to def when the saved session belongs to another deck or is
// out of range.
func (st State) Resume(deckID string, n, def int) int {
	if st.DeckID != deckID || st.Slide < 0 || st.Slide >= n {
		return def
	}
	return st.Slide
}
