// Package live drives a detail view over a long-lived connection: filter
// changes apply immediately and search text is debounced before it commits.
package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"influencer-trust/debounce"
	"influencer-trust/filters"
	"influencer-trust/models"
)

// Incoming message types.
const (
	MessageInput = "input"
	MessageClear = "clear"
	MessageSet   = "set"
)

// Outgoing update types.
const (
	UpdateLoading = "loading"
	UpdateState   = "state"
	UpdateEmpty   = "empty"
	UpdateError   = "error"
)

var (
	ErrUnknownMessage = errors.New("live: unknown message type")
	ErrUnknownParam   = errors.New("live: unknown filter parameter")
)

type Message struct {
	Type  string `json:"type"`
	Param string `json:"param,omitempty"`
	Value string `json:"value,omitempty"`
}

type Update struct {
	Type    string         `json:"type"`
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	HTML    string         `json:"html,omitempty"`
	Message string         `json:"message,omitempty"`
	Claims  []models.Claim `json:"-"`
}

// FetchFunc loads the profile a session filters.
type FetchFunc func(ctx context.Context) (*models.InfluencerProfile, error)

// Session owns the filter state of one live detail view. Updates are passed
// to emit, which may be called from the debounce timer goroutine.
type Session struct {
	mu      sync.Mutex
	state   *filters.State
	profile *models.InfluencerProfile
	emit    func(Update)
	search  *debounce.Debouncer
	closed  bool
}

func NewSession(state *filters.State, emit func(Update), searchDelay time.Duration, opts ...debounce.Option) *Session {
	s := &Session{state: state, emit: emit}
	s.search = debounce.New(searchDelay, s.commitSearch, opts...)
	return s
}

// Load fetches the profile and emits the first state, or an error update.
func (s *Session) Load(ctx context.Context, fetch FetchFunc) error {
	s.send(Update{Type: UpdateLoading, Query: s.Query()})

	profile, err := fetch(ctx)
	if err != nil {
		s.send(Update{Type: UpdateError, Query: s.Query(), Message: "Could not load influencer details."})
		return fmt.Errorf("live: load profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.emitLocked()
	return nil
}

// Handle applies one client message.
func (s *Session) Handle(msg Message) error {
	switch msg.Type {
	case MessageInput:
		s.search.Push(msg.Value)
		return nil
	case MessageClear:
		s.search.Flush("")
		return nil
	case MessageSet:
		p, ok := filters.LookupParam(filters.ClaimParams, msg.Param)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParam, msg.Param)
		}
		if p == filters.ParamSearch {
			// Cancels any pending input so it cannot overwrite this value.
			s.search.Flush(msg.Value)
			return nil
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return nil
		}
		s.state.Set(p, msg.Value)
		s.emitLocked()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
}

// Query is the current state encoded as a URL query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Encode()
}

// Close stops the pending search commit; no update is emitted afterwards.
func (s *Session) Close() {
	s.search.Stop()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Session) commitSearch(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.state.Set(filters.ParamSearch, value)
	s.emitLocked()
}

func (s *Session) emitLocked() {
	if s.closed || s.profile == nil {
		return
	}
	if s.profile.Empty() {
		s.emit(Update{Type: UpdateEmpty, Query: s.state.Encode()})
		return
	}
	claims := filters.Claims(s.profile.Claims, filters.ClaimQueryFrom(s.state))
	s.emit(Update{Type: UpdateState, Query: s.state.Encode(), Count: len(claims), Claims: claims})
}

func (s *Session) send(u Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.emit(u)
}
