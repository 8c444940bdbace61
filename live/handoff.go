package live

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"influencer-trust/models"
)

// Handoff passes a profile fetched for a page render to the live session the
// page opens, so a single view costs a single fetch. Each token can be taken
// once.
type Handoff struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]handoffEntry
}

type handoffEntry struct {
	profile *models.InfluencerProfile
	expires time.Time
}

func NewHandoff(ttl time.Duration) *Handoff {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Handoff{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]handoffEntry{},
	}
}

// Put stores p and returns the token that claims it.
func (h *Handoff) Put(p *models.InfluencerProfile) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	for token, e := range h.entries {
		if now.After(e.expires) {
			delete(h.entries, token)
		}
	}

	token := uuid.NewString()
	h.entries[token] = handoffEntry{profile: p, expires: now.Add(h.ttl)}
	return token
}

// Take removes and returns the profile stored under token.
func (h *Handoff) Take(token string) (*models.InfluencerProfile, bool) {
	if token == "" {
		return nil, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.entries[token]
	if !ok {
		return nil, false
	}
	delete(h.entries, token)
	if h.now().After(e.expires) {
		return nil, false
	}
	return e.profile, true
}

func (h *Handoff) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
