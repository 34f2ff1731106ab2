package widget

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weatherwidget/backend/internal/domain"
)

type session struct {
	widget   *Widget
	lastSeen time.Time
}

// Registry hands out one Widget per browser session. Sessions idle for
// longer than the TTL are dropped the next time the registry is used.
type Registry struct {
	provider domain.WeatherProvider
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry creates a registry; a non-positive ttl keeps sessions forever
func NewRegistry(provider domain.WeatherProvider, ttl time.Duration) *Registry {
	return &Registry{
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the widget for id, creating a new session when id is unknown
// or expired. The returned id is the one the caller must keep using.
func (r *Registry) Get(id string) (*Widget, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictLocked(now)

	if s, ok := r.sessions[id]; ok && id != "" {
		s.lastSeen = now
		return s.widget, id
	}

	id = uuid.NewString()
	s := &session{widget: New(r.provider), lastSeen: now}
	r.sessions[id] = s
	return s.widget, id
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked(r.now())
	return len(r.sessions)
}

func (r *Registry) evictLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, s := range r.sessions {
		// a session with a search in flight stays until it settles
		if now.Sub(s.lastSeen) > r.ttl && !s.widget.State().Loading {
			delete(r.sessions, id)
		}
	}
}
