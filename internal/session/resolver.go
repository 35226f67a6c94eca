package session

import (
	"context"
	"sync"
	"time"

	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/upstream"
)

// MeClient is the slice of the upstream client the resolver needs.
type MeClient interface {
	Me(ctx context.Context, cookie string) (*models.User, error)
}

type entry struct {
	user    *models.User // nil means guest
	expires time.Time
}

// Resolver answers "who is the current user" for a session cookie. Results
// are cached process-wide with a short TTL so the navbar, the dashboard and
// every route guard share one resolution instead of re-querying upstream.
// Login, register and logout invalidate the affected entry.
type Resolver struct {
	client MeClient
	ttl    time.Duration

	mu      sync.Mutex
	entries map[string]entry

	now func() time.Time
}

// NewResolver creates a Resolver backed by the upstream session endpoint.
func NewResolver(client MeClient, ttl time.Duration) *Resolver {
	return &Resolver{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Resolve classifies the session. A nil user with a nil error means guest:
// authentication absence is never surfaced as an error, and a single failed
// query counts as "not logged in", not as a transient fault.
func (r *Resolver) Resolve(ctx context.Context, cookie string) (*models.User, error) {
	if cookie == "" {
		return nil, nil
	}

	r.mu.Lock()
	if e, ok := r.entries[cookie]; ok && r.now().Before(e.expires) {
		r.mu.Unlock()
		return e.user, nil
	}
	r.mu.Unlock()

	// Any failure, 401 or transport, classifies as guest. Only a definite
	// upstream rejection is cached; a transport fault must not pin a
	// logged-in user as guest for a whole TTL.
	user, err := r.client.Me(ctx, cookie)
	if err != nil && !upstream.IsUnauthorized(err) {
		return nil, nil
	}
	if err != nil {
		user = nil
	}

	r.mu.Lock()
	r.entries[cookie] = entry{user: user, expires: r.now().Add(r.ttl)}
	r.mu.Unlock()

	return user, nil
}

// Invalidate drops the cached resolution for a session cookie.
func (r *Resolver) Invalidate(cookie string) {
	r.mu.Lock()
	delete(r.entries, cookie)
	r.mu.Unlock()
}

// InvalidateAll clears the whole cache.
func (r *Resolver) InvalidateAll() {
	r.mu.Lock()
	r.entries = make(map[string]entry)
	r.mu.Unlock()
}
