package session

import (
	"context"
	"sync"
	"time"

	sloterror "github.com/fugaso-go/slot-core/internal/error"
)

// DefaultCleanDuration is the idle threshold the sweeper evicts a session
// past.
const DefaultCleanDuration = time.Hour

// DefaultCleanSec is the sweep period, per dispatcher_config.clean_sec.
const DefaultCleanSec = 3600 * time.Second

// onlineWindow is how recent LastAccess must be for a session to count as
// "live" for metrics/online.
const onlineWindow = 60 * time.Second

// entry pairs a registered actor with the token it is currently bound to,
// mirroring the registry's clients: Map<UserID, (Token, Actor)> index.
type entry struct {
	token string
	actor *Actor
}

// Registry is the process-wide owner of the token->userID and
// userID->(token, Actor) indexes. All mutation of these maps happens
// under reg.mu; no other component is allowed to touch them directly.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]uint  // token -> userID
	clients  map[uint]entry   // userID -> (token, actor)

	cleanDuration time.Duration
	cleanSec      time.Duration

	stopSweep chan struct{}
}

// NewRegistry constructs an empty Registry and starts its idle sweeper
// goroutine.
// cleanDuration/cleanSec default to DefaultCleanDuration/DefaultCleanSec
// when zero.
func NewRegistry(cleanDuration, cleanSec time.Duration) *Registry {
	if cleanDuration <= 0 {
		cleanDuration = DefaultCleanDuration
	}
	if cleanSec <= 0 {
		cleanSec = DefaultCleanSec
	}
	r := &Registry{
		sessions:      make(map[string]uint),
		clients:       make(map[uint]entry),
		cleanDuration: cleanDuration,
		cleanSec:      cleanSec,
		stopSweep:     make(chan struct{}),
	}
	go r.sweepLoop()
	return r
}

// Register binds token to actor under userID. At most one live session may
// exist per user: any pre-existing session for userID has its token binding
// removed and replaced by the new one under the lock, and its actor is then
// stopped synchronously.
func (r *Registry) Register(ctx context.Context, userID uint, token string, actor *Actor) {
	r.mu.Lock()
	prev, had := r.clients[userID]
	if had {
		delete(r.sessions, prev.token)
	}
	r.clients[userID] = entry{token: token, actor: actor}
	r.sessions[token] = userID
	r.mu.Unlock()

	if had {
		prev.actor.Stop("")
	}
}

// Lookup resolves token to its bound Actor, or (nil, false) if no session
// is bound to it (never registered, displaced, or swept as idle).
func (r *Registry) Lookup(token string) (*Actor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userID, ok := r.sessions[token]
	if !ok {
		return nil, false
	}
	e, ok := r.clients[userID]
	if !ok {
		return nil, false
	}
	return e.actor, true
}

// LookupByUser resolves userID to its bound Actor, used by the tournament
// fan-out to route a per-user award into the right live session.
func (r *Registry) LookupByUser(userID uint) (*Actor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.clients[userID]
	if !ok {
		return nil, false
	}
	return e.actor, true
}

// ErrNotLoggedOn is returned by the HTTP layer when Lookup misses; kept
// here rather than constructed ad hoc so every caller surfaces the same
// registry-miss error.
var ErrNotLoggedOn = sloterror.ErrNotLoggedOn

// Disconnect sends Stop to the actor bound to userID, if any, and removes
// its entries. It reports whether an actor was actually found and
// acknowledged the stop.
func (r *Registry) Disconnect(userID uint, gameSessionID string) bool {
	r.mu.Lock()
	e, ok := r.clients[userID]
	if ok {
		delete(r.clients, userID)
		delete(r.sessions, e.token)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}
	return e.actor.Stop(gameSessionID)
}

// Ping bumps the last-access instant of the actor bound to token, if any.
func (r *Registry) Ping(token string) bool {
	actor, ok := r.Lookup(token)
	if !ok {
		return false
	}
	actor.Ping()
	return true
}

// Online reports the count of sessions whose last access falls within the
// last 60 seconds.
func (r *Registry) Online() int {
	r.mu.Lock()
	clients := make([]*Actor, 0, len(r.clients))
	for _, e := range r.clients {
		clients = append(clients, e.actor)
	}
	r.mu.Unlock()

	cutoff := time.Now().Add(-onlineWindow)
	count := 0
	for _, a := range clients {
		if a.LastAccess().After(cutoff) {
			count++
		}
	}
	return count
}

// State reports the raw {sessions, clients} index sizes for metrics/state.
func (r *Registry) State() (sessions int, clients int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions), len(r.clients)
}

// sweepLoop runs the idle-session sweep every cleanSec, synchronously
// relative to every other registry event (it holds reg.mu for the whole
// scan, same as Register/Disconnect).
func (r *Registry) sweepLoop() {
	ticker := time.NewTicker(r.cleanSec)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.sweepOnce()
		case <-r.stopSweep:
			return
		}
	}
}

// sweepOnce stops every actor whose last access is older than cleanDuration
// and evicts its token/user-id entries.
func (r *Registry) sweepOnce() {
	cutoff := time.Now().Add(-r.cleanDuration)

	r.mu.Lock()
	var stale []entry
	for userID, e := range r.clients {
		if e.actor.LastAccess().Before(cutoff) {
			stale = append(stale, e)
			delete(r.clients, userID)
			delete(r.sessions, e.token)
		}
	}
	// orphan tokens: a token whose userID entry is already gone.
	for token, userID := range r.sessions {
		if _, ok := r.clients[userID]; !ok {
			delete(r.sessions, token)
		}
	}
	r.mu.Unlock()

	for _, e := range stale {
		e.actor.Stop("")
	}
}

// Shutdown stops the sweeper goroutine; it does not stop live actors (the
// server drain path does that by iterating Disconnect itself).
func (r *Registry) Shutdown() {
	close(r.stopSweep)
}
