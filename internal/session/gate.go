package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// State is where the gate currently stands.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Gate decides whether the operator holds a valid session. It is a UX
// speed-bump around a single shared password, not an access-control
// boundary: there is no user identity and no server-side session.
//
// The gate is an explicit dependency; construct one in main and hand it
// to whoever needs it.
type Gate struct {
	store    Store
	password string
	duration time.Duration
	interval time.Duration

	mu    sync.Mutex
	state State

	now func() time.Time
}

// New builds a gate and resolves its initial state from the store: a
// present, unexpired record means the operator is still logged in.
func New(store Store, password string, duration, interval time.Duration) *Gate {
	g := &Gate{
		store:    store,
		password: password,
		duration: duration,
		interval: interval,
		state:    StateLoading,
		now:      time.Now,
	}
	g.mu.Lock()
	g.state = g.check()
	g.mu.Unlock()
	return g
}

// check reads the store and decides the state. Corrupt or expired
// records are deleted on observation; storage errors never propagate
// past here.
func (g *Gate) check() State {
	rec, err := g.store.Load()
	switch {
	case errors.Is(err, ErrNoSession):
		return StateUnauthenticated
	case errors.Is(err, ErrCorrupt):
		if err := g.store.Clear(); err != nil {
			log.Printf("session: could not clear corrupt record: %v", err)
		}
		return StateUnauthenticated
	case err != nil:
		log.Printf("session: could not read store: %v", err)
		return StateUnauthenticated
	}

	if g.now().UnixMilli()-rec.Timestamp < g.duration.Milliseconds() {
		return StateAuthenticated
	}
	if err := g.store.Clear(); err != nil {
		log.Printf("session: could not clear expired record: %v", err)
	}
	return StateUnauthenticated
}

// Login compares the candidate against the configured password by exact
// value equality. On match it writes a fresh record and authenticates;
// on mismatch nothing changes and ErrInvalidCredentials is returned.
func (g *Gate) Login(candidate string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if candidate != g.password {
		return ErrInvalidCredentials
	}
	if err := g.store.Save(Record{Timestamp: g.now().UnixMilli()}); err != nil {
		return err
	}
	g.state = StateAuthenticated
	return nil
}

// Logout clears the stored record and transitions to Unauthenticated
// unconditionally.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Clear(); err != nil {
		log.Printf("session: could not clear record on logout: %v", err)
	}
	g.state = StateUnauthenticated
}

// State returns the gate's current state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Authenticated reports whether the operator currently holds a valid
// session.
func (g *Gate) Authenticated() bool {
	return g.State() == StateAuthenticated
}

// Start launches the periodic revalidation loop. While authenticated,
// the stored record is re-read every interval and the gate logs out if
// it has gone missing, corrupt or stale. Cancelling ctx stops the loop;
// no timers outlive it.
func (g *Gate) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// Cancellation wins over a tick that is already pending.
				select {
				case <-ctx.Done():
					return
				default:
				}
				g.revalidate()
			}
		}
	}()
}

func (g *Gate) revalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateAuthenticated {
		return
	}
	if g.check() != StateAuthenticated {
		log.Println("session: expired, logging out")
		g.state = StateUnauthenticated
	}
}
