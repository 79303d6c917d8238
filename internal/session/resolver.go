// Package session holds the client-side identity state: one cell per process
// that every view reads before deciding what to show.
//
// The cell starts Unresolved. Start runs the first session check; once it
// completes the state is SignedOut, SessionOnly or Resolved and never goes
// back to Unresolved. Profile resolution is a separate step that runs after a
// session appears, so SessionOnly is observable in between.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// Backend is the identity provider the resolver talks to.
type Backend interface {
	// CurrentSession returns the live session, or nil when there is none.
	CurrentSession(ctx context.Context) (*domain.Session, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*domain.Session, error)
	SignUp(ctx context.Context, in domain.SignUpInput) error
	SignOut(ctx context.Context) error
}

// Snapshot is an immutable copy of the identity state.
type Snapshot struct {
	State   domain.ResolutionState
	Session *domain.Session
	Profile *domain.User
	// Err is the last failure seen while resolving, if any.
	Err error
}

// Resolver owns the identity state and broadcasts every change.
type Resolver struct {
	backend Backend
	log     zerolog.Logger

	mu      sync.Mutex
	snap    Snapshot
	subs    map[chan Snapshot]struct{}
	checked chan struct{}
	once    sync.Once
}

func New(backend Backend, log zerolog.Logger) *Resolver {
	return &Resolver{
		backend: backend,
		log:     log,
		snap:    Snapshot{State: domain.StateUnresolved},
		subs:    make(map[chan Snapshot]struct{}),
		checked: make(chan struct{}),
	}
}

// Snapshot returns the current state.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Subscribe returns a channel that always holds the latest snapshot. Slow
// readers miss intermediate states, never the last one. The returned func
// unsubscribes and closes the channel.
func (r *Resolver) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	r.mu.Lock()
	r.subs[ch] = struct{}{}
	ch <- r.snap
	r.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, ch)
			close(ch)
			r.mu.Unlock()
		})
	}
}

// WaitChecked blocks until the first session check has completed.
func (r *Resolver) WaitChecked(ctx context.Context) (Snapshot, error) {
	select {
	case <-r.checked:
		return r.Snapshot(), nil
	case <-ctx.Done():
		return r.Snapshot(), ctx.Err()
	}
}

// Start performs the first session check and, when a session exists,
// resolves its profile. A failed check leaves the caller signed out.
func (r *Resolver) Start(ctx context.Context) Snapshot {
	sess, err := r.backend.CurrentSession(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("session check failed")
		r.set(Snapshot{State: domain.StateSignedOut, Err: err})
		r.markChecked()
		return r.Snapshot()
	}

	r.applySession(sess)
	r.markChecked()

	if sess != nil {
		r.resolveProfile(ctx, sess)
	}
	return r.Snapshot()
}

// SignIn authenticates and resolves the new session's profile. On failure
// the state is left as it was.
func (r *Resolver) SignIn(ctx context.Context, username, password string) error {
	sess, err := r.backend.SignIn(ctx, username, password)
	if err != nil {
		return err
	}

	r.applySession(sess)
	r.markChecked()
	if sess != nil {
		r.resolveProfile(ctx, sess)
	}
	return nil
}

// SignUp runs the local pre-check, then registers the identity and profile.
// Registration does not sign the caller in.
func (r *Resolver) SignUp(ctx context.Context, in domain.SignUpInput) error {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	return r.backend.SignUp(ctx, in)
}

// SignOut ends the session. The profile and session are cleared even when
// the provider call fails.
func (r *Resolver) SignOut(ctx context.Context) error {
	err := r.backend.SignOut(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("sign out failed")
	}
	r.set(Snapshot{State: domain.StateSignedOut, Err: err})
	r.markChecked()
	return err
}

func (r *Resolver) applySession(sess *domain.Session) {
	if sess == nil {
		r.set(Snapshot{State: domain.StateSignedOut})
		return
	}
	r.set(Snapshot{State: domain.StateSessionOnly, Session: sess})
}

func (r *Resolver) resolveProfile(ctx context.Context, sess *domain.Session) {
	profile, err := r.backend.Profile(ctx, sess.UserID)
	if err != nil || profile == nil {
		// The session stays usable; views keep waiting on the profile.
		r.log.Warn().Err(err).Str("user_id", sess.UserID).Msg("profile not resolved")
		r.update(func(s *Snapshot) { s.Err = err })
		return
	}

	r.update(func(s *Snapshot) {
		// A sign-out may have raced the profile fetch.
		if s.Session == nil || s.Session.ID != sess.ID {
			return
		}
		s.State = domain.StateResolved
		s.Profile = profile
		s.Err = nil
	})
}

func (r *Resolver) markChecked() {
	r.once.Do(func() { close(r.checked) })
}

func (r *Resolver) set(s Snapshot) {
	r.update(func(cur *Snapshot) { *cur = s })
}

func (r *Resolver) update(fn func(*Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(&r.snap)
	for ch := range r.subs {
		select {
		case <-ch:
		default:
		}
		ch <- r.snap
	}
}
