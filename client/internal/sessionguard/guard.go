// Package sessionguard implements the client-wide reaction to an invalid
// session: wipe local session state and send the user to the login view.
package sessionguard

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apierrors "github.com/fidelidade/fidelidade-client/client/internal/errors"
)

// DefaultLoginPath is where the guard navigates when a session ends.
const DefaultLoginPath = "/login"

// Clearer is the part of the session store the guard needs.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Navigator is the part of the location the guard needs.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// Option configures a Guard.
type Option func(*Guard)

// WithLoginPath overrides DefaultLoginPath. Empty values are ignored.
func WithLoginPath(p string) Option {
	return func(g *Guard) {
		if p != "" {
			g.loginPath = p
		}
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Guard) { g.log = l }
}

// Guard applies the invalid-session policy. Store and navigator may be nil,
// in which case the corresponding side effect is skipped.
type Guard struct {
	store     Clearer
	nav       Navigator
	loginPath string
	log       zerolog.Logger
}

// New constructs a Guard.
func New(store Clearer, nav Navigator, opts ...Option) *Guard {
	g := &Guard{
		store:     store,
		nav:       nav,
		loginPath: DefaultLoginPath,
		log:       log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoginPath returns the path the guard redirects to.
func (g *Guard) LoginPath() string { return g.loginPath }

// Intercept inspects a failed call. For a session-invalid HTTP error it
// clears the store and, unless already on the login view, navigates there.
// The error is always returned unchanged.
func (g *Guard) Intercept(ctx context.Context, err error) error {
	if err == nil || !apierrors.IsSessionInvalid(err) {
		return err
	}
	status := apierrors.StatusCode(err)
	sessionInvalidationsTotal.WithLabelValues(strconv.Itoa(status)).Inc()

	if g.store != nil {
		// Best effort: a storage failure must not block the redirect.
		if cerr := g.store.Clear(context.WithoutCancel(ctx)); cerr != nil {
			g.log.Debug().Err(cerr).Msg("session clear failed; continuing")
		}
	}

	if g.nav == nil {
		return err
	}
	current := g.nav.CurrentPath()
	if strings.Contains(current, g.loginPath) {
		return err
	}
	g.log.Info().
		Int("status", status).
		Str("from", current).
		Str("to", g.loginPath).
		Msg("session invalid, redirecting to login")
	loginRedirectsTotal.Inc()
	g.nav.Navigate(g.loginPath)
	return err
}
