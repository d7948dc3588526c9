package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fidelidade/fidelidade-client/location"
	"github.com/fidelidade/fidelidade-client/session"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is installed,
// so transport-related options end up underneath the bearer wrapper.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Its Transport (or
// http.DefaultTransport when nil) becomes the base of the transport chain.
// The client is copied, so hc itself is never modified and may be shared
// between Clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithTransport sets the base RoundTripper beneath the debug and bearer wrappers.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.http.Transport = rt
		return nil
	}
}

// WithDebugLogging logs each request/response at debug level when enabled is
// true. Do not enable this option in production environments: dumps include
// headers, the bearer credential and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithToken installs an initial default credential, as SetToken would.
func WithToken(token string) Option {
	return func(c *Client) error {
		c.bearer = &bearerTransport{token: token}
		return nil
	}
}

// WithSessionStore sets the store cleared when the session becomes invalid.
func WithSessionStore(s session.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("session store cannot be nil")
		}
		c.store = s
		return nil
	}
}

// WithNavigator sets the navigator used to reach the login view.
func WithNavigator(n location.Navigator) Option {
	return func(c *Client) error {
		if n == nil {
			return fmt.Errorf("navigator cannot be nil")
		}
		c.nav = n
		return nil
	}
}

// WithLoginPath overrides the login path ("/login" by default).
func WithLoginPath(p string) Option {
	return func(c *Client) error {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("login path must start with '/': %q", p)
		}
		c.loginPath = p
		return nil
	}
}

// WithLogger sets the logger used by the client and its session guard.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}
