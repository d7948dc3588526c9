package client

import (
	"net/http"
	"sync"
)

// bearerTransport wraps an http.RoundTripper to add the default
// Authorization header to every request while a token is set.
type bearerTransport struct {
	base http.RoundTripper

	mu    sync.RWMutex
	token string
}

func (t *bearerTransport) set(token string) {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
}

func (t *bearerTransport) current() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.current()
	// A header set on the request itself wins over the default.
	if token == "" || req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}
