package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/mux"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newBackend starts a fake backend mounted under /api and returns a resty
// client pointed at it.
func newBackend(t *testing.T, register func(r *mux.Router)) *resty.Client {
	t.Helper()
	root := mux.NewRouter()
	register(root.PathPrefix("/api").Subrouter())
	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)
	return resty.New().SetBaseURL(srv.URL + "/api")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func failingClient() *resty.Client {
	return resty.New().SetBaseURL("http://backend.invalid/api").SetTransport(&errRT{})
}
