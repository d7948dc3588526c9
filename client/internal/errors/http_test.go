package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	cases := map[int]Kind{
		http.StatusUnauthorized:        SessionInvalid,
		http.StatusUnprocessableEntity: SessionInvalid,
		http.StatusForbidden:           Other,
		http.StatusNotFound:            Other,
		http.StatusBadRequest:          Other,
		http.StatusInternalServerError: Other,
	}
	for status, want := range cases {
		assert.Equal(t, want, ClassifyStatus(status), "status %d", status)
	}
}

func TestNewHTTPError_LiftsBackendMessage(t *testing.T) {
	err := NewHTTPError(http.MethodPost, "/api/auth/login", http.StatusUnauthorized, []byte(`{"error": "Credenciais inválidas"}`))

	assert.Equal(t, SessionInvalid, err.Kind)
	assert.Equal(t, "Credenciais inválidas", err.Message)
	assert.Equal(t, "POST /api/auth/login: HTTP 401: Credenciais inválidas", err.Error())
}

func TestNewHTTPError_LiftsJWTMessage(t *testing.T) {
	err := NewHTTPError(http.MethodGet, "/api/auth/me", http.StatusUnprocessableEntity, []byte(`{"msg": "Not enough segments"}`))

	assert.Equal(t, SessionInvalid, err.Kind)
	assert.Equal(t, "Not enough segments", err.Message)
}

func TestNewHTTPError_NonJSONBody(t *testing.T) {
	err := NewHTTPError(http.MethodGet, "/api/clientes", http.StatusBadGateway, []byte("<html>bad gateway</html>"))

	assert.Empty(t, err.Message)
	assert.Equal(t, "<html>bad gateway</html>", err.Body)
	assert.Equal(t, "GET /api/clientes: HTTP 502", err.Error())
}

func TestIsSessionInvalidAndStatusCode(t *testing.T) {
	wrapped := fmt.Errorf("list customers: %w", NewHTTPError(http.MethodGet, "/clientes", http.StatusUnprocessableEntity, nil))
	require.True(t, IsSessionInvalid(wrapped))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(wrapped))

	other := NewHTTPError(http.MethodGet, "/clientes", http.StatusNotFound, nil)
	assert.False(t, IsSessionInvalid(other))
	assert.Equal(t, http.StatusNotFound, StatusCode(other))

	assert.False(t, IsSessionInvalid(fmt.Errorf("dial tcp: connection refused")))
	assert.Zero(t, StatusCode(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "SessionInvalid", SessionInvalid.String())
	assert.Equal(t, "Other", Other.String())
	assert.Equal(t, "Unknown(7)", Kind(7).String())
}
