package errors

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ClassifyStatus maps an HTTP status code to a Kind.
// Only 401 and 422 are session-invalid; 422 is kept because the backend's
// JWT layer uses it for tokens it cannot decode.
func ClassifyStatus(statusCode int) Kind {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return SessionInvalid
	default:
		return Other
	}
}

// NewHTTPError creates a classified error for an HTTP failure response.
// The backend reports failures as {"error": "..."}, and its JWT layer as
// {"msg": "..."}; either message is lifted into Message.
func NewHTTPError(method, url string, statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		Kind:       ClassifyStatus(statusCode),
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Message:    backendMessage(body),
		Body:       string(body),
	}
}

func backendMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
		Msg   string `json:"msg"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Msg
}
