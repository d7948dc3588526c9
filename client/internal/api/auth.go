package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

// Health probes the backend.
func Health(ctx context.Context, rc *resty.Client) (*types.HealthResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).Get(pathHealth)
	if err != nil {
		return nil, err
	}
	var out types.HealthResponse
	if err := expect(resp, "health", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token.
func Login(ctx context.Context, rc *resty.Client, req types.LoginRequest) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).SetBody(req).Post(pathLogin)
	if err != nil {
		return nil, err
	}
	var out types.LoginResponse
	if err := expect(resp, "login", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the user the current token belongs to.
func Me(ctx context.Context, rc *resty.Client) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).Get(pathMe)
	if err != nil {
		return nil, err
	}
	var out types.User
	if err := expect(resp, "me", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
