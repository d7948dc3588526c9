package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fidelidade/fidelidade-client/client/internal/api"
	"github.com/fidelidade/fidelidade-client/client/internal/types"
	"github.com/fidelidade/fidelidade-client/session"
)

// Login exchanges credentials for a token, installs it as the default
// credential and persists the token and user in the session store.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := types.LoginRequest{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}
	out, err := api.Login(ctx, c.rc, req)
	if err != nil {
		return nil, err
	}
	user, err := json.Marshal(out.User)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	if err := c.store.Set(ctx, session.KeyToken, out.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	if err := c.store.Set(ctx, session.KeyUser, string(user)); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	// Only a fully persisted session becomes the default credential.
	c.SetToken(out.Token)
	c.log.Debug().Int("user_id", out.User.ID).Str("role", out.User.Role).Msg("logged in")
	return out, nil
}

// RestoreSession installs the token persisted by a previous Login. It reports
// whether a token was found.
func (c *Client) RestoreSession(ctx context.Context) (bool, error) {
	token, ok, err := c.store.Get(ctx, session.KeyToken)
	if err != nil {
		return false, fmt.Errorf("read token: %w", err)
	}
	if !ok || token == "" {
		return false, nil
	}
	c.SetToken(token)
	return true, nil
}

// CurrentUser returns the user persisted by the last Login, or nil when the
// store holds none.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	raw, ok, err := c.store.Get(ctx, session.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}

// Logout drops the default credential and wipes the session store.
func (c *Client) Logout(ctx context.Context) error {
	c.SetToken("")
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
