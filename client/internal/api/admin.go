package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

// ListStores returns every store. Admin only.
func ListStores(ctx context.Context, rc *resty.Client) ([]types.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).Get(pathAdminStores)
	if err != nil {
		return nil, err
	}
	var out []types.Store
	if err := expect(resp, "list stores", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStore registers a store. Admin only.
func CreateStore(ctx context.Context, rc *resty.Client, req types.CreateStoreRequest) (*types.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).SetBody(req).Post(pathStores)
	if err != nil {
		return nil, err
	}
	var out types.Store
	if err := expect(resp, "create store", &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser registers a back-office user. Admin only.
func CreateUser(ctx context.Context, rc *resty.Client, req types.CreateUserRequest) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).SetBody(req).Post(pathAdminUsers)
	if err != nil {
		return nil, err
	}
	var out types.User
	if err := expect(resp, "create user", &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns every back-office user, newest first. Admin only.
func ListUsers(ctx context.Context, rc *resty.Client) ([]types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).Get(pathAdminUsers)
	if err != nil {
		return nil, err
	}
	var out []types.User
	if err := expect(resp, "list users", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
