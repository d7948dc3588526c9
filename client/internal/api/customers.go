package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

// CreateCustomer enrolls a customer and returns its ID.
func CreateCustomer(ctx context.Context, rc *resty.Client, req types.CreateCustomerRequest) (*types.CreatedID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).SetBody(req).Post(pathCustomers)
	if err != nil {
		return nil, err
	}
	var out types.CreatedID
	if err := expect(resp, "create customer", &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomers returns a page of customers, optionally filtered by CPF.
// Store-pinned users only see their own store's customers.
func ListCustomers(ctx context.Context, rc *resty.Client, params types.ListCustomersParams) (*types.CustomerPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := newRequest(ctx, rc)
	if params.CPF != "" {
		r.SetQueryParam("cpf", params.CPF)
	}
	setPage(r, params.Page, params.PerPage)
	resp, err := r.Get(pathCustomers)
	if err != nil {
		return nil, err
	}
	var out types.CustomerPage
	if err := expect(resp, "list customers", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Birthdays returns the customers with a birthday in the current month.
func Birthdays(ctx context.Context, rc *resty.Client) ([]types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).Get(pathBirthdays)
	if err != nil {
		return nil, err
	}
	var out []types.Customer
	if err := expect(resp, "birthdays", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// KPIs returns the dashboard counters.
func KPIs(ctx context.Context, rc *resty.Client) (*types.KPIs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).Get(pathKPIs)
	if err != nil {
		return nil, err
	}
	var out types.KPIs
	if err := expect(resp, "kpis", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
