package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Paths are relative to the client's base URL, which normally ends in /api.
const (
	pathHealth      = "/_health"
	pathLogin       = "/auth/login"
	pathMe          = "/auth/me"
	pathAdminStores = "/admin/stores"
	pathAdminUsers  = "/admin/users"
	pathStores      = "/lojas"
	pathCustomers   = "/clientes"
	pathVisits      = "/visitas"
	pathRedemptions = "/resgates"
	pathKPIs        = "/dashboard/kpis"
	pathBirthdays   = "/dashboard/aniversariantes"
)

// newRequest returns a request bound to ctx. Authorization is added by the
// client's transport, never here.
func newRequest(ctx context.Context, rc *resty.Client) *resty.Request {
	return rc.R().SetContext(ctx).SetHeader("Accept", "application/json")
}

// expect checks that resp has one of the accepted statuses and decodes the
// JSON body into out when out is non-nil.
func expect(resp *resty.Response, op string, out any, accepted ...int) error {
	ok := false
	for _, s := range accepted {
		if resp.StatusCode() == s {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%s: status %d", op, resp.StatusCode())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func setPage(r *resty.Request, p int, perPage int) {
	if p > 0 {
		r.SetQueryParam("page", strconv.Itoa(p))
	}
	if perPage > 0 {
		r.SetQueryParam("per_page", strconv.Itoa(perPage))
	}
}
