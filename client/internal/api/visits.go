package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

// RegisterVisit records a visit for the customer identified by CPF or ID.
func RegisterVisit(ctx context.Context, rc *resty.Client, req types.RegisterVisitRequest) (*types.VisitAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).SetBody(req).Post(pathVisits)
	if err != nil {
		return nil, err
	}
	var out types.VisitAck
	if err := expect(resp, "register visit", &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListVisits returns a page of visits, newest first.
func ListVisits(ctx context.Context, rc *resty.Client, params types.PageParams) (*types.VisitPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := newRequest(ctx, rc)
	setPage(r, params.Page, params.PerPage)
	resp, err := r.Get(pathVisits)
	if err != nil {
		return nil, err
	}
	var out types.VisitPage
	if err := expect(resp, "list visits", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Redeem hands a gift to the customer identified by CPF or ID and resets
// their visit count.
func Redeem(ctx context.Context, rc *resty.Client, req types.RedeemRequest) (*types.RedemptionAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := newRequest(ctx, rc).SetBody(req).Post(pathRedemptions)
	if err != nil {
		return nil, err
	}
	var out types.RedemptionAck
	// Older backend routes answer 200, newer ones 201.
	if err := expect(resp, "redeem", &out, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRedemptions returns a page of redemptions, newest first.
func ListRedemptions(ctx context.Context, rc *resty.Client, params types.PageParams) (*types.RedemptionPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := newRequest(ctx, rc)
	setPage(r, params.Page, params.PerPage)
	resp, err := r.Get(pathRedemptions)
	if err != nil {
		return nil, err
	}
	var out types.RedemptionPage
	if err := expect(resp, "list redemptions", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
