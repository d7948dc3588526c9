package types

import "github.com/go-openapi/strfmt"

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// HealthResponse is returned by the health probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// CreatedID acknowledges a created resource by its ID.
type CreatedID struct {
	ID int `json:"id"`
}

// CustomerPage wraps the customer listing.
type CustomerPage struct {
	Total int        `json:"total"`
	Items []Customer `json:"items"`
}

// VisitPage wraps the visit listing.
type VisitPage struct {
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
	Items   []Visit `json:"items"`
}

// RedemptionPage wraps the redemption listing.
type RedemptionPage struct {
	Total int          `json:"total"`
	Items []Redemption `json:"items"`
}

// VisitAck acknowledges a recorded visit.
type VisitAck struct {
	VisitID     int  `json:"visit_id"`
	VisitsCount int  `json:"visits_count"`
	Eligible    bool `json:"eligible"` // customer reached a redemption threshold
}

// RedemptionAck acknowledges a redemption.
type RedemptionAck struct {
	RedemptionID int             `json:"redemption_id"`
	GiftName     string          `json:"gift_name"`
	When         strfmt.DateTime `json:"when"`
	StoreID      *int            `json:"store_id,omitempty"`
}
