package types

import "github.com/go-openapi/strfmt"

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest carries back-office credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest registers a back-office user. A non-nil StoreID pins the
// user to that store.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	StoreID  *int   `json:"store_id,omitempty"`
}

// CreateStoreRequest registers a store. Zero MetaVisitas lets the backend
// apply its default of 10.
type CreateStoreRequest struct {
	Name        string `json:"name"`
	MetaVisitas int    `json:"meta_visitas,omitempty"`
}

// CreateCustomerRequest enrolls a customer.
type CreateCustomerRequest struct {
	Name     string       `json:"name"`
	CPF      string       `json:"cpf"`
	Phone    string       `json:"phone,omitempty"`
	Email    string       `json:"email,omitempty"`
	Birthday *strfmt.Date `json:"birthday,omitempty"`
	StoreID  *int         `json:"store_id,omitempty"`
}

// RegisterVisitRequest identifies the visiting customer by CPF or ID.
type RegisterVisitRequest struct {
	CPF      string `json:"cpf,omitempty"`
	ClientID int    `json:"client_id,omitempty"`
}

// RedeemRequest identifies the customer by CPF or ID. Empty GiftName lets the
// backend use its default gift.
type RedeemRequest struct {
	CPF      string `json:"cpf,omitempty"`
	ClientID int    `json:"client_id,omitempty"`
	GiftName string `json:"gift_name,omitempty"`
}

// PageParams selects a page of a listing. Zero values use backend defaults.
type PageParams struct {
	Page    int
	PerPage int
}

// ListCustomersParams filters the customer listing.
type ListCustomersParams struct {
	CPF string
	PageParams
}
