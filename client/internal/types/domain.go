package types

import "github.com/go-openapi/strfmt"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role values assigned to users by the backend.
const (
	RoleAdmin     = "ADMIN"
	RoleManager   = "GERENTE"
	RoleAttendant = "ATENDENTE"
)

// User represents a back-office user (admin, manager or attendant).
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	LockLoja bool   `json:"lock_loja"` // user is pinned to StoreID
	StoreID  *int   `json:"store_id"`
}

// Store represents a shop taking part in the loyalty program.
type Store struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MetaVisitas int    `json:"meta_visitas"` // visits needed before a redemption
}

// Customer represents an enrolled loyalty customer ("cliente").
type Customer struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	CPF       string           `json:"cpf"`
	Phone     string           `json:"phone,omitempty"`
	Email     *string          `json:"email,omitempty"`
	Birthday  *strfmt.Date     `json:"birthday,omitempty"`
	StoreID   *int             `json:"store_id,omitempty"`
	CreatedAt *strfmt.DateTime `json:"created_at,omitempty"`
}

// Visit represents a recorded customer visit.
type Visit struct {
	ID        int             `json:"id"`
	ClientID  int             `json:"client_id"`
	StoreID   *int            `json:"store_id"`
	CreatedAt strfmt.DateTime `json:"created_at"`
}

// Redemption represents a gift handed to a customer.
type Redemption struct {
	ID        int             `json:"id"`
	GiftName  string          `json:"gift_name"`
	CreatedAt strfmt.DateTime `json:"created_at"`
}

// KPIs are the dashboard counters for the last 30 days.
type KPIs struct {
	Visits30d      int `json:"visitas_30d"`
	CustomersTotal int `json:"clientes_total"`
	Redemptions30d int `json:"resgates_30d"`
}
