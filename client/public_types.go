package client

import "github.com/fidelidade/fidelidade-client/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	LoginRequest          = types.LoginRequest
	CreateUserRequest     = types.CreateUserRequest
	CreateStoreRequest    = types.CreateStoreRequest
	CreateCustomerRequest = types.CreateCustomerRequest
	RegisterVisitRequest  = types.RegisterVisitRequest
	RedeemRequest         = types.RedeemRequest
	PageParams            = types.PageParams
	ListCustomersParams   = types.ListCustomersParams

	// Domain entities
	User       = types.User
	Store      = types.Store
	Customer   = types.Customer
	Visit      = types.Visit
	Redemption = types.Redemption
	KPIs       = types.KPIs

	// Responses
	LoginResponse  = types.LoginResponse
	HealthResponse = types.HealthResponse
	CreatedID      = types.CreatedID
	CustomerPage   = types.CustomerPage
	VisitPage      = types.VisitPage
	RedemptionPage = types.RedemptionPage
	VisitAck       = types.VisitAck
	RedemptionAck  = types.RedemptionAck
)

// Roles a back-office user can hold.
const (
	RoleAdmin     = types.RoleAdmin
	RoleManager   = types.RoleManager
	RoleAttendant = types.RoleAttendant
)

// Errors re-exported in errors.go
