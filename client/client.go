package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fidelidade/fidelidade-client/client/internal/api"
	apierrors "github.com/fidelidade/fidelidade-client/client/internal/errors"
	"github.com/fidelidade/fidelidade-client/client/internal/sessionguard"
	"github.com/fidelidade/fidelidade-client/internal/config"
	"github.com/fidelidade/fidelidade-client/location"
	"github.com/fidelidade/fidelidade-client/session"
)

// HeaderRequestID correlates a request with client and backend logs.
const HeaderRequestID = "X-Request-ID"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the single HTTP access point to the loyalty backend. Construct
// one per process and pass it by reference to every call site.
type Client struct {
	baseURL   string
	http      *http.Client
	rc        *resty.Client
	bearer    *bearerTransport
	guard     *sessionguard.Guard
	store     session.Store
	nav       location.Navigator
	loginPath string
	debug     bool
	log       zerolog.Logger

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL. An empty baseURL is allowed: request
// paths are then sent as-is, relative to nothing.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 30 * time.Second},
		store:     session.NewMemoryStore(),
		nav:       location.NewTracker("/"),
		loginPath: sessionguard.DefaultLoginPath,
		log:       log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()
	c.guard = sessionguard.New(c.store, c.nav,
		sessionguard.WithLoginPath(c.loginPath),
		sessionguard.WithLogger(c.log),
	)

	c.rc = resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetLogger(restyLogger{l: c.log})
	c.rc.OnBeforeRequest(stampRequestID)
	c.rc.OnAfterResponse(c.interceptResponse)
	c.rc.OnError(c.logFailure)

	return c, nil
}

// NewFromEnv constructs a Client from FIDELIDADE_* environment variables.
// Options passed by the caller take precedence over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithLoginPath(cfg.LoginPath),
		WithDebugLogging(cfg.Debug),
	}
	return New(cfg.APIBaseURL, append(base, opts...)...)
}

// wrapTransport installs the debug transport (if requested) and the bearer
// transport on top of whatever base transport the options left in place.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base, log: c.log}
	}
	if c.bearer == nil {
		c.bearer = &bearerTransport{}
	}
	c.bearer.base = base
	c.http.Transport = c.bearer
}

// stampRequestID gives every request a correlation ID unless the caller set one.
func stampRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(HeaderRequestID) == "" {
		r.SetHeader(HeaderRequestID, uuid.NewString())
	}
	return nil
}

// interceptResponse runs for every response that reaches the client. Failure
// statuses become *HTTPError and pass through the session guard before the
// caller sees them.
func (c *Client) interceptResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode())).Inc()
	if !resp.IsError() {
		return nil
	}
	herr := apierrors.NewHTTPError(req.Method, req.URL, resp.StatusCode(), resp.Body())
	return c.guard.Intercept(req.Context(), herr)
}

// logFailure records transport-level failures; HTTP failures are already
// visible to the caller and the guard.
func (c *Client) logFailure(req *resty.Request, err error) {
	var herr *apierrors.HTTPError
	if errors.As(err, &herr) {
		c.log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL).Msg("request rejected")
		return
	}
	c.log.Warn().Err(err).Str("method", req.Method).Str("url", req.URL).Msg("request failed")
}

// BaseURL returns the prefix applied to relative request paths.
func (c *Client) BaseURL() string { return c.baseURL }

// SetToken installs token as the default bearer credential for every
// subsequent request. An empty token removes the default Authorization header.
func (c *Client) SetToken(token string) { c.bearer.set(token) }

// Token returns the current default credential, or "" when none is set.
func (c *Client) Token() string { return c.bearer.current() }

// Session returns the store wiped when the backend reports an invalid session.
func (c *Client) Session() session.Store { return c.store }

// Location returns the navigator the client redirects through.
func (c *Client) Location() location.Navigator { return c.nav }

// R returns a raw request bound to ctx. Requests built from it share the
// base URL, default credential and session guard of typed operations.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.rc.R().SetContext(ctx)
}

// Close releases the session store if it holds resources. Safe to call
// multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if closer, ok := c.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// --------------------------------------------------------------------
// Backend operations - delegated to internal/api
// --------------------------------------------------------------------

// Health probes the backend.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return api.Health(ctx, c.rc)
}

// Me returns the user the current token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	return api.Me(ctx, c.rc)
}

// ListStores returns every store. Admin only.
func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	return api.ListStores(ctx, c.rc)
}

// CreateStore registers a store. Admin only.
func (c *Client) CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error) {
	return api.CreateStore(ctx, c.rc, req)
}

// CreateUser registers a back-office user. Admin only.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	return api.CreateUser(ctx, c.rc, req)
}

// ListUsers returns every back-office user. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return api.ListUsers(ctx, c.rc)
}

// CreateCustomer enrolls a customer and returns its ID.
func (c *Client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CreatedID, error) {
	return api.CreateCustomer(ctx, c.rc, req)
}

// ListCustomers returns a page of customers, optionally filtered by CPF.
func (c *Client) ListCustomers(ctx context.Context, params ListCustomersParams) (*CustomerPage, error) {
	return api.ListCustomers(ctx, c.rc, params)
}

// RegisterVisit records a visit for the customer identified by CPF or ID.
func (c *Client) RegisterVisit(ctx context.Context, req RegisterVisitRequest) (*VisitAck, error) {
	return api.RegisterVisit(ctx, c.rc, req)
}

// ListVisits returns a page of visits, newest first.
func (c *Client) ListVisits(ctx context.Context, params PageParams) (*VisitPage, error) {
	return api.ListVisits(ctx, c.rc, params)
}

// Redeem hands a gift to a customer who reached the visit goal.
func (c *Client) Redeem(ctx context.Context, req RedeemRequest) (*RedemptionAck, error) {
	return api.Redeem(ctx, c.rc, req)
}

// ListRedemptions returns a page of redemptions, newest first.
func (c *Client) ListRedemptions(ctx context.Context, params PageParams) (*RedemptionPage, error) {
	return api.ListRedemptions(ctx, c.rc, params)
}

// KPIs returns the dashboard counters for the last 30 days.
func (c *Client) KPIs(ctx context.Context) (*KPIs, error) {
	return api.KPIs(ctx, c.rc)
}

// Birthdays returns the customers with a birthday this month.
func (c *Client) Birthdays(ctx context.Context) ([]Customer, error) {
	return api.Birthdays(ctx, c.rc)
}
