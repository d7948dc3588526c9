package client

import (
	apierrors "github.com/fidelidade/fidelidade-client/client/internal/errors"
	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

// HTTPError is returned for every backend response with a status of 400 or above.
type HTTPError = apierrors.HTTPError

// ErrCustomerSelector is returned when a visit or redemption names neither or
// both of CPF and customer ID.
var ErrCustomerSelector = types.ErrCustomerSelector

// IsSessionInvalid reports whether err is a 401 or 422 from the backend.
func IsSessionInvalid(err error) bool { return apierrors.IsSessionInvalid(err) }

// StatusCode returns the HTTP status carried by err, or 0 for non-HTTP failures.
func StatusCode(err error) int { return apierrors.StatusCode(err) }
