package types

import (
	"errors"
	"strings"
)

// ErrCustomerSelector is returned when a visit or redemption request names
// neither or both of CPF and ClientID.
var ErrCustomerSelector = errors.New("exactly one of cpf or client_id is required")

// Validate checks the request before it is sent.
func (r RegisterVisitRequest) Validate() error {
	return validateSelector(r.CPF, r.ClientID)
}

// Validate checks the request before it is sent.
func (r RedeemRequest) Validate() error {
	return validateSelector(r.CPF, r.ClientID)
}

// Validate checks the request before it is sent.
func (r CreateStoreRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("store name is required")
	}
	if r.MetaVisitas < 0 {
		return errors.New("meta_visitas must be >= 0")
	}
	return nil
}

func validateSelector(cpf string, clientID int) error {
	hasCPF := strings.TrimSpace(cpf) != ""
	hasID := clientID > 0
	if hasCPF == hasID {
		return ErrCustomerSelector
	}
	return nil
}
