package domain

import (
	"errors"
	"fmt"
)

type Provider string

const (
	Provider_IOL     Provider = "iol"
	Provider_PPI     Provider = "ppi"
	Provider_Binance Provider = "binance"
)

// ProviderStatus reports, per provider, whether its positions made it
// into the aggregation. A degraded aggregation (one broker down) still
// returns the positions it has; callers use this to annotate sources.
type ProviderStatus struct {
	Provider  Provider `json:"provider"`
	Connected bool     `json:"connected"`
	// Expired means the provider rejected our credentials, as opposed
	// to a generic fetch failure. Callers should prompt reconnection.
	Expired bool   `json:"expired"`
	Error   string `json:"error,omitempty"`
}

// TokenExpiredError signals that a broker session is no longer valid.
// It is kept distinct from generic failures so the caller can prompt
// the user to reconnect instead of showing a generic error.
type TokenExpiredError struct {
	Provider Provider
}

func (e TokenExpiredError) Error() string {
	return fmt.Sprintf("%s token expired", e.Provider)
}

func IsTokenExpired(err error) bool {
	var tokenExpiredErr TokenExpiredError
	return errors.As(err, &tokenExpiredErr)
}

// TransientError wraps upstream failures that are worth retrying:
// rate limits and 5xx responses. Validation and auth errors are never
// wrapped in it.
type TransientError struct {
	Err error
}

func (e TransientError) Error() string {
	return fmt.Sprintf("transient upstream error: %v", e.Err)
}

func (e TransientError) Unwrap() error {
	return e.Err
}

func IsTransient(err error) bool {
	var transientErr TransientError
	return errors.As(err, &transientErr)
}
