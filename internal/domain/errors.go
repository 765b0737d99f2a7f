package domain

import "errors"

// Domain errors
var (
	ErrInvalidDomain          = errors.New("invalid domain")
	ErrNoRDAPServer           = errors.New("no rdap server for domain")
	ErrRDAPLookupFailed       = errors.New("rdap lookup failed")
	ErrSourceUnavailable      = errors.New("source unavailable")
	ErrCertificateUnavailable = errors.New("certificate unavailable")
	ErrPortfolioDisabled      = errors.New("portfolio is not configured")
	ErrZoneNotFound           = errors.New("zone not found")
	ErrUnauthorized           = errors.New("unauthorized")
)
