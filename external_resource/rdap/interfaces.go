package rdap

import (
	"context"
	"encoding/json"
	"errors"
)

// RDAP errors
var (
	ErrNoServer     = errors.New("no rdap server found")
	ErrLookupFailed = errors.New("RDAP lookup failed")
)

// Client defines the interface for RDAP domain lookups
type Client interface {
	// Lookup queries the static directory server for the domain's TLD and
	// falls back to bootstrap discovery when that fails or the TLD is unknown.
	Lookup(ctx context.Context, domain string) (*Domain, error)
}

// Discoverer resolves the RDAP base URL responsible for a domain
type Discoverer interface {
	Discover(ctx context.Context, domain string) (string, error)
}

// Domain is the subset of an RDAP domain object used for field extraction
type Domain struct {
	ObjectClassName string       `json:"objectClassName"`
	Handle          string       `json:"handle"`
	LDHName         string       `json:"ldhName"`
	Status          []string     `json:"status"`
	Events          []Event      `json:"events"`
	Entities        []Entity     `json:"entities"`
	Nameservers     []Nameserver `json:"nameservers"`

	// Raw is the response body exactly as served
	Raw json.RawMessage `json:"-"`
	// Server is the base URL that answered
	Server string `json:"-"`
}

// Event is a dated lifecycle event
type Event struct {
	Action string `json:"eventAction"`
	Date   string `json:"eventDate"`
	Actor  string `json:"eventActor,omitempty"`
}

// Entity is a contact attached to the domain
type Entity struct {
	Handle     string          `json:"handle"`
	Roles      []string        `json:"roles"`
	VCardArray json.RawMessage `json:"vcardArray"`
	Entities   []Entity        `json:"entities"`
}

// Nameserver is a delegated name server
type Nameserver struct {
	LDHName string `json:"ldhName"`
}
