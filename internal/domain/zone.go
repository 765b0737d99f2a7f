package domain

// Zone represents a domain held in the operator's Cloudflare account
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// PortfolioEntry is the health report of one owned zone
type PortfolioEntry struct {
	Zone         Zone                `json:"zone"`
	Availability AvailabilityVerdict `json:"availability"`
	ExpiryDate   string              `json:"expiry_date,omitempty"`
	Registrar    string              `json:"registrar,omitempty"`
}
