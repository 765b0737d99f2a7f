package domain

// Availability reasons, in priority order
const (
	ReasonNoRecords     = "no WHOIS or DNS records"
	ReasonNoWhois       = "no WHOIS record but has DNS entries"
	ReasonNoDNS         = "WHOIS record present but no DNS entries"
	ReasonRegistered    = "registered and active"
	ReasonErrorChecking = "Error checking domain"
)

// NotFoundMarkers are registry phrases meaning the domain has no registration
var NotFoundMarkers = []string{
	"No matching record",
	"NOT FOUND",
	"No Data Found",
	"domain name not known",
}

// AvailabilityVerdict is the fused WHOIS/DNS availability answer for one domain
type AvailabilityVerdict struct {
	Domain         string `json:"domain"`
	Available      bool   `json:"available"`
	Reason         string `json:"reason"`
	WhoisAvailable *bool  `json:"whois_available"`
	DNSAvailable   *bool  `json:"dns_available"`
}

// BulkCheckResult holds verdicts aligned with the input list
type BulkCheckResult struct {
	Domains []AvailabilityVerdict `json:"domains"`
	Summary BulkCheckSummary      `json:"summary"`
}

// BulkCheckSummary counts are exclusive: Total == Available + Taken + Errors
type BulkCheckSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Taken     int `json:"taken"`
	Errors    int `json:"errors"`
}
