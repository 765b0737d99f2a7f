package domain

// CertificateInfo describes the leaf certificate served for a domain
type CertificateInfo struct {
	Domain             string   `json:"domain"`
	Issuer             string   `json:"issuer"`
	Subject            string   `json:"subject"`
	SerialNumber       string   `json:"serial_number"`
	NotBefore          string   `json:"not_before"`
	NotAfter           string   `json:"not_after"`
	SignatureAlgorithm string   `json:"signature_algorithm"`
	SANDomains         []string `json:"san_domains"`
	IsValid            bool     `json:"is_valid"`
	DaysUntilExpiry    *int64   `json:"days_until_expiry"`
}
