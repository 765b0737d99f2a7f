package domain

// WhoisRecord is the uniform registration record produced by one lookup.
// It comes from exactly one source and is never merged across sources.
type WhoisRecord struct {
	Domain        string   `json:"domain"`
	Registrar     string   `json:"registrar,omitempty"`
	Registrant    string   `json:"registrant,omitempty"`
	CreationDate  string   `json:"creation_date,omitempty"`
	ExpiryDate    string   `json:"expiry_date,omitempty"`
	UpdatedDate   string   `json:"updated_date,omitempty"`
	NameServers   []string `json:"name_servers"`
	Status        []string `json:"status"`
	RawData       string   `json:"raw_data"`
	RDAPAvailable bool     `json:"rdap_available"`
}

// NewUnknownWhoisRecord builds the degraded record returned when every source failed
func NewUnknownWhoisRecord(domain, raw string) *WhoisRecord {
	return &WhoisRecord{
		Domain:      domain,
		NameServers: []string{},
		Status:      []string{},
		RawData:     raw,
	}
}
