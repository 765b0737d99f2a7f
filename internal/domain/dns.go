package domain

// DNS record types queried for every lookup
const (
	RecordTypeA     = "A"
	RecordTypeAAAA  = "AAAA"
	RecordTypeMX    = "MX"
	RecordTypeTXT   = "TXT"
	RecordTypeNS    = "NS"
	RecordTypeCNAME = "CNAME"
	RecordTypeSOA   = "SOA"
)

// RecordTypes lists the record types resolved for a domain, in report order
var RecordTypes = []string{
	RecordTypeA,
	RecordTypeAAAA,
	RecordTypeMX,
	RecordTypeTXT,
	RecordTypeNS,
	RecordTypeCNAME,
	RecordTypeSOA,
}

// IsValidRecordType checks if the given type is one of the resolved record types
func IsValidRecordType(recordType string) bool {
	for _, t := range RecordTypes {
		if t == recordType {
			return true
		}
	}
	return false
}

// DNSLookupResult is the per-domain record set built fresh on every lookup
type DNSLookupResult struct {
	Domain       string     `json:"domain"`
	ARecords     []string   `json:"a_records"`
	AAAARecords  []string   `json:"aaaa_records"`
	MXRecords    []MXRecord `json:"mx_records"`
	TXTRecords   []string   `json:"txt_records"`
	NSRecords    []string   `json:"ns_records"`
	CNAMERecords []string   `json:"cname_records"`
	SOARecord    *SOARecord `json:"soa_record"`
}

// HasAddressOrDelegation reports whether any A, AAAA or NS record was found
func (r *DNSLookupResult) HasAddressOrDelegation() bool {
	return len(r.ARecords) > 0 || len(r.AAAARecords) > 0 || len(r.NSRecords) > 0
}

// MXRecord is a parsed mail exchanger entry
type MXRecord struct {
	Priority uint16 `json:"priority"`
	Exchange string `json:"exchange"`
}

// SOARecord is a parsed start-of-authority entry
type SOARecord struct {
	PrimaryNS        string `json:"primary_ns"`
	ResponsibleParty string `json:"responsible_party"`
	Serial           uint32 `json:"serial"`
	Refresh          int32  `json:"refresh"`
	Retry            int32  `json:"retry"`
	Expire           int32  `json:"expire"`
	Minimum          uint32 `json:"minimum"`
}

// DNSRecord is a flat record entry for external consumption
type DNSRecord struct {
	RecordType string  `json:"record_type"`
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	TTL        *uint32 `json:"ttl"`
}
