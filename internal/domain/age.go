package domain

// DomainAge is derived from the registration creation date
type DomainAge struct {
	Domain       string   `json:"domain"`
	CreationDate *string  `json:"creation_date"`
	AgeDays      *int64   `json:"age_days"`
	AgeYears     *float64 `json:"age_years"`
}
