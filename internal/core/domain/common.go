package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Granularity is the length of one schedule period.
type Granularity string

const (
	Annual  Granularity = "ANNUAL"
	Monthly Granularity = "MONTHLY"
)

// IsValid reports whether g is a known granularity.
func (g Granularity) IsValid() bool {
	return g == Annual || g == Monthly
}
