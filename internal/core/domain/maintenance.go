package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceRecord logs a maintenance intervention on an asset.
type MaintenanceRecord struct {
	MaintenanceID  string          `json:"maintenanceID"`
	AssetID        string          `json:"assetID"`
	Description    string          `json:"description"`
	Cost           decimal.Decimal `json:"cost"`
	StartedAt      time.Time       `json:"startedAt"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	PreviousStatus AssetStatus     `json:"previousStatus"`
	AuditFields
}

// IsOpen reports whether the maintenance has not been completed yet.
func (m MaintenanceRecord) IsOpen() bool {
	return m.CompletedAt == nil
}
