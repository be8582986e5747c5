// Package maintenance covers the operational event log: incidents raised
// against items, scheduled maintenances and zone cleanings.
package maintenance

import "time"

// Severity of an incident as the backend reports it.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// MaintenanceType distinguishes planned work from repairs.
type MaintenanceType string

const (
	TypePreventive MaintenanceType = "preventive"
	TypeCorrective MaintenanceType = "corrective"
)

type Incident struct {
	ID          int        `json:"id"`
	ItemID      int        `json:"item_id"`
	Description string     `json:"description"`
	Severity    Severity   `json:"severity"`
	Resolved    bool       `json:"resolved"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Maintenance struct {
	ID          int             `json:"id"`
	ItemID      int             `json:"item_id"`
	CompanyID   *int            `json:"company_id"`
	Type        MaintenanceType `json:"type"`
	Description string          `json:"description"`
	ScheduledAt time.Time       `json:"scheduled_at"`
	RealizedAt  *time.Time      `json:"realized_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Cleaning struct {
	ID          int       `json:"id"`
	ZoneID      int       `json:"zone_id"`
	UserID      int       `json:"user_id"`
	PerformedAt time.Time `json:"performed_at"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type IncidentDraft struct {
	ItemID      int      `json:"item_id" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Severity    Severity `json:"severity" validate:"required,oneof=low medium high critical"`
}

type MaintenanceDraft struct {
	ItemID      int             `json:"item_id" validate:"required"`
	CompanyID   *int            `json:"company_id"`
	Type        MaintenanceType `json:"type" validate:"required,oneof=preventive corrective"`
	Description string          `json:"description"`
	ScheduledAt time.Time       `json:"scheduled_at" validate:"required"`
	RealizedAt  *time.Time      `json:"realized_at"`
}

type CleaningDraft struct {
	ZoneID      int       `json:"zone_id" validate:"required"`
	PerformedAt time.Time `json:"performed_at" validate:"required"`
	Notes       string    `json:"notes"`
}
