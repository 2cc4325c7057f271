package application

import (
	"time"

	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending          Status = "Pending"
	StatusApproved         Status = "Approved"
	StatusRejected         Status = "Rejected"
	StatusMoreInfoRequired Status = "More Info Required"
)

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ValidDecision reports whether s is a status a coordinator may set.
func (s Status) ValidDecision() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusMoreInfoRequired:
		return true
	}
	return false
}

// Application is a citizen's submission against a Private scheme. The
// unique (citizen_id, scheme_id) index enforces one record per pair; a
// re-submission after More Info Required overwrites the existing row.
type Application struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	CitizenID        uint                        `gorm:"not null;uniqueIndex:idx_app_citizen_scheme" json:"citizen_id"`
	SchemeID         uint                        `gorm:"not null;uniqueIndex:idx_app_citizen_scheme" json:"scheme_id"`
	FormData         datatypes.JSONMap           `json:"formData"`
	Documents        datatypes.JSONSlice[string] `json:"documents"` // legacy flat list, superseded by FormData
	Status           Status                      `gorm:"type:application_status;default:'Pending';not null" json:"status"`
	ReviewedBy       *uint                       `gorm:"column:reviewed_by" json:"reviewedBy"`
	CoordinatorNotes string                      `gorm:"type:text" json:"coordinatorNotes"`
	AppliedAt        time.Time                   `gorm:"autoCreateTime" json:"appliedAt"`
	ReviewedAt       *time.Time                  `json:"reviewedAt"`
	Citizen          user.User                   `gorm:"foreignKey:CitizenID" json:"citizen"`
	Scheme           scheme.Scheme               `gorm:"foreignKey:SchemeID" json:"scheme"`
}

func (Application) TableName() string {
	return "applications"
}
