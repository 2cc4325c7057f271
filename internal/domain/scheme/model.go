package scheme

import (
	"time"

	"gorm.io/datatypes"
)

type SchemeType string

const (
	SchemeTypeGovernment SchemeType = "Government"
	SchemeTypePrivate    SchemeType = "Private"
)

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeSelect FieldType = "select"
	FieldTypeFile   FieldType = "file"
)

// FormField describes one input of a scheme's dynamic application form.
// Label is the unique key within the scheme; Options apply to select fields.
type FormField struct {
	Label     string    `json:"label"`
	FieldType FieldType `json:"fieldType"`
	Options   []string  `json:"options,omitempty"`
	Required  bool      `json:"required"`
}

// Eligibility is the rule set matched against a citizen profile. A string
// rule is inactive when empty or "Any"; a numeric rule is inactive at zero.
type Eligibility struct {
	AgeMin             int    `gorm:"default:0" json:"ageMin"`
	AgeMax             int    `gorm:"default:0" json:"ageMax"`
	AnnualIncomeMax    int    `gorm:"default:0" json:"annualIncomeMax"`
	State              string `gorm:"size:50" json:"state"`
	Gender             string `gorm:"size:20" json:"gender"`
	CasteCategory      string `gorm:"size:20" json:"casteCategory"`
	Occupation         string `gorm:"size:50" json:"occupation"`
	RequiresBPL        bool   `gorm:"default:false" json:"requiresBPL"`
	RequiresDisability bool   `gorm:"default:false" json:"requiresDisability"`
	EducationLevelMin  int    `gorm:"default:0" json:"educationLevelMin"`
}

type Scheme struct {
	ID                uint                            `gorm:"primaryKey" json:"id"`
	Title             string                          `gorm:"size:200;not null" json:"title"`
	Description       string                          `gorm:"type:text;not null" json:"description"`
	Department        string                          `gorm:"size:100;not null" json:"department"`
	SchemeType        SchemeType                      `gorm:"type:scheme_type;default:'Government';not null" json:"schemeType"`
	OfficialLink      string                          `gorm:"size:255" json:"officialLink"`
	AssignedTo        *uint                           `gorm:"column:assigned_to" json:"assignedTo"` // coordinator, Private schemes only
	Eligibility       Eligibility                     `gorm:"embedded;embeddedPrefix:elig_" json:"eligibility"`
	FormFields        datatypes.JSONSlice[FormField]  `json:"formFields"`
	Benefits          datatypes.JSONSlice[string]     `json:"benefits"`
	HowToApply        string                          `gorm:"type:text" json:"howToApply"`
	DocumentsRequired datatypes.JSONSlice[string]     `json:"documentsRequired"`
	PostedBy          uint                            `json:"postedBy"`
	CreatedAt         time.Time                       `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt         time.Time                       `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Scheme) TableName() string {
	return "schemes"
}

// SavedScheme is a citizen's bookmark. One row per (user, scheme).
type SavedScheme struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_saved_user_scheme" json:"user_id"`
	SchemeID uint      `gorm:"not null;uniqueIndex:idx_saved_user_scheme" json:"scheme_id"`
	SavedAt  time.Time `gorm:"autoCreateTime" json:"saved_at"`
	Scheme   Scheme    `gorm:"foreignKey:SchemeID" json:"scheme"`
}

func (SavedScheme) TableName() string {
	return "saved_schemes"
}
