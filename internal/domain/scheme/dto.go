package scheme

type CreateSchemeDTO struct {
	Title             string      `json:"title" binding:"required"`
	Description       string      `json:"description" binding:"required"`
	Department        string      `json:"department" binding:"required"`
	SchemeType        SchemeType  `json:"schemeType" binding:"required,oneof=Government Private"`
	OfficialLink      string      `json:"officialLink"`
	Eligibility       Eligibility `json:"eligibility"`
	FormFields        []FormField `json:"formFields"`
	Benefits          []string    `json:"benefits"`
	HowToApply        string      `json:"howToApply"`
	DocumentsRequired []string    `json:"documentsRequired"`
}

type UpdateSchemeDTO struct {
	Title             *string      `json:"title"`
	Description       *string      `json:"description"`
	Department        *string      `json:"department"`
	SchemeType        *SchemeType  `json:"schemeType" binding:"omitempty,oneof=Government Private"`
	OfficialLink      *string      `json:"officialLink"`
	AssignedTo        *uint        `json:"assignedTo"`
	Eligibility       *Eligibility `json:"eligibility"`
	FormFields        *[]FormField `json:"formFields"`
	Benefits          *[]string    `json:"benefits"`
	HowToApply        *string      `json:"howToApply"`
	DocumentsRequired *[]string    `json:"documentsRequired"`
}

// ListFilter narrows the public catalogue listing.
type ListFilter struct {
	Search     string
	State      string
	Category   string
	Occupation string
	Page       int
}

// RankedScheme pairs a scheme with its eligibility match score.
type RankedScheme struct {
	Scheme
	MatchPercentage int `json:"matchPercentage"`
}

type SaveSchemeDTO struct {
	SchemeID uint `json:"schemeId" binding:"required"`
}
