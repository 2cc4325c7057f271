package application

// SubmitApplicationDTO carries the multipart submit request: the scheme id
// and the JSON blob of text answers. File parts arrive separately, keyed by
// their form-field label.
type SubmitApplicationDTO struct {
	SchemeID uint   `form:"schemeId" binding:"required"`
	FormData string `form:"formData"`
}

type ReviewDecisionDTO struct {
	Status           string `json:"status" binding:"required"`
	CoordinatorNotes string `json:"coordinatorNotes"`
}

// CoordinatorFilter narrows a coordinator's application listing. Search
// matches citizen username or email, case-insensitive substring.
type CoordinatorFilter struct {
	Status Status
	Search string
}

// DashboardStats summarizes a coordinator's assigned workload.
type DashboardStats struct {
	PendingCount      int64 `json:"pendingCount"`
	ApprovedCount     int64 `json:"approvedCount"`
	RejectedCount     int64 `json:"rejectedCount"`
	TotalReviewedByMe int64 `json:"totalReviewedByMe"`
}

// StatusCount is one slice of the admin status breakdown.
type StatusCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DepartmentCount is one slice of the admin department breakdown.
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
