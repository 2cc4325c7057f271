package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/domain/notification"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrWrongSchemeType     = errors.New("this is a government scheme, please apply on the official website")
	ErrInvalidStatus       = errors.New("invalid status provided")
	ErrNotAuthorized       = errors.New("not authorized for this application's scheme")
	ErrAlreadyReviewed     = errors.New("application is already in a final state")
	ErrNotesRequired       = errors.New("notes are required to reject or request more info")
)

// DuplicateApplicationError blocks a re-application while a decision is
// pending or final; it carries the existing status for caller display.
type DuplicateApplicationError struct {
	Status application.Status
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("you have already applied for this scheme, your status is: %s", e.Status)
}

// FormValidationError reports a submission payload that does not conform to
// the scheme's form definition.
type FormValidationError struct {
	Problems []string
}

func (e *FormValidationError) Error() string {
	return "form data does not match the scheme's form: " + strings.Join(e.Problems, "; ")
}

type ApplicationService struct {
	Repos *repository.Repos
}

func NewApplicationService(repos *repository.Repos) *ApplicationService {
	return &ApplicationService{Repos: repos}
}

// Submit files an application for a Private scheme. Validation order:
// scheme existence, scheme type, duplicate status, payload parse, form
// shape. A record left in More Info Required is overwritten in place
// (status back to Pending, notes cleared); the conditional update makes
// concurrent re-submissions lose with a conflict instead of double-writing.
func (s *ApplicationService) Submit(citizenID, schemeID uint, rawFormData []byte, files []application.UploadedFile) (*application.Application, error) {
	sch, err := s.Repos.Scheme.FindByID(schemeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchemeNotFound
		}
		return nil, err
	}
	if sch.SchemeType != scheme.SchemeTypePrivate {
		return nil, ErrWrongSchemeType
	}

	existing, err := s.Repos.Application.FindByCitizenAndScheme(citizenID, schemeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status != application.StatusMoreInfoRequired {
		return nil, &DuplicateApplicationError{Status: existing.Status}
	}

	formData, legacyDocuments, err := application.MergeSubmission(rawFormData, files)
	if err != nil {
		return nil, err
	}
	if err := validateFormData(sch.FormFields, formData); err != nil {
		return nil, err
	}

	if existing != nil {
		// Re-submission path. Prior reviewedBy/reviewedAt are left as-is to
		// preserve the provenance of the earlier review cycle.
		patch := map[string]interface{}{
			"form_data":         datatypes.JSONMap(formData),
			"documents":         datatypes.NewJSONSlice(legacyDocuments),
			"status":            application.StatusPending,
			"coordinator_notes": "",
		}
		err := s.Repos.ExecTx(func(tx *repository.Repos) error {
			return tx.Application.UpdateIfStatus(existing.ID, []application.Status{application.StatusMoreInfoRequired}, patch)
		})
		if err != nil {
			return nil, err
		}
		return s.Repos.Application.FindByID(existing.ID)
	}

	app := &application.Application{
		CitizenID: citizenID,
		SchemeID:  schemeID,
		FormData:  datatypes.JSONMap(formData),
		Documents: datatypes.NewJSONSlice(legacyDocuments),
		Status:    application.StatusPending,
		AppliedAt: time.Now(),
	}
	if err := s.Repos.Application.Create(app); err != nil {
		// The unique (citizen, scheme) index catches the concurrent
		// first-submission race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repository.ErrConflict
		}
		return nil, err
	}
	return s.Repos.Application.FindByID(app.ID)
}

func validateFormData(fields []scheme.FormField, formData map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(scheme.FormSchema(fields))
	documentLoader := gojsonschema.NewGoLoader(formData)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &FormValidationError{Problems: problems}
}

func notificationMessage(status application.Status, schemeTitle string) string {
	switch status {
	case application.StatusApproved:
		return fmt.Sprintf("Your application for %q has been Approved!", schemeTitle)
	case application.StatusRejected:
		return fmt.Sprintf("Your application for %q has been Rejected.", schemeTitle)
	case application.StatusMoreInfoRequired:
		return fmt.Sprintf("More information is required for your application for %q.", schemeTitle)
	}
	return ""
}

// ReviewDecision applies a coordinator's verdict. The status write and the
// citizen notification happen in one transaction; a decision racing another
// decision or a re-submission loses with a conflict.
func (s *ApplicationService) ReviewDecision(coordinatorID, applicationID uint, newStatus, notes string) (*application.Application, error) {
	status := application.Status(newStatus)
	if !status.ValidDecision() {
		return nil, ErrInvalidStatus
	}

	app, err := s.Repos.Application.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	// A coordinator may only ever touch applications for schemes assigned
	// to them.
	if app.Scheme.AssignedTo == nil || *app.Scheme.AssignedTo != coordinatorID {
		return nil, ErrNotAuthorized
	}

	if app.Status.Terminal() {
		return nil, ErrAlreadyReviewed
	}

	if (status == application.StatusRejected || status == application.StatusMoreInfoRequired) && notes == "" {
		return nil, ErrNotesRequired
	}

	coordinatorNotes := notes
	if status == application.StatusApproved {
		coordinatorNotes = ""
	}

	patch := map[string]interface{}{
		"status":            status,
		"coordinator_notes": coordinatorNotes,
		"reviewed_by":       coordinatorID,
	}
	if status.Terminal() {
		patch["reviewed_at"] = time.Now()
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		pending := []application.Status{application.StatusPending, application.StatusMoreInfoRequired}
		if err := tx.Application.UpdateIfStatus(applicationID, pending, patch); err != nil {
			return err
		}
		return tx.Notification.Create(&notification.Notification{
			UserID:  app.CitizenID,
			Message: notificationMessage(status, app.Scheme.Title),
			Link:    "/my-applications",
		})
	})
	if err != nil {
		return nil, err
	}

	return s.Repos.Application.FindByID(applicationID)
}

func (s *ApplicationService) MyApplications(citizenID uint) ([]application.Application, error) {
	return s.Repos.Application.FindByCitizen(citizenID)
}

// GetForCoordinator loads one application, enforcing scheme assignment.
func (s *ApplicationService) GetForCoordinator(coordinatorID, applicationID uint) (*application.Application, error) {
	app, err := s.Repos.Application.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if app.Scheme.AssignedTo == nil || *app.Scheme.AssignedTo != coordinatorID {
		return nil, ErrNotAuthorized
	}
	return app, nil
}

// ListForCoordinator returns applications for the coordinator's assigned
// schemes, optionally narrowed by status and citizen search term.
func (s *ApplicationService) ListForCoordinator(coordinatorID uint, filter application.CoordinatorFilter) ([]application.Application, error) {
	schemeIDs, err := s.Repos.Scheme.AssignedSchemeIDs(coordinatorID)
	if err != nil {
		return nil, err
	}
	return s.Repos.Application.ListForCoordinator(schemeIDs, filter)
}

func (s *ApplicationService) CoordinatorDashboard(coordinatorID uint) (application.DashboardStats, error) {
	schemeIDs, err := s.Repos.Scheme.AssignedSchemeIDs(coordinatorID)
	if err != nil {
		return application.DashboardStats{}, err
	}

	pending, err := s.Repos.Application.CountByStatusForSchemes(application.StatusPending, schemeIDs)
	if err != nil {
		return application.DashboardStats{}, err
	}
	approved, err := s.Repos.Application.CountReviewedBy(coordinatorID, application.StatusApproved, schemeIDs)
	if err != nil {
		return application.DashboardStats{}, err
	}
	rejected, err := s.Repos.Application.CountReviewedBy(coordinatorID, application.StatusRejected, schemeIDs)
	if err != nil {
		return application.DashboardStats{}, err
	}

	return application.DashboardStats{
		PendingCount:      pending,
		ApprovedCount:     approved,
		RejectedCount:     rejected,
		TotalReviewedByMe: approved + rejected,
	}, nil
}
