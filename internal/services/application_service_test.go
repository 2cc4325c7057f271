package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/domain/notification"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/internal/repository/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupApplicationServiceMocks(t *testing.T) (*ApplicationService, *mock.MockApplicationRepo, *mock.MockSchemeRepo, *mock.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock.NewMockApplicationRepo(ctrl)
	mockScheme := mock.NewMockSchemeRepo(ctrl)
	mockNotif := mock.NewMockNotificationRepo(ctrl)
	repos := &repository.Repos{
		Application:  mockApp,
		Scheme:       mockScheme,
		Notification: mockNotif,
	}
	svc := NewApplicationService(repos)
	return svc, mockApp, mockScheme, mockNotif
}

func privateScheme(id uint, assignedTo *uint) *scheme.Scheme {
	return &scheme.Scheme{
		ID:         id,
		Title:      "Farmer Support Grant",
		SchemeType: scheme.SchemeTypePrivate,
		AssignedTo: assignedTo,
		FormFields: datatypes.NewJSONSlice([]scheme.FormField{
			{Label: "Crop Type", FieldType: scheme.FieldTypeSelect, Options: []string{"Kharif", "Rabi"}, Required: true},
			{Label: "Land Record", FieldType: scheme.FieldTypeFile, Required: true},
		}),
	}
}

// --------------------- Submit ---------------------
func TestSubmit_SchemeNotFound(t *testing.T) {
	svc, _, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Submit(1, 9, nil, nil)
	assert.Equal(t, ErrSchemeNotFound, err)
}

func TestSubmit_GovernmentSchemeRejected(t *testing.T) {
	svc, _, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(2)).Return(&scheme.Scheme{ID: 2, SchemeType: scheme.SchemeTypeGovernment}, nil)

	_, err := svc.Submit(1, 2, nil, nil)
	assert.Equal(t, ErrWrongSchemeType, err)
}

func TestSubmit_DuplicateBlockedWithStatus(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(3)).Return(privateScheme(3, nil), nil)
	mockApp.EXPECT().FindByCitizenAndScheme(uint(1), uint(3)).Return(&application.Application{
		ID:     7,
		Status: application.StatusPending,
	}, nil)

	_, err := svc.Submit(1, 3, nil, nil)

	var dup *DuplicateApplicationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, application.StatusPending, dup.Status)
	assert.Contains(t, dup.Error(), "Pending")
}

func TestSubmit_MalformedFormData(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(3)).Return(privateScheme(3, nil), nil)
	mockApp.EXPECT().FindByCitizenAndScheme(uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Submit(1, 3, []byte(`{"answers": {"nested": true}}`), nil)
	assert.ErrorIs(t, err, application.ErrMalformedPayload)
}

func TestSubmit_FormValidationFailure(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(3)).Return(privateScheme(3, nil), nil)
	mockApp.EXPECT().FindByCitizenAndScheme(uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	// Crop Type outside the select options, Land Record missing.
	_, err := svc.Submit(1, 3, []byte(`{"Crop Type": "Zaid"}`), nil)

	var formErr *FormValidationError
	require.ErrorAs(t, err, &formErr)
	assert.NotEmpty(t, formErr.Problems)
}

func TestSubmit_CreatesApplication(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(3)).Return(privateScheme(3, nil), nil)
	mockApp.EXPECT().FindByCitizenAndScheme(uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)
	mockApp.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *application.Application) error {
		assert.Equal(t, application.StatusPending, a.Status)
		assert.Equal(t, "Rabi", a.FormData["Crop Type"])
		assert.Equal(t, "documents/land.pdf", a.FormData["Land Record"])
		assert.Equal(t, []string{"documents/land.pdf"}, []string(a.Documents))
		a.ID = 42
		return nil
	})
	mockApp.EXPECT().FindByID(uint(42)).Return(&application.Application{ID: 42, Status: application.StatusPending}, nil)

	files := []application.UploadedFile{{FieldLabel: "Land Record", Reference: "documents/land.pdf"}}
	app, err := svc.Submit(1, 3, []byte(`{"Crop Type": "Rabi"}`), files)
	require.NoError(t, err)
	assert.Equal(t, uint(42), app.ID)
}

func TestSubmit_CreateRaceReportsConflict(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(3)).Return(privateScheme(3, nil), nil)
	mockApp.EXPECT().FindByCitizenAndScheme(uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)
	mockApp.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	files := []application.UploadedFile{{FieldLabel: "Land Record", Reference: "documents/land.pdf"}}
	_, err := svc.Submit(1, 3, []byte(`{"Crop Type": "Rabi"}`), files)
	assert.Equal(t, repository.ErrConflict, err)
}

func TestSubmit_ResubmitAfterMoreInfoResetsRecord(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(3)).Return(privateScheme(3, nil), nil)
	mockApp.EXPECT().FindByCitizenAndScheme(uint(1), uint(3)).Return(&application.Application{
		ID:               7,
		Status:           application.StatusMoreInfoRequired,
		CoordinatorNotes: "Land record is illegible",
	}, nil)
	mockApp.EXPECT().
		UpdateIfStatus(uint(7), []application.Status{application.StatusMoreInfoRequired}, gomock.Any()).
		DoAndReturn(func(id uint, expected []application.Status, patch map[string]interface{}) error {
			assert.Equal(t, application.StatusPending, patch["status"])
			assert.Equal(t, "", patch["coordinator_notes"])
			return nil
		})
	mockApp.EXPECT().FindByID(uint(7)).Return(&application.Application{ID: 7, Status: application.StatusPending}, nil)

	files := []application.UploadedFile{{FieldLabel: "Land Record", Reference: "documents/land-v2.pdf"}}
	app, err := svc.Submit(1, 3, []byte(`{"Crop Type": "Rabi"}`), files)
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, app.Status)
}

func TestSubmit_ResubmitRaceReportsConflict(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(3)).Return(privateScheme(3, nil), nil)
	mockApp.EXPECT().FindByCitizenAndScheme(uint(1), uint(3)).Return(&application.Application{
		ID:     7,
		Status: application.StatusMoreInfoRequired,
	}, nil)
	mockApp.EXPECT().
		UpdateIfStatus(uint(7), gomock.Any(), gomock.Any()).
		Return(repository.ErrConflict)

	files := []application.UploadedFile{{FieldLabel: "Land Record", Reference: "documents/land.pdf"}}
	_, err := svc.Submit(1, 3, []byte(`{"Crop Type": "Rabi"}`), files)
	assert.Equal(t, repository.ErrConflict, err)
}

// --------------------- ReviewDecision ---------------------
func pendingApplication(coordinatorID uint) *application.Application {
	assigned := coordinatorID
	return &application.Application{
		ID:        7,
		CitizenID: 1,
		SchemeID:  3,
		Status:    application.StatusPending,
		Scheme:    *privateScheme(3, &assigned),
	}
}

func TestReviewDecision_InvalidStatus(t *testing.T) {
	svc, _, _, _ := setupApplicationServiceMocks(t)

	_, err := svc.ReviewDecision(2, 7, "Escalated", "")
	assert.Equal(t, ErrInvalidStatus, err)

	_, err = svc.ReviewDecision(2, 7, "Pending", "")
	assert.Equal(t, ErrInvalidStatus, err)
}

func TestReviewDecision_ApplicationNotFound(t *testing.T) {
	svc, mockApp, _, _ := setupApplicationServiceMocks(t)

	mockApp.EXPECT().FindByID(uint(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ReviewDecision(2, 7, "Approved", "")
	assert.Equal(t, ErrApplicationNotFound, err)
}

func TestReviewDecision_WrongCoordinator(t *testing.T) {
	svc, mockApp, _, _ := setupApplicationServiceMocks(t)

	mockApp.EXPECT().FindByID(uint(7)).Return(pendingApplication(2), nil)

	_, err := svc.ReviewDecision(99, 7, "Approved", "")
	assert.Equal(t, ErrNotAuthorized, err)
}

func TestReviewDecision_UnassignedScheme(t *testing.T) {
	svc, mockApp, _, _ := setupApplicationServiceMocks(t)

	app := pendingApplication(2)
	app.Scheme.AssignedTo = nil
	mockApp.EXPECT().FindByID(uint(7)).Return(app, nil)

	_, err := svc.ReviewDecision(2, 7, "Approved", "")
	assert.Equal(t, ErrNotAuthorized, err)
}

func TestReviewDecision_AlreadyFinal(t *testing.T) {
	svc, mockApp, _, _ := setupApplicationServiceMocks(t)

	app := pendingApplication(2)
	app.Status = application.StatusApproved
	mockApp.EXPECT().FindByID(uint(7)).Return(app, nil)

	_, err := svc.ReviewDecision(2, 7, "Rejected", "changed my mind")
	assert.Equal(t, ErrAlreadyReviewed, err)
}

func TestReviewDecision_NotesRequiredForRejection(t *testing.T) {
	svc, mockApp, _, _ := setupApplicationServiceMocks(t)

	mockApp.EXPECT().FindByID(uint(7)).Return(pendingApplication(2), nil)

	_, err := svc.ReviewDecision(2, 7, "Rejected", "")
	assert.Equal(t, ErrNotesRequired, err)
}

func TestReviewDecision_NotesRequiredForMoreInfo(t *testing.T) {
	svc, mockApp, _, _ := setupApplicationServiceMocks(t)

	mockApp.EXPECT().FindByID(uint(7)).Return(pendingApplication(2), nil)

	_, err := svc.ReviewDecision(2, 7, "More Info Required", "")
	assert.Equal(t, ErrNotesRequired, err)
}

func TestReviewDecision_ApproveNotifiesCitizen(t *testing.T) {
	svc, mockApp, _, mockNotif := setupApplicationServiceMocks(t)

	mockApp.EXPECT().FindByID(uint(7)).Return(pendingApplication(2), nil)
	mockApp.EXPECT().
		UpdateIfStatus(uint(7), []application.Status{application.StatusPending, application.StatusMoreInfoRequired}, gomock.Any()).
		DoAndReturn(func(id uint, expected []application.Status, patch map[string]interface{}) error {
			assert.Equal(t, application.StatusApproved, patch["status"])
			// Approval discards any notes and stamps the review time.
			assert.Equal(t, "", patch["coordinator_notes"])
			assert.Equal(t, uint(2), patch["reviewed_by"])
			assert.Contains(t, patch, "reviewed_at")
			return nil
		})
	mockNotif.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		assert.Equal(t, uint(1), n.UserID)
		assert.Equal(t, `Your application for "Farmer Support Grant" has been Approved!`, n.Message)
		assert.Equal(t, "/my-applications", n.Link)
		return nil
	})
	mockApp.EXPECT().FindByID(uint(7)).Return(&application.Application{ID: 7, Status: application.StatusApproved}, nil)

	app, err := svc.ReviewDecision(2, 7, "Approved", "looks great")
	require.NoError(t, err)
	assert.Equal(t, application.StatusApproved, app.Status)
}

func TestReviewDecision_MoreInfoKeepsNotesAndStaysOpen(t *testing.T) {
	svc, mockApp, _, mockNotif := setupApplicationServiceMocks(t)

	mockApp.EXPECT().FindByID(uint(7)).Return(pendingApplication(2), nil)
	mockApp.EXPECT().
		UpdateIfStatus(uint(7), gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uint, expected []application.Status, patch map[string]interface{}) error {
			assert.Equal(t, application.StatusMoreInfoRequired, patch["status"])
			assert.Equal(t, "Land record is illegible", patch["coordinator_notes"])
			// Not a final decision, so no review timestamp.
			assert.NotContains(t, patch, "reviewed_at")
			return nil
		})
	mockNotif.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		assert.Equal(t, `More information is required for your application for "Farmer Support Grant".`, n.Message)
		return nil
	})
	mockApp.EXPECT().FindByID(uint(7)).Return(&application.Application{ID: 7, Status: application.StatusMoreInfoRequired}, nil)

	_, err := svc.ReviewDecision(2, 7, "More Info Required", "Land record is illegible")
	assert.NoError(t, err)
}

func TestReviewDecision_ConcurrentDecisionLoses(t *testing.T) {
	svc, mockApp, _, _ := setupApplicationServiceMocks(t)

	mockApp.EXPECT().FindByID(uint(7)).Return(pendingApplication(2), nil)
	mockApp.EXPECT().
		UpdateIfStatus(uint(7), gomock.Any(), gomock.Any()).
		Return(repository.ErrConflict)

	_, err := svc.ReviewDecision(2, 7, "Approved", "")
	assert.Equal(t, repository.ErrConflict, err)
}

// --------------------- CoordinatorDashboard ---------------------
func TestCoordinatorDashboard_Counts(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	ids := []uint{3, 4}
	mockScheme.EXPECT().AssignedSchemeIDs(uint(2)).Return(ids, nil)
	mockApp.EXPECT().CountByStatusForSchemes(application.StatusPending, ids).Return(int64(5), nil)
	mockApp.EXPECT().CountReviewedBy(uint(2), application.StatusApproved, ids).Return(int64(3), nil)
	mockApp.EXPECT().CountReviewedBy(uint(2), application.StatusRejected, ids).Return(int64(2), nil)

	stats, err := svc.CoordinatorDashboard(2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.PendingCount)
	assert.Equal(t, int64(3), stats.ApprovedCount)
	assert.Equal(t, int64(2), stats.RejectedCount)
	assert.Equal(t, int64(5), stats.TotalReviewedByMe)
}

// --------------------- ListForCoordinator ---------------------
func TestListForCoordinator_NoAssignedSchemes(t *testing.T) {
	svc, mockApp, mockScheme, _ := setupApplicationServiceMocks(t)

	mockScheme.EXPECT().AssignedSchemeIDs(uint(2)).Return([]uint{}, nil)
	mockApp.EXPECT().ListForCoordinator([]uint{}, application.CoordinatorFilter{}).Return([]application.Application{}, nil)

	apps, err := svc.ListForCoordinator(2, application.CoordinatorFilter{})
	require.NoError(t, err)
	assert.Empty(t, apps)
}
