package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/internal/testutils"
	"github.com/yojanasetu/portal-go/pkg/types"
	"gorm.io/datatypes"
)

// Drives one application through submit, a "More Info Required" decision,
// re-submission and final approval against a real database, and checks the
// citizen ends up with exactly the two decision notifications.
func TestApplicationLifecycle_MoreInfoThenApprove(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker or TEST_DB_DSN")
	}

	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := repository.NewRepositories(db)
	svc := NewApplicationService(repos)

	citizen := user.User{Username: "meera", Email: "meera@test.com", Password: "x"}
	require.NoError(t, repos.User.SaveUser(&citizen))

	coordinator := user.User{Username: "ravi", Email: "ravi@test.com", Password: "x", Role: types.RoleCoordinator}
	require.NoError(t, repos.User.SaveUser(&coordinator))

	sch := scheme.Scheme{
		Title:       "Widow Pension Scheme",
		Description: "monthly pension",
		Department:  "Social Welfare",
		SchemeType:  scheme.SchemeTypePrivate,
		AssignedTo:  &coordinator.UID,
		PostedBy:    coordinator.UID,
		FormFields: datatypes.NewJSONSlice([]scheme.FormField{
			{Label: "Bank Account Number", FieldType: scheme.FieldTypeText, Required: true},
			{Label: "Death Certificate", FieldType: scheme.FieldTypeFile, Required: true},
		}),
	}
	require.NoError(t, repos.Scheme.Create(&sch))

	submitted, err := svc.Submit(citizen.UID, sch.ID,
		[]byte(`{"Bank Account Number": "110022334455"}`),
		[]application.UploadedFile{{FieldLabel: "Death Certificate", Reference: "documents/dc-1.pdf"}})
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, submitted.Status)

	_, err = svc.ReviewDecision(coordinator.UID, submitted.ID,
		string(application.StatusMoreInfoRequired), "Certificate is illegible, upload a clearer scan")
	require.NoError(t, err)

	resubmitted, err := svc.Submit(citizen.UID, sch.ID,
		[]byte(`{"Bank Account Number": "110022334455"}`),
		[]application.UploadedFile{{FieldLabel: "Death Certificate", Reference: "documents/dc-2.pdf"}})
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, resubmitted.ID)
	assert.Equal(t, application.StatusPending, resubmitted.Status)
	assert.Empty(t, resubmitted.CoordinatorNotes)
	assert.Equal(t, "documents/dc-2.pdf", resubmitted.FormData["Death Certificate"])

	approved, err := svc.ReviewDecision(coordinator.UID, submitted.ID,
		string(application.StatusApproved), "")
	require.NoError(t, err)
	assert.Equal(t, application.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, coordinator.UID, *approved.ReviewedBy)

	// The full cycle produces exactly the two decision notifications.
	got, err := repos.Notification.FindUnreadByUser(citizen.UID, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, `More information is required for your application for "Widow Pension Scheme".`, got[0].Message)
	assert.Equal(t, `Your application for "Widow Pension Scheme" has been Approved!`, got[1].Message)
	for _, n := range got {
		assert.Equal(t, citizen.UID, n.UserID)
		assert.Equal(t, "/my-applications", n.Link)
	}
}
