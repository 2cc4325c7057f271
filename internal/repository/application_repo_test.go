package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/internal/testutils"
	"gorm.io/gorm"
)

func seedApplication(t *testing.T, db *gorm.DB, tag string, status application.Status) (*repository.Repos, uint) {
	t.Helper()

	repos := repository.NewRepositories(db)

	citizen := user.User{Username: "asha-" + tag, Email: "asha-" + tag + "@test.com", Password: "x"}
	require.NoError(t, repos.User.SaveUser(&citizen))

	sch := scheme.Scheme{
		Title:       "Farmer Support Grant",
		Description: "grant",
		Department:  "Agriculture",
		SchemeType:  scheme.SchemeTypePrivate,
		PostedBy:    citizen.UID,
	}
	require.NoError(t, repos.Scheme.Create(&sch))

	app := application.Application{
		CitizenID: citizen.UID,
		SchemeID:  sch.ID,
		Status:    status,
	}
	require.NoError(t, repos.Application.Create(&app))

	return repos, app.ID
}

func TestUpdateIfStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker or TEST_DB_DSN")
	}

	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	t.Run("updates while status matches", func(t *testing.T) {
		repos, id := seedApplication(t, db, "one", application.StatusPending)

		err := repos.Application.UpdateIfStatus(id,
			[]application.Status{application.StatusPending, application.StatusMoreInfoRequired},
			map[string]interface{}{"status": application.StatusApproved})
		require.NoError(t, err)

		got, err := repos.Application.FindByID(id)
		require.NoError(t, err)
		assert.Equal(t, application.StatusApproved, got.Status)
	})

	t.Run("conflicts once the guard no longer holds", func(t *testing.T) {
		repos, id := seedApplication(t, db, "two", application.StatusPending)

		// First decision wins.
		require.NoError(t, repos.Application.UpdateIfStatus(id,
			[]application.Status{application.StatusPending},
			map[string]interface{}{"status": application.StatusRejected}))

		// Second decision sees a row no longer Pending.
		err := repos.Application.UpdateIfStatus(id,
			[]application.Status{application.StatusPending},
			map[string]interface{}{"status": application.StatusApproved})
		assert.ErrorIs(t, err, repository.ErrConflict)

		got, err := repos.Application.FindByID(id)
		require.NoError(t, err)
		assert.Equal(t, application.StatusRejected, got.Status)
	})

	t.Run("duplicate citizen and scheme pair is rejected", func(t *testing.T) {
		repos, id := seedApplication(t, db, "three", application.StatusPending)

		var existing application.Application
		require.NoError(t, db.First(&existing, id).Error)

		dup := application.Application{
			CitizenID: existing.CitizenID,
			SchemeID:  existing.SchemeID,
			Status:    application.StatusPending,
		}
		err := repos.Application.Create(&dup)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}
