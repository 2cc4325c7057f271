package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/internal/repository/mock"
	"github.com/yojanasetu/portal-go/pkg/types"
	"gorm.io/gorm"
)

func setupSchemeServiceMocks(t *testing.T) (*SchemeService, *mock.MockSchemeRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockScheme := mock.NewMockSchemeRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		Scheme: mockScheme,
		User:   mockUser,
	}
	svc := NewSchemeService(repos)
	return svc, mockScheme, mockUser
}

// --------------------- RankEligibleSchemes ---------------------
func TestRankEligibleSchemes_ProfileIncomplete(t *testing.T) {
	svc, _, mockUser := setupSchemeServiceMocks(t)

	// Missing gender.
	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{
		UID:     1,
		Profile: user.Profile{Age: 30, State: "Kerala"},
	}, nil)

	_, err := svc.RankEligibleSchemes(1)
	assert.Equal(t, ErrProfileIncomplete, err)
}

func TestRankEligibleSchemes_SortsByScoreDescending(t *testing.T) {
	svc, mockScheme, mockUser := setupSchemeServiceMocks(t)

	profile := user.Profile{Age: 30, State: "Kerala", Gender: "Female"}
	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Profile: profile}, nil)

	catalogue := []scheme.Scheme{
		{ID: 1, Title: "Wrong State", Eligibility: scheme.Eligibility{State: "Punjab"}},
		{ID: 2, Title: "Open To All"},
		{ID: 3, Title: "Half Match", Eligibility: scheme.Eligibility{State: "Kerala", Gender: "Male"}},
	}
	mockScheme.EXPECT().FindAll().Return(catalogue, nil)

	ranked, err := svc.RankEligibleSchemes(1)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, uint(2), ranked[0].ID)
	assert.Equal(t, 100, ranked[0].MatchPercentage)
	assert.Equal(t, uint(3), ranked[1].ID)
	assert.Equal(t, 50, ranked[1].MatchPercentage)
	assert.Equal(t, uint(1), ranked[2].ID)
	assert.Equal(t, 0, ranked[2].MatchPercentage)
}

func TestRankEligibleSchemes_TiesKeepCatalogueOrder(t *testing.T) {
	svc, mockScheme, mockUser := setupSchemeServiceMocks(t)

	profile := user.Profile{Age: 30, State: "Kerala", Gender: "Female"}
	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Profile: profile}, nil)

	catalogue := []scheme.Scheme{
		{ID: 10, Title: "First"},
		{ID: 11, Title: "Second"},
		{ID: 12, Title: "Third"},
	}
	mockScheme.EXPECT().FindAll().Return(catalogue, nil)

	ranked, err := svc.RankEligibleSchemes(1)
	require.NoError(t, err)

	assert.Equal(t, []uint{10, 11, 12}, []uint{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

// --------------------- CreateScheme ---------------------
func TestCreateScheme_OfficialLinkOnlyForGovernment(t *testing.T) {
	svc, mockScheme, _ := setupSchemeServiceMocks(t)

	mockScheme.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *scheme.Scheme) error {
		assert.Empty(t, s.OfficialLink)
		return nil
	})

	input := scheme.CreateSchemeDTO{
		Title:        "Seed Fund",
		Description:  "desc",
		Department:   "Skill Development",
		SchemeType:   scheme.SchemeTypePrivate,
		OfficialLink: "https://example.com",
	}
	sch, err := svc.CreateScheme(1, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), sch.PostedBy)
}

// --------------------- UpdateScheme ---------------------
func TestUpdateScheme_AssigneeMustBeCoordinator(t *testing.T) {
	svc, mockScheme, mockUser := setupSchemeServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(5)).Return(&scheme.Scheme{ID: 5}, nil)
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, Role: types.RoleCitizen}, nil)

	assignee := uint(2)
	_, err := svc.UpdateScheme(5, scheme.UpdateSchemeDTO{AssignedTo: &assignee})
	assert.Equal(t, ErrNotACoordinator, err)
}

func TestUpdateScheme_AssignCoordinator(t *testing.T) {
	svc, mockScheme, mockUser := setupSchemeServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(5)).Return(&scheme.Scheme{ID: 5}, nil)
	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, Role: types.RoleCoordinator}, nil)
	mockScheme.EXPECT().Update(gomock.Any()).Return(nil)

	assignee := uint(3)
	sch, err := svc.UpdateScheme(5, scheme.UpdateSchemeDTO{AssignedTo: &assignee})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), *sch.AssignedTo)
}

func TestUpdateScheme_NotFound(t *testing.T) {
	svc, mockScheme, _ := setupSchemeServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateScheme(99, scheme.UpdateSchemeDTO{})
	assert.Equal(t, ErrSchemeNotFound, err)
}

// --------------------- SaveScheme ---------------------
func TestSaveScheme_AlreadySaved(t *testing.T) {
	svc, mockScheme, _ := setupSchemeServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(4)).Return(&scheme.Scheme{ID: 4}, nil)
	mockScheme.EXPECT().IsSaved(uint(1), uint(4)).Return(true, nil)

	err := svc.SaveScheme(1, 4)
	assert.Equal(t, ErrSchemeAlreadySaved, err)
}

func TestSaveScheme_Success(t *testing.T) {
	svc, mockScheme, _ := setupSchemeServiceMocks(t)

	mockScheme.EXPECT().FindByID(uint(4)).Return(&scheme.Scheme{ID: 4}, nil)
	mockScheme.EXPECT().IsSaved(uint(1), uint(4)).Return(false, nil)
	mockScheme.EXPECT().SaveScheme(uint(1), uint(4)).Return(nil)

	assert.NoError(t, svc.SaveScheme(1, 4))
}
