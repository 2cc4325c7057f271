package services

import (
	"errors"
	"sort"

	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/pkg/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSchemeNotFound     = errors.New("scheme not found")
	ErrProfileIncomplete  = errors.New("please update your profile to check eligibility")
	ErrSchemeAlreadySaved = errors.New("scheme already saved")
	ErrNotACoordinator    = errors.New("assignee is not a coordinator")
)

type SchemeService struct {
	Repos *repository.Repos
}

func NewSchemeService(repos *repository.Repos) *SchemeService {
	return &SchemeService{Repos: repos}
}

// SchemePage is one page of the public catalogue.
type SchemePage struct {
	Schemes []scheme.Scheme `json:"schemes"`
	Page    int             `json:"page"`
	Pages   int64           `json:"pages"`
}

func (s *SchemeService) ListSchemes(filter scheme.ListFilter) (SchemePage, error) {
	schemes, count, err := s.Repos.Scheme.FindFiltered(filter)
	if err != nil {
		return SchemePage{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pages := (count + 9) / 10

	return SchemePage{Schemes: schemes, Page: page, Pages: pages}, nil
}

func (s *SchemeService) GetScheme(id uint) (*scheme.Scheme, error) {
	sch, err := s.Repos.Scheme.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchemeNotFound
		}
		return nil, err
	}
	return sch, nil
}

func (s *SchemeService) CreateScheme(postedBy uint, input scheme.CreateSchemeDTO) (*scheme.Scheme, error) {
	officialLink := input.OfficialLink
	if input.SchemeType != scheme.SchemeTypeGovernment {
		officialLink = ""
	}

	sch := &scheme.Scheme{
		Title:             input.Title,
		Description:       input.Description,
		Department:        input.Department,
		SchemeType:        input.SchemeType,
		OfficialLink:      officialLink,
		Eligibility:       input.Eligibility,
		FormFields:        datatypes.NewJSONSlice(input.FormFields),
		Benefits:          datatypes.NewJSONSlice(input.Benefits),
		HowToApply:        input.HowToApply,
		DocumentsRequired: datatypes.NewJSONSlice(input.DocumentsRequired),
		PostedBy:          postedBy,
	}
	if err := s.Repos.Scheme.Create(sch); err != nil {
		return nil, err
	}
	return sch, nil
}

func (s *SchemeService) UpdateScheme(id uint, input scheme.UpdateSchemeDTO) (*scheme.Scheme, error) {
	sch, err := s.Repos.Scheme.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchemeNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		sch.Title = *input.Title
	}
	if input.Description != nil {
		sch.Description = *input.Description
	}
	if input.Department != nil {
		sch.Department = *input.Department
	}
	if input.SchemeType != nil {
		sch.SchemeType = *input.SchemeType
	}
	if input.OfficialLink != nil {
		sch.OfficialLink = *input.OfficialLink
	}
	if input.AssignedTo != nil {
		if err := s.checkCoordinator(*input.AssignedTo); err != nil {
			return nil, err
		}
		sch.AssignedTo = input.AssignedTo
	}
	if input.Eligibility != nil {
		sch.Eligibility = *input.Eligibility
	}
	if input.FormFields != nil {
		sch.FormFields = datatypes.NewJSONSlice(*input.FormFields)
	}
	if input.Benefits != nil {
		sch.Benefits = datatypes.NewJSONSlice(*input.Benefits)
	}
	if input.HowToApply != nil {
		sch.HowToApply = *input.HowToApply
	}
	if input.DocumentsRequired != nil {
		sch.DocumentsRequired = datatypes.NewJSONSlice(*input.DocumentsRequired)
	}

	if err := s.Repos.Scheme.Update(sch); err != nil {
		return nil, err
	}
	return sch, nil
}

func (s *SchemeService) checkCoordinator(uid uint) error {
	usr, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if usr.Role != types.RoleCoordinator {
		return ErrNotACoordinator
	}
	return nil
}

func (s *SchemeService) DeleteScheme(id uint) error {
	if _, err := s.Repos.Scheme.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSchemeNotFound
		}
		return err
	}
	return s.Repos.Scheme.Delete(id)
}

// RankEligibleSchemes scores the whole catalogue against the citizen's
// profile and returns it sorted by match percentage, highest first. The
// sort is stable so repeated calls over an unchanged catalogue keep the
// catalogue's insertion order between equal scores.
func (s *SchemeService) RankEligibleSchemes(citizenID uint) ([]scheme.RankedScheme, error) {
	usr, err := s.Repos.User.GetUserByID(citizenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !usr.Profile.Complete() {
		return nil, ErrProfileIncomplete
	}

	schemes, err := s.Repos.Scheme.FindAll()
	if err != nil {
		return nil, err
	}

	ranked := make([]scheme.RankedScheme, 0, len(schemes))
	for _, sch := range schemes {
		ranked = append(ranked, scheme.RankedScheme{
			Scheme:          sch,
			MatchPercentage: scheme.MatchPercentage(sch.Eligibility, usr.Profile),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	return ranked, nil
}

// ListAssigned returns the schemes a coordinator is responsible for.
func (s *SchemeService) ListAssigned(coordinatorID uint) ([]scheme.Scheme, error) {
	return s.Repos.Scheme.FindByAssignee(coordinatorID)
}

func (s *SchemeService) SaveScheme(userID, schemeID uint) error {
	if _, err := s.Repos.Scheme.FindByID(schemeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSchemeNotFound
		}
		return err
	}

	saved, err := s.Repos.Scheme.IsSaved(userID, schemeID)
	if err != nil {
		return err
	}
	if saved {
		return ErrSchemeAlreadySaved
	}

	return s.Repos.Scheme.SaveScheme(userID, schemeID)
}

func (s *SchemeService) UnsaveScheme(userID, schemeID uint) error {
	return s.Repos.Scheme.UnsaveScheme(userID, schemeID)
}

func (s *SchemeService) ListSavedSchemes(userID uint) ([]scheme.SavedScheme, error) {
	return s.Repos.Scheme.FindSaved(userID)
}
