package services

import (
	"errors"

	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/pkg/types"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("invalid role provided")

// PlatformStats is the admin dashboard payload.
type PlatformStats struct {
	TotalUsers           int64                         `json:"totalUsers"`
	TotalSchemes         int64                         `json:"totalSchemes"`
	TotalApplications    int64                         `json:"totalApplications"`
	ApplicationsByStatus []application.StatusCount     `json:"applicationsByStatus"`
	SchemesByDepartment  []application.DepartmentCount `json:"schemesByDepartment"`
}

type AdminService struct {
	Repos *repository.Repos
}

func NewAdminService(repos *repository.Repos) *AdminService {
	return &AdminService{Repos: repos}
}

func (s *AdminService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *AdminService) ListCoordinators() ([]user.User, error) {
	return s.Repos.User.ListUsersByRole(types.RoleCoordinator)
}

func (s *AdminService) UpdateUserRole(userID uint, role types.Role) (*user.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.Role = role
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AdminService) PlatformStats() (PlatformStats, error) {
	stats := PlatformStats{}

	var err error
	if stats.TotalUsers, err = s.Repos.User.CountUsers(); err != nil {
		return stats, err
	}
	if stats.TotalSchemes, err = s.Repos.Scheme.CountSchemes(); err != nil {
		return stats, err
	}
	if stats.TotalApplications, err = s.Repos.Application.CountAll(); err != nil {
		return stats, err
	}

	statuses := []application.Status{
		application.StatusPending,
		application.StatusApproved,
		application.StatusRejected,
		application.StatusMoreInfoRequired,
	}
	for _, status := range statuses {
		count, err := s.Repos.Application.CountByStatus(status)
		if err != nil {
			return stats, err
		}
		stats.ApplicationsByStatus = append(stats.ApplicationsByStatus, application.StatusCount{
			Name:  string(status),
			Value: count,
		})
	}

	rows, err := s.Repos.Scheme.CountByDepartment()
	if err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.SchemesByDepartment = append(stats.SchemesByDepartment, application.DepartmentCount{
			Name:  row.Name,
			Count: row.Count,
		})
	}

	return stats, nil
}
