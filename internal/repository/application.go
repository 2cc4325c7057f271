package repository

import (
	"errors"

	"github.com/yojanasetu/portal-go/internal/domain/application"
	"gorm.io/gorm"
)

// ErrConflict is returned when a conditional update loses a race: the row's
// status no longer matches the expected set by the time the write lands.
// Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

type ApplicationRepo interface {
	Create(a *application.Application) error
	FindByID(id uint) (*application.Application, error)
	FindByCitizenAndScheme(citizenID, schemeID uint) (*application.Application, error)
	FindByCitizen(citizenID uint) ([]application.Application, error)
	// ListForCoordinator returns applications for the given scheme ids,
	// newest first, optionally narrowed by status and by a case-insensitive
	// substring match on the citizen's username or email.
	ListForCoordinator(schemeIDs []uint, filter application.CoordinatorFilter) ([]application.Application, error)
	// UpdateIfStatus applies patch only while the row's status is one of
	// expected; it returns ErrConflict when the guard no longer holds.
	UpdateIfStatus(id uint, expected []application.Status, patch map[string]interface{}) error
	CountByStatusForSchemes(status application.Status, schemeIDs []uint) (int64, error)
	CountReviewedBy(coordinatorID uint, status application.Status, schemeIDs []uint) (int64, error)
	CountAll() (int64, error)
	CountByStatus(status application.Status) (int64, error)
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) Create(a *application.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplicationRepo) FindByID(id uint) (*application.Application, error) {
	var a application.Application
	err := r.db.Preload("Scheme").Preload("Citizen").First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DBApplicationRepo) FindByCitizenAndScheme(citizenID, schemeID uint) (*application.Application, error) {
	var a application.Application
	err := r.db.Where("citizen_id = ? AND scheme_id = ?", citizenID, schemeID).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DBApplicationRepo) FindByCitizen(citizenID uint) ([]application.Application, error) {
	var apps []application.Application
	err := r.db.Where("citizen_id = ?", citizenID).
		Preload("Scheme").
		Order("applied_at desc").
		Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) ListForCoordinator(schemeIDs []uint, filter application.CoordinatorFilter) ([]application.Application, error) {
	if len(schemeIDs) == 0 {
		return []application.Application{}, nil
	}

	query := r.db.Where("applications.scheme_id IN ?", schemeIDs)

	if filter.Status != "" {
		query = query.Where("applications.status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN users ON users.u_id = applications.citizen_id").
			Where("users.username ILIKE ? OR users.email ILIKE ?", like, like)
	}

	var apps []application.Application
	err := query.
		Preload("Scheme").
		Preload("Citizen").
		Order("applications.applied_at desc").
		Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) UpdateIfStatus(id uint, expected []application.Status, patch map[string]interface{}) error {
	res := r.db.Model(&application.Application{}).
		Where("id = ? AND status IN ?", id, expected).
		Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (r *DBApplicationRepo) CountByStatusForSchemes(status application.Status, schemeIDs []uint) (int64, error) {
	if len(schemeIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&application.Application{}).
		Where("status = ? AND scheme_id IN ?", status, schemeIDs).
		Count(&count).Error
	return count, err
}

func (r *DBApplicationRepo) CountReviewedBy(coordinatorID uint, status application.Status, schemeIDs []uint) (int64, error) {
	if len(schemeIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&application.Application{}).
		Where("reviewed_by = ? AND status = ? AND scheme_id IN ?", coordinatorID, status, schemeIDs).
		Count(&count).Error
	return count, err
}

func (r *DBApplicationRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&application.Application{}).Count(&count).Error
	return count, err
}

func (r *DBApplicationRepo) CountByStatus(status application.Status) (int64, error) {
	var count int64
	err := r.db.Model(&application.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
