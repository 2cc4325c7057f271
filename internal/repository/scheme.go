package repository

import (
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"gorm.io/gorm"
)

const schemePageSize = 10

type SchemeRepo interface {
	Create(s *scheme.Scheme) error
	FindByID(id uint) (*scheme.Scheme, error)
	// FindAll returns the whole catalogue in insertion order.
	FindAll() ([]scheme.Scheme, error)
	FindFiltered(filter scheme.ListFilter) ([]scheme.Scheme, int64, error)
	FindByAssignee(coordinatorID uint) ([]scheme.Scheme, error)
	AssignedSchemeIDs(coordinatorID uint) ([]uint, error)
	Update(s *scheme.Scheme) error
	Delete(id uint) error
	CountSchemes() (int64, error)
	CountByDepartment() ([]DepartmentRow, error)

	SaveScheme(userID, schemeID uint) error
	UnsaveScheme(userID, schemeID uint) error
	FindSaved(userID uint) ([]scheme.SavedScheme, error)
	IsSaved(userID, schemeID uint) (bool, error)

	WithTx(tx *gorm.DB) SchemeRepo
}

// DepartmentRow is a scheme count for one department.
type DepartmentRow struct {
	Name  string
	Count int64
}

type DBSchemeRepo struct {
	db *gorm.DB
}

func NewSchemeRepo(db *gorm.DB) *DBSchemeRepo {
	return &DBSchemeRepo{db: db}
}

func (r *DBSchemeRepo) Create(s *scheme.Scheme) error {
	return r.db.Create(s).Error
}

func (r *DBSchemeRepo) FindByID(id uint) (*scheme.Scheme, error) {
	var s scheme.Scheme
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSchemeRepo) FindAll() ([]scheme.Scheme, error) {
	var schemes []scheme.Scheme
	err := r.db.Order("id").Find(&schemes).Error
	return schemes, err
}

func (r *DBSchemeRepo) FindFiltered(filter scheme.ListFilter) ([]scheme.Scheme, int64, error) {
	query := r.db.Model(&scheme.Scheme{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.State != "" {
		query = query.Where("elig_state IN ('', 'Any', ?)", filter.State)
	}
	if filter.Category != "" {
		query = query.Where("elig_caste_category IN ('', 'Any', ?)", filter.Category)
	}
	if filter.Occupation != "" {
		query = query.Where("elig_occupation IN ('', 'Any', ?)", filter.Occupation)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var schemes []scheme.Scheme
	err := query.
		Order("create_at desc").
		Limit(schemePageSize).
		Offset(schemePageSize * (page - 1)).
		Find(&schemes).Error
	return schemes, count, err
}

func (r *DBSchemeRepo) FindByAssignee(coordinatorID uint) ([]scheme.Scheme, error) {
	var schemes []scheme.Scheme
	err := r.db.Where("assigned_to = ?", coordinatorID).Order("id").Find(&schemes).Error
	return schemes, err
}

func (r *DBSchemeRepo) AssignedSchemeIDs(coordinatorID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&scheme.Scheme{}).
		Where("assigned_to = ?", coordinatorID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DBSchemeRepo) Update(s *scheme.Scheme) error {
	return r.db.Save(s).Error
}

func (r *DBSchemeRepo) Delete(id uint) error {
	return r.db.Delete(&scheme.Scheme{}, id).Error
}

func (r *DBSchemeRepo) CountSchemes() (int64, error) {
	var count int64
	err := r.db.Model(&scheme.Scheme{}).Count(&count).Error
	return count, err
}

func (r *DBSchemeRepo) CountByDepartment() ([]DepartmentRow, error) {
	var rows []DepartmentRow
	err := r.db.Model(&scheme.Scheme{}).
		Select("department AS name, COUNT(*) AS count").
		Group("department").
		Order("count desc").
		Scan(&rows).Error
	return rows, err
}

func (r *DBSchemeRepo) SaveScheme(userID, schemeID uint) error {
	return r.db.Create(&scheme.SavedScheme{UserID: userID, SchemeID: schemeID}).Error
}

func (r *DBSchemeRepo) UnsaveScheme(userID, schemeID uint) error {
	return r.db.Where("user_id = ? AND scheme_id = ?", userID, schemeID).
		Delete(&scheme.SavedScheme{}).Error
}

func (r *DBSchemeRepo) FindSaved(userID uint) ([]scheme.SavedScheme, error) {
	var saved []scheme.SavedScheme
	err := r.db.Where("user_id = ?", userID).
		Preload("Scheme").
		Order("saved_at desc").
		Find(&saved).Error
	return saved, err
}

func (r *DBSchemeRepo) IsSaved(userID, schemeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&scheme.SavedScheme{}).
		Where("user_id = ? AND scheme_id = ?", userID, schemeID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBSchemeRepo) WithTx(tx *gorm.DB) SchemeRepo {
	if tx == nil {
		return r
	}
	return &DBSchemeRepo{db: tx}
}
