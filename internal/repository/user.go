package repository

import (
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/pkg/types"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	SaveUser(u *user.User) error
	ListUsers() ([]user.User, error)
	ListUsersByRole(role types.Role) ([]user.User, error)
	CountUsers() (int64, error)
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("u_id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersByRole(role types.Role) ([]user.User, error) {
	var users []user.User
	err := r.db.Where("role = ?", role).Order("u_id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Count(&count).Error
	return count, err
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
