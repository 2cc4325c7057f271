package repository

import (
	"github.com/yojanasetu/portal-go/internal/config/db"
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Scheme       SchemeRepo
	Application  ApplicationRepo
	Notification NotificationRepo

	db *gorm.DB
}

func New() *Repos {
	return NewRepositories(db.DB)
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Scheme:       NewSchemeRepo(db),
		Application:  NewApplicationRepo(db),
		Notification: NewNotificationRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Scheme:       r.Scheme.WithTx(tx),
		Application:  r.Application.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn with every repo bound to one transaction. A container
// without a gorm handle (mock repos) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
