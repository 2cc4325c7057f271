package repository

import (
	"github.com/yojanasetu/portal-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(n *notification.Notification) error
	FindByUser(userID uint) ([]notification.Notification, error)
	FindUnreadByUser(userID uint, afterID uint) ([]notification.Notification, error)
	MarkRead(id, userID uint) error
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) Create(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) FindByUser(userID uint) ([]notification.Notification, error) {
	var notifications []notification.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) FindUnreadByUser(userID uint, afterID uint) ([]notification.Notification, error) {
	var notifications []notification.Notification
	err := r.db.Where("user_id = ? AND read = false AND id > ?", userID, afterID).
		Order("id").
		Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) MarkRead(id, userID uint) error {
	res := r.db.Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{db: tx}
}
