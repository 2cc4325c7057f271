package services

import (
	"errors"

	"github.com/yojanasetu/portal-go/internal/domain/notification"
	"github.com/yojanasetu/portal-go/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	Repos *repository.Repos
}

func NewNotificationService(repos *repository.Repos) *NotificationService {
	return &NotificationService{Repos: repos}
}

func (s *NotificationService) ListForUser(userID uint) ([]notification.Notification, error) {
	return s.Repos.Notification.FindByUser(userID)
}

// UnreadAfter feeds the live stream: only notifications newer than the
// last id the client has seen.
func (s *NotificationService) UnreadAfter(userID, afterID uint) ([]notification.Notification, error) {
	return s.Repos.Notification.FindUnreadByUser(userID, afterID)
}

// MarkRead flips one notification to read. The user id scopes the write so
// a user cannot acknowledge someone else's notification.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	err := s.Repos.Notification.MarkRead(notificationID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
