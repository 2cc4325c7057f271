package services

import "github.com/yojanasetu/portal-go/internal/repository"

// Services bundles the business layer for injection into handlers.
type Services struct {
	User         *UserService
	Scheme       *SchemeService
	Application  *ApplicationService
	Notification *NotificationService
	Admin        *AdminService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User:         NewUserService(repos),
		Scheme:       NewSchemeService(repos),
		Application:  NewApplicationService(repos),
		Notification: NewNotificationService(repos),
		Admin:        NewAdminService(repos),
	}
}
