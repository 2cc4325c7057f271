package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/services"
)

type Handlers struct {
	User         *UserHandler
	Scheme       *SchemeHandler
	Application  *ApplicationHandler
	Coordinator  *CoordinatorHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
	Router       *gin.Engine
}

func New(svc *services.Services, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:         NewUserHandler(svc.User),
		Scheme:       NewSchemeHandler(svc.Scheme),
		Application:  NewApplicationHandler(svc.Application),
		Coordinator:  NewCoordinatorHandler(svc.Application, svc.Scheme),
		Notification: NewNotificationHandler(svc.Notification),
		Admin:        NewAdminHandler(svc.Admin),
		Router:       router,
	}
	return h
}
