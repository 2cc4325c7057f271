package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/pkg/response"
	"github.com/yojanasetu/portal-go/pkg/utils"
)

type NotificationHandler struct {
	svc *services.NotificationService
}

func NewNotificationHandler(svc *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// @Summary List the logged-in user's notifications, newest first
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} notification.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	notifications, err := h.svc.ListForUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} response.MessageResponse "Notification marked read"
// @Failure 404 {object} response.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid notification ID"})
		return
	}

	if err := h.svc.MarkRead(uid, id); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notification not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Notification marked read"})
}
