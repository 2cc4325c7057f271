package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/pkg/response"
	"github.com/yojanasetu/portal-go/pkg/types"
	"github.com/yojanasetu/portal-go/pkg/utils"
)

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Stats godoc
// @Summary Platform-wide totals and breakdowns
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.PlatformStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.PlatformStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.User
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// ListCoordinators godoc
// @Summary List coordinator accounts, for scheme assignment
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.User
// @Router /admin/coordinators [get]
func (h *AdminHandler) ListCoordinators(c *gin.Context) {
	coordinators, err := h.svc.ListCoordinators()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, coordinators)
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateRoleInput true "New role"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid role"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	var input user.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	updated, err := h.svc.UpdateUserRole(id, types.Role(input.Role))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
