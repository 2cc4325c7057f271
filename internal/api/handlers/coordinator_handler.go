package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/internal/storage"
	"github.com/yojanasetu/portal-go/pkg/response"
	"github.com/yojanasetu/portal-go/pkg/utils"
)

type CoordinatorHandler struct {
	apps    *services.ApplicationService
	schemes *services.SchemeService
}

func NewCoordinatorHandler(apps *services.ApplicationService, schemes *services.SchemeService) *CoordinatorHandler {
	return &CoordinatorHandler{apps: apps, schemes: schemes}
}

// ListApplications godoc
// @Summary List applications for the coordinator's assigned schemes
// @Tags coordinator
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param search query string false "Citizen username or email substring"
// @Success 200 {array} application.Application
// @Router /coordinator/applications [get]
func (h *CoordinatorHandler) ListApplications(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	filter := application.CoordinatorFilter{
		Status: application.Status(c.Query("status")),
		Search: c.Query("search"),
	}

	apps, err := h.apps.ListForCoordinator(uid, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// GetApplication godoc
// @Summary Get one application for review
// @Tags coordinator
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} application.Application
// @Failure 403 {object} response.ErrorResponse "Scheme not assigned to coordinator"
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Router /coordinator/applications/{id} [get]
func (h *CoordinatorHandler) GetApplication(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid application ID"})
		return
	}

	app, err := h.apps.GetForCoordinator(uid, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}

// Review godoc
// @Summary Record a decision on an application
// @Tags coordinator
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body application.ReviewDecisionDTO true "Decision"
// @Success 200 {object} application.Application
// @Failure 400 {object} response.ErrorResponse "Invalid status, missing notes, or already reviewed"
// @Failure 403 {object} response.ErrorResponse "Scheme not assigned to coordinator"
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Failure 409 {object} response.ErrorResponse "Concurrent update"
// @Router /coordinator/applications/{id}/review [put]
func (h *CoordinatorHandler) Review(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid application ID"})
		return
	}

	var input application.ReviewDecisionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	app, err := h.apps.ReviewDecision(uid, id, input.Status, input.CoordinatorNotes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidStatus),
			errors.Is(err, services.ErrAlreadyReviewed),
			errors.Is(err, services.ErrNotesRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, repository.ErrConflict):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Application was updated concurrently, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}

// Dashboard godoc
// @Summary Workload counters for the coordinator's assigned schemes
// @Tags coordinator
// @Security BearerAuth
// @Produce json
// @Success 200 {object} application.DashboardStats
// @Router /coordinator/dashboard [get]
func (h *CoordinatorHandler) Dashboard(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	stats, err := h.apps.CoordinatorDashboard(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// MySchemes godoc
// @Summary List the schemes assigned to the coordinator
// @Tags coordinator
// @Security BearerAuth
// @Produce json
// @Success 200 {array} scheme.Scheme
// @Router /coordinator/schemes [get]
func (h *CoordinatorHandler) MySchemes(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	schemes, err := h.schemes.ListAssigned(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, schemes)
}

// DownloadDocument godoc
// @Summary Download a submitted document by its object reference
// @Tags coordinator
// @Security BearerAuth
// @Produce octet-stream
// @Param id path int true "Application ID"
// @Param ref query string true "Document reference"
// @Success 200 {file} binary
// @Failure 403 {object} response.ErrorResponse "Scheme not assigned to coordinator"
// @Failure 404 {object} response.ErrorResponse "Document not found on the application"
// @Router /coordinator/applications/{id}/documents [get]
func (h *CoordinatorHandler) DownloadDocument(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid application ID"})
		return
	}

	ref := c.Query("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "ref query parameter is required"})
		return
	}

	app, err := h.apps.GetForCoordinator(uid, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	// The reference must belong to this application.
	found := false
	for _, doc := range app.Documents {
		if doc == ref {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Document not found on this application"})
		return
	}

	data, contentType, err := storage.DownloadDocument(c.Request.Context(), ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, contentType, data)
}
