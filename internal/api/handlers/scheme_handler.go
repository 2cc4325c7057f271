package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/pkg/response"
	"github.com/yojanasetu/portal-go/pkg/utils"
)

type SchemeHandler struct {
	svc *services.SchemeService
}

func NewSchemeHandler(svc *services.SchemeService) *SchemeHandler {
	return &SchemeHandler{svc: svc}
}

// ListSchemes godoc
// @Summary List schemes with optional search, filters and pagination
// @Tags schemes
// @Produce json
// @Param search query string false "Title or description substring"
// @Param state query string false "State filter"
// @Param category query string false "Caste category filter"
// @Param occupation query string false "Occupation filter"
// @Param page query int false "Page number, 1-based"
// @Success 200 {object} services.SchemePage
// @Router /schemes [get]
func (h *SchemeHandler) ListSchemes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := scheme.ListFilter{
		Search:     c.Query("search"),
		State:      c.Query("state"),
		Category:   c.Query("category"),
		Occupation: c.Query("occupation"),
		Page:       page,
	}

	result, err := h.svc.ListSchemes(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetScheme godoc
// @Summary Get one scheme by id
// @Tags schemes
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} scheme.Scheme
// @Failure 404 {object} response.ErrorResponse "Scheme not found"
// @Router /schemes/{id} [get]
func (h *SchemeHandler) GetScheme(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid scheme ID"})
		return
	}

	sch, err := h.svc.GetScheme(id)
	if err != nil {
		if errors.Is(err, services.ErrSchemeNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Scheme not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, sch)
}

// EligibleSchemes godoc
// @Summary Rank all schemes against the logged-in citizen's profile
// @Tags schemes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} scheme.RankedScheme
// @Failure 400 {object} response.ErrorResponse "Profile incomplete"
// @Router /schemes/eligible [get]
func (h *SchemeHandler) EligibleSchemes(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	ranked, err := h.svc.RankEligibleSchemes(uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileIncomplete):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ranked)
}

// CreateScheme godoc
// @Summary Create a scheme (admin only)
// @Tags schemes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body scheme.CreateSchemeDTO true "Scheme definition"
// @Success 201 {object} scheme.Scheme
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /admin/schemes [post]
func (h *SchemeHandler) CreateScheme(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input scheme.CreateSchemeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sch, err := h.svc.CreateScheme(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sch)
}

// UpdateScheme godoc
// @Summary Update a scheme, including coordinator assignment (admin only)
// @Tags schemes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Scheme ID"
// @Param input body scheme.UpdateSchemeDTO true "Fields to update"
// @Success 200 {object} scheme.Scheme
// @Failure 400 {object} response.ErrorResponse "Assignee is not a coordinator"
// @Failure 404 {object} response.ErrorResponse "Scheme not found"
// @Router /admin/schemes/{id} [put]
func (h *SchemeHandler) UpdateScheme(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid scheme ID"})
		return
	}

	var input scheme.UpdateSchemeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sch, err := h.svc.UpdateScheme(id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSchemeNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Scheme not found"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Assignee not found"})
		case errors.Is(err, services.ErrNotACoordinator):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, sch)
}

// DeleteScheme godoc
// @Summary Delete a scheme (admin only)
// @Tags schemes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} response.MessageResponse "Scheme deleted"
// @Failure 404 {object} response.ErrorResponse "Scheme not found"
// @Router /admin/schemes/{id} [delete]
func (h *SchemeHandler) DeleteScheme(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid scheme ID"})
		return
	}

	if err := h.svc.DeleteScheme(id); err != nil {
		if errors.Is(err, services.ErrSchemeNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Scheme not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Scheme deleted"})
}

// SaveScheme godoc
// @Summary Bookmark a scheme for later
// @Tags schemes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body scheme.SaveSchemeDTO true "Scheme to save"
// @Success 201 {object} response.MessageResponse "Scheme saved"
// @Failure 409 {object} response.ErrorResponse "Scheme already saved"
// @Router /schemes/saved [post]
func (h *SchemeHandler) SaveScheme(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input scheme.SaveSchemeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.svc.SaveScheme(uid, input.SchemeID); err != nil {
		switch {
		case errors.Is(err, services.ErrSchemeNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Scheme not found"})
		case errors.Is(err, services.ErrSchemeAlreadySaved):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Scheme saved"})
}

// UnsaveScheme godoc
// @Summary Remove a bookmarked scheme
// @Tags schemes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} response.MessageResponse "Scheme unsaved"
// @Router /schemes/saved/{id} [delete]
func (h *SchemeHandler) UnsaveScheme(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid scheme ID"})
		return
	}

	if err := h.svc.UnsaveScheme(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Scheme unsaved"})
}

// ListSavedSchemes godoc
// @Summary List the logged-in user's bookmarked schemes
// @Tags schemes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} scheme.SavedScheme
// @Router /schemes/saved [get]
func (h *SchemeHandler) ListSavedSchemes(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.svc.ListSavedSchemes(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}
