package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/config"
	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/internal/storage"
	"github.com/yojanasetu/portal-go/pkg/response"
	"github.com/yojanasetu/portal-go/pkg/utils"
)

type ApplicationHandler struct {
	svc *services.ApplicationService
}

func NewApplicationHandler(svc *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit godoc
// @Summary Submit or re-submit an application for a Private scheme
// @Tags applications
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param schemeId formData int true "Scheme ID"
// @Param formData formData string false "JSON object of text answers keyed by form-field label"
// @Success 201 {object} application.Application
// @Failure 400 {object} response.ErrorResponse "Invalid payload or wrong scheme type"
// @Failure 404 {object} response.ErrorResponse "Scheme not found"
// @Failure 409 {object} response.ErrorResponse "Duplicate application or concurrent update"
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input application.SubmitApplicationDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	files, err := h.uploadDocuments(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.Submit(uid, input.SchemeID, []byte(input.FormData), files)
	if err != nil {
		var dup *services.DuplicateApplicationError
		var formErr *services.FormValidationError
		switch {
		case errors.Is(err, services.ErrSchemeNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Scheme not found"})
		case errors.Is(err, services.ErrWrongSchemeType):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrMalformedPayload):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.As(err, &formErr):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, repository.ErrConflict):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Application was updated concurrently, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, app)
}

// uploadDocuments streams every multipart file part into object storage.
// Each part's field name is the form-field label it answers. Labels are
// walked in sorted order so the stored document list is deterministic.
func (h *ApplicationHandler) uploadDocuments(c *gin.Context) ([]application.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	labels := make([]string, 0, len(form.File))
	for label := range form.File {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var files []application.UploadedFile
	for _, label := range labels {
		for _, header := range form.File[label] {
			if header.Size > config.MaxUploadSize {
				return nil, fmt.Errorf("file %q exceeds the upload size limit", header.Filename)
			}

			src, err := header.Open()
			if err != nil {
				return nil, err
			}

			ref, err := storage.UploadDocument(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), src, header.Size)
			src.Close()
			if err != nil {
				return nil, err
			}

			files = append(files, application.UploadedFile{
				FieldLabel: label,
				Reference:  ref,
			})
		}
	}
	return files, nil
}

// MyApplications godoc
// @Summary List the logged-in citizen's applications, newest first
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} application.Application
// @Router /applications/my [get]
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	apps, err := h.svc.MyApplications(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, apps)
}
