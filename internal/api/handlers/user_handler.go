package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/pkg/response"
	"github.com/yojanasetu/portal-go/pkg/utils"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func bindingErrorMessage(err error, labels map[string]string) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := labels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// Register godoc
// @Summary Citizen registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "Registration info"
// @Success 201 {object} response.MessageResponse "User registered successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput

	if err := c.ShouldBindJSON(&input); err != nil {
		labels := map[string]string{
			"Username": "username",
			"Email":    "email",
			"Password": "password",
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err, labels)})
		return
	}

	_, err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		3600*24,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
		Role:     string(usr.Role),
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// GetProfile godoc
// @Summary Get the logged-in user's account and profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	usr, err := h.svc.GetUser(uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, usr)
}

// UpdateProfile godoc
// @Summary Patch the logged-in user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateProfileInput true "Profile fields to update"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		labels := map[string]string{
			"Occupation":     "occupation",
			"CasteCategory":  "caste category",
			"EducationLevel": "education level",
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err, labels)})
		return
	}

	usr, err := h.svc.UpdateProfile(uid, input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, usr)
}

// ChangePassword godoc
// @Summary Change the logged-in user's password
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.MessageResponse "Password changed successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid input or wrong old password"
// @Router /profile/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input user.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		labels := map[string]string{
			"OldPassword": "old password",
			"NewPassword": "new password",
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err, labels)})
		return
	}

	if err := h.svc.ChangePassword(uid, input); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		case errors.Is(err, services.ErrIncorrectPassword):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password changed successfully"})
}
