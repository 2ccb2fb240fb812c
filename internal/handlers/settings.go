package handlers

import (
	"net/http"

	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

func NewSettingsHandler(userService *services.UserService, authService *services.AuthService) *SettingsHandler {
	return &SettingsHandler{userService: userService, authService: authService}
}

type UpdateSettingsRequest struct {
	FirstName string `json:"first_name" binding:"required,max=30" example:"John"`
	LastName  string `json:"last_name" binding:"required,max=30" example:"Smith"`
	Email     string `json:"email" binding:"required,email" example:"jsmith@example.com"`
}

type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

// GetSettings godoc
// @Summary      Get own account details
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} User
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	caller := currentCaller(c)

	user, err := h.userService.GetUser(caller.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateSettings godoc
// @Summary      Update own name and email
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateSettingsRequest true "Settings"
// @Success      200 {object} User
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	caller := currentCaller(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateSettings(caller.UserID, req.FirstName, req.LastName, req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Passwords"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/settings/password [post]
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	caller := currentCaller(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := h.authService.ChangePassword(caller.UserID, req.OldPassword, req.NewPassword, req.NewPasswordConfirm)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "password updated"})
}
