package handlers

import (
	"net/http"

	"github.com/lexablackstar/HealthCheckApp/internal/authz"
	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,max=30" example:"John"`
	LastName  string `json:"last_name" binding:"required,max=30" example:"Smith"`
	Email     string `json:"email" binding:"required,email" example:"jsmith@example.com"`
	Role      string `json:"role" binding:"required" example:"Team Leader"`
}

// UpdateUser godoc
// @Summary      Update any user's details and role
// @Description  Admin only
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Param        request body UpdateUserRequest true "User data"
// @Success      200 {object} User
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/{username} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	if _, ok := requireAction(c, authz.UpdateUser); !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Param("username"), req.FirstName, req.LastName, req.Email, models.Role(req.Role))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user and everything they own
// @Description  Admin only; cascades teams, departments, sessions, responses and votes
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/{username} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if _, ok := requireAction(c, authz.DeleteUser); !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Param("username")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}
