package handlers

import (
	"net/http"

	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=5,max=30" example:"jsmith01"`
	FirstName       string `json:"first_name" binding:"required,max=30" example:"John"`
	LastName        string `json:"last_name" binding:"required,max=30" example:"Smith"`
	Email           string `json:"email" binding:"required,email" example:"jsmith@example.com"`
	Role            string `json:"role" example:"Engineer"`
	Password        string `json:"password" binding:"required" example:"correct-horse-battery"`
	PasswordConfirm string `json:"password_confirm" binding:"required" example:"correct-horse-battery"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jsmith01"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user with a profile role and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Register(services.RegisterInput{
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Role:            models.Role(req.Role),
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token})
}

// Login godoc
// @Summary      Login
// @Description  Authenticate a user and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token})
}

// Logout godoc
// @Summary      Logout
// @Description  Tokens are stateless; the client discards its token
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}
