package handlers

import (
	"net/http"

	"github.com/lexablackstar/HealthCheckApp/internal/authz"
	"github.com/lexablackstar/HealthCheckApp/internal/middleware"
	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Caller is the authenticated identity resolved by the JWT middleware,
// handed to services as explicit parameters.
type Caller struct {
	UserID uint
	Role   models.Role
}

func currentCaller(c *gin.Context) Caller {
	return Caller{
		UserID: c.GetUint(middleware.ContextUserIDKey),
		Role:   models.Role(c.GetString(middleware.ContextRoleKey)),
	}
}

// requireAction gates a handler on the authorization table. On denial it
// writes a 403 with a non-fatal notice and performs no mutation.
func requireAction(c *gin.Context, action authz.Action) (Caller, bool) {
	caller := currentCaller(c)
	if !authz.Allowed(caller.Role, action) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
		return caller, false
	}
	return caller, true
}

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Team = models.Team
type Department = models.Department
type Question = models.Question
type HealthCheckSession = models.HealthCheckSession
type Vote = models.Vote
