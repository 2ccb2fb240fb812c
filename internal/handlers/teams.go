package handlers

import (
	"net/http"
	"strconv"

	"github.com/lexablackstar/HealthCheckApp/internal/authz"
	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
	userService *services.UserService
}

func NewTeamHandler(teamService *services.TeamService, userService *services.UserService) *TeamHandler {
	return &TeamHandler{teamService: teamService, userService: userService}
}

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100" example:"Platform"`
	// LeaderID is honored only for Admin callers, who may assign any user
	// holding the Team Leader role as owner.
	LeaderID uint `json:"leader_id" example:"3"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100" example:"Platform"`
	EngineerIDs []uint `json:"engineer_ids" example:"4,5,6"`
}

// ListTeams godoc
// @Summary      List teams led by the caller
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Team
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	caller, ok := requireAction(c, authz.ManageTeams)
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeamsByLeader(caller.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary      Create a team
// @Description  Team Leaders create teams they lead; Admins may assign any Team Leader as owner
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTeamRequest true "Team data"
// @Success      201 {object} Team
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	caller, ok := requireAction(c, authz.CreateTeam)
	if !ok {
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	leaderID := caller.UserID
	if caller.Role == models.RoleAdmin && req.LeaderID != 0 {
		profile, err := h.userService.GetProfile(req.LeaderID)
		if err != nil || profile.Role != models.RoleTeamLeader {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "leader must hold the Team Leader role"})
			return
		}
		leaderID = req.LeaderID
	}

	team, err := h.teamService.CreateTeam(req.Name, leaderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam godoc
// @Summary      Rename a team and replace its engineer set
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Team ID"
// @Param        request body UpdateTeamRequest true "Team data"
// @Success      200 {object} Team
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	if _, ok := requireAction(c, authz.EditTeam); !ok {
		return
	}

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team id"})
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(uint(teamID), req.Name, req.EngineerIDs)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam godoc
// @Summary      Delete a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Team ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if _, ok := requireAction(c, authz.DeleteTeam); !ok {
		return
	}

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team id"})
		return
	}

	if err := h.teamService.DeleteTeam(uint(teamID)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "team deleted"})
}
