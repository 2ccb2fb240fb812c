package handlers

import (
	"net/http"

	"github.com/lexablackstar/HealthCheckApp/internal/authz"
	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	teamService      *services.TeamService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService, teamService *services.TeamService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, teamService: teamService}
}

type TeamProgressResponse struct {
	Teams        []models.Team                 `json:"teams"`
	SelectedTeam string                        `json:"selected_team,omitempty"`
	Sessions     []services.SessionProgressRow `json:"sessions"`
}

// VoteAnalysis godoc
// @Summary      Average vote per (team, session) across all votes
// @Description  Open to any authenticated caller
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.VoteAnalysisRow
// @Router       /api/v1/analytics/votes [get]
func (h *AnalyticsHandler) VoteAnalysis(c *gin.Context) {
	rows, err := h.analyticsService.VoteAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// TeamProgress godoc
// @Summary      Average vote per session for the caller's teams
// @Description  Team Leader only; optional exact team name filter via ?team=
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        team query string false "Team name filter"
// @Success      200 {object} TeamProgressResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/analytics/team-progress [get]
func (h *AnalyticsHandler) TeamProgress(c *gin.Context) {
	caller, ok := requireAction(c, authz.ViewTeamProgress)
	if !ok {
		return
	}

	selectedTeam := c.Query("team")

	teams, err := h.teamService.ListTeamsByLeader(caller.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	sessions, err := h.analyticsService.TeamProgress(caller.UserID, selectedTeam)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TeamProgressResponse{
		Teams:        teams,
		SelectedTeam: selectedTeam,
		Sessions:     sessions,
	})
}
