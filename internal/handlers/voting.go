package handlers

import (
	"net/http"
	"strconv"

	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type VotingHandler struct {
	surveyService *services.SurveyService
	votingService *services.VotingService
}

func NewVotingHandler(surveyService *services.SurveyService, votingService *services.VotingService) *VotingHandler {
	return &VotingHandler{surveyService: surveyService, votingService: votingService}
}

type SubmitResponsesRequest struct {
	// Answers maps question id to a traffic-light value. Questions left out
	// or mapped to "" are untouched.
	Answers map[uint]string `json:"answers" binding:"required"`
}

type CastVoteRequest struct {
	TeamID    uint `json:"team_id" binding:"required" example:"1"`
	VoteValue int  `json:"vote_value" binding:"required" example:"8"`
}

type VotingFormResponse struct {
	Session *models.HealthCheckSession `json:"session"`
	Answers map[uint]models.Answer     `json:"answers"`
}

type SubmitResponsesResponse struct {
	Saved int `json:"saved" example:"2"`
}

// GetVotingForm godoc
// @Summary      Get a session's questions with the caller's current answers
// @Tags         voting
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} VotingFormResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/voting [get]
func (h *VotingHandler) GetVotingForm(c *gin.Context) {
	caller := currentCaller(c)
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.surveyService.GetSession(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	answers, err := h.votingService.ListResponses(caller.UserID, uint(sessionID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, VotingFormResponse{Session: session, Answers: answers})
}

// SubmitResponses godoc
// @Summary      Submit traffic-light answers for a session
// @Description  Upserts one response per (user, question); partial submission is allowed
// @Tags         voting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body SubmitResponsesRequest true "Answers"
// @Success      200 {object} SubmitResponsesResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/voting [post]
func (h *VotingHandler) SubmitResponses(c *gin.Context) {
	caller := currentCaller(c)
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req SubmitResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answers := make(map[uint]models.Answer, len(req.Answers))
	for questionID, answer := range req.Answers {
		answers[questionID] = models.Answer(answer)
	}

	saved, err := h.votingService.SubmitResponses(caller.UserID, uint(sessionID), answers)
	if err != nil {
		status := http.StatusBadRequest
		if err.Error() == "session not found" {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SubmitResponsesResponse{Saved: saved})
}

// CastVote godoc
// @Summary      Cast a numeric vote for a team within a session
// @Description  Votes are append-only; there is no edit or delete
// @Tags         voting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body CastVoteRequest true "Vote"
// @Success      201 {object} Vote
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/votes [post]
func (h *VotingHandler) CastVote(c *gin.Context) {
	caller := currentCaller(c)
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	vote, err := h.votingService.CastVote(caller.UserID, uint(sessionID), req.TeamID, req.VoteValue)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vote)
}
