package handlers

import (
	"net/http"

	"github.com/lexablackstar/HealthCheckApp/internal/authz"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	surveyService *services.SurveyService
}

func NewSurveyHandler(surveyService *services.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

type CreateSessionRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100" example:"Q1 Check"`
	QuestionIDs []uint `json:"question_ids" example:"1,2,3"`
}

type CreateQuestionRequest struct {
	Text string `json:"text" binding:"required" example:"How is the team's delivery pace?"`
}

// ListSessions godoc
// @Summary      List sessions created by the caller
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} HealthCheckSession
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions [get]
func (h *SurveyHandler) ListSessions(c *gin.Context) {
	caller, ok := requireAction(c, authz.CreateSession)
	if !ok {
		return
	}

	sessions, err := h.surveyService.ListSessionsByLeader(caller.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary      Create a health-check session
// @Description  Team Leader only; the question set is frozen at creation
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSessionRequest true "Session data"
// @Success      201 {object} HealthCheckSession
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions [post]
func (h *SurveyHandler) CreateSession(c *gin.Context) {
	caller, ok := requireAction(c, authz.CreateSession)
	if !ok {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.surveyService.CreateSession(caller.UserID, req.Name, req.QuestionIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListQuestions godoc
// @Summary      List the question catalog
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Question
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/questions [get]
func (h *SurveyHandler) ListQuestions(c *gin.Context) {
	if _, ok := requireAction(c, authz.AddQuestion); !ok {
		return
	}

	questions, err := h.surveyService.ListQuestions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary      Add a question to the catalog
// @Description  Team Leader only; questions are immutable and attachable to any future session
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/questions [post]
func (h *SurveyHandler) CreateQuestion(c *gin.Context) {
	if _, ok := requireAction(c, authz.AddQuestion); !ok {
		return
	}

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.surveyService.AddQuestion(req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, question)
}
