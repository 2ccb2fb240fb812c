package services

import (
	"errors"

	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SurveyService struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewSurveyService(logger *zap.SugaredLogger, db *gorm.DB) *SurveyService {
	return &SurveyService{logger: logger, db: db}
}

// AddQuestion appends a question to the catalog. Questions are not tied to a
// session at creation; any future session may attach them.
func (s *SurveyService) AddQuestion(text string) (*models.Question, error) {
	question := models.Question{Text: text}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *SurveyService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("id ASC").Find(&questions).Error
	return questions, err
}

// CreateSession persists the session and its question links in one
// transaction, so a session is never visible with a half-attached question
// set. An empty question set is valid, just degenerate.
func (s *SurveyService) CreateSession(leaderID uint, name string, questionIDs []uint) (*models.HealthCheckSession, error) {
	var questions []models.Question
	if len(questionIDs) > 0 {
		if err := s.db.Where("id IN ?", questionIDs).Find(&questions).Error; err != nil {
			return nil, err
		}
		if len(questions) != len(questionIDs) {
			return nil, errors.New("question not found")
		}
	}

	session := models.HealthCheckSession{
		Name:         name,
		TeamLeaderID: leaderID,
		Questions:    questions,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&session).Error
	})
	if err != nil {
		s.logger.Errorw("error creating session", "name", name, "error", err)
		return nil, err
	}
	return &session, nil
}

func (s *SurveyService) GetSession(sessionID uint) (*models.HealthCheckSession, error) {
	var session models.HealthCheckSession
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		First(&session, sessionID).Error
	if err != nil {
		return nil, errors.New("session not found")
	}
	return &session, nil
}

func (s *SurveyService) ListSessionsByLeader(leaderID uint) ([]models.HealthCheckSession, error) {
	var sessions []models.HealthCheckSession
	err := s.db.Where("team_leader_id = ?", leaderID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}
