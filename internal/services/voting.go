package services

import (
	"errors"
	"time"

	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidAnswer = errors.New("answer must be green, yellow or red")

type VotingService struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewVotingService(logger *zap.SugaredLogger, db *gorm.DB) *VotingService {
	return &VotingService{logger: logger, db: db}
}

// SubmitResponses upserts the caller's answers for the session's questions.
// Answers are keyed on (user, question), so resubmitting overwrites the
// earlier answer and never accumulates rows. Questions without a submitted
// answer are left untouched; partial submission is fine. Invalid answer
// values reject the whole request before anything is written.
func (s *VotingService) SubmitResponses(userID, sessionID uint, answers map[uint]models.Answer) (int, error) {
	var session models.HealthCheckSession
	if err := s.db.Preload("Questions").First(&session, sessionID).Error; err != nil {
		return 0, errors.New("session not found")
	}

	type pending struct {
		questionID uint
		answer     models.Answer
	}
	var writes []pending
	for _, question := range session.Questions {
		answer, ok := answers[question.ID]
		if !ok || answer == "" {
			continue
		}
		if !answer.Valid() {
			return 0, ErrInvalidAnswer
		}
		writes = append(writes, pending{questionID: question.ID, answer: answer})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, w := range writes {
			response := models.Response{
				UserID:     userID,
				QuestionID: w.questionID,
				Answer:     w.answer,
				Timestamp:  now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"answer", "timestamp"}),
			}).Create(&response).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("error submitting responses", "user_id", userID, "session_id", sessionID, "error", err)
		return 0, err
	}
	return len(writes), nil
}

// ListResponses returns the caller's current answers for the session's
// questions, keyed by question id.
func (s *VotingService) ListResponses(userID, sessionID uint) (map[uint]models.Answer, error) {
	var session models.HealthCheckSession
	if err := s.db.Preload("Questions").First(&session, sessionID).Error; err != nil {
		return nil, errors.New("session not found")
	}

	questionIDs := make([]uint, 0, len(session.Questions))
	for _, q := range session.Questions {
		questionIDs = append(questionIDs, q.ID)
	}

	answers := make(map[uint]models.Answer)
	if len(questionIDs) == 0 {
		return answers, nil
	}

	var responses []models.Response
	err := s.db.Where("user_id = ? AND question_id IN ?", userID, questionIDs).Find(&responses).Error
	if err != nil {
		return nil, err
	}
	for _, r := range responses {
		answers[r.QuestionID] = r.Answer
	}
	return answers, nil
}

// CastVote appends a numeric rating for a team within a session. Votes are
// never updated or deleted.
func (s *VotingService) CastVote(userID, sessionID, teamID uint, value int) (*models.Vote, error) {
	var session models.HealthCheckSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, errors.New("session not found")
	}
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, errors.New("team not found")
	}

	vote := models.Vote{
		UserID:    userID,
		SessionID: sessionID,
		TeamID:    teamID,
		VoteValue: value,
	}
	if err := s.db.Create(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}
