package services

import (
	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewAnalyticsService(logger *zap.SugaredLogger, db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{logger: logger, db: db}
}

type VoteAnalysisRow struct {
	TeamID    uint    `json:"team_id"`
	SessionID uint    `json:"session_id"`
	AvgVote   float64 `json:"avg_vote"`
}

type SessionProgressRow struct {
	SessionID uint    `json:"session_id"`
	AvgVote   float64 `json:"avg_vote"`
}

// VoteAnalysis averages vote values grouped by (team, session) over the whole
// ledger. Groups with no votes never appear. Reachable by any authenticated
// caller.
func (s *AnalyticsService) VoteAnalysis() ([]VoteAnalysisRow, error) {
	var rows []VoteAnalysisRow
	err := s.db.Model(&models.Vote{}).
		Select("team_id, session_id, AVG(vote_value) AS avg_vote").
		Group("team_id").
		Group("session_id").
		Order("team_id ASC, session_id ASC").
		Scan(&rows).Error
	return rows, err
}

// TeamProgress averages votes per session, restricted to teams led by
// leaderID. A non-empty teamName narrows to that team by exact name; a name
// matching nothing yields an empty result, not an error.
func (s *AnalyticsService) TeamProgress(leaderID uint, teamName string) ([]SessionProgressRow, error) {
	query := s.db.Model(&models.Vote{}).
		Select("votes.session_id AS session_id, AVG(votes.vote_value) AS avg_vote").
		Joins("JOIN teams ON teams.id = votes.team_id").
		Where("teams.leader_id = ?", leaderID)
	if teamName != "" {
		query = query.Where("teams.name = ?", teamName)
	}

	var rows []SessionProgressRow
	err := query.
		Group("votes.session_id").
		Order("votes.session_id ASC").
		Scan(&rows).Error
	return rows, err
}
