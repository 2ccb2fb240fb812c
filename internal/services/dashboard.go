package services

import (
	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DashboardService struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewDashboardService(logger *zap.SugaredLogger, db *gorm.DB) *DashboardService {
	return &DashboardService{logger: logger, db: db}
}

// DashboardView is the role-scoped slice of the organization a caller may
// see. Fields the role has no claim on stay empty.
type DashboardView struct {
	Role        models.Role                 `json:"role"`
	Users       []models.User               `json:"users,omitempty"`
	Teams       []models.Team               `json:"teams,omitempty"`
	Departments []models.Department         `json:"departments,omitempty"`
	Sessions    []models.HealthCheckSession `json:"sessions,omitempty"`
}

// Compose projects the organization graph and survey catalog for the caller.
// Total over roles: anything unrecognized gets an empty but valid view.
func (s *DashboardService) Compose(userID uint, role models.Role) (*DashboardView, error) {
	view := &DashboardView{Role: role}

	switch role {
	case models.RoleAdmin:
		if err := s.db.Order("username ASC").Find(&view.Users).Error; err != nil {
			return nil, err
		}
		if err := s.db.Order("name ASC").Find(&view.Teams).Error; err != nil {
			return nil, err
		}
		if err := s.db.Order("name ASC").Find(&view.Departments).Error; err != nil {
			return nil, err
		}

	case models.RoleSeniorManager:
		if err := s.db.Order("name ASC").Find(&view.Teams).Error; err != nil {
			return nil, err
		}
		if err := s.db.Order("name ASC").Find(&view.Departments).Error; err != nil {
			return nil, err
		}

	case models.RoleTeamLeader:
		if err := s.db.Where("leader_id = ?", userID).Order("name ASC").Find(&view.Teams).Error; err != nil {
			return nil, err
		}
		if err := s.db.Where("team_leader_id = ?", userID).Order("created_at DESC").Find(&view.Sessions).Error; err != nil {
			return nil, err
		}

	case models.RoleDepartmentLeader:
		if err := s.db.Where("leader_id = ?", userID).Order("name ASC").Find(&view.Departments).Error; err != nil {
			return nil, err
		}
		err := s.db.
			Joins("JOIN department_teams dt ON dt.team_id = teams.id").
			Joins("JOIN departments d ON d.id = dt.department_id").
			Where("d.leader_id = ?", userID).
			Distinct("teams.*").
			Find(&view.Teams).Error
		if err != nil {
			return nil, err
		}

	case models.RoleEngineer:
		err := s.db.
			Joins("JOIN team_engineers te ON te.team_id = teams.id").
			Where("te.user_id = ?", userID).
			Find(&view.Teams).Error
		if err != nil {
			return nil, err
		}

		leaderIDs := make([]uint, 0, len(view.Teams))
		for _, team := range view.Teams {
			leaderIDs = append(leaderIDs, team.LeaderID)
		}
		if len(leaderIDs) > 0 {
			err = s.db.Where("team_leader_id IN ?", leaderIDs).
				Order("created_at DESC").
				Find(&view.Sessions).Error
			if err != nil {
				return nil, err
			}
		}
	}

	return view, nil
}
