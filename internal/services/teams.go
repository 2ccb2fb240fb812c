package services

import (
	"errors"

	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTeamExists       = errors.New("team name already taken")
	ErrDepartmentExists = errors.New("department name already taken")
)

type TeamService struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewTeamService(logger *zap.SugaredLogger, db *gorm.DB) *TeamService {
	return &TeamService{logger: logger, db: db}
}

// CreateTeam creates a team led by leaderID. Callers resolve leaderID before
// calling: a team leader leads their own team, an admin may assign any user
// with the Team Leader role.
func (s *TeamService) CreateTeam(name string, leaderID uint) (*models.Team, error) {
	var leader models.User
	if err := s.db.First(&leader, leaderID).Error; err != nil {
		return nil, errors.New("leader not found")
	}

	var existing models.Team
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrTeamExists
	}

	team := models.Team{Name: name, LeaderID: leaderID}
	if err := s.db.Create(&team).Error; err != nil {
		s.logger.Errorw("error creating team", "name", name, "error", err)
		return nil, err
	}
	return &team, nil
}

// UpdateTeam renames the team and replaces its engineer set.
func (s *TeamService) UpdateTeam(teamID uint, name string, engineerIDs []uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, errors.New("team not found")
	}

	var engineers []models.User
	if len(engineerIDs) > 0 {
		if err := s.db.Where("id IN ?", engineerIDs).Find(&engineers).Error; err != nil {
			return nil, err
		}
	}

	team.Name = name
	if err := s.db.Save(&team).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&team).Association("Engineers").Replace(engineers); err != nil {
		return nil, err
	}

	s.db.Preload("Engineers").First(&team, teamID)
	return &team, nil
}

// DeleteTeam removes the team together with its votes and join rows.
func (s *TeamService) DeleteTeam(teamID uint) error {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return errors.New("team not found")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		tx.Exec("DELETE FROM team_engineers WHERE team_id = ?", teamID)
		tx.Exec("DELETE FROM department_teams WHERE team_id = ?", teamID)
		return tx.Delete(&team).Error
	})
}

func (s *TeamService) ListTeamsByLeader(leaderID uint) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Where("leader_id = ?", leaderID).
		Preload("Engineers").
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

type DepartmentService struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewDepartmentService(logger *zap.SugaredLogger, db *gorm.DB) *DepartmentService {
	return &DepartmentService{logger: logger, db: db}
}

func (s *DepartmentService) CreateDepartment(name string, leaderID uint) (*models.Department, error) {
	var leader models.User
	if err := s.db.First(&leader, leaderID).Error; err != nil {
		return nil, errors.New("leader not found")
	}

	var existing models.Department
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrDepartmentExists
	}

	department := models.Department{Name: name, LeaderID: leaderID}
	if err := s.db.Create(&department).Error; err != nil {
		s.logger.Errorw("error creating department", "name", name, "error", err)
		return nil, err
	}
	return &department, nil
}

// UpdateDepartment renames the department and replaces its member team set.
func (s *DepartmentService) UpdateDepartment(departmentID uint, name string, teamIDs []uint) (*models.Department, error) {
	var department models.Department
	if err := s.db.First(&department, departmentID).Error; err != nil {
		return nil, errors.New("department not found")
	}

	var teams []models.Team
	if len(teamIDs) > 0 {
		if err := s.db.Where("id IN ?", teamIDs).Find(&teams).Error; err != nil {
			return nil, err
		}
	}

	department.Name = name
	if err := s.db.Save(&department).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&department).Association("Teams").Replace(teams); err != nil {
		return nil, err
	}

	s.db.Preload("Teams").First(&department, departmentID)
	return &department, nil
}

func (s *DepartmentService) DeleteDepartment(departmentID uint) error {
	var department models.Department
	if err := s.db.First(&department, departmentID).Error; err != nil {
		return errors.New("department not found")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Exec("DELETE FROM department_teams WHERE department_id = ?", departmentID)
		return tx.Delete(&department).Error
	})
}

func (s *DepartmentService) ListDepartmentsByLeader(leaderID uint) ([]models.Department, error) {
	var departments []models.Department
	err := s.db.Where("leader_id = ?", leaderID).
		Preload("Teams").
		Order("name ASC").
		Find(&departments).Error
	return departments, err
}
