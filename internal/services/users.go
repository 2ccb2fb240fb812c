package services

import (
	"errors"

	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewUserService(logger *zap.SugaredLogger, db *gorm.DB) *UserService {
	return &UserService{logger: logger, db: db}
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// UpdateSettings lets a user change their own name and email.
func (s *UserService) UpdateSettings(userID uint, firstName, lastName, email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser is the admin-only profile update: names, email and role.
func (s *UserService) UpdateUser(username, firstName, lastName, email string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, errors.New("unknown role")
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user.FirstName = firstName
		user.LastName = lastName
		user.Email = email
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return tx.Model(&models.UserProfile{}).
			Where("user_id = ?", user.ID).
			Update("role", role).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user and everything hanging off them: authored votes
// and responses, sessions they created, teams and departments they lead, and
// their membership links. The cascade is spelled out here because the store
// is the only place owning rows reference the user from.
func (s *UserService) DeleteUser(username string) error {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return errors.New("user not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Response{}).Error; err != nil {
			return err
		}

		var sessionIDs []uint
		tx.Model(&models.HealthCheckSession{}).Where("team_leader_id = ?", user.ID).Pluck("id", &sessionIDs)
		if len(sessionIDs) > 0 {
			if err := tx.Where("session_id IN ?", sessionIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			tx.Exec("DELETE FROM session_questions WHERE health_check_session_id IN ?", sessionIDs)
			if err := tx.Where("id IN ?", sessionIDs).Delete(&models.HealthCheckSession{}).Error; err != nil {
				return err
			}
		}

		var teamIDs []uint
		tx.Model(&models.Team{}).Where("leader_id = ?", user.ID).Pluck("id", &teamIDs)
		if len(teamIDs) > 0 {
			if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			tx.Exec("DELETE FROM team_engineers WHERE team_id IN ?", teamIDs)
			tx.Exec("DELETE FROM department_teams WHERE team_id IN ?", teamIDs)
			if err := tx.Where("id IN ?", teamIDs).Delete(&models.Team{}).Error; err != nil {
				return err
			}
		}

		var departmentIDs []uint
		tx.Model(&models.Department{}).Where("leader_id = ?", user.ID).Pluck("id", &departmentIDs)
		if len(departmentIDs) > 0 {
			tx.Exec("DELETE FROM department_teams WHERE department_id IN ?", departmentIDs)
			if err := tx.Where("id IN ?", departmentIDs).Delete(&models.Department{}).Error; err != nil {
				return err
			}
		}

		tx.Exec("DELETE FROM team_engineers WHERE user_id = ?", user.ID)

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		s.logger.Errorw("error deleting user", "username", username, "error", err)
	}
	return err
}

func (s *UserService) GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, errors.New("profile not found")
	}
	return &profile, nil
}

// ListUsersByRole returns users whose profile carries the given role, used
// when an admin picks a leader for a new team or department.
func (s *UserService) ListUsersByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("user_profiles.role = ?", role).
		Order("users.username ASC").
		Find(&users).Error
	return users, err
}
