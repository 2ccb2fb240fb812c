package services

import (
	"errors"
	"time"

	"github.com/lexablackstar/HealthCheckApp/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	logger    *zap.SugaredLogger
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(logger *zap.SugaredLogger, db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{logger: logger, db: db, jwtSecret: []byte(jwtSecret)}
}

type RegisterInput struct {
	Username        string
	FirstName       string
	LastName        string
	Email           string
	Role            models.Role
	Password        string
	PasswordConfirm string
}

// Register creates a user and its profile in one transaction and returns a
// signed token for the new account.
func (s *AuthService) Register(input RegisterInput) (string, error) {
	if len(input.Username) < 5 || len(input.Username) > 30 {
		return "", errors.New("username must be 5 to 30 characters long")
	}
	if input.Password != input.PasswordConfirm {
		return "", ErrPasswordMismatch
	}
	if err := ValidatePassword(input.Password); err != nil {
		return "", err
	}

	role := input.Role
	if role == "" {
		role = models.RoleEngineer
	}
	if !role.Valid() {
		return "", errors.New("unknown role")
	}

	var existing models.User
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return "", errors.New("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{UserID: user.ID, Role: role}
		return tx.Create(&profile).Error
	})
	if err != nil {
		s.logger.Errorw("error registering user", "username", input.Username, "error", err)
		return "", err
	}

	return s.GenerateToken(user.ID)
}

func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return s.GenerateToken(user.ID)
}

// ChangePassword verifies the current password and applies the same policy
// as registration to the new one.
func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword, newPasswordConfirm string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return errors.New("current password is incorrect")
	}
	if newPassword != newPasswordConfirm {
		return ErrPasswordMismatch
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password_hash", string(hash)).Error
}

// GetRole resolves the caller's role from their profile.
func (s *AuthService) GetRole(userID uint) (models.Role, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return "", errors.New("profile not found")
	}
	return profile.Role, nil
}

func (s *AuthService) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid user_id in token")
	}

	return uint(userIDFloat), nil
}
