package services_test

import (
	"testing"

	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *services.AuthService {
	return services.NewAuthService(testLogger(), newTestDB(t), "test-secret")
}

func registerInput(username string) services.RegisterInput {
	return services.RegisterInput{
		Username:        username,
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           username + "@example.com",
		Role:            models.RoleEngineer,
		Password:        "analytical-engine",
		PasswordConfirm: "analytical-engine",
	}
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(testLogger(), db, "test-secret")

	token, err := svc.Register(registerInput("ada.lovelace"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("username = ?", "ada.lovelace").First(&user).Error)
	require.Equal(t, user.ID, userID)
	require.NotEqual(t, "analytical-engine", user.PasswordHash)

	role, err := svc.GetRole(user.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleEngineer, role)
	require.True(t, role.Valid())
}

func TestRegisterDefaultsToEngineer(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(testLogger(), db, "test-secret")

	input := registerInput("grace.hopper")
	input.Role = ""
	_, err := svc.Register(input)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("username = ?", "grace.hopper").First(&user).Error)
	role, err := svc.GetRole(user.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleEngineer, role)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*services.RegisterInput)
	}{
		{"username too short", func(in *services.RegisterInput) { in.Username = "ada" }},
		{"username too long", func(in *services.RegisterInput) { in.Username = "ada012345678901234567890123456789" }},
		{"password mismatch", func(in *services.RegisterInput) { in.PasswordConfirm = "different" }},
		{"password too short", func(in *services.RegisterInput) { in.Password = "short"; in.PasswordConfirm = "short" }},
		{"password too common", func(in *services.RegisterInput) { in.Password = "password123"; in.PasswordConfirm = "password123" }},
		{"password entirely numeric", func(in *services.RegisterInput) { in.Password = "4815162342"; in.PasswordConfirm = "4815162342" }},
		{"unknown role", func(in *services.RegisterInput) { in.Role = "Intern" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService(t)
			input := registerInput("valid.username")
			tt.mutate(&input)
			_, err := svc.Register(input)
			require.Error(t, err)
		})
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(registerInput("ada.lovelace"))
	require.NoError(t, err)

	_, err = svc.Register(registerInput("ada.lovelace"))
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Register(registerInput("ada.lovelace"))
	require.NoError(t, err)

	token, err := svc.Login("ada.lovelace", "analytical-engine")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = svc.Login("ada.lovelace", "wrong-password")
	require.Error(t, err)

	_, err = svc.Login("nobody", "analytical-engine")
	require.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)
	token, err := svc.Register(registerInput("ada.lovelace"))
	require.NoError(t, err)
	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)

	require.Error(t, svc.ChangePassword(userID, "wrong-old", "difference-engine", "difference-engine"))
	require.Error(t, svc.ChangePassword(userID, "analytical-engine", "difference-engine", "mismatch"))
	require.ErrorIs(t, svc.ChangePassword(userID, "analytical-engine", "1234567890", "1234567890"), services.ErrPasswordNumeric)

	require.NoError(t, svc.ChangePassword(userID, "analytical-engine", "difference-engine", "difference-engine"))

	_, err = svc.Login("ada.lovelace", "difference-engine")
	require.NoError(t, err)
	_, err = svc.Login("ada.lovelace", "analytical-engine")
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestValidatePasswordPolicy(t *testing.T) {
	require.ErrorIs(t, services.ValidatePassword("short"), services.ErrPasswordTooShort)
	require.ErrorIs(t, services.ValidatePassword("Password123"), services.ErrPasswordTooCommon)
	require.ErrorIs(t, services.ValidatePassword("90210902109"), services.ErrPasswordNumeric)
	require.NoError(t, services.ValidatePassword("correct-horse-battery"))
}
