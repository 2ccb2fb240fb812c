package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lexablackstar/HealthCheckApp/internal/models"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory SQLite database so aggregate queries
// and upserts run against a real SQL engine.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Team{},
		&models.Department{},
		&models.Question{},
		&models.HealthCheckSession{},
		&models.Response{},
		&models.Vote{},
	))
	return db
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "not-a-real-hash",
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.UserProfile{UserID: user.ID, Role: role}).Error)
	return user
}

func createTeam(t *testing.T, db *gorm.DB, name string, leaderID uint) *models.Team {
	t.Helper()

	team := &models.Team{Name: name, LeaderID: leaderID}
	require.NoError(t, db.Create(team).Error)
	return team
}

func createQuestion(t *testing.T, db *gorm.DB, text string) *models.Question {
	t.Helper()

	question := &models.Question{Text: text}
	require.NoError(t, db.Create(question).Error)
	return question
}
