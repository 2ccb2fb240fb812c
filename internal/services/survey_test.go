package services_test

import (
	"testing"

	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/stretchr/testify/require"
)

func TestAddQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSurveyService(testLogger(), db)

	q, err := svc.AddQuestion("How is the on-call load?")
	require.NoError(t, err)
	require.NotZero(t, q.ID)

	questions, err := svc.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 1)
}

func TestCreateSessionAttachesQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSurveyService(testLogger(), db)

	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	q1 := createQuestion(t, db, "Q1")
	q2 := createQuestion(t, db, "Q2")

	session, err := svc.CreateSession(leader.ID, "Q1 Check", []uint{q1.ID, q2.ID})
	require.NoError(t, err)

	loaded, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	require.Equal(t, "Q1 Check", loaded.Name)
	require.Equal(t, leader.ID, loaded.TeamLeaderID)
	require.Len(t, loaded.Questions, 2)
	require.Equal(t, q1.ID, loaded.Questions[0].ID)
	require.Equal(t, q2.ID, loaded.Questions[1].ID)
}

func TestCreateSessionWithoutQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSurveyService(testLogger(), db)
	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)

	// degenerate but valid
	session, err := svc.CreateSession(leader.ID, "Empty", nil)
	require.NoError(t, err)

	loaded, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	require.Empty(t, loaded.Questions)
}

func TestCreateSessionUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSurveyService(testLogger(), db)
	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	q1 := createQuestion(t, db, "Q1")

	_, err := svc.CreateSession(leader.ID, "Broken", []uint{q1.ID, 999})
	require.Error(t, err)

	// nothing persisted
	var count int64
	db.Model(&models.HealthCheckSession{}).Count(&count)
	require.Zero(t, count)
}

func TestListSessionsByLeader(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSurveyService(testLogger(), db)

	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	other := createUser(t, db, "other.leader", models.RoleTeamLeader)

	_, err := svc.CreateSession(leader.ID, "Mine", nil)
	require.NoError(t, err)
	_, err = svc.CreateSession(other.ID, "Theirs", nil)
	require.NoError(t, err)

	sessions, err := svc.ListSessionsByLeader(leader.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "Mine", sessions[0].Name)

	_, err = svc.GetSession(999)
	require.Error(t, err)
}
