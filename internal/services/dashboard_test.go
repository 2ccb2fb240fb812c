package services_test

import (
	"testing"

	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/stretchr/testify/require"
)

func TestDashboardAdminSeesEverything(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(testLogger(), db)

	admin := createUser(t, db, "the.admin", models.RoleAdmin)
	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	deptLeader := createUser(t, db, "dept.leader", models.RoleDepartmentLeader)
	createTeam(t, db, "Platform", leader.ID)
	require.NoError(t, db.Create(&models.Department{Name: "Engineering", LeaderID: deptLeader.ID}).Error)

	view, err := svc.Compose(admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, view.Users, 3)
	require.Len(t, view.Teams, 1)
	require.Len(t, view.Departments, 1)
	require.Empty(t, view.Sessions)
}

func TestDashboardSeniorManager(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(testLogger(), db)

	manager := createUser(t, db, "snr.manager", models.RoleSeniorManager)
	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	createTeam(t, db, "Platform", leader.ID)

	view, err := svc.Compose(manager.ID, models.RoleSeniorManager)
	require.NoError(t, err)
	require.Empty(t, view.Users)
	require.Len(t, view.Teams, 1)
	require.Empty(t, view.Sessions)
}

func TestDashboardTeamLeader(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(testLogger(), db)
	surveys := services.NewSurveyService(testLogger(), db)

	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	other := createUser(t, db, "other.leader", models.RoleTeamLeader)
	createTeam(t, db, "Mine", leader.ID)
	createTeam(t, db, "Theirs", other.ID)
	_, err := surveys.CreateSession(leader.ID, "My Session", nil)
	require.NoError(t, err)
	_, err = surveys.CreateSession(other.ID, "Their Session", nil)
	require.NoError(t, err)

	view, err := svc.Compose(leader.ID, models.RoleTeamLeader)
	require.NoError(t, err)
	require.Len(t, view.Teams, 1)
	require.Equal(t, "Mine", view.Teams[0].Name)
	require.Len(t, view.Sessions, 1)
	require.Equal(t, "My Session", view.Sessions[0].Name)
}

func TestDashboardDepartmentLeader(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(testLogger(), db)

	deptLeader := createUser(t, db, "dept.leader", models.RoleDepartmentLeader)
	teamLeader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	inside := createTeam(t, db, "Inside", teamLeader.ID)
	createTeam(t, db, "Outside", teamLeader.ID)

	department := models.Department{Name: "Engineering", LeaderID: deptLeader.ID, Teams: []models.Team{*inside}}
	require.NoError(t, db.Create(&department).Error)

	view, err := svc.Compose(deptLeader.ID, models.RoleDepartmentLeader)
	require.NoError(t, err)
	require.Len(t, view.Departments, 1)
	require.Len(t, view.Teams, 1)
	require.Equal(t, "Inside", view.Teams[0].Name)
}

func TestDashboardEngineer(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(testLogger(), db)
	surveys := services.NewSurveyService(testLogger(), db)

	leader := createUser(t, db, "team.leader", models.RoleTeamLeader)
	stranger := createUser(t, db, "other.leader", models.RoleTeamLeader)
	engineer := createUser(t, db, "eng.member", models.RoleEngineer)

	team := createTeam(t, db, "Platform", leader.ID)
	require.NoError(t, db.Model(team).Association("Engineers").Append(engineer))
	createTeam(t, db, "Elsewhere", stranger.ID)

	_, err := surveys.CreateSession(leader.ID, "Visible", nil)
	require.NoError(t, err)
	_, err = surveys.CreateSession(stranger.ID, "Hidden", nil)
	require.NoError(t, err)

	view, err := svc.Compose(engineer.ID, models.RoleEngineer)
	require.NoError(t, err)
	require.Len(t, view.Teams, 1)
	require.Equal(t, "Platform", view.Teams[0].Name)
	require.Len(t, view.Sessions, 1)
	require.Equal(t, "Visible", view.Sessions[0].Name)
}

func TestDashboardUnknownRoleIsEmptyButValid(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(testLogger(), db)
	user := createUser(t, db, "some.user", models.RoleEngineer)

	view, err := svc.Compose(user.ID, models.Role("Contractor"))
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Empty(t, view.Users)
	require.Empty(t, view.Teams)
	require.Empty(t, view.Departments)
	require.Empty(t, view.Sessions)
}
