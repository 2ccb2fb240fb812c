package authz_test

import (
	"testing"

	"github.com/lexablackstar/HealthCheckApp/internal/authz"
	"github.com/lexablackstar/HealthCheckApp/internal/models"
)

func TestAllowedTable(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		action  authz.Action
		allowed bool
	}{
		{"admin views admin dashboard", models.RoleAdmin, authz.ViewAdminDashboard, true},
		{"senior manager denied admin dashboard", models.RoleSeniorManager, authz.ViewAdminDashboard, false},
		{"senior manager views manager dashboard", models.RoleSeniorManager, authz.ViewManagerDashboard, true},
		{"admin denied manager dashboard", models.RoleAdmin, authz.ViewManagerDashboard, false},
		{"team leader manages teams", models.RoleTeamLeader, authz.ManageTeams, true},
		{"department leader manages teams", models.RoleDepartmentLeader, authz.ManageTeams, true},
		{"engineer denied manage teams", models.RoleEngineer, authz.ManageTeams, false},
		{"team leader creates team", models.RoleTeamLeader, authz.CreateTeam, true},
		{"admin creates team", models.RoleAdmin, authz.CreateTeam, true},
		{"department leader denied create team", models.RoleDepartmentLeader, authz.CreateTeam, false},
		{"admin edits team", models.RoleAdmin, authz.EditTeam, true},
		{"team leader deletes team", models.RoleTeamLeader, authz.DeleteTeam, true},
		{"engineer denied delete team", models.RoleEngineer, authz.DeleteTeam, false},
		{"department leader manages departments", models.RoleDepartmentLeader, authz.ManageDepartments, true},
		{"admin denied manage departments listing", models.RoleAdmin, authz.ManageDepartments, false},
		{"admin creates department", models.RoleAdmin, authz.CreateDepartment, true},
		{"department leader deletes department", models.RoleDepartmentLeader, authz.DeleteDepartment, true},
		{"team leader denied create department", models.RoleTeamLeader, authz.CreateDepartment, false},
		{"team leader creates session", models.RoleTeamLeader, authz.CreateSession, true},
		{"admin denied create session", models.RoleAdmin, authz.CreateSession, false},
		{"engineer denied create session", models.RoleEngineer, authz.CreateSession, false},
		{"team leader adds question", models.RoleTeamLeader, authz.AddQuestion, true},
		{"senior manager denied add question", models.RoleSeniorManager, authz.AddQuestion, false},
		{"admin updates users", models.RoleAdmin, authz.UpdateUser, true},
		{"team leader denied update users", models.RoleTeamLeader, authz.UpdateUser, false},
		{"admin deletes users", models.RoleAdmin, authz.DeleteUser, true},
		{"engineer denied delete users", models.RoleEngineer, authz.DeleteUser, false},
		{"team leader views team progress", models.RoleTeamLeader, authz.ViewTeamProgress, true},
		{"department leader denied team progress", models.RoleDepartmentLeader, authz.ViewTeamProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authz.Allowed(tt.role, tt.action); got != tt.allowed {
				t.Fatalf("Allowed(%q, %q) = %v, want %v", tt.role, tt.action, got, tt.allowed)
			}
		})
	}
}

func TestAllowedDeniesUnknownInputs(t *testing.T) {
	if authz.Allowed(models.Role("Intern"), authz.CreateTeam) {
		t.Fatal("unknown role must be denied")
	}
	if authz.Allowed(models.RoleAdmin, authz.Action("launch_rockets")) {
		t.Fatal("unknown action must be denied")
	}
	if authz.Allowed("", authz.CreateSession) {
		t.Fatal("empty role must be denied")
	}
}

func TestAllowedIsDeterministic(t *testing.T) {
	for _, role := range models.Roles() {
		for _, action := range []authz.Action{authz.CreateTeam, authz.CreateSession, authz.DeleteUser, authz.ViewTeamProgress} {
			first := authz.Allowed(role, action)
			for i := 0; i < 10; i++ {
				if authz.Allowed(role, action) != first {
					t.Fatalf("Allowed(%q, %q) is not stable across calls", role, action)
				}
			}
		}
	}
}
