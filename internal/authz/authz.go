// Package authz is the single place where roles are mapped to permitted
// actions. Handlers consult Allowed before any state-changing or sensitive
// read; nothing here touches the database.
package authz

import "github.com/lexablackstar/HealthCheckApp/internal/models"

type Action string

const (
	ViewAdminDashboard   Action = "view_admin_dashboard"
	ViewManagerDashboard Action = "view_manager_dashboard"
	ManageTeams          Action = "manage_teams"
	CreateTeam           Action = "create_team"
	EditTeam             Action = "edit_team"
	DeleteTeam           Action = "delete_team"
	ManageDepartments    Action = "manage_departments"
	CreateDepartment     Action = "create_department"
	EditDepartment       Action = "edit_department"
	DeleteDepartment     Action = "delete_department"
	CreateSession        Action = "create_session"
	AddQuestion          Action = "add_question"
	UpdateUser           Action = "update_user"
	DeleteUser           Action = "delete_user"
	ViewTeamProgress     Action = "view_team_progress"
)

var permitted = map[Action][]models.Role{
	ViewAdminDashboard:   {models.RoleAdmin},
	ViewManagerDashboard: {models.RoleSeniorManager},
	ManageTeams:          {models.RoleTeamLeader, models.RoleDepartmentLeader},
	CreateTeam:           {models.RoleTeamLeader, models.RoleAdmin},
	EditTeam:             {models.RoleTeamLeader, models.RoleAdmin},
	DeleteTeam:           {models.RoleTeamLeader, models.RoleAdmin},
	ManageDepartments:    {models.RoleDepartmentLeader},
	CreateDepartment:     {models.RoleDepartmentLeader, models.RoleAdmin},
	EditDepartment:       {models.RoleDepartmentLeader, models.RoleAdmin},
	DeleteDepartment:     {models.RoleDepartmentLeader, models.RoleAdmin},
	CreateSession:        {models.RoleTeamLeader},
	AddQuestion:          {models.RoleTeamLeader},
	UpdateUser:           {models.RoleAdmin},
	DeleteUser:           {models.RoleAdmin},
	ViewTeamProgress:     {models.RoleTeamLeader},
}

// Allowed reports whether role may perform action. Unknown roles and unknown
// actions are denied.
func Allowed(role models.Role, action Action) bool {
	for _, r := range permitted[action] {
		if r == role {
			return true
		}
	}
	return false
}
