package models

// Role is the closed set of organizational roles. The raw strings double as
// the stored column values, so they must stay stable across migrations.
type Role string

const (
	RoleAdmin            Role = "Admin"
	RoleSeniorManager    Role = "Senior Manager"
	RoleDepartmentLeader Role = "Department Leader"
	RoleTeamLeader       Role = "Team Leader"
	RoleEngineer         Role = "Engineer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeniorManager, RoleDepartmentLeader, RoleTeamLeader, RoleEngineer:
		return true
	}
	return false
}

func Roles() []Role {
	return []Role{RoleAdmin, RoleSeniorManager, RoleDepartmentLeader, RoleTeamLeader, RoleEngineer}
}

type UserProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Role   Role `gorm:"size:20;not null;default:'Engineer'" json:"role"`
}
