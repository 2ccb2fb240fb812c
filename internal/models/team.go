package models

type Team struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	LeaderID  uint   `gorm:"not null;index" json:"leader_id"`
	Leader    User   `gorm:"foreignKey:LeaderID;constraint:OnDelete:CASCADE" json:"-"`
	Engineers []User `gorm:"many2many:team_engineers" json:"engineers,omitempty"`
}

type Department struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	LeaderID uint   `gorm:"not null;index" json:"leader_id"`
	Leader   User   `gorm:"foreignKey:LeaderID;constraint:OnDelete:CASCADE" json:"-"`
	Teams    []Team `gorm:"many2many:department_teams" json:"teams,omitempty"`
}
