package models

import "time"

// HealthCheckSession is a named bundle of questions owned by a team leader.
// The question set is fixed at creation time.
type HealthCheckSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	TeamLeaderID uint       `gorm:"not null;index" json:"team_leader_id"`
	TeamLeader   User       `gorm:"foreignKey:TeamLeaderID;constraint:OnDelete:CASCADE" json:"-"`
	Questions    []Question `gorm:"many2many:session_questions" json:"questions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
