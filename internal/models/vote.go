package models

import "time"

// Vote is a numeric rating for a team within a session. Votes are
// append-only: there is no uniqueness on (user, session, team), so repeated
// voting accumulates and shifts the averages.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	TeamID    uint      `gorm:"not null;index" json:"team_id"`
	VoteValue int       `gorm:"not null" json:"vote_value"`
	CreatedAt time.Time `json:"created_at"`
}
