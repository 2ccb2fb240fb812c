package models

import "time"

// Answer is the traffic-light scale for health-check responses.
type Answer string

const (
	AnswerGreen  Answer = "green"
	AnswerYellow Answer = "yellow"
	AnswerRed    Answer = "red"
)

func (a Answer) Valid() bool {
	switch a {
	case AnswerGreen, AnswerYellow, AnswerRed:
		return true
	}
	return false
}

// Response holds a user's latest traffic-light answer to a question.
// The composite unique index backs the upsert on resubmission.
type Response struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_response_user_question" json:"user_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_response_user_question" json:"question_id"`
	Answer     Answer    `gorm:"size:10;not null" json:"answer"`
	Timestamp  time.Time `json:"timestamp"`
}
