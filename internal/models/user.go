package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	FirstName    string    `gorm:"size:30;not null" json:"first_name"`
	LastName     string    `gorm:"size:30;not null" json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
}
