package models

// Question has no update endpoint; the text is immutable once created.
type Question struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"type:text;not null" json:"text"`
}
