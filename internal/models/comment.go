package model

import "time"

type Comment struct {
	ID        string    `gorm:"primaryKey;size:36"`
	TaskID    string    `gorm:"size:36;not null;index"`
	AuthorID  string    `gorm:"size:36;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}
