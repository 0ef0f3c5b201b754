package model

import "time"

type Member struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}
