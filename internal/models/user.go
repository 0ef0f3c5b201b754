package model

import "time"

// User is an account that can sign in. Its member lives in the members
// table, linked through Member.UserID.
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// All lists every record the schema migration creates.
func All() []any {
	return []any{&User{}, &Member{}, &Task{}, &Comment{}}
}
