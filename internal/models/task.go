package model

import (
	"time"
)

type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Description string     `gorm:"size:250;not null" json:"description"`
	OwnerID     string     `gorm:"size:36;not null;index" json:"owner_id"`
	AssigneeID  string     `gorm:"size:36;not null;index" json:"assignee_id"`
	TickedOff   bool       `gorm:"not null;default:false" json:"ticked_off"`
	TickedOffAt *time.Time `json:"ticked_off_at,omitempty"`
	ResumedAt   *time.Time `json:"resumed_at,omitempty"`
	Archived    bool       `gorm:"not null;default:false;index" json:"archived"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	Discarded   bool       `gorm:"not null;default:false;index" json:"discarded"`
	DiscardedAt *time.Time `json:"discarded_at,omitempty"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
}
