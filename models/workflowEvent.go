package models

import "time"

// WorkflowEvent records a status transition of an interlinkage.
// Audit only, never soft-deleted.
type WorkflowEvent struct {
	ID             int `gorm:"primary_key" json:"id"`
	InterlinkageId int `gorm:"index;not null" json:"interlinkage_id" binding:"required"`

	FromStatus string `gorm:"index;size:32" json:"from_status"`
	ToStatus   string `gorm:"index;size:32;not null" json:"to_status" binding:"required"`
	Reason     string `gorm:"type:text" json:"reason"`
	Actor      string `gorm:"index;size:128" json:"actor"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string    `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string    `gorm:"index;size:128" json:"updated_by"`
}
