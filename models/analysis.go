package models

import "time"

// InterlinkageAnalysis holds at most one free-text analysis document
// per interlinkage.
type InterlinkageAnalysis struct {
	ID             int    `gorm:"primary_key" json:"id"`
	InterlinkageId int    `gorm:"uniqueIndex;not null" json:"interlinkage_id" binding:"required"`
	Content        string `gorm:"type:text" json:"content"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (a InterlinkageAnalysis) SoftDeleted() bool {
	return a.IsDeleted
}
