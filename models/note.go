package models

import "time"

type InterlinkageNote struct {
	ID             int `gorm:"primary_key" json:"id"`
	InterlinkageId int `gorm:"index;not null" json:"interlinkage_id" binding:"required"`

	Title      string         `gorm:"size:255;not null" json:"title" binding:"required"`
	Body       string         `gorm:"type:text;not null" json:"body" binding:"required"`
	Visibility NoteVisibility `gorm:"index;size:32" json:"visibility"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (n InterlinkageNote) SoftDeleted() bool {
	return n.IsDeleted
}
