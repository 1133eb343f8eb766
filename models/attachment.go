package models

import "time"

type InterlinkageAttachment struct {
	ID             int `gorm:"primary_key" json:"id"`
	InterlinkageId int `gorm:"index;not null" json:"interlinkage_id" binding:"required"`

	Filename    string `gorm:"size:255;not null" json:"filename" binding:"required"`
	MimeType    string `gorm:"size:128" json:"mime_type"`
	StorageUri  string `gorm:"size:1024;not null" json:"storage_uri"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (a InterlinkageAttachment) SoftDeleted() bool {
	return a.IsDeleted
}
