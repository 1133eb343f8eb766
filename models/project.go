package models

import "time"

type Project struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Code        string `gorm:"uniqueIndex;size:64" json:"code"`
	Name        string `gorm:"uniqueIndex;size:255;not null" json:"name" binding:"required"`
	Description string `gorm:"type:text" json:"description"`

	SectorId     int    `gorm:"index;default:null" json:"sector_id"`
	CountryId    int    `gorm:"index;default:null" json:"country_id"`
	Region       string `gorm:"size:128" json:"region"`
	BusinessLine string `gorm:"index;size:128" json:"business_line"`
	Portfolio    string `gorm:"index;size:128" json:"portfolio"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (p Project) SoftDeleted() bool {
	return p.IsDeleted
}
