package models

import "time"

type Instrument struct {
	ID               int    `gorm:"primary_key" json:"id"`
	InstrumentTypeId int    `gorm:"index;not null" json:"instrument_type_id" binding:"required"`
	Reference        string `gorm:"uniqueIndex;size:64" json:"reference"`
	Description      string `gorm:"type:text" json:"description"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (i Instrument) SoftDeleted() bool {
	return i.IsDeleted
}
