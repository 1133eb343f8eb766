package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Facility struct {
	ID             int             `gorm:"primary_key" json:"id"`
	FacilityTypeId int             `gorm:"index;not null" json:"facility_type_id" binding:"required"`
	Reference      string          `gorm:"uniqueIndex;size:64;not null" json:"reference" binding:"required"`
	LimitAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"limit_amount" binding:"required"`
	CurrencyId     int             `gorm:"not null" json:"currency_id" binding:"required"`
	MaturityDate   *Date           `json:"maturity_date"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (f Facility) SoftDeleted() bool {
	return f.IsDeleted
}
