package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Interlinkage is the central relationship record between a sponsor and
// a counterparty entity under a project. Sponsor, counterparty and
// project are always present; booking entity and the remaining foreign
// keys are optional (0 = absent).
type Interlinkage struct {
	ID int `gorm:"primary_key" json:"id"`

	SponsorId       int `gorm:"index;not null" json:"sponsor_id" binding:"required"`
	CounterpartyId  int `gorm:"index;not null" json:"counterparty_id" binding:"required"`
	BookingEntityId int `gorm:"index;default:null" json:"booking_entity_id"`

	ProjectId          int `gorm:"index;not null" json:"project_id" binding:"required"`
	PraActivityId      int `gorm:"index;default:null" json:"pra_activity_id"`
	CounterpartyTypeId int `gorm:"index;default:null" json:"counterparty_type_id"`

	FacilityId   int `gorm:"index;default:null" json:"facility_id"`
	InstrumentId int `gorm:"index;default:null" json:"instrument_id"`

	DealDate      *Date `gorm:"index" json:"deal_date"`
	EffectiveDate *Date `gorm:"index" json:"effective_date"`
	MaturityDate  *Date `gorm:"index" json:"maturity_date"`

	NotionalAmount decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"notional_amount"`
	CurrencyId     int             `gorm:"index;default:null" json:"currency_id"`

	Status InterlinkageStatus `gorm:"index;type:enum('draft','validated','archived','deleted');default:'draft';not null" json:"status"`

	Purpose string `gorm:"type:text" json:"purpose"`
	Remarks string `gorm:"type:text" json:"remarks"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (i Interlinkage) SoftDeleted() bool {
	return i.IsDeleted
}
