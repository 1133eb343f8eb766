package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExposureSnapshot is one dated risk-measure row per interlinkage per
// as-of-date; "latest" means max as_of_date per interlinkage.
type ExposureSnapshot struct {
	ID             int `gorm:"primary_key" json:"id"`
	InterlinkageId int `gorm:"index;not null;uniqueIndex:uq_exposure_timeseries" json:"interlinkage_id" binding:"required"`

	AsOfDate   Date `gorm:"index;not null;uniqueIndex:uq_exposure_timeseries" json:"as_of_date" binding:"required"`
	CurrencyId int  `gorm:"index;not null" json:"currency_id" binding:"required"`

	Ead     decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"ead"`
	Undrawn decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"undrawn"`
	Mtm     decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"mtm"`
	Pnl     decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"pnl"`
	Rwa     decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"rwa"`
	Pd      decimal.Decimal `gorm:"type:decimal(6,4);default:0" json:"pd"`
	Lgd     decimal.Decimal `gorm:"type:decimal(6,4);default:0" json:"lgd"`

	FxToReporting decimal.Decimal `gorm:"type:decimal(18,8);default:0" json:"fx_to_reporting"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (e ExposureSnapshot) SoftDeleted() bool {
	return e.IsDeleted
}

// Measure returns the named risk measure column.
// Callers validate the measure name up front.
func (e ExposureSnapshot) Measure(name string) decimal.Decimal {
	switch name {
	case "ead":
		return e.Ead
	case "rwa":
		return e.Rwa
	case "mtm":
		return e.Mtm
	case "pnl":
		return e.Pnl
	}
	return decimal.Zero
}
