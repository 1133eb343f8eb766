package models

// Reference dictionaries. Small tables joined by id for display
// enrichment; never fetched wholesale by the bundle endpoints.

type Currency struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Code string `gorm:"uniqueIndex;size:3;not null" json:"code" binding:"required"`
	Name string `gorm:"size:64" json:"name"`
}

func (Currency) TableName() string {
	return "ref_currencies"
}

type Country struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Iso2 string `gorm:"uniqueIndex;size:2;not null" json:"iso2" binding:"required"`
	Iso3 string `gorm:"uniqueIndex;size:3" json:"iso3"`
	Name string `gorm:"size:128" json:"name"`
}

func (Country) TableName() string {
	return "ref_countries"
}

type Sector struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Code        string `gorm:"uniqueIndex;size:32;not null" json:"code" binding:"required"`
	Label       string `gorm:"size:128;not null" json:"label" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
}

func (Sector) TableName() string {
	return "ref_sectors"
}

type PraActivity struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Code        string `gorm:"uniqueIndex;size:64;not null" json:"code" binding:"required"`
	Label       string `gorm:"size:128;not null" json:"label" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
}

func (PraActivity) TableName() string {
	return "ref_pra_activities"
}

type CounterpartyType struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Code        string `gorm:"uniqueIndex;size:64;not null" json:"code" binding:"required"`
	Label       string `gorm:"size:128;not null" json:"label" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
}

func (CounterpartyType) TableName() string {
	return "ref_counterparty_types"
}

type InstrumentType struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Code        string `gorm:"uniqueIndex;size:64;not null" json:"code" binding:"required"`
	Label       string `gorm:"size:128;not null" json:"label" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
}

func (InstrumentType) TableName() string {
	return "ref_instrument_types"
}

type FacilityType struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Code        string `gorm:"uniqueIndex;size:64;not null" json:"code" binding:"required"`
	Label       string `gorm:"size:128;not null" json:"label" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
}

func (FacilityType) TableName() string {
	return "ref_facility_types"
}
