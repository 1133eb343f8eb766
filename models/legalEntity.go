package models

import "time"

type LegalEntity struct {
	ID          int    `gorm:"primary_key" json:"id"`
	RmpmCode    string `gorm:"size:64;not null;uniqueIndex:uq_entity_rmpm" json:"rmpm_code" binding:"required"`
	RmpmType    string `gorm:"size:64;not null;uniqueIndex:uq_entity_rmpm" json:"rmpm_type" binding:"required"`
	Name        string `gorm:"index;size:255;not null" json:"name" binding:"required"`
	Description string `gorm:"type:text" json:"description"`

	LeiCode   string `gorm:"index;size:20" json:"lei_code"`
	CountryId int    `gorm:"index;default:null" json:"country_id"`
	SectorId  int    `gorm:"index;default:null" json:"sector_id"`

	IsSanctioned *bool   `gorm:"index;not null;default:false" json:"is_sanctioned"`
	IsPep        *bool   `gorm:"index;not null;default:false" json:"is_pep"`
	AmlRisk      AmlRisk `gorm:"index;size:32" json:"aml_risk"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (e LegalEntity) SoftDeleted() bool {
	return e.IsDeleted
}

// External identifier of a legal entity (BIC, SIREN, VAT, INTERNAL).
// A scheme+value pair belongs to exactly one entity; an entity may
// carry several identifiers under the same scheme.
type EntityIdentifier struct {
	ID       int    `gorm:"primary_key" json:"id"`
	EntityId int    `gorm:"index;not null" json:"entity_id" binding:"required"`
	Scheme   string `gorm:"index;size:64;not null;uniqueIndex:uq_entity_identifier" json:"scheme" binding:"required"`
	Value    string `gorm:"index;size:128;not null;uniqueIndex:uq_entity_identifier" json:"value" binding:"required"`
}
