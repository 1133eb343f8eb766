package models

import "time"

// Interdependence is a typed, leveled dependency edge attached to one
// interlinkage. The identifier is the grouping key for concentration
// clustering and is unique per interlinkage.
type Interdependence struct {
	ID             int `gorm:"primary_key" json:"id"`
	InterlinkageId int `gorm:"index;not null;uniqueIndex:uq_interdep_per_interlinkage" json:"interlinkage_id" binding:"required"`

	InterdependenceIdentifier string               `gorm:"size:128;not null;uniqueIndex:uq_interdep_per_interlinkage" json:"interdependence_identifier" binding:"required"`
	Type                      InterdependenceType  `gorm:"index:ix_interdep_type_level;type:enum('ownership','credit','guarantee','management','technical','juridical','legal','contractual','equity','funding','governance','strategic','other')" json:"type"`
	Level                     InterdependenceLevel `gorm:"index;index:ix_interdep_type_level;type:enum('low','medium','high','critical')" json:"level"`

	ProjectId      int    `gorm:"index;default:null" json:"project_id"`
	ProjectName    string `gorm:"size:255" json:"project_name"`
	RiskAssessment string `gorm:"type:text" json:"risk_assessment"`

	EffectiveDate *Date `gorm:"index" json:"effective_date"`
	ExpiryDate    *Date `gorm:"index" json:"expiry_date"`

	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	CreatedBy string     `gorm:"index;size:128" json:"created_by"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	UpdatedBy string     `gorm:"index;size:128" json:"updated_by"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy string     `gorm:"size:128" json:"deleted_by"`
}

func (d Interdependence) SoftDeleted() bool {
	return d.IsDeleted
}
