package models

import (
	"errors"
	"strconv"
)

type InterlinkageStatus string

const (
	InterlinkageStatusDraft     InterlinkageStatus = "draft"
	InterlinkageStatusValidated InterlinkageStatus = "validated"
	InterlinkageStatusArchived  InterlinkageStatus = "archived"
	InterlinkageStatusDeleted   InterlinkageStatus = "deleted"
)

// convert enum to send response
func (t InterlinkageStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

// convert input to enum type
func (t *InterlinkageStatus) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("interlinkage status must be string")
	}
	switch str {
	case "draft":
		*t = InterlinkageStatusDraft
	case "validated":
		*t = InterlinkageStatusValidated
	case "archived":
		*t = InterlinkageStatusArchived
	case "deleted":
		*t = InterlinkageStatusDeleted
	default:
		return errors.New("invalid interlinkage status")
	}
	return nil
}

type InterdependenceType string

const (
	InterdependenceTypeOwnership   InterdependenceType = "ownership"
	InterdependenceTypeCredit      InterdependenceType = "credit"
	InterdependenceTypeGuarantee   InterdependenceType = "guarantee"
	InterdependenceTypeManagement  InterdependenceType = "management"
	InterdependenceTypeTechnical   InterdependenceType = "technical"
	InterdependenceTypeJuridical   InterdependenceType = "juridical"
	InterdependenceTypeLegal       InterdependenceType = "legal"
	InterdependenceTypeContractual InterdependenceType = "contractual"
	InterdependenceTypeEquity      InterdependenceType = "equity"
	InterdependenceTypeFunding     InterdependenceType = "funding"
	InterdependenceTypeGovernance  InterdependenceType = "governance"
	InterdependenceTypeStrategic   InterdependenceType = "strategic"
	InterdependenceTypeOther       InterdependenceType = "other"
)

var interdependenceTypes = map[string]InterdependenceType{
	"ownership":   InterdependenceTypeOwnership,
	"credit":      InterdependenceTypeCredit,
	"guarantee":   InterdependenceTypeGuarantee,
	"management":  InterdependenceTypeManagement,
	"technical":   InterdependenceTypeTechnical,
	"juridical":   InterdependenceTypeJuridical,
	"legal":       InterdependenceTypeLegal,
	"contractual": InterdependenceTypeContractual,
	"equity":      InterdependenceTypeEquity,
	"funding":     InterdependenceTypeFunding,
	"governance":  InterdependenceTypeGovernance,
	"strategic":   InterdependenceTypeStrategic,
	"other":       InterdependenceTypeOther,
}

func (t InterdependenceType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *InterdependenceType) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("interdependence type must be string")
	}
	value, ok := interdependenceTypes[str]
	if !ok {
		return errors.New("invalid interdependence type")
	}
	*t = value
	return nil
}

type InterdependenceLevel string

const (
	InterdependenceLevelLow      InterdependenceLevel = "low"
	InterdependenceLevelMedium   InterdependenceLevel = "medium"
	InterdependenceLevelHigh     InterdependenceLevel = "high"
	InterdependenceLevelCritical InterdependenceLevel = "critical"
)

func (t InterdependenceLevel) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *InterdependenceLevel) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("interdependence level must be string")
	}
	switch str {
	case "low":
		*t = InterdependenceLevelLow
	case "medium":
		*t = InterdependenceLevelMedium
	case "high":
		*t = InterdependenceLevelHigh
	case "critical":
		*t = InterdependenceLevelCritical
	default:
		return errors.New("invalid interdependence level")
	}
	return nil
}

type NoteVisibility string

const (
	NoteVisibilityInternal NoteVisibility = "internal"
	NoteVisibilityShared   NoteVisibility = "shared"
)

func (t NoteVisibility) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *NoteVisibility) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("note visibility must be string")
	}
	switch str {
	case "internal":
		*t = NoteVisibilityInternal
	case "shared":
		*t = NoteVisibilityShared
	default:
		return errors.New("invalid note visibility")
	}
	return nil
}

type AmlRisk string

const (
	AmlRiskLow    AmlRisk = "low"
	AmlRiskMedium AmlRisk = "medium"
	AmlRiskHigh   AmlRisk = "high"
)

func (t AmlRisk) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *AmlRisk) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("aml risk must be string")
	}
	switch str {
	case "low":
		*t = AmlRiskLow
	case "medium":
		*t = AmlRiskMedium
	case "high":
		*t = AmlRiskHigh
	default:
		return errors.New("invalid aml risk")
	}
	return nil
}
