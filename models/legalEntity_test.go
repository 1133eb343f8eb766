package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func uniqueIndexColumns(t *testing.T, model interface{}, indexName string) []string {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	idx, ok := s.ParseIndexes()[indexName]
	if !ok {
		t.Fatalf("index %s missing", indexName)
	}
	if idx.Class != "UNIQUE" {
		t.Fatalf("index %s must be unique, got class %q", indexName, idx.Class)
	}
	cols := make([]string, 0, len(idx.Fields))
	for _, opt := range idx.Fields {
		cols = append(cols, opt.DBName)
	}
	return cols
}

func TestEntityIdentifierUniquePerSchemeValue(t *testing.T) {
	cols := uniqueIndexColumns(t, &EntityIdentifier{}, "uq_entity_identifier")
	if len(cols) != 2 || cols[0] != "scheme" || cols[1] != "value" {
		t.Fatalf("expected [scheme value], got %v", cols)
	}
}

func TestLegalEntityUniquePerRmpmCodeType(t *testing.T) {
	cols := uniqueIndexColumns(t, &LegalEntity{}, "uq_entity_rmpm")
	if len(cols) != 2 || cols[0] != "rmpm_code" || cols[1] != "rmpm_type" {
		t.Fatalf("expected [rmpm_code rmpm_type], got %v", cols)
	}
}
