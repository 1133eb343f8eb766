package models

import (
	"log"

	"github.com/cibdesk/interlinkages_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Currency{}, &Country{}, &Sector{}, &PraActivity{}, &CounterpartyType{}, &InstrumentType{}, &FacilityType{},
		&LegalEntity{}, &EntityIdentifier{},
		&Project{},
		&Facility{}, &Instrument{},
		&Interlinkage{}, &Interdependence{}, &ExposureSnapshot{},
		&InterlinkageAnalysis{}, &InterlinkageAttachment{}, &InterlinkageNote{},
		&WorkflowEvent{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
