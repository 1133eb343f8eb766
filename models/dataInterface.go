package models

// interface for dataloader results
type Identifier interface {
	GetId() int
}

func (c Currency) GetId() int {
	return c.ID
}

func (c Country) GetId() int {
	return c.ID
}

func (s Sector) GetId() int {
	return s.ID
}

func (p PraActivity) GetId() int {
	return p.ID
}

func (c CounterpartyType) GetId() int {
	return c.ID
}

func (i InstrumentType) GetId() int {
	return i.ID
}

func (f FacilityType) GetId() int {
	return f.ID
}

func (e LegalEntity) GetId() int {
	return e.ID
}

func (p Project) GetId() int {
	return p.ID
}
