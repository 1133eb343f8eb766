// seed populates the referential tables and a deterministic demo
// data set: legal entities with identifiers, projects, and an admin
// console user.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed
//
// Flags:
//   -entities N   number of legal entities (default 1000)
//   -projects N   number of projects (default 150)
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/cibdesk/interlinkages_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	adminUsername = "interlinkAdmin"
	adminPassword = "Interl!nkAdmin"
	adminName     = "Interlinkages Admin"

	insertChunkSize = 200
)

var currencySeed = [][2]string{
	{"EUR", "Euro"},
	{"USD", "US Dollar"},
	{"GBP", "Pound Sterling"},
	{"JPY", "Yen"},
	{"CHF", "Swiss Franc"},
	{"AUD", "Australian Dollar"},
	{"CAD", "Canadian Dollar"},
	{"CNY", "Yuan Renminbi"},
	{"HKD", "Hong Kong Dollar"},
	{"SGD", "Singapore Dollar"},
	{"SEK", "Swedish Krona"},
	{"NOK", "Norwegian Krone"},
	{"DKK", "Danish Krone"},
	{"PLN", "Zloty"},
	{"TND", "Tunisian Dinar"},
	{"AED", "UAE Dirham"},
	{"SAR", "Saudi Riyal"},
	{"BRL", "Brazilian Real"},
	{"MXN", "Mexican Peso"},
	{"INR", "Indian Rupee"},
}

var countrySeed = [][3]string{
	{"FR", "FRA", "France"},
	{"GB", "GBR", "United Kingdom"},
	{"US", "USA", "United States"},
	{"DE", "DEU", "Germany"},
	{"TN", "TUN", "Tunisia"},
	{"IT", "ITA", "Italy"},
	{"ES", "ESP", "Spain"},
	{"NL", "NLD", "Netherlands"},
	{"BE", "BEL", "Belgium"},
	{"LU", "LUX", "Luxembourg"},
	{"CH", "CHE", "Switzerland"},
	{"JP", "JPN", "Japan"},
	{"CN", "CHN", "China"},
	{"HK", "HKG", "Hong Kong"},
	{"SG", "SGP", "Singapore"},
	{"AU", "AUS", "Australia"},
	{"CA", "CAN", "Canada"},
	{"BR", "BRA", "Brazil"},
	{"MX", "MEX", "Mexico"},
	{"IN", "IND", "India"},
	{"AE", "ARE", "United Arab Emirates"},
	{"SA", "SAU", "Saudi Arabia"},
	{"PL", "POL", "Poland"},
	{"SE", "SWE", "Sweden"},
	{"NO", "NOR", "Norway"},
}

var sectorSeed = [][3]string{
	{"FIN", "Financials", "Banking, insurance, capital markets"},
	{"IND", "Industrials", "Manufacturing, construction, engineering"},
	{"TEC", "Technology", "IT, electronics, semiconductors"},
	{"ENE", "Energy", "Oil, gas, renewables"},
	{"HEA", "Healthcare", "Pharma, biotech, hospitals"},
}

var praActivitySeed = [][2]string{
	{"buyout", "Buyout"},
	{"growth", "Growth"},
	{"mezzanine", "Mezzanine"},
	{"venture", "Venture"},
	{"infra", "Infrastructure"},
	{"real_estate", "Real Estate"},
	{"distressed", "Distressed Assets"},
	{"hedge", "Hedge Fund"},
	{"other", "Other"},
}

var counterpartyTypeSeed = [][2]string{
	{"bank", "Bank"},
	{"corporate", "Corporate"},
	{"fund", "Investment Fund"},
	{"insurance", "Insurance Company"},
	{"government", "Government / Public"},
	{"other", "Other"},
}

var instrumentTypeSeed = [][2]string{
	{"BOND", "Bond"},
	{"SWAP", "Swap"},
	{"FWD", "Forward"},
	{"OPT", "Option"},
	{"EQ", "Equity"},
	{"LOAN", "Loan"},
	{"FUND", "Fund Participation"},
	{"DERIV", "Derivative"},
	{"OTHER", "Other"},
}

var facilityTypeSeed = [][2]string{
	{"RCF", "Revolving Credit Facility"},
	{"TLB", "Term Loan B"},
	{"LC", "Letter of Credit"},
	{"BRIDGE", "Bridge Loan"},
	{"OTHER", "Other"},
}

var regions = []string{"EMEA", "AMER", "APAC"}

var businessLines = []string{
	"Global Markets", "Global Banking", "Securities Services",
	"Transaction Banking", "Corporate Finance", "Asset Management",
}

var portfolios = []string{
	"Core", "Strategic", "Opportunistic", "Legacy", "Growth", "Infra",
}

var companyPrefixes = []string{
	"Global", "Prime", "United", "Atlantic", "Omega", "Pioneer", "Apex", "Northern", "Blue", "Crescent",
	"Capital", "Summit", "Vector", "Vertex", "Union", "First", "Nova", "Crown", "Regent", "Heritage",
}

var companyCores = []string{
	"Holdings", "Industries", "Partners", "Group", "Enterprises", "Resources", "Logistics",
	"Technologies", "Investments", "Financial", "Energy", "Healthcare", "Retail", "Manufacturing",
}

var companySuffixes = []string{"SA", "SAS", "Ltd", "PLC", "AG", "NV", "LLC", "Inc.", "GmbH", "SARL"}

var projectThemes = []string{
	"Atlas", "Aurora", "Helios", "Orion", "Zephyr", "Aquila",
	"Nimbus", "Vertex", "Quasar", "Meridian", "Argon", "Saffron",
}

var projectVerbs = []string{
	"Upgrade", "Expansion", "Modernization", "Digitization",
	"Integration", "Optimization", "Migration", "Refactor",
}

func main() {
	entityCount := flag.Int("entities", 1000, "number of legal entities to seed")
	projectCount := flag.Int("projects", 150, "number of projects to seed")
	flag.Parse()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	models.MigrateTable()

	if err := seedReferentials(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed referentials: %v\n", err)
		os.Exit(1)
	}
	if err := seedLegalEntities(ctx, db, *entityCount); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed legal entities: %v\n", err)
		os.Exit(1)
	}
	if err := seedProjects(ctx, db, *projectCount); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed projects: %v\n", err)
		os.Exit(1)
	}
	if err := seedAdminUser(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed admin user: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seeding complete.")
}

// insert-or-skip keyed on the unique columns, so reruns are idempotent
func upsertIgnore(ctx context.Context, db *gorm.DB, rows interface{}) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
}

func seedReferentials(ctx context.Context, db *gorm.DB) error {
	currencies := make([]models.Currency, 0, len(currencySeed))
	for _, row := range currencySeed {
		currencies = append(currencies, models.Currency{Code: row[0], Name: row[1]})
	}
	if err := upsertIgnore(ctx, db, &currencies); err != nil {
		return err
	}

	countries := make([]models.Country, 0, len(countrySeed))
	for _, row := range countrySeed {
		countries = append(countries, models.Country{Iso2: row[0], Iso3: row[1], Name: row[2]})
	}
	if err := upsertIgnore(ctx, db, &countries); err != nil {
		return err
	}

	sectors := make([]models.Sector, 0, len(sectorSeed))
	for _, row := range sectorSeed {
		sectors = append(sectors, models.Sector{Code: row[0], Label: row[1], Description: row[2]})
	}
	if err := upsertIgnore(ctx, db, &sectors); err != nil {
		return err
	}

	praActivities := make([]models.PraActivity, 0, len(praActivitySeed))
	for _, row := range praActivitySeed {
		praActivities = append(praActivities, models.PraActivity{Code: row[0], Label: row[1]})
	}
	if err := upsertIgnore(ctx, db, &praActivities); err != nil {
		return err
	}

	counterpartyTypes := make([]models.CounterpartyType, 0, len(counterpartyTypeSeed))
	for _, row := range counterpartyTypeSeed {
		counterpartyTypes = append(counterpartyTypes, models.CounterpartyType{Code: row[0], Label: row[1]})
	}
	if err := upsertIgnore(ctx, db, &counterpartyTypes); err != nil {
		return err
	}

	instrumentTypes := make([]models.InstrumentType, 0, len(instrumentTypeSeed))
	for _, row := range instrumentTypeSeed {
		instrumentTypes = append(instrumentTypes, models.InstrumentType{Code: row[0], Label: row[1]})
	}
	if err := upsertIgnore(ctx, db, &instrumentTypes); err != nil {
		return err
	}

	facilityTypes := make([]models.FacilityType, 0, len(facilityTypeSeed))
	for _, row := range facilityTypeSeed {
		facilityTypes = append(facilityTypes, models.FacilityType{Code: row[0], Label: row[1]})
	}
	if err := upsertIgnore(ctx, db, &facilityTypes); err != nil {
		return err
	}

	fmt.Println("Seeded referential tables.")
	return nil
}

func makeLei(rng *rand.Rand) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String()
}

func companyName(rng *rand.Rand, i int) string {
	return fmt.Sprintf("%s %s %s #%04d",
		companyPrefixes[rng.Intn(len(companyPrefixes))],
		companyCores[rng.Intn(len(companyCores))],
		companySuffixes[rng.Intn(len(companySuffixes))],
		i,
	)
}

func pluckIds(ctx context.Context, db *gorm.DB, model interface{}) ([]int, error) {
	var ids []int
	err := db.WithContext(ctx).Model(model).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// seedLegalEntities creates n entities, each with an INTERNAL
// identifier, a VAT one ~60% of the time and a BIC one ~35%.
// rmpm_code is unique within rmpm_type by construction.
func seedLegalEntities(ctx context.Context, db *gorm.DB, n int) error {
	rng := rand.New(rand.NewSource(42))

	countryIds, err := pluckIds(ctx, db, &models.Country{})
	if err != nil {
		return err
	}
	sectorIds, err := pluckIds(ctx, db, &models.Sector{})
	if err != nil {
		return err
	}

	// offset past existing rows so reruns don't clash on rmpm_code
	var existing int64
	if err := db.WithContext(ctx).Model(&models.LegalEntity{}).Count(&existing).Error; err != nil {
		return err
	}
	startIdx := int(existing) + 1

	rmpmTypes := []string{"sponsor", "counterparty", "booking"}
	amlRisks := []models.AmlRisk{models.AmlRiskLow, models.AmlRiskMedium, models.AmlRiskHigh}

	batch := make([]*models.LegalEntity, 0, insertChunkSize)
	batchIdx := make([]int, 0, insertChunkSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := db.WithContext(ctx).Create(&batch).Error; err != nil {
			return err
		}
		identifiers := []*models.EntityIdentifier{}
		for pos, le := range batch {
			idx := batchIdx[pos]
			identifiers = append(identifiers, &models.EntityIdentifier{
				EntityId: le.ID,
				Scheme:   "INTERNAL",
				Value:    fmt.Sprintf("INT-%08d", idx),
			})
			if rng.Float64() < 0.6 {
				identifiers = append(identifiers, &models.EntityIdentifier{
					EntityId: le.ID,
					Scheme:   "VAT",
					Value:    fmt.Sprintf("VAT%09d", idx),
				})
			}
			if rng.Float64() < 0.35 {
				identifiers = append(identifiers, &models.EntityIdentifier{
					EntityId: le.ID,
					Scheme:   "BIC",
					Value:    fmt.Sprintf("BIC%011d", idx),
				})
			}
		}
		if err := db.WithContext(ctx).Create(&identifiers).Error; err != nil {
			return err
		}
		batch = batch[:0]
		batchIdx = batchIdx[:0]
		return nil
	}

	for i := startIdx; i < startIdx+n; i++ {
		rmpmType := rmpmTypes[rng.Intn(len(rmpmTypes))]
		le := &models.LegalEntity{
			RmpmCode:     fmt.Sprintf("%s-%06d", strings.ToUpper(rmpmType[:3]), i),
			RmpmType:     rmpmType,
			Name:         companyName(rng, i),
			LeiCode:      makeLei(rng),
			IsSanctioned: boolPtr(rng.Float64() < 0.02),
			IsPep:        boolPtr(rng.Float64() < 0.01),
			AmlRisk:      amlRisks[rng.Intn(len(amlRisks))],
			CreatedBy:    "seed_legal_entities",
		}
		if len(countryIds) > 0 {
			le.CountryId = countryIds[rng.Intn(len(countryIds))]
		}
		if len(sectorIds) > 0 {
			le.SectorId = sectorIds[rng.Intn(len(sectorIds))]
		}
		batch = append(batch, le)
		batchIdx = append(batchIdx, i)

		if len(batch) >= insertChunkSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	fmt.Printf("Seeded %d legal entities with identifiers.\n", n)
	return nil
}

func seedProjects(ctx context.Context, db *gorm.DB, n int) error {
	rng := rand.New(rand.NewSource(1337))

	countryIds, err := pluckIds(ctx, db, &models.Country{})
	if err != nil {
		return err
	}
	sectorIds, err := pluckIds(ctx, db, &models.Sector{})
	if err != nil {
		return err
	}

	var existing int64
	if err := db.WithContext(ctx).Model(&models.Project{}).Count(&existing).Error; err != nil {
		return err
	}
	startIdx := int(existing) + 1

	batch := make([]*models.Project, 0, insertChunkSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := db.WithContext(ctx).Create(&batch).Error; err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for i := startIdx; i < startIdx+n; i++ {
		prj := &models.Project{
			Code: fmt.Sprintf("PRJ-%06d", i),
			Name: fmt.Sprintf("Project %s %s #%04d",
				projectThemes[rng.Intn(len(projectThemes))],
				projectVerbs[rng.Intn(len(projectVerbs))],
				i,
			),
			Description:  "Auto-seeded project for testing & demos.",
			Region:       regions[rng.Intn(len(regions))],
			BusinessLine: businessLines[rng.Intn(len(businessLines))],
			Portfolio:    portfolios[rng.Intn(len(portfolios))],
			CreatedBy:    "seed_projects",
		}
		if len(countryIds) > 0 {
			prj.CountryId = countryIds[rng.Intn(len(countryIds))]
		}
		if len(sectorIds) > 0 {
			prj.SectorId = sectorIds[rng.Intn(len(sectorIds))]
		}
		batch = append(batch, prj)

		if len(batch) >= insertChunkSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	fmt.Printf("Seeded %d projects.\n", n)
	return nil
}

func seedAdminUser(ctx context.Context, db *gorm.DB) error {
	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	hashedStr := string(hashed)

	var existing models.User
	err = db.WithContext(ctx).Where("username = ?", adminUsername).First(&existing).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		u := models.User{
			Username: adminUsername,
			Name:     adminName,
			Password: hashedStr,
			Role:     "admin",
		}
		if err := db.WithContext(ctx).Create(&u).Error; err != nil {
			return err
		}
		fmt.Printf("Created admin user: username=%q\n", adminUsername)
		return nil
	}

	if err := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", adminUsername).Updates(map[string]any{
		"password": hashedStr,
		"name":     adminName,
		"role":     "admin",
	}).Error; err != nil {
		return err
	}
	fmt.Printf("Updated admin user: username=%q\n", adminUsername)
	return nil
}

func boolPtr(v bool) *bool {
	return &v
}
