package store

import (
	"ngo-erp-api/models"

	"gorm.io/gorm"
)

// Stores bundles one store per entity collection. It is built once at startup
// and handed to the controllers and services that need it.
type Stores struct {
	Users         *Store[models.User]
	Donors        *Store[models.Donor]
	Projects      *ProjectStore
	WorkPlans     ProjectScoped[models.WorkPlan]
	Certificates  ProjectScoped[models.Certificate]
	Documents     ProjectScoped[models.Document]
	Reports       ProjectScoped[models.Report]
	Beneficiaries ProjectScoped[models.Beneficiary]
	Safeguarding  ProjectScoped[models.SafeguardingActivity]
	Recruitments  *Store[models.Recruitment]
	PayrollRuns   *Store[models.PayrollRun]
}

func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:         New[models.User](db),
		Donors:        New[models.Donor](db),
		Projects:      NewProjectStore(db),
		WorkPlans:     NewProjectScoped[models.WorkPlan](db),
		Certificates:  NewProjectScoped[models.Certificate](db),
		Documents:     NewProjectScoped[models.Document](db),
		Reports:       NewProjectScoped[models.Report](db),
		Beneficiaries: NewProjectScoped[models.Beneficiary](db),
		Safeguarding:  NewProjectScoped[models.SafeguardingActivity](db),
		Recruitments:  New[models.Recruitment](db),
		PayrollRuns:   New[models.PayrollRun](db),
	}
}

// Migrate creates or updates the schema for every entity collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Donor{},
		&models.Project{},
		&models.WorkPlan{},
		&models.Certificate{},
		&models.Document{},
		&models.Report{},
		&models.Beneficiary{},
		&models.SafeguardingActivity{},
		&models.Recruitment{},
		&models.PayrollRun{},
	)
}
