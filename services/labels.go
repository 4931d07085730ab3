package services

import (
	"context"

	"gorm.io/gorm"
)

// LabelService keeps the denormalized display names (donor_name on projects,
// project_name on child records) in step with their parents. Names are copied
// at write time for display; a parent rename rewrites the cached copies in
// the same request so the labels never go stale through the API.
type LabelService struct {
	db *gorm.DB
}

func NewLabelService(db *gorm.DB) *LabelService { return &LabelService{db: db} }

// WithTx returns a service bound to the given transaction so a parent rename
// and its label refresh commit or roll back together.
func (s *LabelService) WithTx(tx *gorm.DB) *LabelService { return &LabelService{db: tx} }

// projectNameTables lists every table carrying a cached project_name.
var projectNameTables = []string{
	"work_plans",
	"certificates",
	"documents",
	"reports",
	"beneficiaries",
	"safeguarding_activities",
}

// RefreshProjectName rewrites the cached project name on all child records.
func (s *LabelService) RefreshProjectName(ctx context.Context, projectID uint, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range projectNameTables {
			if err := tx.Exec(
				"UPDATE "+table+" SET project_name = ? WHERE project_id = ?",
				name, projectID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RefreshDonorName rewrites the cached donor name on all projects funded by
// the donor.
func (s *LabelService) RefreshDonorName(ctx context.Context, donorID uint, name string) error {
	return s.db.WithContext(ctx).
		Exec("UPDATE projects SET donor_name = ? WHERE donor_id = ?", name, donorID).Error
}
