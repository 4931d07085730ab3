package store

import (
	"context"
	"fmt"

	"ngo-erp-api/models"

	"gorm.io/gorm"
)

// ChildCounts records how many dependent rows reference a project, keyed by
// collection name.
type ChildCounts map[string]int64

func (c ChildCounts) Total() int64 {
	var n int64
	for _, v := range c {
		n += v
	}
	return n
}

// ErrHasChildren is returned when a non-cascading delete targets a project
// that still has dependent records.
type ErrHasChildren struct {
	ProjectID uint
	Counts    ChildCounts
}

func (e *ErrHasChildren) Error() string {
	return fmt.Sprintf("project %d has %d dependent records", e.ProjectID, e.Counts.Total())
}

// ProjectStore adds the project-specific queries on top of the generic store:
// the unique-code check, the by-donor scan, and the guarded delete.
type ProjectStore struct {
	*Store[models.Project]
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{Store: New[models.Project](db)}
}

// ByDonor returns the projects funded by the given donor.
func (s *ProjectStore) ByDonor(ctx context.Context, donorID uint) ([]models.Project, error) {
	return s.Where(ctx, "donor_id = ?", donorID)
}

// CodeExists reports whether another project already uses the given code.
// The comparison is case-sensitive. excludeID skips the record being edited
// so a project does not trip over its own code; pass 0 on create.
func (s *ProjectStore) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	candidates, err := s.Where(ctx, "project_code = ?", code)
	if err != nil {
		return false, err
	}
	// Re-check in Go so the result stays case-sensitive even on databases
	// with a case-insensitive collation.
	for _, p := range candidates {
		if p.ProjectCode == code && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// childTables lists the collections holding a project_id foreign key, in
// delete order.
var childTables = []string{
	"work_plans",
	"certificates",
	"documents",
	"reports",
	"beneficiaries",
	"safeguarding_activities",
}

// ChildCounts returns the number of dependent rows per child collection.
func (s *ProjectStore) ChildCounts(ctx context.Context, projectID uint) (ChildCounts, error) {
	counts := make(ChildCounts, len(childTables))
	for _, table := range childTables {
		var n int64
		if err := s.db.WithContext(ctx).Table(table).
			Where("project_id = ?", projectID).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			counts[table] = n
		}
	}
	return counts, nil
}

// DeleteGuarded removes a project. Without cascade the delete is blocked with
// ErrHasChildren while dependent records exist, so the API can never orphan a
// project_id reference. With cascade the project and all its children go in
// one transaction.
func (s *ProjectStore) DeleteGuarded(ctx context.Context, id uint, cascade bool) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	counts, err := s.ChildCounts(ctx, id)
	if err != nil {
		return err
	}
	if counts.Total() > 0 && !cascade {
		return &ErrHasChildren{ProjectID: id, Counts: counts}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range childTables {
			if err := tx.Exec("DELETE FROM "+table+" WHERE project_id = ?", id).Error; err != nil {
				return err
			}
		}
		return s.WithTx(tx).Delete(ctx, id)
	})
}
