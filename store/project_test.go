package store

import (
	"context"
	"errors"
	"testing"

	"ngo-erp-api/models"

	"gorm.io/gorm"
)

func makeProject(code, name string) *models.Project {
	return &models.Project{
		ProjectCode: code,
		DonorID:     1,
		DonorName:   "Global Relief Fund",
		Name:        name,
		Status:      models.ProjectStatusNotStarted,
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Budget:      50000,
	}
}

func TestCodeExists(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectStore(db)
	ctx := context.Background()

	p := makeProject("PRJ-001", "Water Access")
	if err := projects.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name      string
		code      string
		excludeID uint
		want      bool
	}{
		{"unused code", "PRJ-999", 0, false},
		{"existing code", "PRJ-001", 0, true},
		{"existing code from another record", "PRJ-001", p.ID + 1, true},
		{"own code excluded while editing", "PRJ-001", p.ID, false},
		{"case sensitive", "prj-001", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := projects.CodeExists(ctx, tt.code, tt.excludeID)
			if err != nil {
				t.Fatalf("CodeExists: %v", err)
			}
			if got != tt.want {
				t.Errorf("CodeExists(%q, %d) = %v, want %v", tt.code, tt.excludeID, got, tt.want)
			}
		})
	}
}

func TestByDonor(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectStore(db)
	ctx := context.Background()

	a := makeProject("PRJ-001", "First")
	b := makeProject("PRJ-002", "Second")
	b.DonorID = 2
	for _, p := range []*models.Project{a, b} {
		if err := projects.Create(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	got, err := projects.ByDonor(ctx, 1)
	if err != nil {
		t.Fatalf("ByDonor: %v", err)
	}
	if len(got) != 1 || got[0].ProjectCode != "PRJ-001" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestDeleteGuardedBlocksWithChildren(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectStore(db)
	reports := NewProjectScoped[models.Report](db)
	ctx := context.Background()

	p := makeProject("PRJ-001", "Water Access")
	if err := projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	report := &models.Report{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		Title:       "Q1 Narrative",
		ReportType:  "quarterly",
		DueDate:     "2024-04-15",
		Status:      models.ReportStatusPending,
	}
	if err := reports.Create(ctx, report); err != nil {
		t.Fatal(err)
	}

	err := projects.DeleteGuarded(ctx, p.ID, false)
	var hasChildren *ErrHasChildren
	if !errors.As(err, &hasChildren) {
		t.Fatalf("expected ErrHasChildren, got %v", err)
	}
	if hasChildren.Counts["reports"] != 1 {
		t.Errorf("unexpected counts: %v", hasChildren.Counts)
	}

	// Blocked delete must leave everything in place.
	if _, err := projects.Get(ctx, p.ID); err != nil {
		t.Fatalf("project vanished after blocked delete: %v", err)
	}
	if _, err := reports.Get(ctx, report.ID); err != nil {
		t.Fatalf("report vanished after blocked delete: %v", err)
	}
}

func TestDeleteGuardedCascades(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectStore(db)
	reports := NewProjectScoped[models.Report](db)
	beneficiaries := NewProjectScoped[models.Beneficiary](db)
	ctx := context.Background()

	p := makeProject("PRJ-001", "Water Access")
	if err := projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	other := makeProject("PRJ-002", "Untouched")
	if err := projects.Create(ctx, other); err != nil {
		t.Fatal(err)
	}

	report := &models.Report{ProjectID: p.ID, Title: "R", ReportType: "annual", DueDate: "2024-12-01", Status: models.ReportStatusPending}
	if err := reports.Create(ctx, report); err != nil {
		t.Fatal(err)
	}
	beneficiary := &models.Beneficiary{ProjectID: p.ID, FullName: "B", Status: models.BeneficiaryStatusPending}
	if err := beneficiaries.Create(ctx, beneficiary); err != nil {
		t.Fatal(err)
	}
	keeper := &models.Report{ProjectID: other.ID, Title: "Keep", ReportType: "annual", DueDate: "2024-12-01", Status: models.ReportStatusPending}
	if err := reports.Create(ctx, keeper); err != nil {
		t.Fatal(err)
	}

	if err := projects.DeleteGuarded(ctx, p.ID, true); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}

	if _, err := projects.Get(ctx, p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("project survived cascade: %v", err)
	}
	if _, err := reports.Get(ctx, report.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("child report survived cascade: %v", err)
	}
	if _, err := beneficiaries.Get(ctx, beneficiary.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("child beneficiary survived cascade: %v", err)
	}
	// Records of other projects stay put.
	if _, err := reports.Get(ctx, keeper.ID); err != nil {
		t.Errorf("unrelated report removed by cascade: %v", err)
	}
}

func TestDeleteGuardedNotFound(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectStore(db)

	err := projects.DeleteGuarded(context.Background(), 777, false)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteGuardedWithoutChildren(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectStore(db)
	ctx := context.Background()

	p := makeProject("PRJ-001", "Lone Project")
	if err := projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}

	if err := projects.DeleteGuarded(ctx, p.ID, false); err != nil {
		t.Fatalf("delete without children should pass: %v", err)
	}
}
