package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"ngo-erp-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeDonor(name string) *models.Donor {
	return &models.Donor{
		Name:   name,
		Type:   "foundation",
		Status: models.DonorStatusActive,
		Email:  "contact@example.org",
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)
	ctx := context.Background()

	d := makeDonor("Global Relief Fund")
	if err := donors.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == 0 {
		t.Fatal("Create did not assign an id")
	}
	if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
		t.Fatal("Create did not stamp timestamps")
	}

	got, err := donors.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != d.Name || got.Type != d.Type || got.Status != d.Status {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetNotFound(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)

	_, err := donors.Get(context.Background(), 9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUpdateMergesAndRefreshesTimestamp(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)
	ctx := context.Background()

	d := makeDonor("Old Name")
	if err := donors.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := d.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	updated, err := donors.Update(ctx, d.ID, map[string]any{"name": "New Name"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("name not merged: %q", updated.Name)
	}
	if updated.Status != models.DonorStatusActive {
		t.Errorf("untouched field lost: %q", updated.Status)
	}
	if !updated.UpdatedAt.After(before) {
		t.Errorf("updated_at not refreshed: before=%v after=%v", before, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("created_at changed on update")
	}
}

func TestUpdateNotFound(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)

	_, err := donors.Update(context.Background(), 42, map[string]any{"name": "x"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)
	ctx := context.Background()

	d := makeDonor("Short Lived")
	if err := donors.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := donors.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := donors.Get(ctx, d.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	all, err := donors.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	for _, got := range all {
		if got.ID == d.ID {
			t.Error("deleted record still listed")
		}
	}
}

func TestDeleteNotFound(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)

	if err := donors.Delete(context.Background(), 123); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAllKeepsInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)
	ctx := context.Background()

	names := []string{"Alpha", "Bravo", "Charlie"}
	for _, n := range names {
		if err := donors.Create(ctx, makeDonor(n)); err != nil {
			t.Fatalf("Create(%s): %v", n, err)
		}
	}

	all, err := donors.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("got %d records, want %d", len(all), len(names))
	}
	for i, n := range names {
		if all[i].Name != n {
			t.Errorf("position %d: got %q, want %q", i, all[i].Name, n)
		}
	}
}

func TestByProjectScan(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	plans := NewProjectScoped[models.WorkPlan](db)

	for i, projectID := range []uint{1, 2, 1} {
		plan := &models.WorkPlan{
			ProjectID: projectID,
			Title:     "Plan",
			DueDate:   "2024-09-01",
			Status:    models.WorkPlanStatusDraft,
		}
		if err := plans.Create(ctx, plan); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	got, err := plans.ByProject(ctx, 1)
	if err != nil {
		t.Fatalf("ByProject: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d plans for project 1, want 2", len(got))
	}
	for _, p := range got {
		if p.ProjectID != 1 {
			t.Errorf("foreign record in scan: %+v", p)
		}
	}
}

func TestCount(t *testing.T) {
	db := openTestDB(t)
	donors := New[models.Donor](db)
	ctx := context.Background()

	active := makeDonor("Active One")
	if err := donors.Create(ctx, active); err != nil {
		t.Fatal(err)
	}
	inactive := makeDonor("Inactive One")
	inactive.Status = models.DonorStatusInactive
	if err := donors.Create(ctx, inactive); err != nil {
		t.Fatal(err)
	}

	total, err := donors.Count(ctx, "")
	if err != nil || total != 2 {
		t.Fatalf("Count all = %d, %v; want 2", total, err)
	}
	n, err := donors.Count(ctx, "status = ?", models.DonorStatusActive)
	if err != nil || n != 1 {
		t.Fatalf("Count active = %d, %v; want 1", n, err)
	}
}
