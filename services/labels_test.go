package services

import (
	"context"
	"errors"
	"testing"

	"ngo-erp-api/models"

	"gorm.io/gorm"
)

func TestRefreshProjectName(t *testing.T) {
	stores := openTestStores(t)
	svc := NewLabelService(stores.Projects.DB())
	ctx := context.Background()

	p := &models.Project{ProjectCode: "PRJ-001", Name: "Old Name", Status: models.ProjectStatusInProgress}
	if err := stores.Projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	other := &models.Project{ProjectCode: "PRJ-002", Name: "Other", Status: models.ProjectStatusInProgress}
	if err := stores.Projects.Create(ctx, other); err != nil {
		t.Fatal(err)
	}

	r := &models.Report{ProjectID: p.ID, ProjectName: p.Name, Title: "Q1", ReportType: "quarterly", DueDate: "2024-04-10", Status: models.ReportStatusPending}
	if err := stores.Reports.Create(ctx, r); err != nil {
		t.Fatal(err)
	}
	b := &models.Beneficiary{ProjectID: p.ID, ProjectName: p.Name, FullName: "Amina", Status: models.BeneficiaryStatusPending}
	if err := stores.Beneficiaries.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	otherReport := &models.Report{ProjectID: other.ID, ProjectName: other.Name, Title: "Q1", ReportType: "quarterly", DueDate: "2024-04-10", Status: models.ReportStatusPending}
	if err := stores.Reports.Create(ctx, otherReport); err != nil {
		t.Fatal(err)
	}

	if err := svc.RefreshProjectName(ctx, p.ID, "New Name"); err != nil {
		t.Fatalf("RefreshProjectName: %v", err)
	}

	gotReport, err := stores.Reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotReport.ProjectName != "New Name" {
		t.Errorf("report project_name = %q, want New Name", gotReport.ProjectName)
	}
	gotBen, err := stores.Beneficiaries.Get(ctx, b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotBen.ProjectName != "New Name" {
		t.Errorf("beneficiary project_name = %q, want New Name", gotBen.ProjectName)
	}

	// Children of other projects keep their label.
	gotOther, err := stores.Reports.Get(ctx, otherReport.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotOther.ProjectName != "Other" {
		t.Errorf("unrelated report project_name = %q, want Other", gotOther.ProjectName)
	}
}

func TestRenameAndRefreshRollBackTogether(t *testing.T) {
	stores := openTestStores(t)
	svc := NewLabelService(stores.Projects.DB())
	ctx := context.Background()

	p := &models.Project{ProjectCode: "PRJ-001", Name: "Old Name", Status: models.ProjectStatusInProgress}
	if err := stores.Projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	r := &models.Report{ProjectID: p.ID, ProjectName: p.Name, Title: "Q1", ReportType: "quarterly", DueDate: "2024-04-10", Status: models.ReportStatusPending}
	if err := stores.Reports.Create(ctx, r); err != nil {
		t.Fatal(err)
	}

	// A rename whose transaction fails after the save must not leave either
	// the project or its children renamed.
	forced := errors.New("refresh interrupted")
	err := stores.Projects.DB().Transaction(func(tx *gorm.DB) error {
		p.Name = "New Name"
		if err := stores.Projects.WithTx(tx).Save(ctx, p); err != nil {
			return err
		}
		if err := svc.WithTx(tx).RefreshProjectName(ctx, p.ID, p.Name); err != nil {
			return err
		}
		return forced
	})
	if !errors.Is(err, forced) {
		t.Fatalf("transaction error = %v", err)
	}

	gotProject, err := stores.Projects.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotProject.Name != "Old Name" {
		t.Errorf("project name after rollback = %q, want Old Name", gotProject.Name)
	}
	gotReport, err := stores.Reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotReport.ProjectName != "Old Name" {
		t.Errorf("child project_name after rollback = %q, want Old Name", gotReport.ProjectName)
	}
}

func TestRefreshDonorName(t *testing.T) {
	stores := openTestStores(t)
	svc := NewLabelService(stores.Projects.DB())
	ctx := context.Background()

	d := &models.Donor{Name: "Global Fund"}
	if err := stores.Donors.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	p := &models.Project{ProjectCode: "PRJ-010", DonorID: d.ID, DonorName: d.Name, Name: "Water", Status: models.ProjectStatusInProgress}
	if err := stores.Projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	unrelated := &models.Project{ProjectCode: "PRJ-011", DonorID: d.ID + 1, DonorName: "Someone Else", Name: "Health", Status: models.ProjectStatusInProgress}
	if err := stores.Projects.Create(ctx, unrelated); err != nil {
		t.Fatal(err)
	}

	if err := svc.RefreshDonorName(ctx, d.ID, "Global Fund II"); err != nil {
		t.Fatalf("RefreshDonorName: %v", err)
	}

	got, err := stores.Projects.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.DonorName != "Global Fund II" {
		t.Errorf("donor_name = %q, want Global Fund II", got.DonorName)
	}
	gotUnrelated, err := stores.Projects.Get(ctx, unrelated.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotUnrelated.DonorName != "Someone Else" {
		t.Errorf("unrelated donor_name = %q, want Someone Else", gotUnrelated.DonorName)
	}
}
