package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newDashboardRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	stores := store.NewStores(db)
	dc := NewDashboardController(stores, services.NewReminderService(stores))

	router := gin.New()
	router.GET("/dashboard/stats", dc.Stats)
	router.GET("/dashboard/deadlines", dc.Deadlines)
	return router, stores
}

func TestDashboardStats(t *testing.T) {
	router, stores := newDashboardRouter(t)
	ctx := context.Background()

	donors := []*models.Donor{
		{Name: "Global Fund", Type: "multilateral", Status: models.DonorStatusActive},
		{Name: "Dormant Trust", Type: "foundation", Status: models.DonorStatusInactive},
	}
	for _, d := range donors {
		if err := stores.Donors.Create(ctx, d); err != nil {
			t.Fatal(err)
		}
	}
	projects := []*models.Project{
		{ProjectCode: "PRJ-001", DonorID: 1, Name: "Water", Status: models.ProjectStatusInProgress, Budget: 50000},
		{ProjectCode: "PRJ-002", DonorID: 1, Name: "Meals", Status: models.ProjectStatusCompleted, Budget: 20000},
		{ProjectCode: "PRJ-003", DonorID: 2, Name: "Dropped", Status: models.ProjectStatusCancelled, Budget: 99000},
	}
	for _, p := range projects {
		if err := stores.Projects.Create(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	b := &models.Beneficiary{ProjectID: 1, FullName: "Amina", Status: models.BeneficiaryStatusPending}
	if err := stores.Beneficiaries.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodGet, "/dashboard/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Stats map[string]any `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	want := map[string]float64{
		"donors_total":                       2,
		"donors_active":                      1,
		"projects_total":                     3,
		"projects_in_progress":               1,
		"projects_completed":                 1,
		"beneficiaries_total":                1,
		"beneficiaries_pending_verification": 1,
		// Cancelled projects do not count toward the budget.
		"total_budget": 70000,
	}
	for key, v := range want {
		got, ok := resp.Stats[key].(float64)
		if !ok || got != v {
			t.Errorf("stats[%s] = %v, want %v", key, resp.Stats[key], v)
		}
	}
	if _, ok := resp.Stats["current_date"].(string); !ok {
		t.Error("current_date missing")
	}
}

func TestDashboardDeadlinesWindowOverride(t *testing.T) {
	router, stores := newDashboardRouter(t)
	ctx := context.Background()

	r := &models.Report{ProjectID: 1, Title: "Annual", ReportType: "annual", DueDate: "2099-01-01", Status: models.ReportStatusPending}
	if err := stores.Reports.Create(ctx, r); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodGet, "/dashboard/deadlines?window=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Count  int                     `json:"count"`
		Window int                     `json:"window"`
		Data   []services.DeadlineItem `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Window != 3 {
		t.Errorf("window = %d, want 3", resp.Window)
	}
	if resp.Count != 1 || resp.Data[0].Classification != "ok" {
		t.Errorf("deadlines = %+v", resp)
	}
}
