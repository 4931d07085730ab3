package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newProjectRouter wires the project routes against an in-memory database,
// skipping authentication.
func newProjectRouter(t *testing.T) (*gin.Engine, *store.Stores) {
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
	pc := NewProjectController(stores.Projects, stores.Donors, services.NewLabelService(db))

	router := gin.New()
	router.GET("/projects", pc.List)
	router.GET("/projects/:id", pc.Get)
	router.POST("/projects", pc.Create)
	router.PUT("/projects/:id", pc.Update)
	router.DELETE("/projects/:id", pc.Delete)
	return router, stores
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedDonor(t *testing.T, stores *store.Stores) *models.Donor {
	t.Helper()
	d := &models.Donor{Name: "Global Fund", Type: "multilateral", Status: models.DonorStatusActive}
	if err := stores.Donors.Create(context.Background(), d); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestProjectCreateDuplicateCode(t *testing.T) {
	router, stores := newProjectRouter(t)
	donor := seedDonor(t, stores)

	payload := gin.H{
		"project_code": "PRJ-001",
		"donor_id":     donor.ID,
		"name":         "Clean Water",
		"start_date":   "2024-01-01",
		"end_date":     "2024-12-31",
		"budget":       50000,
	}

	w := doJSON(t, router, http.MethodPost, "/projects", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: status %d, body %s", w.Code, w.Body.String())
	}

	payload["name"] = "Another Project"
	w = doJSON(t, router, http.MethodPost, "/projects", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status %d, body %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != "Project code already exists" {
		t.Errorf("error = %v", resp["error"])
	}

	// The rejected create must not grow the collection.
	count, err := stores.Projects.Count(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("project count = %d, want 1", count)
	}
}

func TestProjectCreateDanglingDonor(t *testing.T) {
	router, _ := newProjectRouter(t)

	w := doJSON(t, router, http.MethodPost, "/projects", gin.H{
		"project_code": "PRJ-001",
		"donor_id":     99,
		"name":         "Clean Water",
		"start_date":   "2024-01-01",
		"end_date":     "2024-12-31",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
}

func TestProjectCreateCopiesDonorName(t *testing.T) {
	router, stores := newProjectRouter(t)
	donor := seedDonor(t, stores)

	w := doJSON(t, router, http.MethodPost, "/projects", gin.H{
		"project_code": "PRJ-001",
		"donor_id":     donor.ID,
		"name":         "Clean Water",
		"start_date":   "2024-01-01",
		"end_date":     "2024-12-31",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	projects, err := stores.Projects.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 || projects[0].DonorName != "Global Fund" {
		t.Errorf("projects = %+v", projects)
	}
	if projects[0].Status != models.ProjectStatusNotStarted {
		t.Errorf("default status = %q", projects[0].Status)
	}
}

func TestProjectRenameRefreshesChildLabels(t *testing.T) {
	router, stores := newProjectRouter(t)
	donor := seedDonor(t, stores)
	ctx := context.Background()

	p := &models.Project{ProjectCode: "PRJ-001", DonorID: donor.ID, DonorName: donor.Name, Name: "Old Name", Status: models.ProjectStatusInProgress, StartDate: "2024-01-01", EndDate: "2024-12-31"}
	if err := stores.Projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	r := &models.Report{ProjectID: p.ID, ProjectName: p.Name, Title: "Q1", ReportType: "quarterly", DueDate: "2024-04-10", Status: models.ReportStatusPending}
	if err := stores.Reports.Create(ctx, r); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/projects/%d", p.ID), gin.H{"name": "New Name"})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	got, err := stores.Reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ProjectName != "New Name" {
		t.Errorf("child project_name = %q, want New Name", got.ProjectName)
	}
}

func TestProjectDeleteBlockedThenCascade(t *testing.T) {
	router, stores := newProjectRouter(t)
	donor := seedDonor(t, stores)
	ctx := context.Background()

	p := &models.Project{ProjectCode: "PRJ-001", DonorID: donor.ID, Name: "Clean Water", Status: models.ProjectStatusInProgress, StartDate: "2024-01-01", EndDate: "2024-12-31"}
	if err := stores.Projects.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	b := &models.Beneficiary{ProjectID: p.ID, FullName: "Amina", Status: models.BeneficiaryStatusPending}
	if err := stores.Beneficiaries.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/projects/%d", p.ID), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("guarded delete: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		ChildCounts map[string]int64 `json:"child_counts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ChildCounts["beneficiaries"] != 1 {
		t.Errorf("child_counts = %v", resp.ChildCounts)
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/projects/%d?cascade=true", p.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cascade delete: status %d, body %s", w.Code, w.Body.String())
	}
	if _, err := stores.Projects.Get(ctx, p.ID); err == nil {
		t.Error("project still present after cascade delete")
	}
	if _, err := stores.Beneficiaries.Get(ctx, b.ID); err == nil {
		t.Error("beneficiary still present after cascade delete")
	}
}

func TestProjectListFilters(t *testing.T) {
	router, stores := newProjectRouter(t)
	donor := seedDonor(t, stores)
	ctx := context.Background()

	seed := []*models.Project{
		{ProjectCode: "PRJ-001", DonorID: donor.ID, Name: "Clean Water", Status: models.ProjectStatusInProgress, ThematicArea: "wash"},
		{ProjectCode: "PRJ-002", DonorID: donor.ID, Name: "School Meals", Status: models.ProjectStatusCompleted, ThematicArea: "education"},
	}
	for _, p := range seed {
		if err := stores.Projects.Create(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/projects?status=in_progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		Count int              `json:"count"`
		Data  []models.Project `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Data[0].ProjectCode != "PRJ-001" {
		t.Errorf("filtered = %+v", resp)
	}

	w = doJSON(t, router, http.MethodGet, "/projects?search=meals", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Data[0].Name != "School Meals" {
		t.Errorf("search = %+v", resp)
	}
}

func TestProjectGetNotFound(t *testing.T) {
	router, _ := newProjectRouter(t)
	w := doJSON(t, router, http.MethodGet, "/projects/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
}
