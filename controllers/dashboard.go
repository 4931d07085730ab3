package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"ngo-erp-api/deadline"
	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	stores    *store.Stores
	reminders *services.ReminderService
}

func NewDashboardController(stores *store.Stores, reminders *services.ReminderService) *DashboardController {
	return &DashboardController{stores: stores, reminders: reminders}
}

// Stats returns the cross-entity summary counts. Everything is recomputed on
// each call; there is no caching layer.
func (dc *DashboardController) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := make(map[string]any)

	type counter struct {
		key   string
		count func() (int64, error)
	}

	counters := []counter{
		{"donors_total", func() (int64, error) { return dc.stores.Donors.Count(ctx, "") }},
		{"donors_active", func() (int64, error) {
			return dc.stores.Donors.Count(ctx, "status = ?", models.DonorStatusActive)
		}},
		{"projects_total", func() (int64, error) { return dc.stores.Projects.Count(ctx, "") }},
		{"projects_in_progress", func() (int64, error) {
			return dc.stores.Projects.Count(ctx, "status = ?", models.ProjectStatusInProgress)
		}},
		{"projects_completed", func() (int64, error) {
			return dc.stores.Projects.Count(ctx, "status = ?", models.ProjectStatusCompleted)
		}},
		{"work_plans_total", func() (int64, error) { return dc.stores.WorkPlans.Count(ctx, "") }},
		{"certificates_total", func() (int64, error) { return dc.stores.Certificates.Count(ctx, "") }},
		{"documents_total", func() (int64, error) { return dc.stores.Documents.Count(ctx, "") }},
		{"reports_pending", func() (int64, error) {
			return dc.stores.Reports.Count(ctx, "status = ?", models.ReportStatusPending)
		}},
		{"beneficiaries_total", func() (int64, error) { return dc.stores.Beneficiaries.Count(ctx, "") }},
		{"beneficiaries_pending_verification", func() (int64, error) {
			return dc.stores.Beneficiaries.Count(ctx, "status = ?", models.BeneficiaryStatusPending)
		}},
		{"safeguarding_planned", func() (int64, error) {
			return dc.stores.Safeguarding.Count(ctx, "status = ?", models.SafeguardingStatusPlanned)
		}},
		{"recruitments_open", func() (int64, error) {
			return dc.stores.Recruitments.Count(ctx, "status = ?", models.RecruitmentStatusOpen)
		}},
		{"payroll_runs_awaiting_approval", func() (int64, error) {
			return dc.stores.PayrollRuns.Count(ctx, "status = ?", models.PayrollStatusSubmitted)
		}},
	}

	for _, item := range counters {
		n, err := item.count()
		if err != nil {
			abortStoreError(c, err, "dashboard")
			return
		}
		stats[item.key] = n
	}

	// Total budget across non-cancelled projects.
	projects, err := dc.stores.Projects.All(ctx)
	if err != nil {
		abortStoreError(c, err, "dashboard")
		return
	}
	var totalBudget float64
	for _, p := range projects {
		if p.Status != models.ProjectStatusCancelled {
			totalBudget += p.Budget
		}
	}
	stats["total_budget"] = totalBudget
	stats["current_date"] = time.Now().Format(deadline.DateLayout)

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// Deadlines returns the merged upcoming-deadline list across reports,
// safeguarding activities, and project end dates, sorted by due date.
func (dc *DashboardController) Deadlines(c *gin.Context) {
	window := reminderWindow()
	if raw := c.Query("window"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			window = parsed
		}
	}

	items, err := dc.reminders.UpcomingDeadlines(c.Request.Context(), time.Now(), window)
	if err != nil {
		abortStoreError(c, err, "deadlines")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
		"window":  window,
	})
}

// reminderWindow reads the configured reminder window, falling back to the
// default when unset or malformed.
func reminderWindow() int {
	if raw := os.Getenv("REMINDER_WINDOW_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return deadline.DefaultWindowDays
}
