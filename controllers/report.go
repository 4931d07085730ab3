package controllers

import (
	"net/http"
	"time"

	"ngo-erp-api/deadline"
	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reports  store.ProjectScoped[models.Report]
	projects *store.ProjectStore
	status   *services.StatusService
}

func NewReportController(reports store.ProjectScoped[models.Report], projects *store.ProjectStore, status *services.StatusService) *ReportController {
	return &ReportController{reports: reports, projects: projects, status: status}
}

// reportView decorates a report with its deadline classification for the
// list's due-date column.
type reportView struct {
	models.Report
	Urgency string `json:"urgency"`
	DueIn   string `json:"due_in"`
}

func (rc *ReportController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		reports []models.Report
		err     error
	)
	if projectID, ok := projectFilter(c); ok {
		reports, err = rc.reports.ByProject(ctx, projectID)
	} else {
		reports, err = rc.reports.All(ctx)
	}
	if err != nil {
		abortStoreError(c, err, "reports")
		return
	}

	status := c.Query("status")
	reportType := c.Query("report_type")

	today := time.Now()
	views := make([]reportView, 0, len(reports))
	for _, r := range reports {
		if status != "" && r.Status != status {
			continue
		}
		if reportType != "" && r.ReportType != reportType {
			continue
		}
		view := reportView{Report: r}
		// Submitted reports keep their record but drop the urgency tag.
		if r.Status == models.ReportStatusPending {
			if due, err := deadline.ParseDate(r.DueDate); err == nil {
				view.Urgency = deadline.Classify(due, today, deadline.DefaultWindowDays)
				view.DueIn = deadline.Label(due, today)
			}
		}
		views = append(views, view)
	}

	listResponse(c, views)
}

func (rc *ReportController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, err := rc.reports.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

func (rc *ReportController) Create(c *gin.Context) {
	var req models.ReportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := lookupProject(c, rc.projects, req.ProjectID)
	if !ok {
		return
	}

	report := models.Report{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Title:       req.Title,
		ReportType:  req.ReportType,
		DueDate:     req.DueDate,
		Status:      models.ReportStatusPending,
	}

	if err := rc.reports.Create(c.Request.Context(), &report); err != nil {
		abortStoreError(c, err, "report")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Report created successfully",
		"data":    report,
	})
}

func (rc *ReportController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, err := rc.reports.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "report")
		return
	}

	var req models.ReportUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.ReportType != nil {
		report.ReportType = *req.ReportType
	}
	if req.DueDate != nil {
		report.DueDate = *req.DueDate
	}

	if err := rc.reports.Save(c.Request.Context(), report); err != nil {
		abortStoreError(c, err, "report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report updated successfully",
		"data":    report,
	})
}

func (rc *ReportController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := rc.reports.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report deleted successfully"})
}

// AttachFile records uploaded-file metadata on the report.
func (rc *ReportController) AttachFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := rc.reports.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "report")
		return
	}

	report.File = buildAttachment(req)
	if !report.File.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	if err := rc.reports.Save(c.Request.Context(), report); err != nil {
		abortStoreError(c, err, "report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

// Submit marks a pending report as submitted.
func (rc *ReportController) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, err := rc.status.MarkReportSubmitted(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}
