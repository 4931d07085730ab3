package controllers

import (
	"context"
	"net/http"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/gin-gonic/gin"
)

type PayrollController struct {
	runs   *store.Store[models.PayrollRun]
	status *services.StatusService
}

func NewPayrollController(runs *store.Store[models.PayrollRun], status *services.StatusService) *PayrollController {
	return &PayrollController{runs: runs, status: status}
}

func (pc *PayrollController) List(c *gin.Context) {
	runs, err := pc.runs.All(c.Request.Context())
	if err != nil {
		abortStoreError(c, err, "payroll runs")
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := runs[:0:0]
		for _, r := range runs {
			if r.Status == status {
				filtered = append(filtered, r)
			}
		}
		runs = filtered
	}

	listResponse(c, runs)
}

func (pc *PayrollController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	run, err := pc.runs.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "payroll run")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": run})
}

func (pc *PayrollController) Create(c *gin.Context) {
	var req models.PayrollCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run := models.PayrollRun{
		Period:      req.Period,
		StaffCount:  req.StaffCount,
		GrossAmount: req.GrossAmount,
		Status:      models.PayrollStatusDraft,
		Notes:       req.Notes,
	}

	if err := pc.runs.Create(c.Request.Context(), &run); err != nil {
		abortStoreError(c, err, "payroll run")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Payroll run created successfully",
		"data":    run,
	})
}

// Update edits a run's figures. Only draft runs are editable; later stages
// go through the transition endpoints.
func (pc *PayrollController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	run, err := pc.runs.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "payroll run")
		return
	}

	if run.Status != models.PayrollStatusDraft {
		c.JSON(http.StatusConflict, gin.H{"error": "Only draft payroll runs can be edited"})
		return
	}

	var req models.PayrollUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Period != nil {
		run.Period = *req.Period
	}
	if req.StaffCount != nil {
		run.StaffCount = *req.StaffCount
	}
	if req.GrossAmount != nil {
		run.GrossAmount = *req.GrossAmount
	}
	if req.Notes != nil {
		run.Notes = *req.Notes
	}

	if err := pc.runs.Save(c.Request.Context(), run); err != nil {
		abortStoreError(c, err, "payroll run")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payroll run updated successfully",
		"data":    run,
	})
}

func (pc *PayrollController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	run, err := pc.runs.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "payroll run")
		return
	}
	if run.Status != models.PayrollStatusDraft {
		c.JSON(http.StatusConflict, gin.H{"error": "Only draft payroll runs can be deleted"})
		return
	}

	if err := pc.runs.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "payroll run")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payroll run deleted successfully"})
}

// Submit sends a draft run for approval.
func (pc *PayrollController) Submit(c *gin.Context) {
	pc.transition(c, pc.status.SubmitPayrollRun)
}

// Approve accepts a submitted run and stamps the approval time.
func (pc *PayrollController) Approve(c *gin.Context) {
	pc.transition(c, pc.status.ApprovePayrollRun)
}

// Reject returns a submitted run to draft for correction.
func (pc *PayrollController) Reject(c *gin.Context) {
	pc.transition(c, pc.status.RejectPayrollRun)
}

// MarkPaid records that an approved run has been disbursed.
func (pc *PayrollController) MarkPaid(c *gin.Context) {
	pc.transition(c, pc.status.MarkPayrollRunPaid)
}

func (pc *PayrollController) transition(c *gin.Context, apply func(ctx context.Context, id uint) (*models.PayrollRun, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	run, err := apply(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "payroll run")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": run})
}
