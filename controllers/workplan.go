package controllers

import (
	"net/http"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/gin-gonic/gin"
)

type WorkPlanController struct {
	workPlans store.ProjectScoped[models.WorkPlan]
	projects  *store.ProjectStore
	status    *services.StatusService
}

func NewWorkPlanController(workPlans store.ProjectScoped[models.WorkPlan], projects *store.ProjectStore, status *services.StatusService) *WorkPlanController {
	return &WorkPlanController{workPlans: workPlans, projects: projects, status: status}
}

// List returns work plans, scoped to a project when one is given.
func (wc *WorkPlanController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		plans []models.WorkPlan
		err   error
	)
	if projectID, ok := projectFilter(c); ok {
		plans, err = wc.workPlans.ByProject(ctx, projectID)
	} else {
		plans, err = wc.workPlans.All(ctx)
	}
	if err != nil {
		abortStoreError(c, err, "work plans")
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := plans[:0:0]
		for _, p := range plans {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		plans = filtered
	}

	listResponse(c, plans)
}

func (wc *WorkPlanController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	plan, err := wc.workPlans.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plan})
}

func (wc *WorkPlanController) Create(c *gin.Context) {
	var req models.WorkPlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := lookupProject(c, wc.projects, req.ProjectID)
	if !ok {
		return
	}

	plan := models.WorkPlan{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      models.WorkPlanStatusDraft,
	}

	if err := wc.workPlans.Create(c.Request.Context(), &plan); err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Work plan created successfully",
		"data":    plan,
	})
}

func (wc *WorkPlanController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	plan, err := wc.workPlans.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	var req models.WorkPlanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.DueDate != nil {
		plan.DueDate = *req.DueDate
	}

	if err := wc.workPlans.Save(c.Request.Context(), plan); err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Work plan updated successfully",
		"data":    plan,
	})
}

func (wc *WorkPlanController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := wc.workPlans.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Work plan deleted successfully"})
}

// AttachFile records uploaded-file metadata on the work plan.
func (wc *WorkPlanController) AttachFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := wc.workPlans.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	plan.File = buildAttachment(req)
	if !plan.File.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	if err := wc.workPlans.Save(c.Request.Context(), plan); err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plan})
}

// Submit moves a draft plan to submitted.
func (wc *WorkPlanController) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	plan, err := wc.status.MarkWorkPlanSubmitted(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plan})
}

// Complete moves a submitted plan to completed.
func (wc *WorkPlanController) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	plan, err := wc.status.MarkWorkPlanCompleted(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "work plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plan})
}
