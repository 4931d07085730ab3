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

type SafeguardingController struct {
	activities store.ProjectScoped[models.SafeguardingActivity]
	projects   *store.ProjectStore
	status     *services.StatusService
}

func NewSafeguardingController(activities store.ProjectScoped[models.SafeguardingActivity], projects *store.ProjectStore, status *services.StatusService) *SafeguardingController {
	return &SafeguardingController{activities: activities, projects: projects, status: status}
}

type safeguardingView struct {
	models.SafeguardingActivity
	Urgency string `json:"urgency,omitempty"`
	DueIn   string `json:"due_in,omitempty"`
}

func (sc *SafeguardingController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		activities []models.SafeguardingActivity
		err        error
	)
	if projectID, ok := projectFilter(c); ok {
		activities, err = sc.activities.ByProject(ctx, projectID)
	} else {
		activities, err = sc.activities.All(ctx)
	}
	if err != nil {
		abortStoreError(c, err, "safeguarding activities")
		return
	}

	status := c.Query("status")
	activityType := c.Query("activity_type")

	today := time.Now()
	views := make([]safeguardingView, 0, len(activities))
	for _, a := range activities {
		if status != "" && a.Status != status {
			continue
		}
		if activityType != "" && a.ActivityType != activityType {
			continue
		}
		view := safeguardingView{SafeguardingActivity: a}
		// Completed activities are not classified any further.
		if a.Status == models.SafeguardingStatusPlanned {
			if due, err := deadline.ParseDate(a.DueDate); err == nil {
				view.Urgency = deadline.Classify(due, today, deadline.DefaultWindowDays)
				view.DueIn = deadline.Label(due, today)
			}
		}
		views = append(views, view)
	}

	listResponse(c, views)
}

func (sc *SafeguardingController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := sc.activities.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "safeguarding activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": activity})
}

func (sc *SafeguardingController) Create(c *gin.Context) {
	var req models.SafeguardingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := lookupProject(c, sc.projects, req.ProjectID)
	if !ok {
		return
	}

	activity := models.SafeguardingActivity{
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		Title:        req.Title,
		ActivityType: req.ActivityType,
		DueDate:      req.DueDate,
		Status:       models.SafeguardingStatusPlanned,
		Notes:        req.Notes,
	}

	if err := sc.activities.Create(c.Request.Context(), &activity); err != nil {
		abortStoreError(c, err, "safeguarding activity")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Safeguarding activity created successfully",
		"data":    activity,
	})
}

func (sc *SafeguardingController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := sc.activities.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "safeguarding activity")
		return
	}

	var req models.SafeguardingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.ActivityType != nil {
		activity.ActivityType = *req.ActivityType
	}
	if req.DueDate != nil {
		activity.DueDate = *req.DueDate
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}

	if err := sc.activities.Save(c.Request.Context(), activity); err != nil {
		abortStoreError(c, err, "safeguarding activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Safeguarding activity updated successfully",
		"data":    activity,
	})
}

func (sc *SafeguardingController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := sc.activities.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "safeguarding activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Safeguarding activity deleted successfully"})
}

// Complete marks a planned activity as completed and stamps the completion
// time.
func (sc *SafeguardingController) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := sc.status.MarkSafeguardingCompleted(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "safeguarding activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": activity})
}
