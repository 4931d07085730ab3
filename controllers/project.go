package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	projects *store.ProjectStore
	donors   *store.Store[models.Donor]
	labels   *services.LabelService
}

func NewProjectController(projects *store.ProjectStore, donors *store.Store[models.Donor], labels *services.LabelService) *ProjectController {
	return &ProjectController{projects: projects, donors: donors, labels: labels}
}

// List returns all projects, optionally filtered by status, donor, thematic
// area, and a case-insensitive search over name and code.
func (pc *ProjectController) List(c *gin.Context) {
	projects, err := pc.projects.All(c.Request.Context())
	if err != nil {
		abortStoreError(c, err, "projects")
		return
	}

	status := c.Query("status")
	donorID := c.Query("donor_id")
	area := c.Query("thematic_area")
	search := strings.ToLower(c.Query("search"))

	filtered := projects[:0:0]
	for _, p := range projects {
		if status != "" && p.Status != status {
			continue
		}
		if donorID != "" && donorID != uintString(p.DonorID) {
			continue
		}
		if area != "" && p.ThematicArea != area {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.ProjectCode), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	listResponse(c, filtered)
}

func (pc *ProjectController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := pc.projects.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

// Create validates the unique project code, resolves the donor, and caches
// the donor name on the new record.
func (pc *ProjectController) Create(c *gin.Context) {
	var req models.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	exists, err := pc.projects.CodeExists(ctx, req.ProjectCode, 0)
	if err != nil {
		abortStoreError(c, err, "project")
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Project code already exists"})
		return
	}

	donor, err := pc.donors.Get(ctx, req.DonorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced donor does not exist"})
		} else {
			abortStoreError(c, err, "donor")
		}
		return
	}

	project := models.Project{
		ProjectCode:  req.ProjectCode,
		DonorID:      donor.ID,
		DonorName:    donor.Name,
		Name:         utils.SanitizeInput(req.Name),
		Status:       utils.DefaultString(req.Status, models.ProjectStatusNotStarted),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Budget:       req.Budget,
		ThematicArea: req.ThematicArea,
	}

	if err := pc.projects.Create(ctx, &project); err != nil {
		abortStoreError(c, err, "project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"data":    project,
	})
}

// Update merges the given fields. A code change re-runs the uniqueness check
// excluding the record itself; a rename refreshes the project name cached on
// child records; a donor change re-copies the donor name.
func (pc *ProjectController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	project, err := pc.projects.Get(ctx, id)
	if err != nil {
		abortStoreError(c, err, "project")
		return
	}

	var req models.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ProjectCode != nil && *req.ProjectCode != project.ProjectCode {
		exists, err := pc.projects.CodeExists(ctx, *req.ProjectCode, project.ID)
		if err != nil {
			abortStoreError(c, err, "project")
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "Project code already exists"})
			return
		}
		project.ProjectCode = *req.ProjectCode
	}

	if req.DonorID != nil && *req.DonorID != project.DonorID {
		donor, err := pc.donors.Get(ctx, *req.DonorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced donor does not exist"})
			} else {
				abortStoreError(c, err, "donor")
			}
			return
		}
		project.DonorID = donor.ID
		project.DonorName = donor.Name
	}

	renamed := false
	if req.Name != nil && *req.Name != project.Name {
		project.Name = utils.SanitizeInput(*req.Name)
		renamed = true
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.ThematicArea != nil {
		project.ThematicArea = *req.ThematicArea
	}

	// The save and the child-label refresh commit or roll back together, so a
	// failed refresh can never leave children holding the old name.
	err = pc.projects.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := pc.projects.WithTx(tx).Save(ctx, project); err != nil {
			return err
		}
		if renamed {
			return pc.labels.WithTx(tx).RefreshProjectName(ctx, project.ID, project.Name)
		}
		return nil
	})
	if err != nil {
		abortStoreError(c, err, "project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"data":    project,
	})
}

// Delete removes a project. While dependent records exist the delete is
// blocked with the per-collection counts; pass cascade=true to remove the
// whole subtree in one transaction.
func (pc *ProjectController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cascade := c.Query("cascade") == "true"

	err := pc.projects.DeleteGuarded(c.Request.Context(), id, cascade)
	if err != nil {
		var hasChildren *store.ErrHasChildren
		if errors.As(err, &hasChildren) {
			c.JSON(http.StatusConflict, gin.H{
				"error":        "Project still has dependent records; pass cascade=true to delete them",
				"child_counts": hasChildren.Counts,
			})
			return
		}
		abortStoreError(c, err, "project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
