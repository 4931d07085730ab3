package controllers

import (
	"net/http"
	"strings"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DonorController struct {
	donors   *store.Store[models.Donor]
	projects *store.ProjectStore
	labels   *services.LabelService
}

func NewDonorController(donors *store.Store[models.Donor], projects *store.ProjectStore, labels *services.LabelService) *DonorController {
	return &DonorController{donors: donors, projects: projects, labels: labels}
}

// List returns all donors, optionally filtered by status, type, and a
// case-insensitive name search.
func (dc *DonorController) List(c *gin.Context) {
	donors, err := dc.donors.All(c.Request.Context())
	if err != nil {
		abortStoreError(c, err, "donors")
		return
	}

	status := c.Query("status")
	donorType := c.Query("type")
	search := strings.ToLower(c.Query("search"))

	filtered := donors[:0:0]
	for _, d := range donors {
		if status != "" && d.Status != status {
			continue
		}
		if donorType != "" && d.Type != donorType {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
			continue
		}
		filtered = append(filtered, d)
	}

	listResponse(c, filtered)
}

func (dc *DonorController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	donor, err := dc.donors.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "donor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": donor})
}

func (dc *DonorController) Create(c *gin.Context) {
	var req models.DonorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donor := models.Donor{
		Name:          utils.SanitizeInput(req.Name),
		Type:          req.Type,
		Status:        utils.DefaultString(req.Status, models.DonorStatusActive),
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}

	if err := dc.donors.Create(c.Request.Context(), &donor); err != nil {
		abortStoreError(c, err, "donor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Donor created successfully",
		"data":    donor,
	})
}

// Update merges the given fields; a rename also refreshes the donor name
// cached on the donor's projects.
func (dc *DonorController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	donor, err := dc.donors.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "donor")
		return
	}

	var req models.DonorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	renamed := false
	if req.Name != nil && *req.Name != donor.Name {
		donor.Name = utils.SanitizeInput(*req.Name)
		renamed = true
	}
	if req.Type != nil {
		donor.Type = *req.Type
	}
	if req.Status != nil {
		donor.Status = *req.Status
	}
	if req.ContactPerson != nil {
		donor.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		donor.Email = *req.Email
	}
	if req.Phone != nil {
		donor.Phone = *req.Phone
	}
	if req.Address != nil {
		donor.Address = *req.Address
	}

	ctx := c.Request.Context()
	err = dc.donors.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := dc.donors.WithTx(tx).Save(ctx, donor); err != nil {
			return err
		}
		if renamed {
			return dc.labels.WithTx(tx).RefreshDonorName(ctx, donor.ID, donor.Name)
		}
		return nil
	})
	if err != nil {
		abortStoreError(c, err, "donor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Donor updated successfully",
		"data":    donor,
	})
}

// Delete removes a donor. The delete is blocked while projects still
// reference the donor, mirroring the guarded project delete.
func (dc *DonorController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	projects, err := dc.projects.ByDonor(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "donor")
		return
	}
	if len(projects) > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":         "Donor still has projects; reassign or delete them first",
			"project_count": len(projects),
		})
		return
	}

	if err := dc.donors.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "donor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Donor deleted successfully"})
}

// Projects lists the projects funded by a donor.
func (dc *DonorController) Projects(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	projects, err := dc.projects.ByDonor(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "projects")
		return
	}

	listResponse(c, projects)
}
