package controllers

import (
	"net/http"
	"strings"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/gin-gonic/gin"
)

type BeneficiaryController struct {
	beneficiaries store.ProjectScoped[models.Beneficiary]
	projects      *store.ProjectStore
	status        *services.StatusService
}

func NewBeneficiaryController(beneficiaries store.ProjectScoped[models.Beneficiary], projects *store.ProjectStore, status *services.StatusService) *BeneficiaryController {
	return &BeneficiaryController{beneficiaries: beneficiaries, projects: projects, status: status}
}

// List returns beneficiaries, optionally scoped to a project and filtered by
// verification status, province, and a case-insensitive name search.
func (bc *BeneficiaryController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		records []models.Beneficiary
		err     error
	)
	if projectID, ok := projectFilter(c); ok {
		records, err = bc.beneficiaries.ByProject(ctx, projectID)
	} else {
		records, err = bc.beneficiaries.All(ctx)
	}
	if err != nil {
		abortStoreError(c, err, "beneficiaries")
		return
	}

	status := c.Query("status")
	province := c.Query("province")
	search := strings.ToLower(c.Query("search"))

	responses := make([]models.BeneficiaryResponse, 0, len(records))
	for i := range records {
		b := &records[i]
		if status != "" && b.Status != status {
			continue
		}
		if province != "" && b.Province != province {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.FullName), search) {
			continue
		}
		responses = append(responses, b.ToResponse())
	}

	listResponse(c, responses)
}

func (bc *BeneficiaryController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	beneficiary, err := bc.beneficiaries.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": beneficiary.ToResponse()})
}

func (bc *BeneficiaryController) Create(c *gin.Context) {
	var req models.BeneficiaryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := lookupProject(c, bc.projects, req.ProjectID)
	if !ok {
		return
	}

	// FamilySize is taken as entered; it is not reconciled against the
	// demographic brackets. The response carries both so clients can flag a
	// mismatch.
	beneficiary := models.Beneficiary{
		ProjectID:     project.ID,
		ProjectName:   project.Name,
		FullName:      utils.SanitizeInput(req.FullName),
		Sex:           req.Sex,
		Phone:         req.Phone,
		Province:      req.Province,
		District:      req.District,
		Village:       req.Village,
		FamilySize:    req.FamilySize,
		FemaleUnder17: req.FemaleUnder17,
		FemaleOver18:  req.FemaleOver18,
		MaleUnder18:   req.MaleUnder18,
		MaleOver18:    req.MaleOver18,
		Status:        models.BeneficiaryStatusPending,
	}

	if err := bc.beneficiaries.Create(c.Request.Context(), &beneficiary); err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Beneficiary created successfully",
		"data":    beneficiary.ToResponse(),
	})
}

func (bc *BeneficiaryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	beneficiary, err := bc.beneficiaries.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	var req models.BeneficiaryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName != nil {
		beneficiary.FullName = utils.SanitizeInput(*req.FullName)
	}
	if req.Sex != nil {
		beneficiary.Sex = *req.Sex
	}
	if req.Phone != nil {
		beneficiary.Phone = *req.Phone
	}
	if req.Province != nil {
		beneficiary.Province = *req.Province
	}
	if req.District != nil {
		beneficiary.District = *req.District
	}
	if req.Village != nil {
		beneficiary.Village = *req.Village
	}
	if req.FamilySize != nil {
		beneficiary.FamilySize = *req.FamilySize
	}
	if req.FemaleUnder17 != nil {
		beneficiary.FemaleUnder17 = *req.FemaleUnder17
	}
	if req.FemaleOver18 != nil {
		beneficiary.FemaleOver18 = *req.FemaleOver18
	}
	if req.MaleUnder18 != nil {
		beneficiary.MaleUnder18 = *req.MaleUnder18
	}
	if req.MaleOver18 != nil {
		beneficiary.MaleOver18 = *req.MaleOver18
	}

	if err := bc.beneficiaries.Save(c.Request.Context(), beneficiary); err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Beneficiary updated successfully",
		"data":    beneficiary.ToResponse(),
	})
}

func (bc *BeneficiaryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := bc.beneficiaries.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Beneficiary deleted successfully"})
}

// AttachNID records the national ID document metadata.
func (bc *BeneficiaryController) AttachNID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	beneficiary, err := bc.beneficiaries.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	beneficiary.NIDFile = buildAttachment(req)
	if !beneficiary.NIDFile.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	if err := bc.beneficiaries.Save(c.Request.Context(), beneficiary); err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": beneficiary.ToResponse()})
}

// Verify marks a pending beneficiary as verified.
func (bc *BeneficiaryController) Verify(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	beneficiary, err := bc.status.VerifyBeneficiary(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": beneficiary.ToResponse()})
}

// Reject marks a pending beneficiary as rejected.
func (bc *BeneficiaryController) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	beneficiary, err := bc.status.RejectBeneficiary(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "beneficiary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": beneficiary.ToResponse()})
}
