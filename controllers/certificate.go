package controllers

import (
	"net/http"

	"ngo-erp-api/models"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	certificates store.ProjectScoped[models.Certificate]
	projects     *store.ProjectStore
}

func NewCertificateController(certificates store.ProjectScoped[models.Certificate], projects *store.ProjectStore) *CertificateController {
	return &CertificateController{certificates: certificates, projects: projects}
}

func (cc *CertificateController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		certs []models.Certificate
		err   error
	)
	if projectID, ok := projectFilter(c); ok {
		certs, err = cc.certificates.ByProject(ctx, projectID)
	} else {
		certs, err = cc.certificates.All(ctx)
	}
	if err != nil {
		abortStoreError(c, err, "certificates")
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := certs[:0:0]
		for _, cert := range certs {
			if cert.Status == status {
				filtered = append(filtered, cert)
			}
		}
		certs = filtered
	}

	listResponse(c, certs)
}

func (cc *CertificateController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cert, err := cc.certificates.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "certificate")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cert})
}

func (cc *CertificateController) Create(c *gin.Context) {
	var req models.CertificateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := lookupProject(c, cc.projects, req.ProjectID)
	if !ok {
		return
	}

	cert := models.Certificate{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Title:       req.Title,
		IssuedBy:    req.IssuedBy,
		IssueDate:   req.IssueDate,
		ExpiryDate:  req.ExpiryDate,
		Status:      utils.DefaultString(req.Status, models.CertificateStatusPending),
	}

	if err := cc.certificates.Create(c.Request.Context(), &cert); err != nil {
		abortStoreError(c, err, "certificate")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Certificate created successfully",
		"data":    cert,
	})
}

func (cc *CertificateController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cert, err := cc.certificates.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "certificate")
		return
	}

	var req models.CertificateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		cert.Title = *req.Title
	}
	if req.IssuedBy != nil {
		cert.IssuedBy = *req.IssuedBy
	}
	if req.IssueDate != nil {
		cert.IssueDate = *req.IssueDate
	}
	if req.ExpiryDate != nil {
		cert.ExpiryDate = *req.ExpiryDate
	}
	if req.Status != nil {
		cert.Status = *req.Status
	}

	if err := cc.certificates.Save(c.Request.Context(), cert); err != nil {
		abortStoreError(c, err, "certificate")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Certificate updated successfully",
		"data":    cert,
	})
}

func (cc *CertificateController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.certificates.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "certificate")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Certificate deleted successfully"})
}

// AttachFile records uploaded-file metadata on the certificate.
func (cc *CertificateController) AttachFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cert, err := cc.certificates.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "certificate")
		return
	}

	cert.File = buildAttachment(req)
	if !cert.File.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	if err := cc.certificates.Save(c.Request.Context(), cert); err != nil {
		abortStoreError(c, err, "certificate")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cert})
}
