package controllers

import (
	"net/http"
	"strings"
	"time"

	"ngo-erp-api/deadline"
	"ngo-erp-api/models"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	documents store.ProjectScoped[models.Document]
	projects  *store.ProjectStore
}

func NewDocumentController(documents store.ProjectScoped[models.Document], projects *store.ProjectStore) *DocumentController {
	return &DocumentController{documents: documents, projects: projects}
}

// List returns documents, optionally scoped to a project and filtered by
// category, status, and a case-insensitive title search.
func (dc *DocumentController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		docs []models.Document
		err  error
	)
	if projectID, ok := projectFilter(c); ok {
		docs, err = dc.documents.ByProject(ctx, projectID)
	} else {
		docs, err = dc.documents.All(ctx)
	}
	if err != nil {
		abortStoreError(c, err, "documents")
		return
	}

	category := c.Query("category")
	status := c.Query("status")
	search := strings.ToLower(c.Query("search"))

	filtered := docs[:0:0]
	for _, d := range docs {
		if category != "" && d.Category != category {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(d.Title), search) {
			continue
		}
		filtered = append(filtered, d)
	}

	listResponse(c, filtered)
}

func (dc *DocumentController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := dc.documents.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}

func (dc *DocumentController) Create(c *gin.Context) {
	var req models.DocumentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, ok := lookupProject(c, dc.projects, req.ProjectID)
	if !ok {
		return
	}

	doc := models.Document{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Title:       req.Title,
		Category:    utils.DefaultString(req.Category, "other"),
		UploadDate:  utils.DefaultString(req.UploadDate, time.Now().Format(deadline.DateLayout)),
		Status:      utils.DefaultString(req.Status, models.DocumentStatusDraft),
	}

	if err := dc.documents.Create(c.Request.Context(), &doc); err != nil {
		abortStoreError(c, err, "document")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Document created successfully",
		"data":    doc,
	})
}

func (dc *DocumentController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := dc.documents.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "document")
		return
	}

	var req models.DocumentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Category != nil {
		doc.Category = *req.Category
	}
	if req.UploadDate != nil {
		doc.UploadDate = *req.UploadDate
	}
	if req.Status != nil {
		doc.Status = *req.Status
	}

	if err := dc.documents.Save(c.Request.Context(), doc); err != nil {
		abortStoreError(c, err, "document")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Document updated successfully",
		"data":    doc,
	})
}

func (dc *DocumentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := dc.documents.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Document deleted successfully"})
}

// AttachFile records uploaded-file metadata on the document register entry.
func (dc *DocumentController) AttachFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := dc.documents.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "document")
		return
	}

	doc.File = buildAttachment(req)
	if !doc.File.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	if err := dc.documents.Save(c.Request.Context(), doc); err != nil {
		abortStoreError(c, err, "document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}
