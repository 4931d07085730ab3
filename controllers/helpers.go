package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// parseID extracts the :id route parameter. On failure it writes the 400
// response and returns false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// abortStoreError maps a store failure onto the HTTP boundary: not-found
// becomes 404, an illegal transition 409, anything else is logged and
// answered with a generic 500. The triggering record is left untouched.
func abortStoreError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, services.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("store error (%s): %v", entity, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to access " + entity})
	}
}

// listResponse writes the standard collection envelope.
func listResponse[T any](c *gin.Context, records []T) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

// lookupProject resolves a project reference on a child create and answers
// 400 when it dangles. Returns the project so the caller can copy its name.
func lookupProject(c *gin.Context, projects *store.ProjectStore, projectID uint) (*models.Project, bool) {
	project, err := projects.Get(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced project does not exist"})
		} else {
			abortStoreError(c, err, "project")
		}
		return nil, false
	}
	return project, true
}

// projectFilter returns the project id restricting a child listing: the :id
// route param when mounted under /projects/:id, otherwise the project_id
// query parameter. The second return reports whether a filter is present.
func projectFilter(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("project_id")
	}
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// buildAttachment turns uploaded-file metadata into the stored form,
// generating the unique stored name and stamping the upload time.
func buildAttachment(req models.AttachmentRequest) models.Attachment {
	now := time.Now()
	return models.Attachment{
		FileName:   utils.SanitizeFilename(req.FileName),
		StoredName: uuid.NewString() + fileExt(req.FileName),
		MimeType:   req.MimeType,
		FileSize:   req.FileSize,
		UploadedAt: &now,
	}
}

func fileExt(name string) string {
	for i := len(name) - 1; i >= 0 && name[i] != '/'; i-- {
		if name[i] == '.' {
			return name[i:]
		}
	}
	return ""
}
