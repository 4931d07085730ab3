package controllers

import (
	"net/http"
	"strings"
	"time"

	"ngo-erp-api/deadline"
	"ngo-erp-api/models"
	"ngo-erp-api/services"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/gin-gonic/gin"
)

type RecruitmentController struct {
	recruitments *store.Store[models.Recruitment]
	status       *services.StatusService
}

func NewRecruitmentController(recruitments *store.Store[models.Recruitment], status *services.StatusService) *RecruitmentController {
	return &RecruitmentController{recruitments: recruitments, status: status}
}

func (rc *RecruitmentController) List(c *gin.Context) {
	recruitments, err := rc.recruitments.All(c.Request.Context())
	if err != nil {
		abortStoreError(c, err, "recruitments")
		return
	}

	status := c.Query("status")
	department := c.Query("department")
	search := strings.ToLower(c.Query("search"))

	filtered := recruitments[:0:0]
	for _, r := range recruitments {
		if status != "" && r.Status != status {
			continue
		}
		if department != "" && r.Department != department {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.PositionTitle), search) {
			continue
		}
		filtered = append(filtered, r)
	}

	listResponse(c, filtered)
}

func (rc *RecruitmentController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	recruitment, err := rc.recruitments.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "recruitment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": recruitment})
}

func (rc *RecruitmentController) Create(c *gin.Context) {
	var req models.RecruitmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recruitment := models.Recruitment{
		PositionTitle:  req.PositionTitle,
		Department:     req.Department,
		PostedDate:     utils.DefaultString(req.PostedDate, time.Now().Format(deadline.DateLayout)),
		ClosingDate:    req.ClosingDate,
		Status:         utils.DefaultString(req.Status, models.RecruitmentStatusOpen),
		CandidateCount: req.CandidateCount,
	}

	if err := rc.recruitments.Create(c.Request.Context(), &recruitment); err != nil {
		abortStoreError(c, err, "recruitment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Recruitment created successfully",
		"data":    recruitment,
	})
}

func (rc *RecruitmentController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	recruitment, err := rc.recruitments.Get(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "recruitment")
		return
	}

	var req models.RecruitmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PositionTitle != nil {
		recruitment.PositionTitle = *req.PositionTitle
	}
	if req.Department != nil {
		recruitment.Department = *req.Department
	}
	if req.PostedDate != nil {
		recruitment.PostedDate = *req.PostedDate
	}
	if req.ClosingDate != nil {
		recruitment.ClosingDate = *req.ClosingDate
	}
	if req.Status != nil {
		recruitment.Status = *req.Status
	}
	if req.CandidateCount != nil {
		recruitment.CandidateCount = *req.CandidateCount
	}

	if err := rc.recruitments.Save(c.Request.Context(), recruitment); err != nil {
		abortStoreError(c, err, "recruitment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recruitment updated successfully",
		"data":    recruitment,
	})
}

func (rc *RecruitmentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := rc.recruitments.Delete(c.Request.Context(), id); err != nil {
		abortStoreError(c, err, "recruitment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recruitment deleted successfully"})
}

// Close ends an open recruitment regardless of which pre-terminal stage it
// reached.
func (rc *RecruitmentController) Close(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	recruitment, err := rc.status.CloseRecruitment(c.Request.Context(), id)
	if err != nil {
		abortStoreError(c, err, "recruitment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": recruitment})
}
