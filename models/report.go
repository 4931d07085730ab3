package models

import "time"

// Report statuses.
const (
	ReportStatusPending   = "pending"
	ReportStatusSubmitted = "submitted"
)

// Report represents the reports table (narrative and donor reports with a
// submission deadline).
type Report struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID   uint       `gorm:"column:project_id" json:"project_id"`
	ProjectName string     `gorm:"column:project_name" json:"project_name"`
	Title       string     `gorm:"column:title" json:"title"`
	ReportType  string     `gorm:"column:report_type" json:"report_type"` // monthly|quarterly|annual|donor
	DueDate     string     `gorm:"column:due_date" json:"due_date"`
	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	Status      string     `gorm:"column:status" json:"status"`
	File        Attachment `gorm:"embedded" json:"file"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string { return "reports" }

type ReportCreateRequest struct {
	ProjectID  uint   `json:"project_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	ReportType string `json:"report_type" binding:"required,oneof=monthly quarterly annual donor"`
	DueDate    string `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type ReportUpdateRequest struct {
	Title      *string `json:"title"`
	ReportType *string `json:"report_type" binding:"omitempty,oneof=monthly quarterly annual donor"`
	DueDate    *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}
