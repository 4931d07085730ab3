package models

import "time"

// Work plan statuses.
const (
	WorkPlanStatusDraft     = "draft"
	WorkPlanStatusSubmitted = "submitted"
	WorkPlanStatusCompleted = "completed"
)

// WorkPlan represents the work_plans table.
type WorkPlan struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID   uint       `gorm:"column:project_id" json:"project_id"`
	ProjectName string     `gorm:"column:project_name" json:"project_name"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	DueDate     string     `gorm:"column:due_date" json:"due_date"`
	Status      string     `gorm:"column:status" json:"status"`
	File        Attachment `gorm:"embedded" json:"file"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WorkPlan) TableName() string { return "work_plans" }

type WorkPlanCreateRequest struct {
	ProjectID   uint   `json:"project_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type WorkPlanUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}
