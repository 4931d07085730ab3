package models

import "time"

// Safeguarding activity statuses.
const (
	SafeguardingStatusPlanned   = "planned"
	SafeguardingStatusCompleted = "completed"
)

// SafeguardingActivity represents the safeguarding_activities table
// (trainings, audits, awareness sessions with a due date).
type SafeguardingActivity struct {
	ID           uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID    uint       `gorm:"column:project_id" json:"project_id"`
	ProjectName  string     `gorm:"column:project_name" json:"project_name"`
	Title        string     `gorm:"column:title" json:"title"`
	ActivityType string     `gorm:"column:activity_type" json:"activity_type"` // training|audit|awareness|assessment
	DueDate      string     `gorm:"column:due_date" json:"due_date"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	Status       string     `gorm:"column:status" json:"status"`
	Notes        string     `gorm:"column:notes" json:"notes"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SafeguardingActivity) TableName() string { return "safeguarding_activities" }

type SafeguardingCreateRequest struct {
	ProjectID    uint   `json:"project_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	ActivityType string `json:"activity_type" binding:"omitempty,oneof=training audit awareness assessment"`
	DueDate      string `json:"due_date" binding:"required,datetime=2006-01-02"`
	Notes        string `json:"notes"`
}

type SafeguardingUpdateRequest struct {
	Title        *string `json:"title"`
	ActivityType *string `json:"activity_type" binding:"omitempty,oneof=training audit awareness assessment"`
	DueDate      *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes"`
}
