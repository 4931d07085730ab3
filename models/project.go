package models

import "time"

// Project lifecycle statuses.
const (
	ProjectStatusNotStarted = "not_started"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusAmended    = "amended"
	ProjectStatusCancelled  = "cancelled"
)

// Project represents the projects table. ProjectCode is the unique business
// key; DonorName is a materialized label copied from the donor at write time.
type Project struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	ProjectCode  string    `gorm:"column:project_code" json:"project_code"`
	DonorID      uint      `gorm:"column:donor_id" json:"donor_id"`
	DonorName    string    `gorm:"column:donor_name" json:"donor_name"`
	Name         string    `gorm:"column:name" json:"name"`
	Status       string    `gorm:"column:status" json:"status"`
	StartDate    string    `gorm:"column:start_date" json:"start_date"` // YYYY-MM-DD
	EndDate      string    `gorm:"column:end_date" json:"end_date"`
	Budget       float64   `gorm:"column:budget" json:"budget"`
	ThematicArea string    `gorm:"column:thematic_area" json:"thematic_area"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

type ProjectCreateRequest struct {
	ProjectCode  string  `json:"project_code" binding:"required"`
	DonorID      uint    `json:"donor_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Status       string  `json:"status" binding:"omitempty,oneof=not_started in_progress completed amended cancelled"`
	StartDate    string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Budget       float64 `json:"budget" binding:"omitempty,gte=0"`
	ThematicArea string  `json:"thematic_area"`
}

type ProjectUpdateRequest struct {
	ProjectCode  *string  `json:"project_code"`
	DonorID      *uint    `json:"donor_id"`
	Name         *string  `json:"name"`
	Status       *string  `json:"status" binding:"omitempty,oneof=not_started in_progress completed amended cancelled"`
	StartDate    *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Budget       *float64 `json:"budget" binding:"omitempty,gte=0"`
	ThematicArea *string  `json:"thematic_area"`
}

// IsTerminal reports whether the project has left its active lifecycle.
func (p *Project) IsTerminal() bool {
	return p.Status == ProjectStatusCompleted || p.Status == ProjectStatusCancelled
}
