package models

import "time"

// Payroll run statuses.
const (
	PayrollStatusDraft     = "draft"
	PayrollStatusSubmitted = "submitted"
	PayrollStatusApproved  = "approved"
	PayrollStatusPaid      = "paid"
)

// PayrollRun represents the payroll_runs table, one row per monthly payroll
// cycle moving through draft -> submitted -> approved -> paid.
type PayrollRun struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	Period      string     `gorm:"column:period" json:"period"` // YYYY-MM
	StaffCount  int        `gorm:"column:staff_count" json:"staff_count"`
	GrossAmount float64    `gorm:"column:gross_amount" json:"gross_amount"`
	Status      string     `gorm:"column:status" json:"status"`
	ApprovedAt  *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	Notes       string     `gorm:"column:notes" json:"notes"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PayrollRun) TableName() string { return "payroll_runs" }

type PayrollCreateRequest struct {
	Period      string  `json:"period" binding:"required,datetime=2006-01"`
	StaffCount  int     `json:"staff_count" binding:"omitempty,gte=0"`
	GrossAmount float64 `json:"gross_amount" binding:"omitempty,gte=0"`
	Notes       string  `json:"notes"`
}

type PayrollUpdateRequest struct {
	Period      *string  `json:"period" binding:"omitempty,datetime=2006-01"`
	StaffCount  *int     `json:"staff_count" binding:"omitempty,gte=0"`
	GrossAmount *float64 `json:"gross_amount" binding:"omitempty,gte=0"`
	Notes       *string  `json:"notes"`
}
