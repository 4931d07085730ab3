package models

import "time"

// Recruitment statuses.
const (
	RecruitmentStatusOpen         = "open"
	RecruitmentStatusInterviewing = "interviewing"
	RecruitmentStatusOffered      = "offered"
	RecruitmentStatusHired        = "hired"
	RecruitmentStatusClosed       = "closed"
)

// Recruitment represents the recruitments table (open positions tracked by HR).
type Recruitment struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	PositionTitle  string    `gorm:"column:position_title" json:"position_title"`
	Department     string    `gorm:"column:department" json:"department"`
	PostedDate     string    `gorm:"column:posted_date" json:"posted_date"`
	ClosingDate    string    `gorm:"column:closing_date" json:"closing_date"`
	Status         string    `gorm:"column:status" json:"status"`
	CandidateCount int       `gorm:"column:candidate_count" json:"candidate_count"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Recruitment) TableName() string { return "recruitments" }

type RecruitmentCreateRequest struct {
	PositionTitle  string `json:"position_title" binding:"required"`
	Department     string `json:"department"`
	PostedDate     string `json:"posted_date" binding:"omitempty,datetime=2006-01-02"`
	ClosingDate    string `json:"closing_date" binding:"omitempty,datetime=2006-01-02"`
	Status         string `json:"status" binding:"omitempty,oneof=open interviewing offered hired closed"`
	CandidateCount int    `json:"candidate_count" binding:"omitempty,gte=0"`
}

type RecruitmentUpdateRequest struct {
	PositionTitle  *string `json:"position_title"`
	Department     *string `json:"department"`
	PostedDate     *string `json:"posted_date" binding:"omitempty,datetime=2006-01-02"`
	ClosingDate    *string `json:"closing_date" binding:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" binding:"omitempty,oneof=open interviewing offered hired closed"`
	CandidateCount *int    `json:"candidate_count" binding:"omitempty,gte=0"`
}
