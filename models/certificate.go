package models

import "time"

// Certificate statuses.
const (
	CertificateStatusPending = "pending"
	CertificateStatusIssued  = "issued"
	CertificateStatusExpired = "expired"
)

// Certificate represents the certificates table (e.g. project registration or
// completion certificates issued by authorities).
type Certificate struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID   uint       `gorm:"column:project_id" json:"project_id"`
	ProjectName string     `gorm:"column:project_name" json:"project_name"`
	Title       string     `gorm:"column:title" json:"title"`
	IssuedBy    string     `gorm:"column:issued_by" json:"issued_by"`
	IssueDate   string     `gorm:"column:issue_date" json:"issue_date"`
	ExpiryDate  string     `gorm:"column:expiry_date" json:"expiry_date"`
	Status      string     `gorm:"column:status" json:"status"`
	File        Attachment `gorm:"embedded" json:"file"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Certificate) TableName() string { return "certificates" }

type CertificateCreateRequest struct {
	ProjectID  uint   `json:"project_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	IssuedBy   string `json:"issued_by"`
	IssueDate  string `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate string `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" binding:"omitempty,oneof=pending issued expired"`
}

type CertificateUpdateRequest struct {
	Title      *string `json:"title"`
	IssuedBy   *string `json:"issued_by"`
	IssueDate  *string `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate *string `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status" binding:"omitempty,oneof=pending issued expired"`
}
