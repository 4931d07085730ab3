package models

import "time"

// Document statuses.
const (
	DocumentStatusDraft    = "draft"
	DocumentStatusFinal    = "final"
	DocumentStatusArchived = "archived"
)

// Document represents the documents table (project document register).
type Document struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID   uint       `gorm:"column:project_id" json:"project_id"`
	ProjectName string     `gorm:"column:project_name" json:"project_name"`
	Title       string     `gorm:"column:title" json:"title"`
	Category    string     `gorm:"column:category" json:"category"` // agreement|proposal|budget|correspondence|other
	UploadDate  string     `gorm:"column:upload_date" json:"upload_date"`
	Status      string     `gorm:"column:status" json:"status"`
	File        Attachment `gorm:"embedded" json:"file"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }

type DocumentCreateRequest struct {
	ProjectID  uint   `json:"project_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Category   string `json:"category" binding:"omitempty,oneof=agreement proposal budget correspondence other"`
	UploadDate string `json:"upload_date" binding:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" binding:"omitempty,oneof=draft final archived"`
}

type DocumentUpdateRequest struct {
	Title      *string `json:"title"`
	Category   *string `json:"category" binding:"omitempty,oneof=agreement proposal budget correspondence other"`
	UploadDate *string `json:"upload_date" binding:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status" binding:"omitempty,oneof=draft final archived"`
}
