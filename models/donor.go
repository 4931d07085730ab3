package models

import "time"

// Donor statuses.
const (
	DonorStatusActive    = "active"
	DonorStatusInactive  = "inactive"
	DonorStatusPotential = "potential"
)

// Donor represents the donors table (master data).
type Donor struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	Name          string    `gorm:"column:name" json:"name"`
	Type          string    `gorm:"column:type" json:"type"` // government|foundation|corporate|individual|multilateral
	Status        string    `gorm:"column:status" json:"status"`
	ContactPerson string    `gorm:"column:contact_person" json:"contact_person"`
	Email         string    `gorm:"column:email" json:"email"`
	Phone         string    `gorm:"column:phone" json:"phone"`
	Address       string    `gorm:"column:address" json:"address"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string { return "donors" }

type DonorCreateRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=government foundation corporate individual multilateral"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive potential"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

type DonorUpdateRequest struct {
	Name          *string `json:"name"`
	Type          *string `json:"type" binding:"omitempty,oneof=government foundation corporate individual multilateral"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive potential"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}
