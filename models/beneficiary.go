package models

import "time"

// Beneficiary verification statuses.
const (
	BeneficiaryStatusPending  = "pending"
	BeneficiaryStatusVerified = "verified"
	BeneficiaryStatusRejected = "rejected"
)

// Beneficiary represents the beneficiaries table. Family demographics are
// recorded per sex and age bracket; FamilySize is entered independently and is
// not reconciled against the bracket sum (see BeneficiaryResponse).
type Beneficiary struct {
	ID            uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID     uint       `gorm:"column:project_id" json:"project_id"`
	ProjectName   string     `gorm:"column:project_name" json:"project_name"`
	FullName      string     `gorm:"column:full_name" json:"full_name"`
	Sex           string     `gorm:"column:sex" json:"sex"` // female|male
	Phone         string     `gorm:"column:phone" json:"phone"`
	Province      string     `gorm:"column:province" json:"province"`
	District      string     `gorm:"column:district" json:"district"`
	Village       string     `gorm:"column:village" json:"village"`
	FamilySize    int        `gorm:"column:family_size" json:"family_size"`
	FemaleUnder17 int        `gorm:"column:female_under_17" json:"female_under_17"`
	FemaleOver18  int        `gorm:"column:female_over_18" json:"female_over_18"`
	MaleUnder18   int        `gorm:"column:male_under_18" json:"male_under_18"`
	MaleOver18    int        `gorm:"column:male_over_18" json:"male_over_18"`
	Status        string     `gorm:"column:status" json:"status"`
	NIDFile       Attachment `gorm:"embedded;embeddedPrefix:nid_" json:"nid_file"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Beneficiary) TableName() string { return "beneficiaries" }

// FamilyBreakdownSum returns the total of the demographic brackets. It may
// legitimately differ from FamilySize; the API exposes both so clients can
// surface the mismatch.
func (b *Beneficiary) FamilyBreakdownSum() int {
	return b.FemaleUnder17 + b.FemaleOver18 + b.MaleUnder18 + b.MaleOver18
}

type BeneficiaryResponse struct {
	Beneficiary
	FamilyBreakdownSum int `json:"family_breakdown_sum"`
}

func (b *Beneficiary) ToResponse() BeneficiaryResponse {
	return BeneficiaryResponse{Beneficiary: *b, FamilyBreakdownSum: b.FamilyBreakdownSum()}
}

type BeneficiaryCreateRequest struct {
	ProjectID     uint   `json:"project_id" binding:"required"`
	FullName      string `json:"full_name" binding:"required"`
	Sex           string `json:"sex" binding:"omitempty,oneof=female male"`
	Phone         string `json:"phone"`
	Province      string `json:"province"`
	District      string `json:"district"`
	Village       string `json:"village"`
	FamilySize    int    `json:"family_size" binding:"omitempty,gte=0"`
	FemaleUnder17 int    `json:"female_under_17" binding:"omitempty,gte=0"`
	FemaleOver18  int    `json:"female_over_18" binding:"omitempty,gte=0"`
	MaleUnder18   int    `json:"male_under_18" binding:"omitempty,gte=0"`
	MaleOver18    int    `json:"male_over_18" binding:"omitempty,gte=0"`
}

type BeneficiaryUpdateRequest struct {
	FullName      *string `json:"full_name"`
	Sex           *string `json:"sex" binding:"omitempty,oneof=female male"`
	Phone         *string `json:"phone"`
	Province      *string `json:"province"`
	District      *string `json:"district"`
	Village       *string `json:"village"`
	FamilySize    *int    `json:"family_size" binding:"omitempty,gte=0"`
	FemaleUnder17 *int    `json:"female_under_17" binding:"omitempty,gte=0"`
	FemaleOver18  *int    `json:"female_over_18" binding:"omitempty,gte=0"`
	MaleUnder18   *int    `json:"male_under_18" binding:"omitempty,gte=0"`
	MaleOver18    *int    `json:"male_over_18" binding:"omitempty,gte=0"`
}
