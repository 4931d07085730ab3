package models

import "time"

// Attachment holds uploaded-file metadata stored alongside a record.
// Only metadata is persisted; the bytes live outside the database.
type Attachment struct {
	FileName   string     `gorm:"column:file_name" json:"file_name,omitempty"`
	StoredName string     `gorm:"column:stored_name" json:"stored_name,omitempty"`
	MimeType   string     `gorm:"column:mime_type" json:"mime_type,omitempty"`
	FileSize   int64      `gorm:"column:file_size" json:"file_size,omitempty"`
	UploadedAt *time.Time `gorm:"column:uploaded_at" json:"uploaded_at,omitempty"`
}

// AttachmentRequest carries the metadata of an uploaded file. The bytes are
// handled by an external file service and never pass through this API.
type AttachmentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
	FileSize int64  `json:"file_size" binding:"required,gt=0"`
}

// HasFile reports whether any file metadata has been recorded.
func (a Attachment) HasFile() bool {
	return a.FileName != "" || a.StoredName != ""
}

// IsValidDocumentType checks the MIME type against the accepted document formats.
func (a Attachment) IsValidDocumentType() bool {
	validTypes := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"image/jpeg",
		"image/png",
	}
	for _, validType := range validTypes {
		if a.MimeType == validType {
			return true
		}
	}
	return false
}

// FileSizeInMB returns the attachment size in megabytes.
func (a Attachment) FileSizeInMB() float64 {
	return float64(a.FileSize) / (1024 * 1024)
}
