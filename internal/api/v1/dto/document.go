package dto

import (
	"time"

	"github.com/lept-reviewer/backend/internal/model"
)

// DocumentDTO is one of the caller's uploaded reviewer files.
type DocumentDTO struct {
	DocID      int64     `json:"doc_id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
	// HasText reports whether extraction produced usable text for AI
	// generation (as opposed to a placeholder).
	HasText bool `json:"has_text"`
}

func NewDocumentDTO(d *model.UserDocument, hasText bool) DocumentDTO {
	return DocumentDTO{
		DocID:      d.ID,
		FileName:   d.FileName,
		FileType:   d.FileType,
		UploadedAt: d.UploadedAt,
		HasText:    hasText,
	}
}

// AdminDocumentDTO is a shared reviewer file from the admin library.
type AdminDocumentDTO struct {
	AdminDocID     int64     `json:"admin_doc_id"`
	FileName       string    `json:"file_name"`
	FileType       string    `json:"file_type"`
	Category       string    `json:"category"`
	IsDownloadable bool      `json:"is_downloadable"`
	UploadedBy     string    `json:"uploaded_by"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

func NewAdminDocumentDTO(d *model.AdminDocument) AdminDocumentDTO {
	return AdminDocumentDTO{
		AdminDocID:     d.ID,
		FileName:       d.FileName,
		FileType:       d.FileType,
		Category:       d.Category,
		IsDownloadable: d.IsDownloadable,
		UploadedBy:     d.UploadedBy,
		UploadedAt:     d.UploadedAt,
	}
}

func NewAdminDocumentDTOs(docs []model.AdminDocument) []AdminDocumentDTO {
	dtos := make([]AdminDocumentDTO, 0, len(docs))
	for i := range docs {
		dtos = append(dtos, NewAdminDocumentDTO(&docs[i]))
	}
	return dtos
}

// DownloadURLDTO carries a short-lived presigned download link.
type DownloadURLDTO struct {
	URL string `json:"url"`
}

// SetDownloadableDTO toggles whether a shared reviewer is downloadable.
type SetDownloadableDTO struct {
	Downloadable bool `json:"downloadable"`
}
