package model

import "time"

// UserDocument is a reviewer file uploaded by a user. Deletion is a soft
// flag; rows are only physically removed by the user-deletion cascade.
type UserDocument struct {
	ID            int64     `db:"doc_id" json:"doc_id"`
	Email         string    `db:"email" json:"email"`
	FileName      string    `db:"file_name" json:"file_name"`
	FileType      string    `db:"file_type" json:"file_type"`
	StorageKey    string    `db:"storage_key" json:"storage_key"`
	ExtractedText string    `db:"extracted_text" json:"-"`
	IsDeleted     bool      `db:"is_deleted" json:"-"`
	UploadedAt    time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// AdminDocument is a reference file uploaded by an administrator. When
// downloadable it is visible to PRO/PREMIUM users, and its extracted text
// can seed AI question generation.
type AdminDocument struct {
	ID             int64     `db:"admin_doc_id" json:"admin_doc_id"`
	FileName       string    `db:"file_name" json:"file_name"`
	FileType       string    `db:"file_type" json:"file_type"`
	StorageKey     string    `db:"storage_key" json:"storage_key"`
	IsDownloadable bool      `db:"is_downloadable" json:"is_downloadable"`
	UploadedBy     string    `db:"uploaded_by" json:"uploaded_by"`
	Category       string    `db:"category" json:"category"`
	ExtractedText  string    `db:"extracted_text" json:"-"`
	IsDeleted      bool      `db:"is_deleted" json:"-"`
	UploadedAt     time.Time `db:"uploaded_at" json:"uploaded_at"`
}
