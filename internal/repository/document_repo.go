package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lept-reviewer/backend/internal/model"
)

// DocumentRepository defines DB operations for user and admin documents.
type DocumentRepository interface {
	SaveUserDocument(ctx context.Context, d *model.UserDocument) error
	// ListUserDocuments returns the user's non-deleted documents, newest first.
	ListUserDocuments(ctx context.Context, email string) ([]model.UserDocument, error)
	GetUserDocument(ctx context.Context, id int64, email string) (*model.UserDocument, error)
	// DeleteUserDocument soft-deletes; returns false when no row matched.
	DeleteUserDocument(ctx context.Context, id int64, email string) (bool, error)

	SaveAdminDocument(ctx context.Context, d *model.AdminDocument) error
	ListAdminDocuments(ctx context.Context) ([]model.AdminDocument, error)
	GetAdminDocument(ctx context.Context, id int64) (*model.AdminDocument, error)
	SetAdminDocumentDownloadable(ctx context.Context, id int64, downloadable bool) error
	DeleteAdminDocument(ctx context.Context, id int64) (bool, error)
}

type documentRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentRepo(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepo{pool: pool}
}

const userDocColumns = `doc_id, email, file_name, file_type, storage_key, extracted_text, is_deleted, uploaded_at`

func (r *documentRepo) SaveUserDocument(ctx context.Context, d *model.UserDocument) error {
	query := `INSERT INTO user_documents (email, file_name, file_type, storage_key, extracted_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING doc_id, uploaded_at`
	err := r.pool.QueryRow(ctx, query, d.Email, d.FileName, d.FileType, d.StorageKey, d.ExtractedText).
		Scan(&d.ID, &d.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to save document for %s: %w", d.Email, err)
	}
	return nil
}

func (r *documentRepo) ListUserDocuments(ctx context.Context, email string) ([]model.UserDocument, error) {
	query := `SELECT ` + userDocColumns + ` FROM user_documents
		WHERE email = $1 AND is_deleted = FALSE
		ORDER BY uploaded_at DESC`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents for %s: %w", email, err)
	}
	defer rows.Close()

	docs := []model.UserDocument{}
	for rows.Next() {
		var d model.UserDocument
		if err := rows.Scan(&d.ID, &d.Email, &d.FileName, &d.FileType, &d.StorageKey,
			&d.ExtractedText, &d.IsDeleted, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) GetUserDocument(ctx context.Context, id int64, email string) (*model.UserDocument, error) {
	query := `SELECT ` + userDocColumns + ` FROM user_documents
		WHERE doc_id = $1 AND email = $2 AND is_deleted = FALSE
		LIMIT 1`
	var d model.UserDocument
	err := r.pool.QueryRow(ctx, query, id, email).Scan(&d.ID, &d.Email, &d.FileName, &d.FileType,
		&d.StorageKey, &d.ExtractedText, &d.IsDeleted, &d.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document %d: %w", id, err)
	}
	return &d, nil
}

func (r *documentRepo) DeleteUserDocument(ctx context.Context, id int64, email string) (bool, error) {
	query := `UPDATE user_documents SET is_deleted = TRUE WHERE doc_id = $1 AND email = $2`
	tag, err := r.pool.Exec(ctx, query, id, email)
	if err != nil {
		return false, fmt.Errorf("failed to delete document %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

const adminDocColumns = `admin_doc_id, file_name, file_type, storage_key, is_downloadable,
	uploaded_by, category, extracted_text, is_deleted, uploaded_at`

func (r *documentRepo) SaveAdminDocument(ctx context.Context, d *model.AdminDocument) error {
	query := `INSERT INTO admin_documents (file_name, file_type, storage_key, is_downloadable, uploaded_by, category, extracted_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING admin_doc_id, uploaded_at`
	err := r.pool.QueryRow(ctx, query, d.FileName, d.FileType, d.StorageKey,
		d.IsDownloadable, d.UploadedBy, d.Category, d.ExtractedText).
		Scan(&d.ID, &d.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to save admin document %s: %w", d.FileName, err)
	}
	return nil
}

func (r *documentRepo) ListAdminDocuments(ctx context.Context) ([]model.AdminDocument, error) {
	query := `SELECT ` + adminDocColumns + ` FROM admin_documents
		WHERE is_deleted = FALSE
		ORDER BY uploaded_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin documents: %w", err)
	}
	defer rows.Close()

	docs := []model.AdminDocument{}
	for rows.Next() {
		var d model.AdminDocument
		if err := rows.Scan(&d.ID, &d.FileName, &d.FileType, &d.StorageKey, &d.IsDownloadable,
			&d.UploadedBy, &d.Category, &d.ExtractedText, &d.IsDeleted, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) GetAdminDocument(ctx context.Context, id int64) (*model.AdminDocument, error) {
	query := `SELECT ` + adminDocColumns + ` FROM admin_documents
		WHERE admin_doc_id = $1 AND is_deleted = FALSE
		LIMIT 1`
	var d model.AdminDocument
	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.FileName, &d.FileType, &d.StorageKey,
		&d.IsDownloadable, &d.UploadedBy, &d.Category, &d.ExtractedText, &d.IsDeleted, &d.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query admin document %d: %w", id, err)
	}
	return &d, nil
}

func (r *documentRepo) SetAdminDocumentDownloadable(ctx context.Context, id int64, downloadable bool) error {
	query := `UPDATE admin_documents SET is_downloadable = $1 WHERE admin_doc_id = $2`
	if _, err := r.pool.Exec(ctx, query, downloadable, id); err != nil {
		return fmt.Errorf("failed to update admin document %d: %w", id, err)
	}
	return nil
}

func (r *documentRepo) DeleteAdminDocument(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE admin_documents SET is_deleted = TRUE WHERE admin_doc_id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete admin document %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
