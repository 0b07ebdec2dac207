package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/cache"
	"github.com/lept-reviewer/backend/internal/extract"
	"github.com/lept-reviewer/backend/internal/model"
	"github.com/lept-reviewer/backend/internal/repository"
	"github.com/lept-reviewer/backend/internal/util"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrPlanRequired     = errors.New("this feature requires a PRO or PREMIUM plan")
)

// downloadURLTTL is how long presigned reviewer download links stay valid.
const downloadURLTTL = 15 * time.Minute

// DocumentUpload is an incoming reviewer file.
type DocumentUpload struct {
	FileName    string
	Data        []byte
	ContentType string
	Category    string
}

// DocumentService manages reviewer uploads: per-user documents and the
// admin-curated shared library.
type DocumentService interface {
	// UploadUserDocument stores the file and extracts its text for
	// generation. Extraction may yield only a placeholder; the upload
	// still succeeds.
	UploadUserDocument(ctx context.Context, email string, up DocumentUpload) (*model.UserDocument, error)
	ListUserDocuments(ctx context.Context, email string) ([]model.UserDocument, error)
	// UserDocumentText returns the extracted text of one of the user's
	// documents for prompt building.
	UserDocumentText(ctx context.Context, email string, docID int64) (string, error)
	DeleteUserDocument(ctx context.Context, email string, docID int64) error

	UploadAdminDocument(ctx context.Context, adminUser string, up DocumentUpload, downloadable bool) (*model.AdminDocument, error)
	ListAdminDocuments(ctx context.Context) ([]model.AdminDocument, error)
	// AdminDocumentURL returns a presigned download link for a shared
	// reviewer. Only downloadable documents are served, and only to
	// PRO/PREMIUM users.
	AdminDocumentURL(ctx context.Context, user *model.User, docID int64) (string, error)
	// AdminDocumentText is the admin-doc counterpart of UserDocumentText,
	// gated the same way as downloads.
	AdminDocumentText(ctx context.Context, user *model.User, docID int64) (string, error)
	SetAdminDocumentDownloadable(ctx context.Context, adminUser string, docID int64, downloadable bool) error
	DeleteAdminDocument(ctx context.Context, adminUser string, docID int64) error
}

type documentService struct {
	docRepo   repository.DocumentRepository
	usageRepo repository.UsageRepository
	storage   StorageService
	cache     *cache.Cache
	maxSizeMB int
	docLogger zerolog.Logger
}

func NewDocumentService(
	docRepo repository.DocumentRepository,
	usageRepo repository.UsageRepository,
	storage StorageService,
	c *cache.Cache,
	maxSizeMB int,
	logger zerolog.Logger,
) DocumentService {
	return &documentService{
		docRepo:   docRepo,
		usageRepo: usageRepo,
		storage:   storage,
		cache:     c,
		maxSizeMB: maxSizeMB,
		docLogger: logger.With().Str("service", "DocumentService").Logger(),
	}
}

func (s *documentService) UploadUserDocument(ctx context.Context, email string, up DocumentUpload) (*model.UserDocument, error) {
	if ok, msg := util.ValidateFile(up.FileName, int64(len(up.Data)), util.ReviewerExtensions, s.maxSizeMB); !ok {
		return nil, &ValidationError{Message: msg}
	}
	email = util.NormalizeEmail(email)

	text, err := extract.FromFile(up.FileName, up.Data)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	storageKey := fmt.Sprintf("documents/%s/%s%s", email, uuid.NewString(), util.FileExtension(up.FileName))
	if err := s.storage.Upload(ctx, storageKey, up.Data, up.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &model.UserDocument{
		Email:         email,
		FileName:      up.FileName,
		FileType:      util.FileExtension(up.FileName),
		StorageKey:    storageKey,
		ExtractedText: text,
	}
	if err := s.docRepo.SaveUserDocument(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, cache.UserDocsKey(email)); err != nil {
		s.docLogger.Warn().Err(err).Str("email", email).Msg("Failed to invalidate documents cache")
	}
	s.docLogger.Info().
		Str("email", email).
		Str("file", up.FileName).
		Bool("placeholder_text", extract.IsPlaceholder(text)).
		Msg("Document uploaded")
	return doc, nil
}

func (s *documentService) ListUserDocuments(ctx context.Context, email string) ([]model.UserDocument, error) {
	email = util.NormalizeEmail(email)

	var cached []model.UserDocument
	found, err := s.cache.Get(ctx, cache.UserDocsKey(email), &cached)
	if err == nil && found {
		return cached, nil
	}

	docs, err := s.docRepo.ListUserDocuments(ctx, email)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cache.Set(ctx, cache.UserDocsKey(email), docs, cache.UserDocsTTL); cacheErr != nil {
		s.docLogger.Warn().Err(cacheErr).Str("email", email).Msg("Failed to cache documents")
	}
	return docs, nil
}

func (s *documentService) UserDocumentText(ctx context.Context, email string, docID int64) (string, error) {
	doc, err := s.docRepo.GetUserDocument(ctx, docID, util.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", ErrDocumentNotFound
	}
	return doc.ExtractedText, nil
}

func (s *documentService) DeleteUserDocument(ctx context.Context, email string, docID int64) error {
	email = util.NormalizeEmail(email)

	doc, err := s.docRepo.GetUserDocument(ctx, docID, email)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	matched, err := s.docRepo.DeleteUserDocument(ctx, docID, email)
	if err != nil {
		return err
	}
	if !matched {
		return ErrDocumentNotFound
	}

	// Deletion is soft in the DB; the object itself is removed so storage
	// does not accumulate. A failed object delete is logged, not surfaced.
	if err := s.storage.Delete(ctx, doc.StorageKey); err != nil {
		s.docLogger.Warn().Err(err).Str("key", doc.StorageKey).Msg("Failed to delete stored object")
	}
	if err := s.cache.Delete(ctx, cache.UserDocsKey(email)); err != nil {
		s.docLogger.Warn().Err(err).Str("email", email).Msg("Failed to invalidate documents cache")
	}
	return nil
}

func (s *documentService) UploadAdminDocument(ctx context.Context, adminUser string, up DocumentUpload, downloadable bool) (*model.AdminDocument, error) {
	if ok, msg := util.ValidateFile(up.FileName, int64(len(up.Data)), util.ReviewerExtensions, s.maxSizeMB); !ok {
		return nil, &ValidationError{Message: msg}
	}

	text, err := extract.FromFile(up.FileName, up.Data)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	storageKey := fmt.Sprintf("admin-documents/%s%s", uuid.NewString(), util.FileExtension(up.FileName))
	if err := s.storage.Upload(ctx, storageKey, up.Data, up.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	category := up.Category
	if category == "" {
		category = "General"
	}
	doc := &model.AdminDocument{
		FileName:       up.FileName,
		FileType:       util.FileExtension(up.FileName),
		StorageKey:     storageKey,
		IsDownloadable: downloadable,
		UploadedBy:     adminUser,
		Category:       category,
		ExtractedText:  text,
	}
	if err := s.docRepo.SaveAdminDocument(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateAdminDocs(ctx); err != nil {
		s.docLogger.Warn().Err(err).Msg("Failed to invalidate admin documents cache")
	}
	s.audit(ctx, adminUser, model.ActionUploadAdminDoc, up.FileName)
	return doc, nil
}

func (s *documentService) ListAdminDocuments(ctx context.Context) ([]model.AdminDocument, error) {
	var cached []model.AdminDocument
	found, err := s.cache.Get(ctx, cache.AdminDocsKey(), &cached)
	if err == nil && found {
		return cached, nil
	}

	docs, err := s.docRepo.ListAdminDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cache.Set(ctx, cache.AdminDocsKey(), docs, cache.AdminDocsTTL); cacheErr != nil {
		s.docLogger.Warn().Err(cacheErr).Msg("Failed to cache admin documents")
	}
	return docs, nil
}

func (s *documentService) AdminDocumentURL(ctx context.Context, user *model.User, docID int64) (string, error) {
	doc, err := s.accessibleAdminDocument(ctx, user, docID)
	if err != nil {
		return "", err
	}
	return s.storage.PresignedGetURL(ctx, doc.StorageKey, downloadURLTTL)
}

func (s *documentService) AdminDocumentText(ctx context.Context, user *model.User, docID int64) (string, error) {
	doc, err := s.accessibleAdminDocument(ctx, user, docID)
	if err != nil {
		return "", err
	}
	return doc.ExtractedText, nil
}

func (s *documentService) accessibleAdminDocument(ctx context.Context, user *model.User, docID int64) (*model.AdminDocument, error) {
	if user.PlanType != model.PlanPro && !user.PremiumActive(time.Now()) {
		return nil, ErrPlanRequired
	}

	doc, err := s.docRepo.GetAdminDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc == nil || !doc.IsDownloadable {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

func (s *documentService) SetAdminDocumentDownloadable(ctx context.Context, adminUser string, docID int64, downloadable bool) error {
	doc, err := s.docRepo.GetAdminDocument(ctx, docID)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	if err := s.docRepo.SetAdminDocumentDownloadable(ctx, docID, downloadable); err != nil {
		return err
	}
	if err := s.cache.InvalidateAdminDocs(ctx); err != nil {
		s.docLogger.Warn().Err(err).Msg("Failed to invalidate admin documents cache")
	}
	s.audit(ctx, adminUser, model.ActionToggleAdminDoc, fmt.Sprintf("%s downloadable=%t", doc.FileName, downloadable))
	return nil
}

func (s *documentService) DeleteAdminDocument(ctx context.Context, adminUser string, docID int64) error {
	doc, err := s.docRepo.GetAdminDocument(ctx, docID)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	matched, err := s.docRepo.DeleteAdminDocument(ctx, docID)
	if err != nil {
		return err
	}
	if !matched {
		return ErrDocumentNotFound
	}

	if err := s.storage.Delete(ctx, doc.StorageKey); err != nil {
		s.docLogger.Warn().Err(err).Str("key", doc.StorageKey).Msg("Failed to delete stored object")
	}
	if err := s.cache.InvalidateAdminDocs(ctx); err != nil {
		s.docLogger.Warn().Err(err).Msg("Failed to invalidate admin documents cache")
	}
	s.audit(ctx, adminUser, model.ActionDeleteAdminDoc, doc.FileName)
	return nil
}

func (s *documentService) audit(ctx context.Context, adminUser, actionType, details string) {
	if err := s.usageRepo.LogAdminAction(ctx, adminUser, actionType, details); err != nil {
		s.docLogger.Warn().Err(err).Str("action", actionType).Msg("Failed to log admin action")
	}
}
