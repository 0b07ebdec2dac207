package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/api/v1/dto"
	"github.com/lept-reviewer/backend/internal/extract"
	"github.com/lept-reviewer/backend/internal/middleware"
	"github.com/lept-reviewer/backend/internal/service"
)

// DocumentHandler serves reviewer uploads and the shared admin library for
// regular users.
type DocumentHandler struct {
	documentService service.DocumentService
	userService     service.UserService
	maxSizeMB       int
	logger          zerolog.Logger
}

func NewDocumentHandler(documentService service.DocumentService, userService service.UserService, maxSizeMB int, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		userService:     userService,
		maxSizeMB:       maxSizeMB,
		logger:          logger.With().Str("handler", "DocumentHandler").Logger(),
	}
}

func (h *DocumentHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /documents", authMw(http.HandlerFunc(h.upload)))
	mux.Handle("GET /documents", authMw(http.HandlerFunc(h.list)))
	mux.Handle("DELETE /documents/{docId}", authMw(http.HandlerFunc(h.delete)))

	mux.Handle("GET /library", authMw(http.HandlerFunc(h.library)))
	mux.Handle("GET /library/{docId}/download", authMw(http.HandlerFunc(h.download)))
}

// readUpload pulls the "file" part out of a multipart request.
func (h *DocumentHandler) readUpload(w http.ResponseWriter, r *http.Request) (service.DocumentUpload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.maxSizeMB)*1024*1024)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart request: "+err.Error(), http.StatusBadRequest)
		return service.DocumentUpload{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file upload", http.StatusBadRequest)
		return service.DocumentUpload{}, false
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file upload", http.StatusBadRequest)
		return service.DocumentUpload{}, false
	}

	return service.DocumentUpload{
		FileName:    header.Filename,
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Category:    r.FormValue("category"),
	}, true
}

func (h *DocumentHandler) upload(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	up, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	doc, err := h.documentService.UploadUserDocument(r.Context(), email, up)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewDocumentDTO(doc, !extract.IsPlaceholder(doc.ExtractedText)))
}

func (h *DocumentHandler) list(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	docs, err := h.documentService.ListUserDocuments(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]dto.DocumentDTO, 0, len(docs))
	for i := range docs {
		dtos = append(dtos, dto.NewDocumentDTO(&docs[i], !extract.IsPlaceholder(docs[i].ExtractedText)))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *DocumentHandler) delete(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	docID, err := strconv.ParseInt(r.PathValue("docId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	if err := h.documentService.DeleteUserDocument(r.Context(), email, docID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// library lists the shared reviewers visible to users. Only downloadable
// entries are exposed here; the full list is admin-only.
func (h *DocumentHandler) library(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListAdminDocuments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	visible := make([]dto.AdminDocumentDTO, 0, len(docs))
	for i := range docs {
		if docs[i].IsDownloadable {
			visible = append(visible, dto.NewAdminDocumentDTO(&docs[i]))
		}
	}
	writeJSON(w, http.StatusOK, visible)
}

func (h *DocumentHandler) download(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	docID, err := strconv.ParseInt(r.PathValue("docId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	user, err := h.userService.GetUser(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	url, err := h.documentService.AdminDocumentURL(r.Context(), user, docID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DownloadURLDTO{URL: url})
}
