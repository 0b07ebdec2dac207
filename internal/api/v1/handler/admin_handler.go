package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/api/v1/dto"
	"github.com/lept-reviewer/backend/internal/middleware"
	"github.com/lept-reviewer/backend/internal/model"
	"github.com/lept-reviewer/backend/internal/service"
)

const adminListLimit = 200

// AdminHandler serves the admin panel: user management, payment decisions,
// the shared reviewer library, and the audit trail.
type AdminHandler struct {
	userService     service.UserService
	paymentService  service.PaymentService
	documentService service.DocumentService
	validate        *validator.Validate
	maxSizeMB       int
	logger          zerolog.Logger
}

func NewAdminHandler(
	userService service.UserService,
	paymentService service.PaymentService,
	documentService service.DocumentService,
	validate *validator.Validate,
	maxSizeMB int,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		paymentService:  paymentService,
		documentService: documentService,
		validate:        validate,
		maxSizeMB:       maxSizeMB,
		logger:          logger.With().Str("handler", "AdminHandler").Logger(),
	}
}

func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux, adminMw func(http.Handler) http.Handler) {
	mux.Handle("GET /admin/users", adminMw(http.HandlerFunc(h.listUsers)))
	mux.Handle("PUT /admin/users/{email}/blocked", adminMw(http.HandlerFunc(h.setBlocked)))
	mux.Handle("PUT /admin/users/{email}/quota", adminMw(http.HandlerFunc(h.adjustQuota)))
	mux.Handle("PUT /admin/users/{email}/plan", adminMw(http.HandlerFunc(h.changePlan)))
	mux.Handle("DELETE /admin/users/{email}", adminMw(http.HandlerFunc(h.deleteUser)))

	mux.Handle("GET /admin/payments", adminMw(http.HandlerFunc(h.listPayments)))
	mux.Handle("GET /admin/payments/pending", adminMw(http.HandlerFunc(h.listPendingPayments)))
	mux.Handle("GET /admin/payments/{paymentId}/receipt", adminMw(http.HandlerFunc(h.receiptURL)))
	mux.Handle("POST /admin/payments/{paymentId}/approve", adminMw(http.HandlerFunc(h.approvePayment)))
	mux.Handle("POST /admin/payments/{paymentId}/reject", adminMw(http.HandlerFunc(h.rejectPayment)))

	mux.Handle("POST /admin/documents", adminMw(http.HandlerFunc(h.uploadDocument)))
	mux.Handle("GET /admin/documents", adminMw(http.HandlerFunc(h.listDocuments)))
	mux.Handle("PUT /admin/documents/{docId}/downloadable", adminMw(http.HandlerFunc(h.setDownloadable)))
	mux.Handle("DELETE /admin/documents/{docId}", adminMw(http.HandlerFunc(h.deleteDocument)))

	mux.Handle("GET /admin/logs", adminMw(http.HandlerFunc(h.listLogs)))
	mux.Handle("GET /admin/actions", adminMw(http.HandlerFunc(h.listActions)))
	mux.Handle("GET /admin/stats", adminMw(http.HandlerFunc(h.stats)))
}

// adminUser returns the acting admin's identity for the audit trail.
func adminUser(r *http.Request) string {
	if email := middleware.EmailFromContext(r.Context()); email != "" {
		return email
	}
	return "admin"
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context(), adminListLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, dto.NewUserDTO(&users[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *AdminHandler) setBlocked(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBlockedDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.SetUserBlocked(r.Context(), adminUser(r), r.PathValue("email"), req.Blocked); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) adjustQuota(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustQuotaDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.AdjustQuota(r.Context(), adminUser(r), r.PathValue("email"), req.Quota); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) changePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.ChangePlan(r.Context(), adminUser(r), r.PathValue("email"), req.Plan); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), adminUser(r), r.PathValue("email")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListAll(r.Context(), adminListLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPaymentDTOs(payments))
}

func (h *AdminHandler) listPendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPending(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPaymentDTOs(payments))
}

func paymentID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("paymentId"), 10, 64)
	return id, err == nil
}

func (h *AdminHandler) receiptURL(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentID(r)
	if !ok {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	url, err := h.paymentService.ReceiptURL(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ReceiptURLDTO{URL: url})
}

func (h *AdminHandler) approvePayment(w http.ResponseWriter, r *http.Request) {
	h.decidePayment(w, r, true)
}

func (h *AdminHandler) rejectPayment(w http.ResponseWriter, r *http.Request) {
	h.decidePayment(w, r, false)
}

func (h *AdminHandler) decidePayment(w http.ResponseWriter, r *http.Request, approve bool) {
	id, ok := paymentID(r)
	if !ok {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	// Notes are optional; an empty body means no notes.
	var req dto.PaymentDecisionDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	var (
		payment *model.Payment
		err     error
	)
	if approve {
		payment, err = h.paymentService.Approve(r.Context(), adminUser(r), id, req.Notes)
	} else {
		payment, err = h.paymentService.Reject(r.Context(), adminUser(r), id, req.Notes)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPaymentDTO(payment))
}

func (h *AdminHandler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.maxSizeMB)*1024*1024)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart request: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file upload", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file upload", http.StatusBadRequest)
		return
	}

	downloadable := r.FormValue("downloadable") == "true"
	doc, err := h.documentService.UploadAdminDocument(r.Context(), adminUser(r), service.DocumentUpload{
		FileName:    header.Filename,
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Category:    r.FormValue("category"),
	}, downloadable)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewAdminDocumentDTO(doc))
}

func (h *AdminHandler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListAdminDocuments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewAdminDocumentDTOs(docs))
}

func (h *AdminHandler) setDownloadable(w http.ResponseWriter, r *http.Request) {
	docID, err := strconv.ParseInt(r.PathValue("docId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	var req dto.SetDownloadableDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.documentService.SetAdminDocumentDownloadable(r.Context(), adminUser(r), docID, req.Downloadable); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := strconv.ParseInt(r.PathValue("docId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	if err := h.documentService.DeleteAdminDocument(r.Context(), adminUser(r), docID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) listLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.userService.AllLogs(r.Context(), adminListLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUsageLogDTOs(logs))
}

func (h *AdminHandler) listActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.userService.AdminActions(r.Context(), adminListLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewAdminActionDTOs(actions))
}

func (h *AdminHandler) stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.userService.PlanCounts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	pending, err := h.paymentService.ListPending(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	writeJSON(w, http.StatusOK, dto.AdminStatsDTO{
		TotalUsers:      total,
		FreeUsers:       counts[model.PlanFree],
		ProUsers:        counts[model.PlanPro],
		PremiumUsers:    counts[model.PlanPremium],
		PendingPayments: len(pending),
	})
}
