package handler

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/api/v1/dto"
	"github.com/lept-reviewer/backend/internal/config"
	"github.com/lept-reviewer/backend/internal/exam"
	"github.com/lept-reviewer/backend/internal/middleware"
	"github.com/lept-reviewer/backend/internal/service"
)

// PaymentHandler serves the user side of the GCash payment flow.
type PaymentHandler struct {
	paymentService service.PaymentService
	cfg            *config.Config
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, cfg *config.Config, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		cfg:            cfg,
		logger:         logger.With().Str("handler", "PaymentHandler").Logger(),
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /payments/instructions", h.instructions)
	mux.Handle("POST /payments", authMw(http.HandlerFunc(h.submit)))
}

// instructions serves the GCash details and plan pricing; no auth needed so
// the upgrade page can render before login.
func (h *PaymentHandler) instructions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.PaymentInstructionsDTO{
		GCashNumber:      h.cfg.GCashNumber,
		GCashAccountName: h.cfg.GCashAccountName,
		ProPrice:         exam.ProPrice,
		PremiumPrice:     exam.PremiumPrice,
	})
}

func (h *PaymentHandler) submit(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, int64(h.cfg.MaxFileSizeMB)*1024*1024)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart request: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("receipt")
	if err != nil {
		http.Error(w, "Missing receipt upload", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read receipt upload", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentService.Submit(r.Context(), service.PaymentSubmission{
		FullName:      r.FormValue("full_name"),
		Email:         email,
		GCashRef:      r.FormValue("gcash_ref"),
		PlanRequested: r.FormValue("plan"),
		ReceiptName:   header.Filename,
		ReceiptData:   data,
		ContentType:   header.Header.Get("Content-Type"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewPaymentDTO(payment))
}
