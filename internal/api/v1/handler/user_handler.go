package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/api/v1/dto"
	"github.com/lept-reviewer/backend/internal/middleware"
	"github.com/lept-reviewer/backend/internal/service"
)

// UserHandler serves the authenticated user's own account data.
type UserHandler struct {
	userService    service.UserService
	paymentService service.PaymentService
	logger         zerolog.Logger
}

func NewUserHandler(userService service.UserService, paymentService service.PaymentService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService:    userService,
		paymentService: paymentService,
		logger:         logger.With().Str("handler", "UserHandler").Logger(),
	}
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /me", authMw(http.HandlerFunc(h.me)))
	mux.Handle("GET /me/logs", authMw(http.HandlerFunc(h.logs)))
	mux.Handle("GET /me/payments", authMw(http.HandlerFunc(h.payments)))
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
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

	writeJSON(w, http.StatusOK, struct {
		User   dto.UserDTO       `json:"user"`
		Status dto.UserStatusDTO `json:"status"`
	}{
		User:   dto.NewUserDTO(user),
		Status: dto.NewUserStatusDTO(h.userService.Status(user)),
	})
}

func (h *UserHandler) logs(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	logs, err := h.userService.UserLogs(r.Context(), email, 100)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUsageLogDTOs(logs))
}

func (h *UserHandler) payments(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.paymentService.UserSummary(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPaymentSummaryDTO(summary))
}
