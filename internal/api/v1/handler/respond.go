package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lept-reviewer/backend/internal/repository"
	"github.com/lept-reviewer/backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps service-layer errors onto HTTP statuses. Unmatched
// errors become opaque 500s so internals never leak to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Message, http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, service.ErrUserBlocked), errors.Is(err, service.ErrIPBlocked):
		http.Error(w, "Access denied. Please contact support.", http.StatusForbidden)
	case errors.Is(err, service.ErrPlanRequired):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrQuotaExhausted):
		http.Error(w, "No questions remaining. Upgrade your plan to continue.", http.StatusForbidden)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPaymentNotFound),
		errors.Is(err, service.ErrDocumentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrDuplicatePending):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrPaymentNotPending):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidComponent):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrGenerationFailed):
		http.Error(w, "Failed to generate questions. Please try again.", http.StatusBadGateway)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
