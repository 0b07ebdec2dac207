package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/api/v1/dto"
	"github.com/lept-reviewer/backend/internal/service"
	"github.com/lept-reviewer/backend/internal/util"
)

// Session lifetimes. Admin sessions are shorter on purpose.
const (
	userTokenTTL  = 24 * time.Hour
	adminTokenTTL = 8 * time.Hour
)

// AuthHandler handles email login and admin password login.
type AuthHandler struct {
	userService service.UserService
	validate    *validator.Validate
	jwtSecret   string
	logger      zerolog.Logger
}

func NewAuthHandler(userService service.UserService, validate *validator.Validate, jwtSecret string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		validate:    validate,
		jwtSecret:   jwtSecret,
		logger:      logger.With().Str("handler", "AuthHandler").Logger(),
	}
}

// RegisterRoutes mounts the auth routes; both are unauthenticated.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/admin/login", h.adminLogin)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	if ok, msg := util.ValidateEmail(req.Email); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	user, err := h.userService.LoginOrRegister(r.Context(), req.Email, clientIP(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := util.SignJWT(user.Email, util.RoleUser, h.jwtSecret, userTokenTTL)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to sign session token")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:  token,
		User:   dto.NewUserDTO(user),
		Status: dto.NewUserStatusDTO(h.userService.Status(user)),
	})
}

func (h *AuthHandler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.AdminLogin(r.Context(), req.Password); err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := util.SignJWT("admin", util.RoleAdmin, h.jwtSecret, adminTokenTTL)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to sign admin token")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.AdminLoginResponseDTO{Token: token})
}

// clientIP prefers the forwarded address set by the load balancer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
