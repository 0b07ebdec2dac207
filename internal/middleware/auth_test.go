package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lept-reviewer/backend/internal/util"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, gotEmail *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotEmail = EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareAcceptsUserToken(t *testing.T) {
	token, err := util.SignJWT("a@b.com", util.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)

	var gotEmail string
	handler := AuthMiddleware(testSecret)(protectedHandler(t, &gotEmail))

	rec := doRequest(handler, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", gotEmail)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	var gotEmail string
	handler := AuthMiddleware(testSecret)(protectedHandler(t, &gotEmail))

	rec := doRequest(handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	var gotEmail string
	handler := AuthMiddleware(testSecret)(protectedHandler(t, &gotEmail))

	rec := doRequest(handler, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token, err := util.SignJWT("a@b.com", util.RoleUser, "other-secret", time.Hour)
	require.NoError(t, err)

	var gotEmail string
	handler := AuthMiddleware(testSecret)(protectedHandler(t, &gotEmail))

	rec := doRequest(handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddlewareRejectsUserToken(t *testing.T) {
	token, err := util.SignJWT("a@b.com", util.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)

	var gotEmail string
	handler := AdminMiddleware(testSecret)(protectedHandler(t, &gotEmail))

	rec := doRequest(handler, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddlewareAcceptsAdminToken(t *testing.T) {
	token, err := util.SignJWT("admin", util.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	var gotEmail string
	handler := AuthMiddleware(testSecret)(protectedHandler(t, &gotEmail))

	rec := doRequest(handler, token)
	assert.Equal(t, http.StatusOK, rec.Code, "admin tokens may use user endpoints")
	assert.Equal(t, "admin", gotEmail)
}
