package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-charity-backend/internal/core/auth"
	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/repo"
	"go-charity-backend/internal/transport/http/router"
	"go-charity-backend/pkg/utils"
)

type env struct {
	r          *gin.Engine
	jwt        *auth.JWTer
	donations  *repo.MemDonationRepo
	volunteers *repo.MemVolunteerRepo
	programs   *repo.MemProgramRepo
	news       *repo.MemNewsRepo
	admins     *repo.MemAdminRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := &env{
		jwt:        &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: 2 * time.Hour},
		donations:  repo.NewMemDonationRepo(),
		volunteers: repo.NewMemVolunteerRepo(),
		programs:   repo.NewMemProgramRepo(),
		news:       repo.NewMemNewsRepo(),
		admins:     repo.NewMemAdminRepo(),
	}
	e.r = router.New(zap.NewNop(), router.Deps{
		JWT:        e.jwt,
		Donations:  e.donations,
		Volunteers: e.volunteers,
		Programs:   e.programs,
		News:       e.news,
		Admins:     e.admins,
	})
	return e
}

func (e *env) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedAdmin stores an admin directly and returns it with the plaintext
// password preserved for login calls.
func (e *env) seedAdmin(t *testing.T, email, password string) *domain.Admin {
	t.Helper()
	a := &domain.Admin{
		Name:         "Seed Admin",
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleSuperAdmin,
	}
	require.NoError(t, e.admins.Create(context.Background(), a))
	return a
}

// login issues a token through the real endpoint.
func (e *env) login(t *testing.T, email, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/admin/login", gin.H{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[map[string]any](t, w)
	tok, _ := out["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "http_requests_total")
}
