package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"parade/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("ADMIN_PASSWORD", "admin-secret")
	os.Setenv("COORDINATOR_PASSWORD", "coordinator-secret")
	os.Setenv("JWT_SECRET", "router-test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newRouter wires every route without a database; handlers exercised here reject the
// request before any query runs.
func newRouter() *gin.Engine {
	r := gin.New()
	SetRoutes(r, nil, nil)
	return r
}

func tokenFor(t *testing.T, claims *auth.Claims) string {
	t.Helper()
	token, err := auth.CreateToken(claims)
	require.NoError(t, err)
	return token
}

func do(r *gin.Engine, method string, path string, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	admin := tokenFor(t, &auth.Claims{Role: auth.RoleAdmin})
	coordinator := tokenFor(t, &auth.Claims{Role: auth.RoleCoordinator})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"missing token", "GET", "/api/auth/me", "", http.StatusUnauthorized},
		{"garbage token", "GET", "/api/auth/me", "not-a-jwt", http.StatusUnauthorized},
		{"any role may read its claims", "GET", "/api/auth/me", coordinator, http.StatusOK},
		{"coordinator cannot create events", "POST", "/api/events", coordinator, http.StatusForbidden},
		{"coordinator cannot score", "POST", "/api/scores", coordinator, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, `{}`, tt.token)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	t.Run("admin passes role checks", func(t *testing.T) {
		// reaches the handler, which rejects the token for having no judge
		w := do(r, "POST", "/api/scores", `{}`, admin)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "only judges")
	})
}

func TestAuthCookieIsAccepted(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: tokenFor(t, &auth.Claims{Role: auth.RoleCoordinator})})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var claims ClaimsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claims))
	assert.Equal(t, "coordinator", claims.Role)
}

func TestLogin(t *testing.T) {
	r := newRouter()

	w := do(r, "POST", "/api/auth/login", `{"role":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "POST", "/api/auth/login", `{"role":"judge","password":"admin-secret"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "POST", "/api/auth/login", `{"role":"coordinator","password":"coordinator-secret"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var response TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "coordinator", response.Claims.Role)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth=")

	claims, err := auth.ParseToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleCoordinator, claims.Role)
}

func TestJudgeIsScopedToItsEvent(t *testing.T) {
	r := newRouter()
	judge := tokenFor(t, &auth.Claims{Role: auth.RoleJudge, JudgeId: 3, EventId: 1})

	w := do(r, "GET", "/api/events/2/entries/approved", "", judge)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, "GET", "/api/events/2/entries", "", judge)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestValidation(t *testing.T) {
	r := newRouter()
	coordinator := tokenFor(t, &auth.Claims{Role: auth.RoleCoordinator})
	judge := tokenFor(t, &auth.Claims{Role: auth.RoleJudge, JudgeId: 3, EventId: 1})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
	}{
		{"zero position", "PUT", "/api/events/1/entries/5/position", `{"position":0}`, coordinator},
		{"negative position", "PUT", "/api/events/1/entries/5/position", `{"position":-2}`, coordinator},
		{"missing position", "PUT", "/api/events/1/entries/5/position", `{}`, coordinator},
		{"non numeric entry", "PUT", "/api/events/1/entries/abc/position", `{"position":2}`, coordinator},
		{"approval without decision", "PATCH", "/api/entries/approve", `{"entryId":5}`, coordinator},
		{"approval with zero float", "PATCH", "/api/entries/approve", `{"entryId":5,"approved":true,"floatNumber":0}`, coordinator},
		{"non numeric event", "GET", "/api/events/abc/categories", "", ""},
		{"non numeric winners event", "GET", "/api/winners?eventId=abc", "", coordinator},
		{"non numeric float id", "GET", "/api/scores?floatId=abc", "", judge},
		{"score without float", "POST", "/api/scores", `{"scores":{"Taste":3}}`, judge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body, tt.token)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newRouter()
	w := do(r, "POST", "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
