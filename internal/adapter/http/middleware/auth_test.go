package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autonova/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const testSecret = "middleware-test-secret"

func newProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("/", Authenticate(testSecret))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"actor_id":   c.GetString(ContextActorID),
			"actor_role": c.GetString(ContextActorRole),
		})
	})
	protected.GET("/managers-only", RequireRoles("admin", "manager"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func issueTestToken(t *testing.T, userID, role string) string {
	t.Helper()
	issuer, err := auth.NewJWTIssuer(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	token, err := issuer.Issue(userID, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	router := newProtectedRouter(t)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid token sets actor context", func(t *testing.T) {
		token := issueTestToken(t, "user-1", "receptionist")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := rec.Body.String()
		for _, want := range []string{`"actor_id":"user-1"`, `"actor_role":"receptionist"`} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected body to contain %s, got %s", want, body)
			}
		}
	})
}

func TestRequireRoles(t *testing.T) {
	router := newProtectedRouter(t)

	t.Run("role outside the allow list", func(t *testing.T) {
		token := issueTestToken(t, "user-2", "technician")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/managers-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "FORBIDDEN") {
			t.Fatalf("expected FORBIDDEN code in body, got %s", rec.Body.String())
		}
	})

	t.Run("allowed role passes through", func(t *testing.T) {
		token := issueTestToken(t, "user-3", "manager")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/managers-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
