package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestConfigured(t *testing.T) {
	t.Setenv("AUTH0_DOMAIN", "")
	if Configured() {
		t.Fatal("expected unconfigured without AUTH0_DOMAIN")
	}

	t.Setenv("AUTH0_DOMAIN", "tenant.example.com")
	if !Configured() {
		t.Fatal("expected configured with AUTH0_DOMAIN set")
	}
}

func TestEnsureValidToken_RejectsBeforeTheHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("AUTH0_DOMAIN", "tenant.example.com")
	t.Setenv("AUTH0_AUDIENCE", "https://api.example.com")

	newGuardedEngine := func(handlerRan *bool) *gin.Engine {
		r := gin.New()
		r.POST("/v1/admin/import/vehicles", EnsureValidToken(), func(c *gin.Context) {
			*handlerRan = true
			c.JSON(http.StatusOK, gin.H{"imported": 1})
		})
		return r
	}

	t.Run("missing authorization header", func(t *testing.T) {
		handlerRan := false
		r := newGuardedEngine(&handlerRan)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/import/vehicles", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if handlerRan {
			t.Fatal("guarded handler must not run without a token")
		}
		if !strings.Contains(w.Body.String(), "INVALID_TOKEN") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if strings.Contains(w.Body.String(), "imported") {
			t.Fatalf("handler output leaked into the response: %s", w.Body.String())
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		handlerRan := false
		r := newGuardedEngine(&handlerRan)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/import/vehicles", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if handlerRan {
			t.Fatal("guarded handler must not run with a malformed token")
		}
	})
}
