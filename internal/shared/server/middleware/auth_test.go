package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func authRouter(capture *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth())
	r.GET("/ping", func(c *gin.Context) {
		*capture = UserIDFromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestAuthHeaderPropagated(t *testing.T) {
	var got string
	r := authRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-User-Id", "alice")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got != "alice" {
		t.Fatalf("user id = %q, want %q", got, "alice")
	}
}

func TestAuthDefaultsUser(t *testing.T) {
	var got string
	r := authRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got != DefaultUserID {
		t.Fatalf("user id = %q, want %q", got, DefaultUserID)
	}
}

func TestUserIDFromContextUnset(t *testing.T) {
	if got := UserIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty user id, got %q", got)
	}
	if got := UserIDFromContext(nil); got != "" {
		t.Fatalf("expected empty user id for nil context, got %q", got)
	}
}
