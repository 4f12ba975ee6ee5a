package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"event_manager/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeResolver map[string]*domain.Session

func (f fakeResolver) Session(_ context.Context, handle string) (*domain.Session, error) {
	if handle == "broken" {
		return nil, errors.New("redis down")
	}
	return f[handle], nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestLoadSessionFromCookieAndBearer(t *testing.T) {
	admin := &domain.Session{UserID: 1, Username: "alice", Role: domain.RoleAdmin}
	r := newEngine()
	r.Use(LoadSession(fakeResolver{"tok": admin}))
	r.GET("/", func(c *gin.Context) {
		if sess := CurrentSession(c); sess != nil {
			c.String(http.StatusOK, sess.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	tests := []struct {
		name string
		prep func(*http.Request)
		want string
	}{
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"}) }, "alice"},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") }, "alice"},
		{"unknown handle", func(r *http.Request) { r.Header.Set("Authorization", "Bearer other") }, "anonymous"},
		{"none", func(*http.Request) {}, "anonymous"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prep(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestLoadSessionStoreFailure(t *testing.T) {
	r := newEngine()
	r.Use(LoadSession(fakeResolver{}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer broken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdminOnly(t *testing.T) {
	sessions := fakeResolver{
		"admin": {UserID: 1, Username: "alice", Role: domain.RoleAdmin},
		"user":  {UserID: 2, Username: "bob", Role: domain.RoleUser},
	}
	r := newEngine()
	r.Use(LoadSession(sessions))
	deny := func(c *gin.Context, err error) {
		assert.ErrorIs(t, err, domain.ErrForbidden)
		c.Status(http.StatusForbidden)
	}
	r.GET("/admin", AdminOnly(deny), func(c *gin.Context) { c.Status(http.StatusOK) })

	for handle, want := range map[string]int{"admin": http.StatusOK, "user": http.StatusForbidden, "": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if handle != "" {
			req.Header.Set("Authorization", "Bearer "+handle)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "handle %q", handle)
	}
}

func TestRateLimit(t *testing.T) {
	r := newEngine()
	r.POST("/login", RateLimit(0.001, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine()
	r.POST("/login", RateLimit(0, 0), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
