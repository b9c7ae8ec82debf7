package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

type fakeResolver struct {
	sessions map[string]*mem.Session
}

func (f *fakeResolver) Resolve(_ context.Context, id string) (*mem.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, utils.ErrUnauthenticated
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSessionMiddlewareAndRequireAuth(t *testing.T) {
	resolver := &fakeResolver{sessions: map[string]*mem.Session{
		"good": {ID: "good", UserID: "user-1", Provider: "google"},
	}}

	r := newEngine()
	r.Use(SessionMiddleware(resolver, "sid"))
	r.GET("/open", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID)+"/"+c.GetString(ContextAuthProvider))
	})

	cases := []struct {
		name   string
		path   string
		cookie string
		status int
		body   string
	}{
		{"open without cookie", "/open", "", http.StatusOK, ""},
		{"open with unknown session", "/open", "stale", http.StatusOK, ""},
		{"private with session", "/private", "good", http.StatusOK, "user-1/google"},
		{"private without session", "/private", "", http.StatusUnauthorized, ""},
		{"private with unknown session", "/private", "stale", http.StatusUnauthorized, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), "Not authenticated")
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	r := newEngine()
	r.POST("/gen", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/gen", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"), "buckets are per IP")

	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1"), "one token refills every 30s")
}

func TestRateLimiterDisabled(t *testing.T) {
	r := newEngine()
	r.POST("/gen", NewRateLimiter(0).Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/gen", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newEngine()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextTraceID)) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "abc-123")
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(TraceIDHeader))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(TraceIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.POST("/api/itinerary", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/itinerary", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
