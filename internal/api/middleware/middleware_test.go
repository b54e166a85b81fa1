// Package middleware_test provides behavior tests for the API middleware package.
package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ============================================================================
// RequireAPIKey Middleware Tests
// ============================================================================

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		header   string
		want     int
	}{
		{"valid key", "test-secret", "test-secret", http.StatusOK},
		{"wrong key", "test-secret", "wrong", http.StatusUnauthorized},
		{"missing key", "test-secret", "", http.StatusUnauthorized},
		{"prefix of key", "test-secret", "test", http.StatusUnauthorized},
		{"no key configured", "", "", http.StatusOK},
		{"no key configured, key sent", "", "anything", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.RequireAPIKey(tt.expected))
			router.GET("/test", okHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("X-Api-Key", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), "unauthorized")
			}
		})
	}
}

// ============================================================================
// RequestID Middleware Tests
// ============================================================================

func TestRequestID_Generated(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

func TestRequestID_Propagated(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

// ============================================================================
// SlogRequestLogger Middleware Tests
// ============================================================================

func TestSlogRequestLogger_NilLogger(t *testing.T) {
	router := gin.New()
	router.Use(middleware.SlogRequestLogger(nil))
	router.GET("/test", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSlogRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			router := gin.New()
			router.Use(middleware.RequestID(), middleware.SlogRequestLogger(logger))
			router.POST("/zones/preview", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/zones/preview", nil))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "api request", entry["msg"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, "/zones/preview", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), entry["request_id"])
		})
	}
}

func TestMiddlewareChain(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	router := gin.New()
	router.Use(middleware.SlogRequestLogger(logger))
	router.Use(middleware.RequireAPIKey("secret"))
	router.GET("/test", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, buf.String(), "status=401")

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
