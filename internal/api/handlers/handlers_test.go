// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/handlers"
	"github.com/jroosing/autodns/internal/api/models"
	"github.com/jroosing/autodns/internal/bind"
	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/database"
	"github.com/jroosing/autodns/internal/logging"
	"github.com/jroosing/autodns/internal/zonegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeApplier struct {
	report *bind.ApplyReport
	err    error
	got    *zonegen.Artifacts
}

func (f *fakeApplier) Apply(_ context.Context, art *zonegen.Artifacts) (*bind.ApplyReport, error) {
	f.got = art
	return f.report, f.err
}

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "autodns.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestHandler(t *testing.T, withDB bool) *handlers.Handler {
	t.Helper()
	var db *database.DB
	if withDB {
		db = openTestDB(t)
	}
	return handlers.New(config.Default(), db, logging.Discard())
}

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/stats", h.Stats)
	r.GET("/config", h.GetConfig)
	r.GET("/settings", h.GetSettings)
	r.PUT("/settings", h.PutSettings)
	r.GET("/derive", h.Derive)
	r.POST("/zones/preview", h.PreviewZones)
	r.POST("/zones/apply", h.ApplyZones)
	r.GET("/generations", h.ListGenerations)
	r.GET("/generations/:id", h.GetGeneration)
	return r
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// ============================================================================
// System Endpoint Tests
// ============================================================================

func TestHealth(t *testing.T) {
	h := createTestHandler(t, false)
	w := performRequest(setupTestRouter(h), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[models.StatusResponse](t, w).Status)
}

func TestHealth_DatabaseClosed(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "autodns.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	h := handlers.New(config.Default(), db, logging.Discard())
	w := performRequest(setupTestRouter(h), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", decode[models.StatusResponse](t, w).Status)
}

func TestStats(t *testing.T) {
	h := createTestHandler(t, true)
	w := performRequest(setupTestRouter(h), http.MethodGet, "/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ServerStatsResponse](t, w)
	assert.NotEmpty(t, resp.Uptime)
	assert.Positive(t, resp.GoRoutines)
	assert.Positive(t, resp.NumCPU)
	require.NotNil(t, resp.Generations)
	assert.Zero(t, resp.Generations.Total)
}

func TestGetConfig(t *testing.T) {
	cfg := config.Default()
	cfg.API.APIKey = "super-secret"
	h := handlers.New(cfg, nil, nil)

	w := performRequest(setupTestRouter(h), http.MethodGet, "/config", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ConfigResponse](t, w)
	assert.Equal(t, "integris.ptt", resp.Zone.Domain)
	assert.Equal(t, "/etc/bind", resp.Paths.BindDir)
	assert.Equal(t, config.VerifyNamed, resp.Verify.Mode)
	assert.NotContains(t, w.Body.String(), "super-secret")
}

func TestGetConfig_NilConfig(t *testing.T) {
	h := handlers.New(nil, nil, nil)
	w := performRequest(setupTestRouter(h), http.MethodGet, "/config", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ============================================================================
// Settings Endpoint Tests
// ============================================================================

func TestGetSettings_FallsBackToConfig(t *testing.T) {
	h := createTestHandler(t, true)
	w := performRequest(setupTestRouter(h), http.MethodGet, "/settings", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.SettingsResponse](t, w)
	assert.Equal(t, "config", resp.Source)
	assert.Equal(t, "192.168.183.17", resp.IPAddress)
	assert.Equal(t, zonegen.DefaultOptions(), resp.Options)
}

func TestPutSettings(t *testing.T) {
	h := createTestHandler(t, true)
	r := setupTestRouter(h)

	w := performRequest(r, http.MethodPut, "/settings",
		`{"ip_address":"10.0.0.5","domain":"lab.local","options":{"restart_service":false}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(r, http.MethodGet, "/settings", "")
	resp := decode[models.SettingsResponse](t, w)
	assert.Equal(t, "database", resp.Source)
	assert.Equal(t, "10.0.0.5", resp.IPAddress)
	assert.Equal(t, "lab.local", resp.Domain)
	assert.False(t, resp.Options.RestartService)
	assert.True(t, resp.Options.CreateBackups, "omitted options keep their value")
	assert.True(t, resp.Options.IncludeSamples)
}

func TestPutSettings_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind string
	}{
		{"malformed json", `{"ip_address":`, ""},
		{"missing domain", `{"ip_address":"10.0.0.5"}`, ""},
		{"bad address", `{"ip_address":"10.0.0.256","domain":"lab.local"}`, "invalid_address"},
		{"short address", `{"ip_address":"10.0.0","domain":"lab.local"}`, "invalid_address"},
		{"domain without dot", `{"ip_address":"10.0.0.5","domain":"localhost"}`, "invalid_domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, true)
			w := performRequest(setupTestRouter(h), http.MethodPut, "/settings", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.kind, decode[models.ErrorResponse](t, w).Kind)
		})
	}
}

func TestPutSettings_NoDatabase(t *testing.T) {
	h := createTestHandler(t, false)
	w := performRequest(setupTestRouter(h), http.MethodPut, "/settings",
		`{"ip_address":"10.0.0.5","domain":"lab.local"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ============================================================================
// Derive Endpoint Tests
// ============================================================================

func TestDerive(t *testing.T) {
	h := createTestHandler(t, false)
	w := performRequest(setupTestRouter(h), http.MethodGet, "/derive?ip=192.168.183.17", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.DeriveResponse](t, w)
	assert.Equal(t, zonegen.DerivedParts{
		ReversePrefix: "183.168.192",
		PTROwner:      "17.183.168.192.in-addr.arpa.",
		ReverseZone:   "183.168.192.in-addr.arpa",
		NetworkPrefix: "192.168.183",
	}, resp.Derived)
}

func TestDerive_Invalid(t *testing.T) {
	h := createTestHandler(t, false)
	for _, q := range []string{"", "?ip=", "?ip=1.2.3", "?ip=1.2.3.999", "?ip=a.b.c.d"} {
		w := performRequest(setupTestRouter(h), http.MethodGet, "/derive"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Equal(t, "invalid_address", decode[models.ErrorResponse](t, w).Kind, q)
	}
}

// ============================================================================
// Zone Endpoint Tests
// ============================================================================

func TestPreviewZones_UsesConfig(t *testing.T) {
	h := createTestHandler(t, false)
	w := performRequest(setupTestRouter(h), http.MethodPost, "/zones/preview", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.PreviewResponse](t, w)
	assert.Empty(t, resp.GenerationID, "no history without a database")

	assert.Equal(t, "integris.ptt", resp.Forward.Name)
	assert.Equal(t, "/etc/bind/db.integris.ptt", resp.Forward.Path)
	assert.Contains(t, resp.Forward.Text, "webmail IN      CNAME   mail.integris.ptt.\n")
	assert.Len(t, resp.Forward.Records, 7) // SOA, NS, ns, @, www, mail, webmail

	assert.Equal(t, "183.168.192.in-addr.arpa", resp.Reverse.Name)
	assert.Equal(t, "/etc/bind/db.192.168.183", resp.Reverse.Path)
	ptrs := 0
	for _, rr := range resp.Reverse.Records {
		if rr.Type == "PTR" {
			ptrs++
			assert.Equal(t, "17.183.168.192.in-addr.arpa.", rr.Name)
		}
	}
	assert.Equal(t, 4, ptrs)

	assert.Equal(t, "/etc/bind/named.conf.local", resp.NamedConf.Path)
	assert.True(t, strings.HasPrefix(resp.NamedConf.Text, "\nzone \"integris.ptt\" {\n"))
}

func TestPreviewZones_Override(t *testing.T) {
	h := createTestHandler(t, true)
	w := performRequest(setupTestRouter(h), http.MethodPost, "/zones/preview",
		`{"ip_address":"172.16.5.9","domain":"example.org","options":{"include_samples":false}}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.PreviewResponse](t, w)
	assert.NotEmpty(t, resp.GenerationID)
	assert.Equal(t, "5.16.172.in-addr.arpa", resp.Derived.ReverseZone)
	assert.NotContains(t, resp.Forward.Text, "www")
	assert.Len(t, resp.Forward.Records, 4)
}

func TestPreviewZones_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind string
	}{
		{"malformed json", `{"domain":`, ""},
		{"bad address", `{"ip_address":"300.1.1.1"}`, "invalid_address"},
		{"bad domain", `{"domain":"nodot"}`, "invalid_domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, false)
			w := performRequest(setupTestRouter(h), http.MethodPost, "/zones/preview", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.kind, decode[models.ErrorResponse](t, w).Kind)
		})
	}
}

func TestApplyZones_NotConfigured(t *testing.T) {
	h := createTestHandler(t, false)
	w := performRequest(setupTestRouter(h), http.MethodPost, "/zones/apply", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestApplyZones_Success(t *testing.T) {
	h := createTestHandler(t, true)
	applier := &fakeApplier{report: &bind.ApplyReport{
		Written:   []string{"/etc/bind/db.integris.ptt", "/etc/bind/db.192.168.183", "/etc/bind/named.conf.local"},
		Checks:    []bind.CheckResult{{Zone: "integris.ptt", OK: true}},
		Restarted: true,
	}}
	h.SetApplier(applier)
	r := setupTestRouter(h)

	w := performRequest(r, http.MethodPost, "/zones/apply", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.ApplyResponse](t, w)
	require.NotNil(t, resp.Report)
	assert.True(t, resp.Report.Restarted)
	assert.Empty(t, resp.Error)
	require.NotNil(t, applier.got)
	assert.Equal(t, "integris.ptt", applier.got.Input.Domain)

	w = performRequest(r, http.MethodGet, "/generations/"+resp.GenerationID, "")
	require.Equal(t, http.StatusOK, w.Code)
	g := decode[database.Generation](t, w)
	assert.True(t, g.Applied)
	require.NotNil(t, g.ChecksPassed)
	assert.True(t, *g.ChecksPassed)
}

func TestApplyZones_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"restart failed", &bind.ServiceError{Command: "systemctl restart bind9", Err: errors.New("exit status 1")}, http.StatusBadGateway},
		{"write failed", errors.New("permission denied"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, true)
			h.SetApplier(&fakeApplier{report: &bind.ApplyReport{}, err: tt.err})

			w := performRequest(setupTestRouter(h), http.MethodPost, "/zones/apply", "")

			assert.Equal(t, tt.want, w.Code)
			resp := decode[models.ApplyResponse](t, w)
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.GenerationID)
		})
	}
}

// ============================================================================
// Generation Endpoint Tests
// ============================================================================

func TestGenerations_NoDatabase(t *testing.T) {
	h := createTestHandler(t, false)
	r := setupTestRouter(h)

	assert.Equal(t, http.StatusServiceUnavailable, performRequest(r, http.MethodGet, "/generations", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, performRequest(r, http.MethodGet, "/generations/x", "").Code)
}

func TestListGenerations_Limit(t *testing.T) {
	h := createTestHandler(t, true)
	r := setupTestRouter(h)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, performRequest(r, http.MethodPost, "/zones/preview", "").Code)
	}

	w := performRequest(r, http.MethodGet, "/generations?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[models.GenerationListResponse](t, w).Count)

	w = performRequest(r, http.MethodGet, "/generations?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGeneration_NotFound(t *testing.T) {
	h := createTestHandler(t, true)
	w := performRequest(setupTestRouter(h), http.MethodGet, "/generations/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SetConfig(t *testing.T) {
	h := createTestHandler(t, false)
	cfg := config.Default()
	cfg.Zone.Domain = "swapped.example"
	h.SetConfig(cfg)

	w := performRequest(setupTestRouter(h), http.MethodGet, "/settings", "")
	assert.Equal(t, "swapped.example", decode[models.SettingsResponse](t, w).Domain)
}
