package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// router wiring
// ─────────────────────────────────────────────

func TestInit_Version(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_UnknownRoutesAndMethodsAre404(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/unknown"},
		{http.MethodGet, "/"},
		{http.MethodPatch, "/api/version"},
		{http.MethodDelete, "/api/version"},
		{http.MethodGet, "/api/user/register"},
		{http.MethodPut, "/api/generate"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)
			router := h.Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_PublicRoutesSkipAuth(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().Params(gomock.Any(), "alice").Return(models.User{Login: "alice", EncryptionSalt: "c2FsdA=="}, nil)
	mocks.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.GeneratedPassword{Password: "pw"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/user/params", strings.NewReader(`{"login":"alice"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_CompressesJSON(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()
	mocks.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(models.GeneratedPassword{Password: strings.Repeat("a", 64)}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
