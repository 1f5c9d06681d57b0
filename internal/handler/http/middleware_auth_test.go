package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestAuth_RejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "basic scheme", header: "Basic YWxpY2U6cHc="},
		{name: "bearer without token", header: "Bearer "},
		{name: "token without scheme", header: "abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, decodeError(t, rec))
		})
	}
}

func TestAuth_TokenErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "expired", err: service.ErrTokenIsExpired, wantMsg: app.MsgTokenIsExpired},
		{name: "invalid", err: service.ErrTokenIsExpiredOrInvalid, wantMsg: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{}, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
			req.Header.Set("Authorization", "Bearer tok")
			rec := httptest.NewRecorder()
			h.auth(http.NotFoundHandler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestAuth_PutsUserIDIntoContext(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{UserID: 7}, nil)

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(7), gotID)
}
