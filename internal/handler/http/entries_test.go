// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	testOwnerID = int64(42)
	testEntryID = "0190b1f2-7a3c-7d4e-8f00-112233445566"
)

// authedRequest builds a request carrying a bearer token and makes the
// mocked AuthService accept it for testOwnerID.
func authedRequest(t *testing.T, mocks testServices, method, target, body string) *http.Request {
	t.Helper()
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "valid-token").Return(models.Token{UserID: testOwnerID}, nil)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func sealedEntry() models.Entry {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Entry{
		ID:        testEntryID,
		OwnerID:   testOwnerID,
		Title:     "Gmail",
		Username:  "alice@example.com",
		Secret:    "gpv1:c2VhbGVk",
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestListEntries(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.entries.EXPECT().List(gomock.Any(), testOwnerID).Return([]models.Entry{sealedEntry()}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, mocks, http.MethodGet, "/api/entries", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, testEntryID, got[0].ID)
	assert.Equal(t, "gpv1:c2VhbGVk", got[0].Secret)
	assert.NotContains(t, rec.Body.String(), "owner")
}

func TestCreateEntry(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	input := models.EntryInput{Title: "Gmail", Username: "alice@example.com", Secret: "gpv1:c2VhbGVk"}
	mocks.entries.EXPECT().Create(gomock.Any(), testOwnerID, input).Return(sealedEntry(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, mocks, http.MethodPost, "/api/entries",
		`{"title":"Gmail","username":"alice@example.com","secret":"gpv1:c2VhbGVk"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), testEntryID)
}

func TestCreateEntry_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "bad JSON", body: `{"title":`, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "plaintext password field", body: `{"title":"a","password":"hunter2"}`, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "empty title", body: `{"title":""}`, serviceErr: validators.ErrEmptyTitle, wantStatus: http.StatusBadRequest, wantMsg: validators.ErrEmptyTitle.Error()},
		{name: "not an envelope", body: `{"title":"a","secret":"hunter2"}`, serviceErr: validators.ErrInvalidSecret, wantStatus: http.StatusBadRequest, wantMsg: validators.ErrInvalidSecret.Error()},
		{name: "duplicate id", body: `{"title":"a"}`, serviceErr: store.ErrEntryAlreadyExists, wantStatus: http.StatusConflict, wantMsg: app.MsgEntryAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			router := h.Init()
			if tt.serviceErr != nil {
				mocks.entries.EXPECT().Create(gomock.Any(), testOwnerID, gomock.Any()).Return(models.Entry{}, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(t, mocks, http.MethodPost, "/api/entries", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestGetEntry(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.entries.EXPECT().Get(gomock.Any(), testOwnerID, testEntryID).Return(sealedEntry(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, mocks, http.MethodGet, "/api/entries/"+testEntryID, ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Gmail", got.Title)
}

func TestGetEntry_NotFound(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
	}{
		{name: "missing", id: testEntryID, err: store.ErrEntryNotFound},
		{name: "other owner", id: testEntryID, err: store.ErrEntryNotFound},
		{name: "malformed id", id: "not-a-uuid", err: validators.ErrInvalidEntryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			router := h.Init()
			mocks.entries.EXPECT().Get(gomock.Any(), testOwnerID, tt.id).Return(models.Entry{}, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(t, mocks, http.MethodGet, "/api/entries/"+tt.id, ""))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, app.MsgEntryNotFound, decodeError(t, rec))
		})
	}
}

func TestUpdateEntry(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	updated := sealedEntry()
	updated.Title = "Work mail"
	mocks.entries.EXPECT().
		Update(gomock.Any(), testOwnerID, testEntryID, models.EntryInput{Title: "Work mail", Username: "alice@example.com"}).
		Return(updated, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, mocks, http.MethodPut, "/api/entries/"+testEntryID,
		`{"title":"Work mail","username":"alice@example.com"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Work mail")
}

func TestDeleteEntry(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.entries.EXPECT().Delete(gomock.Any(), testOwnerID, testEntryID).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, mocks, http.MethodDelete, "/api/entries/"+testEntryID, ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestEntries_WithoutUserIDInContext(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.listEntries(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgNoUserIDProvided, decodeError(t, rec))
}

func TestEntries_RequireToken(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/api/entries", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
	}
}
