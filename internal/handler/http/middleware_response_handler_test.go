// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("abc"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_FirstHeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("x"))
	_, _ = w.Write([]byte("yz"))

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
