package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New("test", &buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/entries?secret=1", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))

	assert.Equal(t, "/api/entries", line["uri"])
	assert.Equal(t, http.MethodPost, line["method"])
	assert.EqualValues(t, http.StatusCreated, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.Equal(t, "trace-1", line["trace_id"])
	assert.Equal(t, "test", line["role"])
}
