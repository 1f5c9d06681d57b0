package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// freeAddress returns a loopback address with a port nobody listens on.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	s := &server{
		httpServer: newHTTPServer(mux, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/ping")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err := http.Get("http://" + addr + "/ping")
	assert.Error(t, err)
}
