package http

import (
	"net/http"
)

// getServerVersion answers with the plain-text version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
