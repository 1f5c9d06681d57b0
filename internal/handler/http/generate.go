package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// generate returns a fresh password for the posted policy. A request without
// a body uses the default policy. The password is never logged.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var policy models.GenerationPolicy
	err := utils.DecodeJSON(w, r, &policy)
	switch {
	case errors.Is(err, io.EOF):
		policy = models.DefaultGenerationPolicy()
	case err != nil:
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	generated, err := h.services.GeneratorService.Generate(r.Context(), policy)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, generated, http.StatusOK)
}
