// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	entries, err := h.services.EntryService.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var input models.EntryInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.Create(r.Context(), ownerID, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	entry, err := h.services.EntryService.Get(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// updateEntry replaces the mutable fields of an entry. An empty secret in the
// body keeps the stored one.
func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var input models.EntryInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.Update(r.Context(), ownerID, chi.URLParam(r, "id"), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	if err := h.services.EntryService.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownerID reads the user id put into the context by the auth middleware.
func (h *Handler) ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
