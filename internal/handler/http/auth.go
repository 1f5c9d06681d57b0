package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// register creates an account from client-built key material and answers
// with a bearer token in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

// params returns the encryption salt of a login so that the client can
// derive its passphrase key.
func (h *Handler) params(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	userParams, err := h.services.AuthService.Params(r.Context(), user.Login)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, userParams, http.StatusOK)
}

// login checks the auth hash and answers with the wrapped data key and a
// bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgLoginFailed, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, foundUser, http.StatusOK)
}
