package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id in the request
// context with [utils.WithUserID]. Missing, malformed, expired or invalid
// tokens are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Warn().Err(err).Msg("token expired")
				utils.WriteError(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Warn().Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
