package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// errorStatus is one row of the error table. An empty message means the
// error's own text is sent, which is used for validation failures.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is checked in order, so a wrapped error matches the first
// row naming one of its sentinels.
var errorStatusTable = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrEntryNotFound, http.StatusNotFound, app.MsgEntryNotFound},
	{store.ErrEntryAlreadyExists, http.StatusConflict, app.MsgEntryAlreadyExists},

	{validators.ErrInvalidEntryID, http.StatusNotFound, app.MsgEntryNotFound},
	{validators.ErrInvalidOwnerID, http.StatusUnauthorized, app.MsgNoUserIDProvided},
	{validators.ErrEmptyTitle, http.StatusBadRequest, ""},
	{validators.ErrTitleTooLong, http.StatusBadRequest, ""},
	{validators.ErrUsernameTooLong, http.StatusBadRequest, ""},
	{validators.ErrInvalidSecret, http.StatusBadRequest, ""},
	{validators.ErrURLTooLong, http.StatusBadRequest, ""},
	{validators.ErrNotesTooLong, http.StatusBadRequest, ""},

	{validators.ErrInvalidLength, http.StatusBadRequest, ""},
	{validators.ErrLengthTooLarge, http.StatusBadRequest, ""},
	{validators.ErrNoCharacterClass, http.StatusBadRequest, ""},
	{generator.ErrInvalidPolicy, http.StatusBadRequest, app.MsgInvalidPolicy},
	{generator.ErrEmptyPool, http.StatusBadRequest, app.MsgInvalidPolicy},
}

// statusFromError returns the status code and response message for err.
// Unknown errors are internal server errors.
func statusFromError(err error) (int, string) {
	for _, row := range errorStatusTable {
		if errors.Is(err, row.target) {
			if row.message == "" {
				return row.status, row.target.Error()
			}
			return row.status, row.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped status with an
// {"error": ...} body. Internal details never reach the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
