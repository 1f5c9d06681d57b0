// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return fmt.Errorf("%w: %w", ErrWrongPassword, err)
		case app.MsgTokenIsExpired:
			return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		default:
			return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return fmt.Errorf("%w: %w", store.ErrNoUserWasFound, err)
		}
		return fmt.Errorf("%w: %w", store.ErrEntryNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return fmt.Errorf("%w: %w", store.ErrLoginAlreadyExists, err)
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
		case app.MsgLoginFailed:
			return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgLoginFailed {
			return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}
	}

	return err
}

// extractBody returns the server message from an error of the form
// "<sentinel>: <message>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
