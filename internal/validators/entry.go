// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict entry validation to a subset of
// fields.
const (
	// FieldID targets the UUID of a stored entry.
	FieldID = "id"

	// FieldOwnerID targets the account the entry belongs to.
	FieldOwnerID = "owner_id"

	// FieldTitle targets the human-readable label. It must not be blank.
	FieldTitle = "title"

	// FieldUsername targets the login used on the target service.
	FieldUsername = "username"

	// FieldSecret targets the sealed password. Only the envelope structure
	// is checked; the validator never holds a key.
	FieldSecret = "secret"

	// FieldPassword targets the plaintext password of a client-side input
	// before it is sealed.
	FieldPassword = "password"

	// FieldURL targets the optional service address.
	FieldURL = "url"

	// FieldNotes targets the optional free-form notes.
	FieldNotes = "notes"
)

// Upper bounds on the free-text fields, counted in runes.
const (
	MaxTitleLength    = 256
	MaxUsernameLength = 256
	MaxURLLength      = 2048
	MaxNotesLength    = 10000
)

// EntryValidator implements [Validator] for vault entries and entry inputs.
type EntryValidator struct{}

// NewEntryValidator constructs an [EntryValidator] and returns it as
// [Validator].
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.EntryInput / *models.EntryInput
//     (default fields: title, username, secret, url, notes)
//   - models.Entry / *models.Entry
//     (default fields: id, owner_id, title, username, secret, url, notes)
//
// Returns [ErrUnsupportedType] for anything else and [ErrUnknownField] for a
// field name the type does not carry.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryInput:
		return v.validateInput(value, fields...)
	case *models.EntryInput:
		return v.validateInput(*value, fields...)

	case models.Entry:
		return v.validateEntry(value, fields...)
	case *models.Entry:
		return v.validateEntry(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateInput(in models.EntryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldSecret, FieldURL, FieldNotes}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(in.Title)
		case FieldUsername:
			err = validateMaxLength(in.Username, MaxUsernameLength, ErrUsernameTooLong)
		case FieldSecret:
			err = validateSecret(in.Secret)
		case FieldPassword:
			if in.Password == "" {
				err = ErrEmptyPassword
			}
		case FieldURL:
			err = validateOptional(in.URL, MaxURLLength, ErrURLTooLong)
		case FieldNotes:
			err = validateOptional(in.Notes, MaxNotesLength, ErrNotesTooLong)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *EntryValidator) validateEntry(e models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldTitle, FieldUsername, FieldSecret, FieldURL, FieldNotes}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			if _, parseErr := uuid.Parse(e.ID); parseErr != nil {
				err = ErrInvalidEntryID
			}
		case FieldOwnerID:
			if e.OwnerID <= 0 {
				err = ErrInvalidOwnerID
			}
		case FieldTitle:
			err = validateTitle(e.Title)
		case FieldUsername:
			err = validateMaxLength(e.Username, MaxUsernameLength, ErrUsernameTooLong)
		case FieldSecret:
			err = validateSecret(e.Secret)
		case FieldURL:
			err = validateOptional(e.URL, MaxURLLength, ErrURLTooLong)
		case FieldNotes:
			err = validateOptional(e.Notes, MaxNotesLength, ErrNotesTooLong)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return validateMaxLength(title, MaxTitleLength, ErrTitleTooLong)
}

func validateSecret(secret string) error {
	if _, err := crypto.ParseEnvelope(secret); err != nil {
		return ErrInvalidSecret
	}
	return nil
}

func validateOptional(s *string, limit int, tooLong error) error {
	if s == nil {
		return nil
	}
	return validateMaxLength(*s, limit, tooLong)
}

func validateMaxLength(s string, limit int, tooLong error) error {
	if utf8.RuneCountInString(s) > limit {
		return tooLong
	}
	return nil
}
