package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEntryID  = errors.New("invalid entry id")
	ErrInvalidOwnerID  = errors.New("invalid owner id")
	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrInvalidSecret   = errors.New("secret must be an encrypted envelope")
	ErrEmptyPassword   = errors.New("password is required")
	ErrURLTooLong      = errors.New("url is too long")
	ErrNotesTooLong    = errors.New("notes are too long")

	ErrInvalidLength    = errors.New("length must be at least 1")
	ErrLengthTooLarge   = errors.New("length exceeds the allowed maximum")
	ErrNoCharacterClass = errors.New("at least one character class must be enabled")
)
