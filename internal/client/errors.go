package client

import "errors"

var (
	ErrMissingCommand       = errors.New("no command given")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrMissingEntryID       = errors.New("entry id is required")
	ErrPassphraseMismatch   = errors.New("passphrases do not match")
	ErrConfirmationRequired = errors.New("deletion must be confirmed with -y when not on a terminal")
)
