package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	ErrEmptyPassphrase      = errors.New("passphrase is required")
	ErrWrongPassphrase      = errors.New("wrong passphrase")
	ErrCorruptedKeyMaterial = errors.New("stored key material is corrupted")
	ErrNoSession            = errors.New("vault is locked")
	ErrRemoteModeOnly       = errors.New("operation is only available for a remote vault")
)
