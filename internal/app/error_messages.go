// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages shared by the server handlers and
// the client adapter.
//
// The server writes a Msg* constant into the {"error": ...} body of a failed
// request; the client compares the body against the same constants to turn
// an HTTP status back into a domain error. Keeping them in one place keeps
// both ends in agreement.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the login or the auth hash
	// does not match.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token is well formed but
	// past its expiry time.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an authenticated route runs
	// without a user id in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	// MsgLoginAlreadyExists is returned when the requested login is taken.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUserNotFound is returned by the params endpoint for an unknown
	// login.
	MsgUserNotFound = "user not found"

	// MsgEntryNotFound is returned when the entry does not exist for the
	// current user.
	MsgEntryNotFound = "entry not found"

	MsgEntryAlreadyExists = "entry already exists"

	// MsgInvalidPolicy is returned by the generate endpoint when the policy
	// selects no characters or an unusable length.
	MsgInvalidPolicy = "invalid generation policy"
)
