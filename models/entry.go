// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entry is a single stored credential.
//
// Secret always holds the sealed envelope of the password. The plaintext is
// produced only at the moment of display or copy and is never stored or
// transmitted in this struct.
type Entry struct {
	// ID is the opaque unique identifier (UUIDv7 string).
	ID string `json:"id" cbor:"1,keyasint"`

	// OwnerID is the account the entry belongs to. It is taken from the
	// authenticated session and never from the request body.
	OwnerID int64 `json:"-" cbor:"2,keyasint"`

	// Title is the human-readable label (e.g. "Gmail").
	Title string `json:"title" cbor:"3,keyasint"`

	// Username is the login used on the target service.
	Username string `json:"username" cbor:"4,keyasint"`

	// Secret is the envelope produced by sealing the password.
	Secret string `json:"secret" cbor:"5,keyasint"`

	// URL is an optional address of the target service.
	URL *string `json:"url,omitempty" cbor:"6,keyasint,omitempty"`

	// Notes is an optional free-form annotation.
	Notes *string `json:"notes,omitempty" cbor:"7,keyasint,omitempty"`

	CreatedAt time.Time `json:"created_at" cbor:"8,keyasint"`
	UpdatedAt time.Time `json:"updated_at" cbor:"9,keyasint"`
}

// EntryInput is the mutable part of an [Entry] as submitted by a caller.
//
// On the server Secret must already be an envelope. On the client, Password
// carries the plaintext that the vault service seals before anything leaves
// the process; it is tagged out of JSON so it cannot be sent by accident.
type EntryInput struct {
	Title    string  `json:"title"`
	Username string  `json:"username"`
	Secret   string  `json:"secret"`
	URL      *string `json:"url,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	Password string `json:"-"`
}

// Apply copies the input fields onto e. Secret is replaced only when the
// input carries one, so an edit that leaves the password alone keeps the
// stored envelope.
func (in EntryInput) Apply(e *Entry) {
	e.Title = in.Title
	e.Username = in.Username
	if in.Secret != "" {
		e.Secret = in.Secret
	}
	e.URL = in.URL
	e.Notes = in.Notes
}

// TableName returns the name of the database table associated with [Entry].
func (e *Entry) TableName() string {
	return "entries"
}
