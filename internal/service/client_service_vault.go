// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService runs the client side of every entry operation. The same code
// serves a remote vault and a local file: only the repository differs.
type vaultService struct {
	entryRepository store.EntryRepository
	generator       GeneratorService
	validator       validators.Validator
	ids             idGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewVaultService(entryRepository store.EntryRepository, generator GeneratorService, logger *logger.Logger) VaultService {
	return &vaultService{
		entryRepository: entryRepository,
		generator:       generator,
		validator:       validators.NewEntryValidator(),
		ids:             utils.NewUUIDGenerator(),
		now:             currentTime,
		logger:          logger,
	}
}

func (s *vaultService) Generate(ctx context.Context, policy models.GenerationPolicy) (models.GeneratedPassword, error) {
	return s.generator.Generate(ctx, policy)
}

// Save seals input.Password under the session key and stores the entry.
func (s *vaultService) Save(ctx context.Context, session models.Session, input models.EntryInput) (models.Entry, error) {
	if session.Key.IsZero() {
		return models.Entry{}, ErrNoSession
	}
	if err := s.validator.Validate(ctx, input, validators.FieldPassword); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sealed, err := s.seal(input, session.Key)
	if err != nil {
		return models.Entry{}, err
	}
	if err := s.validator.Validate(ctx, sealed); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now()
	entry := models.Entry{
		ID:        s.ids.Generate(),
		OwnerID:   session.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sealed.Apply(&entry)

	id, err := s.entryRepository.Insert(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("save entry: %w", mapAdapterError(err))
	}
	entry.ID = id

	s.logger.Debug().Str("entry_id", id).Msg("entry saved")
	return entry, nil
}

func (s *vaultService) List(ctx context.Context, session models.Session) ([]models.Entry, error) {
	if session.Key.IsZero() {
		return nil, ErrNoSession
	}

	entries, err := s.entryRepository.FindByOwner(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", mapAdapterError(err))
	}
	return entries, nil
}

func (s *vaultService) Get(ctx context.Context, session models.Session, id string) (models.Entry, error) {
	if session.Key.IsZero() {
		return models.Entry{}, ErrNoSession
	}

	entry, err := s.entryRepository.FindByID(ctx, session.UserID, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry: %w", mapAdapterError(err))
	}
	return entry, nil
}

// Reveal is the only place where a stored secret is opened.
func (s *vaultService) Reveal(ctx context.Context, session models.Session, id string) (models.Entry, string, error) {
	entry, err := s.Get(ctx, session, id)
	if err != nil {
		return models.Entry{}, "", err
	}

	password, err := crypto.Open(crypto.Envelope(entry.Secret), session.Key)
	if err != nil {
		return models.Entry{}, "", fmt.Errorf("open entry %s: %w", id, err)
	}

	return entry, password, nil
}

// Edit replaces the entry's fields with input. The stored envelope is kept
// unless input.Password is set.
func (s *vaultService) Edit(ctx context.Context, session models.Session, id string, input models.EntryInput) (models.Entry, error) {
	if session.Key.IsZero() {
		return models.Entry{}, ErrNoSession
	}

	entry, err := s.entryRepository.FindByID(ctx, session.UserID, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("edit entry: %w", mapAdapterError(err))
	}

	input.Secret = ""
	fields := []string{validators.FieldTitle, validators.FieldUsername, validators.FieldURL, validators.FieldNotes}
	if input.Password != "" {
		if input, err = s.seal(input, session.Key); err != nil {
			return models.Entry{}, err
		}
		fields = append(fields, validators.FieldSecret)
	}
	if err := s.validator.Validate(ctx, input, fields...); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	input.Apply(&entry)
	entry.UpdatedAt = s.now()

	if err := s.entryRepository.Update(ctx, entry); err != nil {
		return models.Entry{}, fmt.Errorf("edit entry: %w", mapAdapterError(err))
	}

	s.logger.Debug().Str("entry_id", id).Msg("entry updated")
	return entry, nil
}

func (s *vaultService) Delete(ctx context.Context, session models.Session, id string) error {
	if session.Key.IsZero() {
		return ErrNoSession
	}

	deleted, err := s.entryRepository.DeleteByID(ctx, session.UserID, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", mapAdapterError(err))
	}
	if !deleted {
		return store.ErrEntryNotFound
	}
	return nil
}

// seal moves input.Password into input.Secret as an envelope.
func (s *vaultService) seal(input models.EntryInput, key crypto.Key) (models.EntryInput, error) {
	envelope, err := crypto.Seal(input.Password, key)
	if err != nil {
		return models.EntryInput{}, fmt.Errorf("seal password: %w", err)
	}
	input.Secret = envelope.String()
	input.Password = ""
	return input, nil
}
