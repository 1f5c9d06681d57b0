// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type idGenerator interface {
	Generate() string
}

// entryService implements EntryService on top of an EntryRepository. It
// assigns ids and timestamps; ownership always comes from the caller, never
// from the input.
type entryService struct {
	entryRepository store.EntryRepository
	ids             idGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		ids:             utils.NewUUIDGenerator(),
		now:             currentTime,
		logger:          logger,
	}
}

// currentTime is truncated to the precision PostgreSQL keeps.
func currentTime() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *entryService) Create(ctx context.Context, ownerID int64, input models.EntryInput) (models.Entry, error) {
	now := s.now()
	entry := models.Entry{
		ID:        s.ids.Generate(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(&entry)

	id, err := s.entryRepository.Insert(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry: %w", err)
	}
	entry.ID = id

	logger.FromContext(ctx).Debug().Int64("owner_id", ownerID).Str("entry_id", id).Msg("entry created")
	return entry, nil
}

func (s *entryService) List(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	entries, err := s.entryRepository.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) Get(ctx context.Context, ownerID int64, id string) (models.Entry, error) {
	entry, err := s.entryRepository.FindByID(ctx, ownerID, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// Update replaces the entry's fields with input. An empty input secret keeps
// the stored envelope.
func (s *entryService) Update(ctx context.Context, ownerID int64, id string, input models.EntryInput) (models.Entry, error) {
	entry, err := s.entryRepository.FindByID(ctx, ownerID, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("update entry: %w", err)
	}

	input.Apply(&entry)
	entry.UpdatedAt = s.now()

	if err := s.entryRepository.Update(ctx, entry); err != nil {
		return models.Entry{}, fmt.Errorf("update entry: %w", err)
	}

	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, ownerID int64, id string) error {
	deleted, err := s.entryRepository.DeleteByID(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if !deleted {
		return store.ErrEntryNotFound
	}
	return nil
}
