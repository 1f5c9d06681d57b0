package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var _ store.EntryRepository = (*httpServerAdapter)(nil)

// Insert creates the entry on the server. The server assigns the id, which
// is returned; entry.ID is ignored.
func (h *httpServerAdapter) Insert(ctx context.Context, entry models.Entry) (string, error) {
	var created models.Entry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(inputFromEntry(entry)).
		SetResult(&created).
		Post("/api/entries")
	if err != nil {
		return "", fmt.Errorf("create entry request: %w", err)
	}
	if err = entryError(mapHTTPError(resp)); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (h *httpServerAdapter) FindByOwner(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)

	resp, err := h.authedRequest(ctx).
		SetResult(&entries).
		Get("/api/entries")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = entryError(mapHTTPError(resp)); err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].OwnerID = ownerID
	}
	return entries, nil
}

func (h *httpServerAdapter) FindByID(ctx context.Context, ownerID int64, id string) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&entry).
		Get("/api/entries/{id}")
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = entryError(mapHTTPError(resp)); err != nil {
		return models.Entry{}, err
	}

	entry.OwnerID = ownerID
	return entry, nil
}

func (h *httpServerAdapter) Update(ctx context.Context, entry models.Entry) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", entry.ID).
		SetBody(inputFromEntry(entry)).
		Put("/api/entries/{id}")
	if err != nil {
		return fmt.Errorf("update entry request: %w", err)
	}

	return entryError(mapHTTPError(resp))
}

// DeleteByID reports false without error when the server answers 404.
func (h *httpServerAdapter) DeleteByID(ctx context.Context, ownerID int64, id string) (bool, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/entries/{id}")
	if err != nil {
		return false, fmt.Errorf("delete entry request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = entryError(mapHTTPError(resp)); err != nil {
		return false, err
	}

	return true, nil
}

func inputFromEntry(e models.Entry) models.EntryInput {
	return models.EntryInput{
		Title:    e.Title,
		Username: e.Username,
		Secret:   e.Secret,
		URL:      e.URL,
		Notes:    e.Notes,
	}
}

// entryError adds the store sentinel matching a transport error so callers
// can treat the server like any other EntryRepository.
func entryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrEntryNotFound, err)
	case errors.Is(err, ErrConflict):
		return fmt.Errorf("%w: %w", store.ErrEntryAlreadyExists, err)
	default:
		return err
	}
}
