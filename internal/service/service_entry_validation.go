package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// EntryValidationService checks ids and inputs before delegating to the
// wrapped EntryService.
type EntryValidationService struct {
	next      EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *EntryValidationService) Wrap(next EntryService) EntryService {
	v.next = next
	return v
}

func (v *EntryValidationService) Create(ctx context.Context, ownerID int64, input models.EntryInput) (models.Entry, error) {
	if err := v.validateOwner(ctx, ownerID); err != nil {
		return models.Entry{}, err
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Entry{}, err
	}
	return v.next.Create(ctx, ownerID, input)
}

func (v *EntryValidationService) List(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	if err := v.validateOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return v.next.List(ctx, ownerID)
}

func (v *EntryValidationService) Get(ctx context.Context, ownerID int64, id string) (models.Entry, error) {
	if err := v.validateKey(ctx, ownerID, id); err != nil {
		return models.Entry{}, err
	}
	return v.next.Get(ctx, ownerID, id)
}

func (v *EntryValidationService) Update(ctx context.Context, ownerID int64, id string, input models.EntryInput) (models.Entry, error) {
	if err := v.validateKey(ctx, ownerID, id); err != nil {
		return models.Entry{}, err
	}

	fields := []string{validators.FieldTitle, validators.FieldUsername, validators.FieldURL, validators.FieldNotes}
	if input.Secret != "" {
		fields = append(fields, validators.FieldSecret)
	}
	if err := v.validator.Validate(ctx, input, fields...); err != nil {
		return models.Entry{}, err
	}

	return v.next.Update(ctx, ownerID, id, input)
}

func (v *EntryValidationService) Delete(ctx context.Context, ownerID int64, id string) error {
	if err := v.validateKey(ctx, ownerID, id); err != nil {
		return err
	}
	return v.next.Delete(ctx, ownerID, id)
}

func (v *EntryValidationService) validateOwner(ctx context.Context, ownerID int64) error {
	return v.validator.Validate(ctx, models.Entry{OwnerID: ownerID}, validators.FieldOwnerID)
}

func (v *EntryValidationService) validateKey(ctx context.Context, ownerID int64, id string) error {
	return v.validator.Validate(ctx, models.Entry{ID: id, OwnerID: ownerID}, validators.FieldOwnerID, validators.FieldID)
}
