package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

func strPtr(s string) *string { return &s }

func sealedSecret(t *testing.T) string {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	env, err := crypto.Seal("hunter2", key)
	require.NoError(t, err)
	return env.String()
}

func validInput(t *testing.T) models.EntryInput {
	return models.EntryInput{
		Title:    "Mail",
		Username: "alice",
		Secret:   sealedSecret(t),
		URL:      strPtr("https://mail.example.com"),
	}
}

func TestEntryValidator_Input(t *testing.T) {
	v := NewEntryValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.EntryInput)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.EntryInput) {}},
		{name: "empty title", mutate: func(in *models.EntryInput) { in.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "blank title", mutate: func(in *models.EntryInput) { in.Title = "  \t" }, wantErr: ErrEmptyTitle},
		{name: "title too long", mutate: func(in *models.EntryInput) { in.Title = strings.Repeat("x", MaxTitleLength+1) }, wantErr: ErrTitleTooLong},
		{name: "title at limit in runes", mutate: func(in *models.EntryInput) { in.Title = strings.Repeat("ж", MaxTitleLength) }},
		{name: "username too long", mutate: func(in *models.EntryInput) { in.Username = strings.Repeat("u", MaxUsernameLength+1) }, wantErr: ErrUsernameTooLong},
		{name: "plaintext secret", mutate: func(in *models.EntryInput) { in.Secret = "hunter2" }, wantErr: ErrInvalidSecret},
		{name: "empty secret", mutate: func(in *models.EntryInput) { in.Secret = "" }, wantErr: ErrInvalidSecret},
		{name: "nil url", mutate: func(in *models.EntryInput) { in.URL = nil }},
		{name: "url too long", mutate: func(in *models.EntryInput) { in.URL = strPtr(strings.Repeat("a", MaxURLLength+1)) }, wantErr: ErrURLTooLong},
		{name: "notes too long", mutate: func(in *models.EntryInput) { in.Notes = strPtr(strings.Repeat("n", MaxNotesLength+1)) }, wantErr: ErrNotesTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(t)
			tt.mutate(&in)

			err := v.Validate(ctx, in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			assert.ErrorIs(t, v.Validate(ctx, &in), tt.wantErr, "pointer form must behave the same")
		})
	}
}

func TestEntryValidator_InputFieldScoping(t *testing.T) {
	v := NewEntryValidator()
	ctx := context.Background()

	in := models.EntryInput{Title: "Mail", Password: "hunter2"}
	assert.NoError(t, v.Validate(ctx, in, FieldTitle, FieldUsername, FieldPassword, FieldURL, FieldNotes))
	assert.ErrorIs(t, v.Validate(ctx, in), ErrInvalidSecret)

	in.Password = ""
	assert.ErrorIs(t, v.Validate(ctx, in, FieldPassword), ErrEmptyPassword)

	assert.ErrorIs(t, v.Validate(ctx, in, "colour"), ErrUnknownField)
}

func TestEntryValidator_Entry(t *testing.T) {
	v := NewEntryValidator()
	ctx := context.Background()

	valid := models.Entry{
		ID:      "0190b6a2-7c3d-7000-8000-00000000abcd",
		OwnerID: 3,
		Title:   "Bank",
		Secret:  sealedSecret(t),
	}
	require.NoError(t, v.Validate(ctx, valid))

	badID := valid
	badID.ID = "not-a-uuid"
	assert.ErrorIs(t, v.Validate(ctx, badID), ErrInvalidEntryID)

	badOwner := valid
	badOwner.OwnerID = 0
	assert.ErrorIs(t, v.Validate(ctx, &badOwner), ErrInvalidOwnerID)

	assert.NoError(t, v.Validate(ctx, badOwner, FieldID, FieldTitle))
	assert.ErrorIs(t, v.Validate(ctx, valid, FieldPassword), ErrUnknownField)
}

func TestEntryValidator_UnsupportedType(t *testing.T) {
	v := NewEntryValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "entry"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.GenerationPolicy{}), ErrUnsupportedType)
}
