// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

const entryID = "0190b1f2-7a3c-7d4e-8f00-112233445566"

func gmail() models.Entry {
	return models.Entry{ID: entryID, Title: "Gmail", Username: "alice@example.com", Secret: "gpv1:c2VhbGVk"}
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	app := newTestApp(t, config.StorageModeRemote)
	app.mocks.auth.EXPECT().Register(gomock.Any(), "alice", "correct horse").Return(testSession(t), nil)

	require.NoError(t, app.Run(context.Background(), []string{"register"}))
	assert.Contains(t, app.out.String(), "Registered alice")
}

func TestRegister_PromptMismatch(t *testing.T) {
	app := newTestApp(t, config.StorageModeRemote)
	delete(app.env, passphraseEnv)
	app.secrets.answers = []string{"one", "two"}

	err := app.Run(context.Background(), []string{"register"})

	assert.ErrorIs(t, err, ErrPassphraseMismatch)
}

func TestRegister_LocalModeRejected(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)

	err := app.Run(context.Background(), []string{"register"})

	assert.ErrorIs(t, err, service.ErrRemoteModeOnly)
}

// ─────────────────────────────────────────────
// generate
// ─────────────────────────────────────────────

func TestGenerate_Flags(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	want := models.DefaultGenerationPolicy()
	want.Length = 24
	want.UseSymbols = false
	app.mocks.vault.EXPECT().Generate(gomock.Any(), want).
		Return(models.GeneratedPassword{Password: "pw", EntropyBits: 131.26}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"generate", "-length", "24", "-symbols=false"}))
	assert.Equal(t, "pw\nentropy: 131.3 bits\n", app.out.String())
}

func TestGenerate_BadFlag(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)

	assert.Error(t, app.Run(context.Background(), []string{"generate", "-length", "many"}))
}

// ─────────────────────────────────────────────
// add, list, show
// ─────────────────────────────────────────────

func TestAdd_WithPasswordFlag(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	session := testSession(t)
	url := "https://mail.example.com"

	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), "correct horse").Return(session, nil)
	app.mocks.vault.EXPECT().Save(gomock.Any(), session, models.EntryInput{
		Title:    "Gmail",
		Username: "alice@example.com",
		URL:      &url,
		Password: "hunter2",
	}).Return(gmail(), nil)

	err := app.Run(context.Background(), []string{"add", "-title", "Gmail", "-username", "alice@example.com",
		"-url", url, "-password", "hunter2"})

	require.NoError(t, err)
	assert.Contains(t, app.out.String(), "Saved "+entryID)
}

func TestAdd_GeneratedPassword(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	app.mocks.vault.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.GeneratedPassword{Password: "Gen3rated!", EntropyBits: 80}, nil)
	app.mocks.vault.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Session, in models.EntryInput) (models.Entry, error) {
			assert.Equal(t, "Gen3rated!", in.Password)
			return gmail(), nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"add", "-title", "Gmail", "-generate"}))
	assert.NotContains(t, app.out.String(), "Gen3rated!")
}

func TestAdd_PromptsForPassword(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.secrets.answers = []string{"typed-secret"}
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	app.mocks.vault.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Session, in models.EntryInput) (models.Entry, error) {
			assert.Equal(t, "typed-secret", in.Password)
			return gmail(), nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"add", "-title", "Gmail"}))
	assert.Equal(t, []string{"Password: "}, app.secrets.prompts)
}

func TestAdd_UnlockFails(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrWrongPassphrase)

	err := app.Run(context.Background(), []string{"add", "-title", "Gmail", "-password", "x"})

	assert.ErrorIs(t, err, service.ErrWrongPassphrase)
}

func TestList(t *testing.T) {
	app := newTestApp(t, config.StorageModeRemote)
	session := testSession(t)
	app.mocks.auth.EXPECT().Login(gomock.Any(), "alice", "correct horse").Return(session, nil)
	app.mocks.vault.EXPECT().List(gomock.Any(), session).Return([]models.Entry{gmail()}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.Contains(t, app.out.String(), "Gmail")
	assert.NotContains(t, app.out.String(), "gpv1:")
}

func TestShow(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantPassword bool
	}{
		{name: "hidden", args: []string{"show", entryID}},
		{name: "revealed, flag after id", args: []string{"show", entryID, "-reveal"}, wantPassword: true},
		{name: "revealed, flag before id", args: []string{"show", "-reveal", entryID}, wantPassword: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, config.StorageModeBolt)
			app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
			app.mocks.vault.EXPECT().Reveal(gomock.Any(), gomock.Any(), entryID).Return(gmail(), "hunter2", nil)

			require.NoError(t, app.Run(context.Background(), tt.args))

			if tt.wantPassword {
				assert.Contains(t, app.out.String(), "hunter2")
			} else {
				assert.NotContains(t, app.out.String(), "hunter2")
			}
		})
	}
}

func TestShow_MissingID(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"show"}), ErrMissingEntryID)
}

func TestShow_NotFound(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	app.mocks.vault.EXPECT().Reveal(gomock.Any(), gomock.Any(), "nope").Return(models.Entry{}, "", store.ErrEntryNotFound)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"show", "nope"}), store.ErrEntryNotFound)
}

// ─────────────────────────────────────────────
// copy
// ─────────────────────────────────────────────

func TestCopy_ClearsClipboard(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	app.mocks.vault.EXPECT().Reveal(gomock.Any(), gomock.Any(), entryID).Return(gmail(), "hunter2", nil)

	require.NoError(t, app.Run(context.Background(), []string{"copy", entryID}))

	assert.Equal(t, []string{"hunter2", ""}, app.clipboard.writes)
	assert.Empty(t, app.clipboard.text)
	assert.Contains(t, app.out.String(), "Clipboard is cleared in 20ms")
	assert.NotContains(t, app.out.String(), "hunter2")
}

func TestCopy_CancelledContextClearsAtOnce(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	ctx, cancel := context.WithCancel(context.Background())
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	app.mocks.vault.EXPECT().Reveal(gomock.Any(), gomock.Any(), entryID).
		DoAndReturn(func(context.Context, models.Session, string) (models.Entry, string, error) {
			cancel()
			return gmail(), "hunter2", nil
		})

	require.NoError(t, app.Run(ctx, []string{"copy", "-clear-after", "1h", entryID}))
	assert.Empty(t, app.clipboard.text)
}

// ─────────────────────────────────────────────
// edit, delete, version
// ─────────────────────────────────────────────

func TestEdit_KeepsUnsetFields(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	session := testSession(t)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(session, nil)
	app.mocks.vault.EXPECT().Get(gomock.Any(), session, entryID).Return(gmail(), nil)
	app.mocks.vault.EXPECT().Edit(gomock.Any(), session, entryID, models.EntryInput{
		Title:    "Work mail",
		Username: "alice@example.com",
	}).Return(gmail(), nil)

	require.NoError(t, app.Run(context.Background(), []string{"edit", entryID, "-title", "Work mail"}))
	assert.Contains(t, app.out.String(), "Updated "+entryID)
}

func TestEdit_NewPassword(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	app.mocks.vault.EXPECT().Get(gomock.Any(), gomock.Any(), entryID).Return(gmail(), nil)
	app.mocks.vault.EXPECT().Edit(gomock.Any(), gomock.Any(), entryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Session, _ string, in models.EntryInput) (models.Entry, error) {
			assert.Equal(t, "n3w-pass", in.Password)
			assert.Equal(t, "Gmail", in.Title)
			return gmail(), nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"edit", entryID, "-password", "n3w-pass"}))
}

func TestEdit_ReplacesPasswordWithoutOpeningOldOne(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	unreadable := gmail()
	unreadable.Secret = "corrupted"
	app.mocks.vault.EXPECT().Get(gomock.Any(), gomock.Any(), entryID).Return(unreadable, nil)
	app.mocks.vault.EXPECT().Reveal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	app.mocks.vault.EXPECT().Edit(gomock.Any(), gomock.Any(), entryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Session, _ string, in models.EntryInput) (models.Entry, error) {
			assert.Equal(t, "new-secret", in.Password)
			return gmail(), nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"edit", entryID, "-password", "new-secret"}))
	assert.Contains(t, app.out.String(), "Updated "+entryID)
}

func TestDelete(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)
	app.mocks.vault.EXPECT().Delete(gomock.Any(), gomock.Any(), entryID).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", "-y", entryID}))
	assert.Contains(t, app.out.String(), "Deleted "+entryID)
}

func TestDelete_NeedsConfirmationOffTerminal(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)
	app.mocks.keyring.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(testSession(t), nil)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"delete", entryID}), ErrConfirmationRequired)
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name      string
		serverErr error
		want      string
	}{
		{name: "server answers", want: "Server: 2.0.0"},
		{name: "server down", serverErr: errors.New("dial tcp: connection refused"), want: "Server: unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, config.StorageModeRemote)
			app.mocks.server.EXPECT().Version(gomock.Any()).Return("2.0.0", tt.serverErr)

			require.NoError(t, app.Run(context.Background(), []string{"version"}))
			assert.Contains(t, app.out.String(), "1.0.0")
			assert.Contains(t, app.out.String(), tt.want)
		})
	}
}

func TestVersion_LocalHasNoServer(t *testing.T) {
	app := newTestApp(t, config.StorageModeBolt)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.NotContains(t, app.out.String(), "Server")
}
