package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// memClipboard is an in-memory Clipboard.
type memClipboard struct {
	text    string
	readErr error
}

func (m *memClipboard) ReadAll() (string, error) { return m.text, m.readErr }
func (m *memClipboard) WriteAll(text string) error {
	m.text = text
	return nil
}

func TestClipboardCleaner_ClearsAfterDelay(t *testing.T) {
	cb := &memClipboard{text: "s3cret"}
	c := NewClipboardCleaner(cb, "s3cret", 10*time.Millisecond, logger.Nop())

	start := time.Now()
	require.NoError(t, c.Run(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Empty(t, cb.text)
}

func TestClipboardCleaner_ClearsOnCancel(t *testing.T) {
	cb := &memClipboard{text: "s3cret"}
	c := NewClipboardCleaner(cb, "s3cret", time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, c.Run(ctx))
	assert.Empty(t, cb.text)
}

func TestClipboardCleaner_KeepsForeignContent(t *testing.T) {
	cb := &memClipboard{text: "something the user copied later"}
	c := NewClipboardCleaner(cb, "s3cret", time.Millisecond, logger.Nop())

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, "something the user copied later", cb.text)
}

func TestClipboardCleaner_ReadError(t *testing.T) {
	boom := errors.New("no display")
	cb := &memClipboard{readErr: boom}
	c := NewClipboardCleaner(cb, "s3cret", time.Millisecond, logger.Nop())

	assert.ErrorIs(t, c.Run(context.Background()), boom)
}
