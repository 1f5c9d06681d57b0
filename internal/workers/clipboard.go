// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// systemClipboard adapts atotto/clipboard to [Clipboard].
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns the clipboard of the desktop session.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// ClipboardCleaner clears a copied secret from the clipboard after a delay,
// or as soon as its context is cancelled. The clipboard is left alone when
// the user has copied something else in the meantime.
type ClipboardCleaner struct {
	clipboard Clipboard
	secret    string
	after     time.Duration
	logger    *logger.Logger
}

func NewClipboardCleaner(cb Clipboard, secret string, after time.Duration, logger *logger.Logger) *ClipboardCleaner {
	return &ClipboardCleaner{
		clipboard: cb,
		secret:    secret,
		after:     after,
		logger:    logger,
	}
}

func (c *ClipboardCleaner) Run(ctx context.Context) error {
	timer := time.NewTimer(c.after)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	return c.clear()
}

func (c *ClipboardCleaner) clear() error {
	current, err := c.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if current != c.secret {
		c.logger.Debug().Msg("clipboard changed, not clearing")
		return nil
	}

	if err = c.clipboard.WriteAll(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	c.logger.Debug().Msg("clipboard cleared")
	return nil
}
