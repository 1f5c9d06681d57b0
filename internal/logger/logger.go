// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// vault server and client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// Secrets never go through a logger: entries are logged by id, passwords and
// keys not at all.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON *Logger writing to w for the given role label
// (e.g. "server", "client").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name instead of file:line.
func New(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns a [New] logger writing to os.Stdout.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// NewClientLogger returns a logger appending to the file at path so that
// command output on the terminal stays clean. Missing directories are
// created. When the file cannot be opened the logger falls back to
// os.Stderr. The returned function closes the file.
func NewClientLogger(role, path string) (*Logger, func() error) {
	noop := func() error { return nil }

	if path == "" {
		return New(role, os.Stderr), noop
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return New(role, os.Stderr), noop
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return New(role, os.Stderr), noop
	}

	return New(role, logFile), logFile.Close
}

// SetLevel sets the global zerolog level by name ("debug", "info", ...).
// An empty name leaves the level unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", name, err)
	}

	zerolog.SetGlobalLevel(level)
	return nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper. If none is attached, zerolog's default logger is returned, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
