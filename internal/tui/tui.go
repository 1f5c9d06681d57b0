// Package tui holds the terminal views of the vault client: the clipboard
// countdown, the delete confirmation and the static entry renderings.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Countdown is a workers.Worker that shows the clipboard countdown and
// returns when it runs out, when the user quits it, or when ctx is done.
type Countdown struct {
	title    string
	duration time.Duration
	in       io.Reader
	out      io.Writer
}

func NewCountdown(title string, duration time.Duration, in io.Reader, out io.Writer) *Countdown {
	return &Countdown{title: title, duration: duration, in: in, out: out}
}

func (c *Countdown) Run(ctx context.Context) error {
	p := tea.NewProgram(
		newCountdownModel(c.title, c.duration),
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("countdown: %w", err)
	}
	return nil
}

// Confirm asks the user to confirm deletion of the entry titled message.
func Confirm(ctx context.Context, message string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(
		confirmModel{message: message},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return m.confirmed, nil
}
