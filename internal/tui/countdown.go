// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

const countdownInterval = 100 * time.Millisecond

// countdownModel shows how long a copied secret stays on the clipboard.
type countdownModel struct {
	title    string
	total    time.Duration
	timer    timer.Model
	progress progress.Model
	done     bool
}

func newCountdownModel(title string, total time.Duration) countdownModel {
	return countdownModel{
		title:    title,
		total:    total,
		timer:    timer.NewWithInterval(total, countdownInterval),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
	}
}

func (m countdownModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.done = true
			return m, tea.Quit
		}

	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// remaining is the fraction of the countdown still to run, in [0, 1].
func (m countdownModel) remaining() float64 {
	if m.total <= 0 || m.done {
		return 0
	}
	f := float64(m.timer.Timeout) / float64(m.total)
	return min(max(f, 0), 1)
}

func (m countdownModel) View() string {
	if m.done {
		return appStyle.Render("Clipboard cleared.") + "\n"
	}

	secs := int(m.timer.Timeout.Round(time.Second) / time.Second)
	body := titleStyle.Render(m.title) + "\n\n" +
		m.progress.ViewAs(m.remaining()) + "\n\n" +
		fmt.Sprintf("Clipboard is cleared in %ds", secs) + "\n" +
		helpStyle.Render("q: clear now")

	return appStyle.Render(body) + "\n"
}
