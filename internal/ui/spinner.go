// Package ui holds small interactive helpers shared by the commands.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type scanFinishedMsg struct{}

type scanModel struct {
	spinner  spinner.Model
	quitting bool
}

func newScanModel() scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return scanModel{spinner: s}
}

func (m scanModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case scanFinishedMsg:
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m scanModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s Scanning for JVM installations...\n", m.spinner.View())
}

// WithScanner runs fn behind a spinner animation.
func WithScanner(fn func()) error {
	p := tea.NewProgram(newScanModel())

	go func() {
		time.Sleep(50 * time.Millisecond) // Give UI time to start
		fn()
		p.Send(scanFinishedMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
