package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/jagaleanoob/llm-commit/internal/utils"
)

// Spinner shows progress while the generation request is in flight. In
// non-TTY environments it degrades to a single printed line.
type Spinner struct {
	program   *tea.Program
	doneChan  chan struct{}
	startTime time.Time
	isTTY     bool
}

func NewSpinner() *Spinner {
	return &Spinner{
		doneChan: make(chan struct{}),
		isTTY:    utils.IsTTY(),
	}
}

func (s *Spinner) Start(message string) {
	s.startTime = time.Now()

	if !s.isTTY {
		fmt.Printf("⏺ %s\n", message)
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	s.program = tea.NewProgram(spinnerModel{spinner: sp, text: message})
	go func() {
		if _, err := s.program.Run(); err != nil {
			log.Error().Err(err).Msg("Error running spinner")
		}
		close(s.doneChan)
	}()
}

func (s *Spinner) Stop() {
	if !s.isTTY {
		return
	}
	s.program.Send(doneMsg{duration: time.Since(s.startTime)})
	<-s.doneChan
}

type doneMsg struct {
	duration time.Duration
}

type spinnerModel struct {
	spinner  spinner.Model
	text     string
	done     bool
	duration time.Duration
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		default:
			return m, nil
		}
	case doneMsg:
		m.done = true
		m.duration = msg.duration
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return fmt.Sprintf("\n   Done! Took %.2f seconds\n", m.duration.Seconds())
	}
	return fmt.Sprintf("\n   %s %s\n", m.spinner.View(), m.text)
}
