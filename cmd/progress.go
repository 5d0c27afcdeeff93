package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// progressTask does the slow part of a command and returns the line to
// print once it succeeds.
type progressTask func(context.Context) (string, error)

// progressResultMsg carries the task's outcome back into the program.
type progressResultMsg struct {
	summary string
	err     error
}

var (
	progressSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	progressElapsedStyle = lipgloss.NewStyle().Faint(true)
)

type progressModel struct {
	spinner spinner.Model
	label   string
	started time.Time
	run     tea.Cmd
	result  *progressResultMsg
}

func newProgressModel(ctx context.Context, label string, task progressTask) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(progressSpinnerStyle)),
		label:   label,
		started: time.Now(),
		run: func() tea.Msg {
			summary, err := task(ctx)
			return progressResultMsg{summary: summary, err: err}
		},
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressResultMsg:
		m.result = &msg
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.result != nil {
		return ""
	}

	line := m.spinner.View() + " " + m.label
	if elapsed := time.Since(m.started).Truncate(time.Second); elapsed > 0 {
		line += " " + progressElapsedStyle.Render(elapsed.String())
	}
	return line
}

var errProgressInterrupted = errors.New("interrupted before the task finished")

// runWithProgress runs task behind a spinner on stderr unless quiet is set,
// and hands back the task's summary line.
func runWithProgress(cmd *cobra.Command, quiet bool, label string, task progressTask) (string, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if quiet {
		return task(ctx)
	}

	final, err := tea.NewProgram(
		newProgressModel(ctx, label, task),
		tea.WithInput(nil),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return "", fmt.Errorf("%s: %w", label, err)
	}

	model, ok := final.(progressModel)
	if !ok {
		return "", fmt.Errorf("unexpected progress model type %T", final)
	}
	if model.result == nil {
		return "", errProgressInterrupted
	}

	return model.result.summary, model.result.err
}
