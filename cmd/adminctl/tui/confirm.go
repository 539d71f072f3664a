package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javajoker/storefront-admin/internal/crud"
)

// ConfirmationDialog is a yes/no question answered with the keyboard. No is
// selected initially.
type ConfirmationDialog struct {
	Title       string
	Message     string
	YesSelected bool
	Answered    bool
}

func NewConfirmationDialog(title, message string) ConfirmationDialog {
	return ConfirmationDialog{
		Title:   title,
		Message: message,
	}
}

func (d ConfirmationDialog) Init() tea.Cmd {
	return nil
}

func (d ConfirmationDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			d.YesSelected = true
		case "right", "l":
			d.YesSelected = false
		case "y", "Y":
			d.YesSelected = true
			d.Answered = true
			return d, tea.Quit
		case "n", "N", "esc", "q", "ctrl+c":
			d.YesSelected = false
			d.Answered = true
			return d, tea.Quit
		case "enter":
			d.Answered = true
			return d, tea.Quit
		}
	}
	return d, nil
}

// Confirmed reports whether the operator chose Yes.
func (d ConfirmationDialog) Confirmed() bool {
	return d.Answered && d.YesSelected
}

func (d ConfirmationDialog) View() string {
	if d.Answered {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")

	if d.YesSelected {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "navigate") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("y/n", "answer")))

	return boxStyle.Render(b.String())
}

// Confirmer asks delete questions through a ConfirmationDialog on the
// terminal.
type Confirmer struct {
	// Prompt renders the question for a request.
	Prompt func(req crud.DeleteRequest) string
	Input  io.Reader
	Output io.Writer
}

func (c Confirmer) Confirm(ctx context.Context, req crud.DeleteRequest) (bool, error) {
	message := fmt.Sprintf("Delete %s #%d?", req.Entity, req.ID)
	if c.Prompt != nil {
		message = c.Prompt(req)
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.Input != nil {
		opts = append(opts, tea.WithInput(c.Input))
	}
	if c.Output != nil {
		opts = append(opts, tea.WithOutput(c.Output))
	}

	dialog := NewConfirmationDialog(fmt.Sprintf("Delete %s #%d", req.Entity, req.ID), message)
	final, err := tea.NewProgram(dialog, opts...).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirmation dialog: %w", err)
	}

	answer, ok := final.(ConfirmationDialog)
	return ok && answer.Confirmed(), nil
}
