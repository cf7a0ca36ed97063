package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"turmas/internal/theme"
)

// MessageDialog shows a message that must be dismissed before going back to
// the timetable
type MessageDialog struct {
	Completed bool
	lines     []string
	width     int
}

// NewMessageDialog creates a dialog showing a summary line followed by items
func NewMessageDialog(summary string, items ...string) *MessageDialog {
	return &MessageDialog{lines: append([]string{summary}, items...)}
}

func (md *MessageDialog) Init() tea.Cmd {
	return nil
}

func (md *MessageDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		md.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q", " ", "ctrl+c":
			md.Completed = true
		}
	}
	return md, nil
}

func (md *MessageDialog) View() string {
	var b strings.Builder
	b.WriteString(theme.NormalStyle.Render(md.lines[0]) + "\n")
	for _, item := range md.lines[1:] {
		b.WriteString(theme.WarningStyle.Render("  • "+item) + "\n")
	}

	box := theme.DialogBoxStyle
	if md.width > 4 {
		box = box.MaxWidth(md.width - 2)
	}
	return box.Render(b.String()) + "\n\n" + theme.HelpStyle.Render("Press enter or esc to continue")
}

// IsCompleted reports whether the message was dismissed
func (md *MessageDialog) IsCompleted() bool {
	return md.Completed
}
