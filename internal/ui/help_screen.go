package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"turmas/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by group
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	height      int            // Terminal height
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
	width       int            // Terminal width
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// buildHelpContent builds the help text from the key bindings, one section
// per key group
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	for i, group := range keyGroups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.HelpGroupStyle.Render(group) + "\n")
		for _, binding := range keys.FullHelp()[i] {
			b.WriteString(renderBinding(binding))
		}
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Markers (read-only)") + "\n")
	b.WriteString(renderShortcut("●", "section is selected"))
	b.WriteString(renderShortcut("○", "section is not selected"))
	b.WriteString(renderShortcut("locked", "kept by clear and toggle operations"))
	b.WriteString(renderShortcut("#N", "rank of the section within its type"))
	b.WriteString(renderShortcut("export #N", "position of the discipline in the export"))
	b.WriteString(renderShortcut("!", "discipline is incomplete or ambiguous"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// IsCompleted reports whether the help screen was closed
func (h *HelpScreen) IsCompleted() bool {
	return h.Completed
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
