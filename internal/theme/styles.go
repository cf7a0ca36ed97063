package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Discipline list styles
var (
	CursorStyle = lipgloss.NewStyle().
			Background(ColorCursor)

	DisciplineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	LockedStyle = lipgloss.NewStyle().
			Foreground(ColorLocked).
			Bold(true)

	PriorityStyle = lipgloss.NewStyle().
			Foreground(ColorPriority)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorSelected)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorUnselected)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Grid styles
var (
	GridBorderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	GridCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	GridConflictStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(ColorConflict).
				Bold(true)

	GridHeaderStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorSecondary)

	GridSlotStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorSubtle)
)

// Status styles
var (
	ConflictStatusStyle = lipgloss.NewStyle().
				Foreground(ColorConflict).
				Bold(true)

	NoConflictStatusStyle = lipgloss.NewStyle().
				Foreground(ColorNoConflict).
				Bold(true)

	NoSelectionStatusStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)

	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorSpinner)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)

// DisciplineColorStyle returns a style for a discipline color ("#RRGGBB")
func DisciplineColorStyle(color string) lipgloss.Style {
	if color == "" {
		return NormalStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
