package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Section state colors
const (
	ColorConflict   Color = "196" // Red - cell with two or more occupants
	ColorLocked     Color = "214" // Orange - locked section marker
	ColorNoConflict Color = "2"   // Green - status without conflicts
	ColorPriority   Color = "141" // Purple - priority rank
	ColorSelected   Color = "255" // White - selected section
	ColorUnselected Color = "245" // Gray - available section
	ColorWarning    Color = "3"   // Yellow - completeness issues
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorCursor          Color = "236" // Dark background of the cursor row
	ColorDimmed          Color = "240"
	ColorHelpGroup       Color = "141" // Purple
	ColorHintKey         Color = "226" // Yellow
	ColorPaletteSelected Color = "237"
	ColorScrollIndicator Color = "244"
	ColorSpinner         Color = "205" // Pink
)
