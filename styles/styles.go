package styles

import "github.com/charmbracelet/lipgloss"

const (
	// Width is the layout width; views truncate to the detected terminal
	// width on top of it.
	Width = 72
)

// https://github.com/inngest/inngest/blob/main/pkg/cli/styles.go
var (
	Color   = lipgloss.AdaptiveColor{Light: "#111222", Dark: "#FAFAFA"}
	Primary = lipgloss.Color("#4636f5")
	Green   = lipgloss.Color("#9dcc3a")
	Red     = lipgloss.Color("#ff0000")
	White   = lipgloss.Color("#ffffff")
	Black   = lipgloss.Color("#000000")
	Orange  = lipgloss.Color("#D3A347")
	Subtle  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}

	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	TextStyle = lipgloss.NewStyle().Foreground(Color)
	BoldStyle = TextStyle.Copy().Bold(true)
	Title     = BoldStyle.Copy().Foreground(Highlight).MarginBottom(1)
	Faint     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	// Diagram cards.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(0, 1).
		MarginRight(1)

	// Fretboard markers.
	RootNote    = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	ScaleNote   = lipgloss.NewStyle().Foreground(Primary)
	Highlighted = lipgloss.NewStyle().Foreground(White).Background(Highlight).Bold(true)
	Selected    = lipgloss.NewStyle().Foreground(Black).Background(Orange)
	Correct     = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Wrong       = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Missed      = lipgloss.NewStyle().Foreground(Orange).Underline(true)
	Cursor      = lipgloss.NewStyle().Reverse(true)

	// Metronome beat indicators.
	Beat       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ActiveBeat = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Downbeat   = lipgloss.NewStyle().Foreground(Orange).Bold(true)

	// Status Bar.
	StatusNugget = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Padding(0, 1)
	ScoreStyle = StatusNugget.Copy().
			Background(lipgloss.Color("#e783f2")).
			Align(lipgloss.Right)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	StatusStyle = lipgloss.NewStyle().
			Inherit(StatusBarStyle).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().Inherit(StatusBarStyle)

	HelpMenu = lipgloss.NewStyle().Align(lipgloss.Center).PaddingTop(2)
	// Page
	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	// Error applies styles to an error message
	err := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return err + content
}

// RenderFeedback styles a right/wrong answer line.
func RenderFeedback(correct bool, msg string) string {
	if correct {
		return Correct.Render(msg)
	}
	return Wrong.Render(msg)
}
