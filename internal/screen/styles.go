package screen

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#2DBABC")
	muted  = lipgloss.Color("245")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#EFEFEF"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#333333"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	pictureStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)
	likedStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	unlikedStyle  = lipgloss.NewStyle().Foreground(muted)
	helpStyle     = lipgloss.NewStyle().Foreground(muted)
	searchStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#DDDDDD")).Padding(0, 1)
	noticeStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D32F2F")).
			Padding(0, 1)
)
