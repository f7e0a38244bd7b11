package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Modern color palette
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Bright cyan
			Bold(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	TodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")). // Soft blue
			Bold(true)

	WeekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("147")). // Light purple
			Bold(true)

	ReminderMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("114")) // Soft green

	DistanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	CountdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	QuoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")). // Soft purple
			Italic(true)

	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("92")). // Indigo
			Bold(true).
			Padding(0, 1)

	CompletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222"))

	SystemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")).
			Italic(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	BorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)
