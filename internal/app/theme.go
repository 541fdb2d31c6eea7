package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pinnedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("179")).Bold(true)
	archivedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	selectedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	selectedMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
	searchStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	dialogHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	dialogBodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	dialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208"))
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
