package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true)
	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
	auditStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
