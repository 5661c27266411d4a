package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordhub/internal/game"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6AAA64"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	dialogStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3A3A3C")).
			Padding(0, 2).
			MarginTop(1)

	tileBase = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Bold(true).
			MarginRight(1)
	emptyTile = tileBase.Foreground(lipgloss.Color("#3A3A3C"))
	typedTile = tileBase.Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#3A3A3C"))
)

var resultColors = map[game.LetterResult]lipgloss.Color{
	game.Correct:       lipgloss.Color("#6AAA64"),
	game.WrongPosition: lipgloss.Color("#C9B458"),
	game.Incorrect:     lipgloss.Color("#787C7E"),
}

func resultTile(r game.LetterResult) lipgloss.Style {
	return tileBase.Foreground(lipgloss.Color("#FFFFFF")).Background(resultColors[r])
}

var scrambledStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1).
	Foreground(lipgloss.Color("#F0F0F0")).
	Background(lipgloss.Color("#3A3A3C"))
