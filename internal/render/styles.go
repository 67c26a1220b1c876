// SPDX-License-Identifier: MIT

package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette used across reports.
var (
	ColorAccent = lipgloss.Color("#2CD7C7")
	ColorBorder = lipgloss.Color("#16858E")
	ColorMuted  = lipgloss.Color("#2C4A54")
	ColorWarn   = lipgloss.Color("#F4D03F")
	ColorError  = lipgloss.Color("#E74C3C")
)

// Styles holds the pre-configured lipgloss styles of every report.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
	Section lipgloss.Style
}

// DefaultStyles is the style set used by New.
var DefaultStyles = Styles{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Good:    lipgloss.NewStyle().Foreground(ColorAccent),
	Warn:    lipgloss.NewStyle().Foreground(ColorWarn),
	Bad:     lipgloss.NewStyle().Foreground(ColorError),
	Section: lipgloss.NewStyle().Bold(true).Border(lipgloss.DoubleBorder(), false, false, true, false).BorderForeground(ColorBorder),
}

// newTable returns a bordered table with the header row styled.
func (s Styles) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		})
}
