package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abacist/abacus/internal/token"
	"github.com/abacist/abacus/pkg/abacus"
)

var (
	operatorStyle = lipgloss.NewStyle().Faint(true)
	resultStyle   = lipgloss.NewStyle().Bold(true)
	noticeStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// paletteColors maps the engine palette onto ANSI 256 colors.
var paletteColors = map[token.Color]lipgloss.Color{
	token.ColorRed:    lipgloss.Color("203"),
	token.ColorOrange: lipgloss.Color("215"),
	token.ColorYellow: lipgloss.Color("221"),
	token.ColorGreen:  lipgloss.Color("114"),
	token.ColorTeal:   lipgloss.Color("80"),
	token.ColorBlue:   lipgloss.Color("75"),
	token.ColorPurple: lipgloss.Color("135"),
	token.ColorPink:   lipgloss.Color("212"),
}

// renderToken styles one display token. Named operands show their name
// over their number, in their palette color.
func renderToken(t token.Token) string {
	switch t.Kind {
	case token.Operand:
		text := t.NumberLabel
		if t.NameLabel != "" {
			text = t.NameLabel + "=" + text
		}
		if c, ok := paletteColors[t.Color]; ok {
			return lipgloss.NewStyle().Foreground(c).Render(text)
		}
		return text
	default:
		return operatorStyle.Render(t.Display())
	}
}

// renderLine renders the full expression line for a session: committed
// tokens followed by the entry on display.
func renderLine(s *abacus.Session) string {
	if s.InError() {
		return errorStyle.Render("Error")
	}
	parts := make([]string, 0, 8)
	for _, t := range s.DisplayTokens() {
		parts = append(parts, renderToken(t))
	}
	return strings.Join(parts, " ")
}

// renderVariable renders one saved variable for a listing.
func renderVariable(v abacus.Variable) string {
	text := v.Label + " = " + v.Value
	if v.Unit != "" {
		text += " " + v.Unit
	}
	if c, ok := paletteColors[v.Color]; ok {
		return lipgloss.NewStyle().Foreground(c).Render(text)
	}
	return text
}
