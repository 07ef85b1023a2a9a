package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonfriesen/elementify"
)

const (
	cardWidth  = 10
	cardHeight = 4
	// rendered card size including the border and the gap between cards
	cardCellWidth  = cardWidth + 3
	cardCellHeight = cardHeight + 2
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(40)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	symbolStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(cardWidth).
			Height(cardHeight)
)

// categoryColors maps Token.CategoryClass values to border colours.
var categoryColors = map[string]lipgloss.Color{
	"alkali-metal":          lipgloss.Color("203"),
	"alkaline-earth-metal":  lipgloss.Color("215"),
	"transition-metal":      lipgloss.Color("221"),
	"post-transition-metal": lipgloss.Color("150"),
	"metalloid":             lipgloss.Color("115"),
	"nonmetal":              lipgloss.Color("81"),
	"halogen":               lipgloss.Color("117"),
	"noble-gas":             lipgloss.Color("141"),
	"lanthanide":            lipgloss.Color("176"),
	"actinide":              lipgloss.Color("211"),

	elementify.SpaceCategory: lipgloss.Color("238"),
}

var defaultCardColor = lipgloss.Color("250")

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.scene == sceneSolution {
		return m.solutionView()
	}
	return m.promptView()
}

func (m model) promptView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Elementify"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Spell a phrase with chemical element symbols."))
	sb.WriteString("\n")

	box := inputStyle.Render(string(m.input) + "█")
	if m.shake > 0 && m.shake%2 == 1 {
		box = lipgloss.NewStyle().PaddingLeft(2).Render(box)
	}
	sb.WriteString(box)
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("[enter] elementify  [tab] random word  [esc] quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m model) solutionView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Elementify"))
	sb.WriteString("  ")
	sb.WriteString(summaryStyle.Render(m.result.Summary()))
	sb.WriteString("  ")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%q", m.result.Word)))
	sb.WriteString("\n\n")

	end := min(m.top+m.visibleRows(), m.revealed, m.result.Len())
	for i := m.top; i < end; i++ {
		sb.WriteString(m.renderRow(m.result.Segmentations[i]))
		sb.WriteString("\n")
	}

	if n := m.result.Len(); n > m.visibleRows() {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("rows %d-%d of %d", m.top+1, max(end, m.top+1), n)))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("[enter] new word  [←/→] scroll  [↑/↓] rows  [q] quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m model) renderRow(seg elementify.Segmentation) string {
	if m.offset >= len(seg) {
		return ""
	}
	visible := seg[m.offset:]
	if n := m.cardsPerRow(); len(visible) > n {
		visible = visible[:n]
	}

	cards := make([]string, 0, len(visible)*2)
	for i, tok := range visible {
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, renderCard(tok))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderCard draws one token. The space token has no number and no
// category line.
func renderCard(tok elementify.Token) string {
	number := ""
	if tok.HasNumber() {
		number = fmt.Sprintf("%d", tok.Number)
	}
	category := ""
	if !tok.IsSpace() {
		category = truncate(tok.Category, cardWidth)
	}

	color, ok := categoryColors[tok.CategoryClass()]
	if !ok {
		color = defaultCardColor
	}

	body := strings.Join([]string{
		labelStyle.Render(number),
		symbolStyle.Foreground(color).Render(tok.Symbol),
		truncate(tok.Name, cardWidth),
		labelStyle.Render(category),
	}, "\n")
	return cardStyle.BorderForeground(color).Render(body)
}

func (m model) visibleRows() int {
	// title, blank line, row counter and help take four lines
	return max(1, (m.height-4)/cardCellHeight)
}

func (m model) cardsPerRow() int {
	return max(1, m.width/cardCellWidth)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
