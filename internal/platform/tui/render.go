package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickgame/internal/core"
)

// Board layout in screen characters. Every field cell is two characters wide
// so the board looks square in a terminal.
const (
	cellWidth    = 2
	sidebarGap   = 2
	sidebarWidth = 16
	boardWidth   = core.FieldWidth*cellWidth + 2 + sidebarGap + sidebarWidth
	boardHeight  = core.FieldHeight + 2
)

// colorStyles holds one lipgloss style per palette colour. It is built once
// and only read afterwards, so concurrent SSH sessions can share it.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

type glyph struct {
	text  string
	color core.Color
}

var cellGlyphs = map[core.Cell]glyph{
	core.CellEmpty: {" .", core.ColorGray},
	core.CellBody:  {"[]", core.ColorGreen},
	core.CellHead:  {"[]", core.ColorBrightGreen},
	core.CellApple: {"()", core.ColorBrightRed},
	core.CellBlock: {"[]", core.ColorCyan},
	core.CellPiece: {"[]", core.ColorBrightYellow},
}

// DrawBoard clears s and draws the field with its border and a sidebar
// holding the title, level, score, high score, the next piece and the state
// message. The board is centered when the screen is large enough.
func DrawBoard(s *core.Screen, title string, f core.Frame) {
	s.Clear()

	ox := core.Max(0, (s.Width()-boardWidth)/2)
	oy := core.Max(0, (s.Height()-boardHeight)/2)
	w, h := f.Field.Width(), f.Field.Height()

	s.DrawBox(core.NewRect(ox, oy, w*cellWidth+2, h+2), core.ColorGray)
	for y := range h {
		for x := range w {
			g, ok := cellGlyphs[f.Field.At(x, y)]
			if !ok {
				g = cellGlyphs[core.CellEmpty]
			}
			s.DrawTextColor(ox+1+x*cellWidth, oy+1+y, g.text, g.color)
		}
	}

	drawSidebar(s, ox+w*cellWidth+2+sidebarGap, oy+1, title, f)
}

func drawSidebar(s *core.Screen, x, y int, title string, f core.Frame) {
	st := f.Session

	s.DrawTextColor(x, y, strings.ToUpper(title), core.ColorBrightWhite)
	s.DrawText(x, y+2, fmt.Sprintf("Level %6d", st.Level))
	s.DrawText(x, y+3, fmt.Sprintf("Score %6d", st.Score))
	s.DrawTextColor(x, y+4, fmt.Sprintf("High  %6d", st.HighScore), core.ColorYellow)

	row := y + 6
	if f.Next != nil {
		s.DrawText(x, row, "Next")
		for py := range 4 {
			for px := range 4 {
				if f.Next[py][px] {
					s.DrawTextColor(x+px*cellWidth, row+1+py, "[]", core.ColorBrightCyan)
				}
			}
		}
		row += 6
	}

	for i, line := range stateMessage(st.State) {
		s.DrawTextColor(x, row+i, line, core.ColorOrange)
	}
}

// stateMessage returns the sidebar lines for a lifecycle state.
func stateMessage(st core.State) []string {
	switch st {
	case core.StateNotStarted:
		return []string{"Press ENTER", "to start"}
	case core.StatePaused:
		return []string{"PAUSED", "p: resume"}
	case core.StateLost:
		return []string{"GAME OVER", "r: new game"}
	case core.StateWon:
		return []string{"YOU WIN!", "r: new game"}
	}
	return nil
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
