// Package render draws the board and status bar into a tcell screen and
// maps pointer coordinates back to cell indices. It consumes engine
// snapshots only and never mutates the simulation
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/engine"
)

const (
	// Cell footprint in terminal characters
	cellWidth  = 6
	cellHeight = 3

	boardMarginX = 2
	boardMarginY = 2
)

// BoardRenderer handles all terminal rendering
type BoardRenderer struct {
	screen tcell.Screen

	boardX int
	boardY int
	rows   int
	cols   int
}

// NewBoardRenderer creates a renderer bound to the given screen
func NewBoardRenderer(screen tcell.Screen) *BoardRenderer {
	return &BoardRenderer{
		screen: screen,
		boardX: boardMarginX,
		boardY: boardMarginY,
	}
}

// CellAt maps screen coordinates to a cell index, or -1 for outside the
// board. Gaps between cells count as outside
func (r *BoardRenderer) CellAt(x, y int) int {
	cx := x - r.boardX
	cy := y - r.boardY
	if cx < 0 || cy < 0 {
		return -1
	}
	col := cx / cellWidth
	row := cy / cellHeight
	if row >= r.rows || col >= r.cols {
		return -1
	}
	// Border characters belong to no cell
	if cx%cellWidth == cellWidth-1 || cy%cellHeight == cellHeight-1 {
		return -1
	}
	return row*r.cols + col
}

// RenderFrame renders the entire game frame from a snapshot
func (r *BoardRenderer) RenderFrame(snap engine.Snapshot) {
	r.rows = snap.Rows
	r.cols = snap.Cols

	r.screen.Clear()
	defaultStyle := tcell.StyleDefault

	r.drawStatusBar(snap, defaultStyle)
	r.drawBoard(snap, defaultStyle)

	for _, t := range snap.Targets {
		r.drawTarget(t)
	}

	if snap.Paused {
		r.drawBanner("PAUSED", defaultStyle.Foreground(tcell.ColorYellow).Bold(true))
	} else if snap.Locked {
		r.drawBanner(fmt.Sprintf("LEVEL %d", snap.Level), defaultStyle.Foreground(tcell.ColorAqua).Bold(true))
	} else if snap.Ended {
		r.drawBanner("MATCH OVER", defaultStyle.Foreground(tcell.ColorRed).Bold(true))
	}

	r.screen.Show()
}

// drawStatusBar draws score, combo, level and the time bank above the board
func (r *BoardRenderer) drawStatusBar(snap engine.Snapshot, style tcell.Style) {
	bank := snap.TimeBank.Round(100 * time.Millisecond).Seconds()
	line := fmt.Sprintf("L%d  SCORE %d  COMBO x%d (best %d)  TIME %5.1fs  TIER %3.0f%%",
		snap.Level, snap.Score, snap.Combo, snap.BestCombo, bank, snap.TierProgress)
	if snap.SlowActive {
		line += "  SLOW"
	}

	barStyle := style
	if snap.TimeBank < 10*time.Second {
		barStyle = style.Foreground(tcell.ColorRed)
	}
	r.drawText(r.boardX, 0, line, barStyle)
}

// drawBoard draws the empty cell frames
func (r *BoardRenderer) drawBoard(snap engine.Snapshot, style tcell.Style) {
	frame := style.Foreground(tcell.ColorGray)
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			x := r.boardX + col*cellWidth
			y := r.boardY + row*cellHeight
			for dy := 0; dy < cellHeight-1; dy++ {
				for dx := 0; dx < cellWidth-1; dx++ {
					r.screen.SetContent(x+dx, y+dy, '·', nil, frame)
				}
			}
		}
	}
}

// drawTarget fills a cell with the target's glyph. Glyph intensity tracks
// the phase so the player can read entry and exit windows
func (r *BoardRenderer) drawTarget(t engine.TargetView) {
	glyph, style := targetLook(t)

	x := r.boardX + t.Col*cellWidth
	y := r.boardY + t.Row*cellHeight
	for dy := 0; dy < cellHeight-1; dy++ {
		for dx := 0; dx < cellWidth-1; dx++ {
			r.screen.SetContent(x+dx, y+dy, glyph, nil, style)
		}
	}
	if t.Skin != "" {
		r.drawText(x, y, t.Skin, style)
	}
}

// targetLook picks the glyph and style for a target view
func targetLook(t engine.TargetView) (rune, tcell.Style) {
	var color tcell.Color
	switch t.Category {
	case component.CategoryCommon:
		color = tcell.ColorWhite
	case component.CategoryBonus:
		color = tcell.ColorGold
	case component.CategoryHazard:
		color = tcell.ColorRed
	case component.CategoryChill:
		color = tcell.ColorBlue
	default:
		color = tcell.ColorWhite
	}

	style := tcell.StyleDefault.Foreground(color)
	switch t.Phase {
	case component.PhaseEntering:
		return '░', style.Dim(true)
	case component.PhaseExposed:
		return '█', style.Bold(true)
	case component.PhaseStruck:
		return '▓', style.Reverse(true)
	case component.PhaseExiting:
		return '░', style.Dim(true)
	default:
		return ' ', style
	}
}

// drawBanner centers a line of text over the board
func (r *BoardRenderer) drawBanner(text string, style tcell.Style) {
	boardW := r.cols * cellWidth
	x := r.boardX + (boardW-len(text))/2
	if x < 0 {
		x = 0
	}
	y := r.boardY + (r.rows*cellHeight)/2
	r.drawText(x, y, text, style)
}

func (r *BoardRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
