package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// pieceColors maps piece tags to the standard guideline palette.
var pieceColors = map[PieceType]core.Color{
	PieceI: core.ColorCyan,
	PieceO: core.ColorYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// Each playfield cell renders as two runes so the well looks square in a
// terminal font.
const cellW = 2

// Render draws the full frame: HUD, well, hold box, next queue and any
// overlay. It reads only the snapshot-visible state, so a frame rendered
// from a replayed game matches the original run.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	wellX, wellY := g.wellOrigin(dst)
	g.renderWell(dst, wellX, wellY)
	g.renderSidePanels(dst, wellX, wellY)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.scorer.Score()))
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Level: %d  Lines: %d",
		g.Title(), g.scorer.Score(), g.scorer.Level(), g.scorer.Lines())
	if g.mode == ModeMarathon {
		hud += fmt.Sprintf("  Next level in: %d", g.scorer.LinesToNext())
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if label := g.lastEvent.Label(); label != "" {
		dst.DrawTextColored(1, 2, label, core.ColorBrightWhite)
	}
}

// wellOrigin centers the bordered well horizontally, leaving room for the
// hold box on the left and the next queue on the right.
func (g *Game) wellOrigin(dst *core.Screen) (int, int) {
	wellW := g.board.Width()*cellW + 2
	x := (dst.Width() - wellW) / 2
	if x < 8 {
		x = 8
	}
	return x, 3
}

// renderWell draws the bordered playfield with locked cells, the ghost and
// the active piece. Buffer rows stay hidden; a piece cell inside them is
// simply clipped.
func (g *Game) renderWell(dst *core.Screen, ox, oy int) {
	w := g.board.Width()
	h := g.board.VisibleHeight()
	buf := g.board.BufferRows()

	dst.DrawBox(core.NewRect(ox, oy, w*cellW+2, h+2))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := g.board.Cell(x, y+buf)
			if t == PieceNone {
				continue
			}
			g.drawCell(dst, ox, oy, x, y, '█', pieceColors[t])
		}
	}

	if g.hasPiece && g.cfg.EnableGhost {
		for _, c := range g.ghostCells() {
			if vy := c.Y - buf; vy >= 0 {
				g.drawCell(dst, ox, oy, c.X, vy, '░', core.ColorGray)
			}
		}
	}
	if g.hasPiece {
		color := pieceColors[g.piece.Type]
		for _, c := range g.piece.Cells() {
			if vy := c.Y - buf; vy >= 0 {
				g.drawCell(dst, ox, oy, c.X, vy, '█', color)
			}
		}
	}
}

// drawCell paints one playfield cell (two runes wide) inside the well border.
func (g *Game) drawCell(dst *core.Screen, ox, oy, x, y int, r rune, color core.Color) {
	sx := ox + 1 + x*cellW
	sy := oy + 1 + y
	for i := 0; i < cellW; i++ {
		dst.SetColored(sx+i, sy, r, color)
	}
}

// renderSidePanels draws the hold box left of the well and the next queue
// right of it.
func (g *Game) renderSidePanels(dst *core.Screen, wellX, wellY int) {
	if g.cfg.EnableHold {
		holdX := wellX - 8
		dst.DrawText(holdX, wellY, "Hold")
		g.renderMini(dst, holdX, wellY+1, g.hold)
	}

	nextX := wellX + g.board.Width()*cellW + 4
	dst.DrawText(nextX, wellY, "Next")
	row := wellY + 1
	for _, t := range g.bag.Peek(g.cfg.PreviewCount) {
		g.renderMini(dst, nextX, row, t)
		row += 3
	}
}

// renderMini draws a piece preview in its rotation-0 shape, one rune per
// cell, at the given origin.
func (g *Game) renderMini(dst *core.Screen, ox, oy int, t PieceType) {
	if t == PieceNone {
		return
	}
	color := pieceColors[t]
	for _, c := range pieceShapes[t][0] {
		dst.SetColored(ox+c.X, oy+c.Y, '█', color)
	}
}

// renderOverlay draws a centered two-line overlay box over the frame.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
