package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/carolinefrey/Minesweeper/game"
)

var (
	background   = rgb(64, 64, 64)
	cellHidden   = rgb(192, 192, 192)
	cellRevealed = rgb(214, 214, 214)
	cellLight    = rgb(255, 255, 255)
	cellDark     = rgb(128, 128, 128)
	cellGridLine = rgb(155, 155, 155)
	mineRed      = rgb(210, 40, 40)
	flagRed      = rgb(210, 32, 32)
	flagPole     = rgb(15, 15, 15)
	panelColor   = rgb(192, 192, 192)
	textColor    = rgb(12, 12, 12)
	accent       = rgb(32, 128, 255)
	digitColor   = rgb(215, 40, 40)
	digitOff     = color.RGBA{60, 20, 20, 255}
	digitBox     = color.RGBA{20, 20, 20, 255}
	overlay      = color.RGBA{0, 0, 0, 120}
)

// numberColors maps a neighbor mine count 1..8 to its text color, the
// same palette the original game used.
var numberColors = []color.Color{
	color.RGBA{},
	rgb(40, 40, 230),   // 1 blue
	rgb(0, 140, 0),     // 2 green
	rgb(210, 20, 20),   // 3 red
	rgb(190, 0, 190),   // 4 magenta
	rgb(0, 160, 160),   // 5 cyan
	rgb(200, 200, 0),   // 6 yellow
	rgb(0, 0, 0),       // 7 black
	rgb(230, 130, 0),   // 8 orange
}

// Draw renders the whole window: grid, status box, timer and help box.
// Pure function of game state.
func (u *UI) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	windowW, windowH := u.Layout(0, 0)

	// Border around the grid.
	vector.StrokeRect(screen,
		float32(game.Margin-2), float32(game.Margin-2),
		float32(u.game.GridWidth()+4), float32(u.game.GridHeight()+4),
		2, flagPole, false)

	for y := 0; y < u.game.Board.Height; y++ {
		for x := 0; x < u.game.Board.Width; x++ {
			u.drawCell(screen, x, y)
		}
	}

	boxY := windowH - game.Margin - boxHeight
	u.drawStatusBox(screen, game.Margin, boxY)
	u.drawTimer(screen, windowW, boxY)
	u.drawHelpBox(screen, windowW, boxY)

	switch u.game.State() {
	case game.Won:
		u.drawBanner(screen, "YOU WIN!")
	case game.Lost:
		u.drawBanner(screen, "BOOM! TRY AGAIN.")
	}
}

// drawCell paints one cell from its visual state: hidden bevel, flag,
// revealed blank, colored number, or mine.
func (u *UI) drawCell(screen *ebiten.Image, x, y int) {
	c := u.game.Board.CellAt(x, y)
	px := game.Margin + x*game.CellSize
	py := game.Margin + y*game.CellSize

	if !c.IsRevealed {
		drawRaisedRect(screen, px, py, game.CellSize, game.CellSize)
		if c.IsFlagged {
			drawFlag(screen, px, py)
		}
		if u.hint != nil && u.hint.X == x && u.hint.Y == y {
			vector.StrokeRect(screen, float32(px+2), float32(py+2),
				game.CellSize-4, game.CellSize-4, 2, accent, false)
		}
		return
	}

	ebitenutil.DrawRect(screen, float64(px), float64(py), game.CellSize, game.CellSize, cellRevealed)
	vector.StrokeRect(screen, float32(px), float32(py), game.CellSize, game.CellSize, 1, cellGridLine, false)

	if c.IsMine {
		ebitenutil.DrawRect(screen, float64(px), float64(py), game.CellSize, game.CellSize, mineRed)
		vector.DrawFilledCircle(screen, float32(px+game.CellSize/2), float32(py+game.CellSize/2), 5, flagPole, false)
		return
	}

	if c.NeighborCount > 0 {
		drawTextCentered(screen, fmt.Sprintf("%d", c.NeighborCount), u.fontMain,
			px, py+3, game.CellSize, numberColors[c.NeighborCount])
	}
}

func (u *UI) drawStatusBox(screen *ebiten.Image, x, y int) {
	width := 170
	drawSunkenRect(screen, x, y, width, boxHeight)
	b := u.game.Board
	lines := []string{
		fmt.Sprintf("Mines deployed: %d", b.MineCount),
		fmt.Sprintf("Cells hidden:   %d", b.RemainingCells()),
		fmt.Sprintf("Flags placed:   %d", b.FlagCount),
	}
	ty := y + 18
	for _, ln := range lines {
		text.Draw(screen, ln, u.fontMain, x+10, ty, textColor)
		ty += 16
	}
}

func (u *UI) drawTimer(screen *ebiten.Image, windowW, y int) {
	seconds := int(u.game.Elapsed().Seconds())
	x := windowW/2 - 29
	ebitenutil.DrawRect(screen, float64(x-8), float64(y), 74, boxHeight, panelColor)
	drawDigital(screen, x, y+18, seconds, 3)
}

func (u *UI) drawHelpBox(screen *ebiten.Image, windowW, y int) {
	width := 170
	x := windowW - game.Margin - width
	drawSunkenRect(screen, x, y, width, boxHeight)
	lines := []string{
		"Left click: reveal",
		"Right click: flag",
		"H: hint   Q: quit",
	}
	ty := y + 18
	for _, ln := range lines {
		text.Draw(screen, ln, u.fontMain, x+10, ty, textColor)
		ty += 16
	}
}

func (u *UI) drawBanner(screen *ebiten.Image, label string) {
	w := 2*game.Margin + u.game.GridWidth()
	ebitenutil.DrawRect(screen, float64((w-220)/2), 14, 220, 28, overlay)
	drawTextCentered(screen, label, u.fontMain, (w-220)/2, 20, 220, accent)
}

// drawFlag sketches the flag glyph inside one hidden cell.
func drawFlag(screen *ebiten.Image, px, py int) {
	cx := px + game.CellSize/2
	vector.DrawFilledRect(screen, float32(cx), float32(py+4), 2, 11, flagPole, false)
	vector.DrawFilledRect(screen, float32(cx-6), float32(py+4), 6, 5, flagRed, false)
	vector.DrawFilledRect(screen, float32(cx-3), float32(py+game.CellSize-5), 8, 2, flagPole, false)
}

// drawRaisedRect draws the beveled look of an unrevealed cell.
func drawRaisedRect(screen *ebiten.Image, x, y, w, h int) {
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), cellHidden)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, cellLight, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, cellLight, false)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w), float32(y+h), 2, cellDark, false)
	vector.StrokeLine(screen, float32(x), float32(y+h), float32(x+w), float32(y+h), 2, cellDark, false)
}

// drawSunkenRect draws an inset panel for the info boxes.
func drawSunkenRect(screen *ebiten.Image, x, y, w, h int) {
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), panelColor)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, cellDark, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, cellDark, false)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w), float32(y+h), 2, cellLight, false)
	vector.StrokeLine(screen, float32(x), float32(y+h), float32(x+w), float32(y+h), 2, cellLight, false)
}

func drawTextCentered(screen *ebiten.Image, s string, f font.Face, x, y, w int, clr color.Color) {
	b := text.BoundString(f, s)
	text.Draw(screen, s, f, x+(w-b.Dx())/2, y+13, clr)
}

// drawDigital renders value as a fixed number of seven-segment digits.
func drawDigital(screen *ebiten.Image, x, y, value, digits int) {
	ebitenutil.DrawRect(screen, float64(x-3), float64(y-3), float64(digits*18+6), 28, digitBox)

	n := value
	if n < 0 {
		n = 0
	}
	if max := int(math.Pow10(digits)) - 1; n > max {
		n = max
	}

	chars := make([]int, digits)
	for i := digits - 1; i >= 0; i-- {
		chars[i] = n % 10
		n /= 10
	}
	for i := 0; i < digits; i++ {
		drawSevenSegDigit(screen, x+i*18, y, chars[i])
	}
}

// drawSevenSegDigit draws one digit, segments a..g in bits 6..0.
func drawSevenSegDigit(screen *ebiten.Image, x, y, d int) {
	maps := []int{
		0b1111110,
		0b0110000,
		0b1101101,
		0b1111001,
		0b0110011,
		0b1011011,
		0b1011111,
		0b1110000,
		0b1111111,
		0b1111011,
	}
	mask := 0
	if d >= 0 && d <= 9 {
		mask = maps[d]
	}

	seg := func(on bool, rx, ry, rw, rh float64) {
		clr := color.Color(digitColor)
		if !on {
			clr = digitOff
		}
		ebitenutil.DrawRect(screen, float64(x)+rx, float64(y)+ry, rw, rh, clr)
	}

	seg(mask&0b1000000 != 0, 3, 0, 10, 2)  // a
	seg(mask&0b0100000 != 0, 13, 2, 2, 9)  // b
	seg(mask&0b0010000 != 0, 13, 13, 2, 9) // c
	seg(mask&0b0001000 != 0, 3, 22, 10, 2) // d
	seg(mask&0b0000100 != 0, 1, 13, 2, 9)  // e
	seg(mask&0b0000010 != 0, 1, 2, 2, 9)   // f
	seg(mask&0b0000001 != 0, 3, 11, 10, 2) // g
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
