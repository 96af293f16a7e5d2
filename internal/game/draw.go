package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/raffle-wheel/internal/config"
	"github.com/iburimskiy/raffle-wheel/internal/wheel"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawButton(screen, &g.loadBtn)
	g.drawButton(screen, &g.spinBtn)
	g.drawWheel(screen)
	g.drawResult(screen)

	status := ""
	switch g.ctrl.State() {
	case wheel.StateSpinning:
		status = "Spinning... C to cancel"
	case wheel.StateCompleted:
		status = "We have a winner! Space to spin again"
	case wheel.StateCancelled:
		status = "Cancelled - Space to spin again"
	case wheel.StateErrored:
		status = "Draw failed - check the participant file"
	default:
		if g.index.Len() == 0 {
			status = "Click the button to open a participants CSV"
		} else {
			status = fmt.Sprintf("%d participants loaded - Space to spin, M to mute, Esc/Q to quit", g.index.Len())
		}
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Dynamic gradient, subtle enough not to fight the wheel
	for y := 0; y < config.WindowHeight; y += 4 {
		ratio := float64(y) / float64(config.WindowHeight)
		r := uint8(12 + 14*math.Sin(g.time*0.4+ratio*math.Pi))
		g_val := uint8(12 + 10*math.Cos(g.time*0.25+ratio*math.Pi))
		b := uint8(24 + 18*math.Sin(g.time*0.55+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 4,
			color.RGBA{R: r, G: g_val, B: b, A: 255}, false)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2,
		color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 8 // Approximate character width
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-8)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

// drawWheel renders the currently published window around the normalized
// scroll position. Only the visible rows are touched; the window behind them
// is the whole illusion.
func (g *Game) drawWheel(screen *ebiten.Image) {
	const (
		x = float32(config.WheelX)
		w = float32(config.WheelWidth)
	)
	stripH := float32(config.VisibleRows * config.ItemHeight)

	vector.DrawFilledRect(screen, x, config.WheelY, w, stripH,
		color.RGBA{R: 16, G: 20, B: 30, A: 230}, false)
	vector.StrokeRect(screen, x, config.WheelY, w, stripH, 2,
		color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	win := g.ctrl.Window()
	if win.Len() == 0 {
		ebitenutil.DebugPrintAt(screen, "No participants loaded",
			config.WheelX+20, config.WheelY+int(stripH)/2)
		return
	}

	strip := screen.SubImage(image.Rect(
		config.WheelX, config.WheelY,
		config.WheelX+config.WheelWidth, config.WheelY+int(stripH),
	)).(*ebiten.Image)

	pos := g.ctrl.Position()
	first := int(math.Floor(pos / config.ItemHeight))
	yOff := -(pos - float64(first)*config.ItemHeight)

	for r := 0; r <= config.VisibleRows; r++ {
		i := (first + r) % win.Len()
		p := win.At(i)
		y := float64(config.WheelY) + float64(r)*config.ItemHeight + yOff

		// Rows fade with distance from the selector slot
		dist := math.Abs(float64(r - config.CenterOffset))
		hue := (g.colorPhase + float64(i)*0.013) * 360
		cr, cg, cb := hsvToRgb(hue, 0.45, clamp01(0.85-dist*0.07))
		vector.DrawFilledRect(strip, x+4, float32(y)+2, w-8, config.ItemHeight-4,
			color.RGBA{R: cr, G: cg, B: cb, A: 210}, false)

		label := fmt.Sprintf("%s  [%s]", p.FullName(), p.TicketNumber)
		ebitenutil.DebugPrintAt(strip, label, config.WheelX+16, int(y)+config.ItemHeight/2-6)
	}

	// Fixed selector frame: the slot a spin lands its winner in
	selY := float32(config.WheelY) + float32(config.CenterOffset)*config.ItemHeight
	pulse := uint8(180 + 60*math.Sin(g.time*6))
	vector.StrokeRect(screen, x-6, selY-2, w+12, config.ItemHeight+4, 3,
		color.RGBA{R: pulse, G: pulse, B: 90, A: 255}, false)
	vector.DrawFilledRect(screen, x-18, selY+config.ItemHeight/2-4, 12, 8,
		color.RGBA{R: 255, G: 220, B: 90, A: 255}, false)
	vector.DrawFilledRect(screen, x+w+6, selY+config.ItemHeight/2-4, 12, 8,
		color.RGBA{R: 255, G: 220, B: 90, A: 255}, false)
}

func (g *Game) drawResult(screen *ebiten.Image) {
	const y = config.WindowHeight - 56

	if g.winner != nil {
		vector.DrawFilledRect(screen, 12, y, config.WindowWidth-24, 40,
			color.RGBA{R: 30, G: 70, B: 35, A: 230}, false)
		vector.StrokeRect(screen, 12, y, config.WindowWidth-24, 40, 2,
			color.RGBA{R: 110, G: 220, B: 120, A: 255}, false)
		msg := fmt.Sprintf("WINNER: %s - ticket %s", g.winner.FullName(), g.winner.TicketNumber)
		ebitenutil.DebugPrintAt(screen, msg, 24, y+14)
		return
	}

	if g.ctrl.State() == wheel.StateErrored && g.lastErr != nil {
		vector.DrawFilledRect(screen, 12, y, config.WindowWidth-24, 40,
			color.RGBA{R: 80, G: 30, B: 30, A: 230}, false)
		ebitenutil.DebugPrintAt(screen, g.lastErr.Error(), 24, y+14)
	}
}
