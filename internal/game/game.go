package game

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/raffle-wheel/internal/config"
	"github.com/iburimskiy/raffle-wheel/internal/raffle"
	"github.com/iburimskiy/raffle-wheel/internal/wheel"
)

const colorShiftSpeed = 0.004

// button is a clickable screen rect with hover/press feedback.
type button struct {
	x, y, w, h int
	label      string
	hovered    bool
	pressed    bool
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// Game is the ebiten front end of the wheel: it feeds frames to the
// animation controller and draws whatever (position, window) pair the
// controller currently publishes. All spin logic lives in the wheel package;
// this type only handles input, drawing and sound.
type Game struct {
	log      *slog.Logger
	settings config.Settings

	index *raffle.Index
	ctrl  *wheel.Controller

	// fixed target for every spin; empty means draw a random winner
	targetTicket string

	winner  *raffle.Participant
	lastErr error

	sound         *soundBank
	lastSlotEntry int

	// ui state
	time       float64
	colorPhase float64
	prevKey    map[ebiten.Key]bool
	loadBtn    button
	spinBtn    button
}

func New(log *slog.Logger, settings config.Settings, participants []raffle.Participant, targetTicket string) *Game {
	g := &Game{
		log:          log,
		settings:     settings,
		targetTicket: targetTicket,
		sound:        newSoundBank(log),
		prevKey:      map[ebiten.Key]bool{},
		loadBtn: button{
			x: config.ButtonX, y: config.ButtonY,
			w: config.ButtonWidth, h: config.ButtonHeight,
			label: "Open CSV...",
		},
		spinBtn: button{
			x: config.ButtonX, y: config.ButtonY + config.ButtonHeight + 16,
			w: config.ButtonWidth, h: config.ButtonHeight,
			label: "Spin",
		},
	}
	g.setParticipants(participants)
	return g
}

// setParticipants rebuilds the index and controller for a fresh dataset.
func (g *Game) setParticipants(participants []raffle.Participant) {
	g.index = raffle.NewIndex(participants)
	g.winner = nil
	g.lastErr = nil
	g.ctrl = wheel.NewController(g.log, g.index, wheel.Config{
		Capacity: g.settings.Capacity,
		Seed:     g.settings.Seed,
		Physics: wheel.PhysicsConfig{
			ItemHeight:           config.ItemHeight,
			CenterOffset:         config.CenterOffset,
			MinRotations:         g.settings.MinRotations,
			MaxRotations:         g.settings.MaxRotations,
			RetargetMinRotations: g.settings.RetargetMinRotations,
			RetargetMaxRotations: g.settings.RetargetMaxRotations,
		},
	}, wheel.Callbacks{
		OnComplete: func(p raffle.Participant) {
			g.winner = &p
			g.sound.fanfare()
		},
		OnError: func(err error) {
			g.lastErr = err
		},
	})
	g.log.Info("participants loaded", "count", g.index.Len())
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mx, my := ebiten.CursorPosition()
	g.loadBtn.hovered = g.loadBtn.contains(mx, my)
	g.spinBtn.hovered = g.spinBtn.contains(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.loadBtn.pressed = g.loadBtn.hovered
		g.spinBtn.pressed = g.spinBtn.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.loadBtn.pressed && g.loadBtn.hovered {
			g.openParticipantsDialog()
		}
		if g.spinBtn.pressed && g.spinBtn.hovered {
			g.startSpin()
		}
		g.loadBtn.pressed = false
		g.spinBtn.pressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.startSpin()
	}
	if justPressed(ebiten.KeyC) {
		g.ctrl.Cancel()
	}
	if justPressed(ebiten.KeyM) {
		g.sound.toggleMute()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.ctrl.Update()
	g.tickOnSlotChange()

	g.time += 1.0 / 60.0 // Assuming 60 FPS
	g.colorPhase += colorShiftSpeed

	return nil
}

// tickOnSlotChange plays a short click whenever a new row scrolls under the
// selector, the mechanical "clack" of a physical prize wheel.
func (g *Game) tickOnSlotChange() {
	w := g.ctrl.Window()
	if w.Len() == 0 || g.ctrl.State() != wheel.StateSpinning {
		return
	}
	slot := (int(math.Floor(g.ctrl.Position()/config.ItemHeight)) + config.CenterOffset) % w.Len()
	if slot != g.lastSlotEntry {
		g.lastSlotEntry = slot
		g.sound.tick()
	}
}

func (g *Game) startSpin() {
	if g.ctrl.State() == wheel.StateSpinning {
		return
	}
	g.winner = nil
	g.lastErr = nil

	target := g.targetTicket
	if target == "" {
		if g.index.Len() == 0 {
			g.lastErr = raffle.ErrEmptyParticipants
			return
		}
		target = g.index.At(rand.Intn(g.index.Len())).TicketNumber
	}

	err := g.ctrl.Spin(wheel.SpinRequest{
		TargetTicket: target,
		MinDuration:  g.settings.SpinDuration,
	})
	if err != nil {
		g.lastErr = err
		g.log.Error("spin rejected", "err", err)
	}
}

func (g *Game) openParticipantsDialog() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Participants CSV"),
		zenity.FileFilters{{
			Name:     "CSV",
			Patterns: []string{"*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.lastErr = err
		return
	}

	participants, err := LoadParticipantsCSV(filename)
	if err != nil {
		g.lastErr = err
		g.log.Error("load participants", "path", filename, "err", err)
		_ = zenity.Error(err.Error(), zenity.Title("Could not load participants"))
		return
	}
	g.ctrl.Cancel()
	g.setParticipants(participants)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
