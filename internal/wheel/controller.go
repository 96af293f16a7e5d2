package wheel

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/iburimskiy/raffle-wheel/internal/raffle"
)

// State is the controller's animation lifecycle state. Transitions are
// explicit; there are no ad hoc "is animating" booleans to fall out of sync.
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateCompleted
	StateCancelled
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// SpinRequest describes one spin. Immutable once submitted.
type SpinRequest struct {
	TargetTicket string
	MinDuration  time.Duration
}

const defaultSpinDuration = 8 * time.Second

// Clock abstracts time.Now so tests can drive the controller frame by frame
// with a fake clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config bundles the controller's tunables.
type Config struct {
	// Capacity is the fixed window size. Defaults to 100.
	Capacity int

	Physics PhysicsConfig

	// Seed seeds the rotation randomness; 0 means seed from the clock.
	Seed int64

	// Clock defaults to the system clock.
	Clock Clock
}

// Callbacks are the controller's outbound events. Any of them may be nil.
// OnComplete fires exactly once per successful spin, with the winner resolved
// from the full index rather than the display window, so a padded duplicate
// can never be reported. No callback fires after Cancel returns.
type Callbacks struct {
	OnTick     func(position float64, window *Window)
	OnComplete func(winner raffle.Participant)
	OnError    func(err error)
}

const defaultCapacity = 100

// winnerPrep is the background window build delivered at the checkpoint.
type winnerPrep struct {
	window *Window
	offset int
	found  bool
}

// Controller sequences windowing and physics for one wheel: it owns the spin
// lifecycle, publishes the current (position, window) pair each frame, and
// performs the one-shot window swap at the physics checkpoint.
//
// It is single-threaded and cooperative: the host calls Update once per
// rendered frame and every call does a bounded amount of work. The only
// concurrency is the winner-window build, started in the background at spin
// time so its result is ready before the checkpoint closes.
type Controller struct {
	log *slog.Logger
	idx *raffle.Index
	cfg Config
	cb  Callbacks

	clock Clock
	rng   *rand.Rand

	state     State
	window    *Window
	phys      *spinPhysics
	req       SpinRequest
	spinID    uuid.UUID
	startedAt time.Time
	lastPos   float64

	prepCh        chan winnerPrep
	winnerMissing bool
}

// NewController builds a controller over a loaded participant index. The
// initial window is published immediately so the renderer has something to
// draw before the first spin.
func NewController(log *slog.Logger, idx *raffle.Index, cfg Config, cb Callbacks) *Controller {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaultCapacity
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Clock.Now().UnixNano()
	}
	return &Controller{
		log:    log,
		idx:    idx,
		cfg:    cfg,
		cb:     cb,
		clock:  cfg.Clock,
		rng:    rand.New(rand.NewSource(seed)),
		state:  StateIdle,
		window: InitialWindow(idx, cfg.Capacity),
	}
}

func (c *Controller) State() State { return c.state }

// Window returns the currently published window. Callers must treat it as
// read-only; the controller replaces it wholesale at the checkpoint.
func (c *Controller) Window() *Window { return c.window }

// Position returns the current normalized scroll position in pixels.
func (c *Controller) Position() float64 { return c.lastPos }

// Spin starts a new spin toward the given target ticket.
//
// A request while a spin is already running is absorbed as a no-op: the spin
// button will be mashed, and a mash must not be an error. A request against
// an empty participant set is rejected before any physics state exists.
func (c *Controller) Spin(req SpinRequest) error {
	if c.state == StateSpinning {
		c.log.Debug("spin request ignored, already spinning", "spin_id", c.spinID)
		return nil
	}
	if c.idx == nil || c.idx.Len() == 0 {
		return raffle.ErrEmptyParticipants
	}
	if req.MinDuration <= 0 {
		req.MinDuration = defaultSpinDuration
	}

	c.spinID = uuid.New()
	c.req = req
	c.winnerMissing = false
	c.window = InitialWindow(c.idx, c.cfg.Capacity)
	c.startedAt = c.clock.Now()
	c.phys = newSpinPhysics(c.cfg.Physics, c.rng, c.window.Len(), c.lastPos, req.MinDuration)

	// Build the winner window off the frame loop so even a huge index cannot
	// cost a dropped frame at the checkpoint. The channel is buffered: if the
	// spin is cancelled first, the send still completes and the result is
	// simply never read.
	prep := make(chan winnerPrep, 1)
	go func(idx *raffle.Index, capacity int, target string) {
		w, offset, found := WinnerWindow(idx, capacity, target)
		prep <- winnerPrep{window: w, offset: offset, found: found}
	}(c.idx, c.cfg.Capacity, req.TargetTicket)
	c.prepCh = prep

	c.state = StateSpinning
	c.log.Info("spin started",
		"spin_id", c.spinID,
		"target", req.TargetTicket,
		"duration", req.MinDuration,
		"participants", c.idx.Len(),
		"window", c.window.Len())
	return nil
}

// Update advances the animation by one frame. The host calls it once per
// display refresh; it never blocks beyond the checkpoint's own window build
// and returns immediately outside a spin.
func (c *Controller) Update() {
	if c.state != StateSpinning {
		return
	}
	elapsed := c.clock.Now().Sub(c.startedAt)

	c.maybeRetarget(elapsed)

	pos := c.phys.Position(elapsed)
	c.lastPos = c.phys.Normalize(pos)
	if c.cb.OnTick != nil {
		c.cb.OnTick(c.lastPos, c.window)
	}

	if c.phys.Done(elapsed) {
		c.finish()
	}
}

// maybeRetarget performs the one-shot window swap once the checkpoint opens.
// Normally the background build has long finished and the swap is a simple
// channel receive; if the build is somehow still running when the checkpoint
// is about to close, the receive blocks so the swap can never be skipped.
func (c *Controller) maybeRetarget(elapsed time.Duration) {
	if c.prepCh == nil || !c.phys.CheckpointOpen(elapsed) {
		return
	}

	var prep winnerPrep
	select {
	case prep = <-c.prepCh:
	default:
		if !c.phys.CheckpointClosing(elapsed) {
			return // build not ready, checkpoint still open, try next frame
		}
		prep = <-c.prepCh
	}
	c.prepCh = nil

	offset := prep.offset
	if !prep.found {
		// Data-integrity fault: keep the wheel moving on the fallback window
		// and land on its midpoint. The error is reported at spin end.
		c.winnerMissing = true
		offset = prep.window.Len() / 2
		c.log.Warn("target ticket not in index, spinning out on fallback window",
			"spin_id", c.spinID, "target", c.req.TargetTicket)
	}

	// Publish the new window and rebase the physics in the same frame: the
	// position shown this tick equals the position of the previous tick's
	// trajectory at this instant, so the swap is invisible.
	c.window = prep.window
	c.phys.Retarget(elapsed, c.rng, offset)
	c.log.Debug("retargeted",
		"spin_id", c.spinID, "offset", offset, "elapsed", elapsed)
}

func (c *Controller) finish() {
	c.lastPos = c.phys.Normalize(c.phys.FinalPosition())
	c.phys = nil

	if c.winnerMissing {
		c.state = StateErrored
		err := fmt.Errorf("%w: %q", raffle.ErrTicketNotFound, c.req.TargetTicket)
		c.log.Error("spin errored", "spin_id", c.spinID, "err", err)
		if c.cb.OnError != nil {
			c.cb.OnError(err)
		}
		return
	}

	// Resolve from the full index, never from the window: a padded window
	// repeats participants and a stale window could outlive a reload.
	winner, _, found := c.idx.FindByTicket(c.req.TargetTicket)
	if !found {
		c.state = StateErrored
		err := fmt.Errorf("%w: %q", raffle.ErrTicketNotFound, c.req.TargetTicket)
		c.log.Error("spin errored", "spin_id", c.spinID, "err", err)
		if c.cb.OnError != nil {
			c.cb.OnError(err)
		}
		return
	}

	c.state = StateCompleted
	c.log.Info("spin completed",
		"spin_id", c.spinID,
		"winner", winner.FullName(),
		"ticket", winner.TicketNumber)
	if c.cb.OnComplete != nil {
		c.cb.OnComplete(winner)
	}
}

// Cancel aborts any in-flight spin. It is valid from every state: a live
// spin ends in Cancelled, any other state resets to Idle. Because all
// callbacks fire from Update and Update is a no-op outside Spinning, no
// position or completion callback can be delivered after Cancel returns.
func (c *Controller) Cancel() {
	if c.state == StateSpinning {
		c.log.Info("spin cancelled", "spin_id", c.spinID)
		c.state = StateCancelled
	} else {
		c.state = StateIdle
	}
	c.phys = nil
	c.prepCh = nil
	c.winnerMissing = false
}
