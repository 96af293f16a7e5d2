package wheel

import (
	"math"
	"math/rand"
	"time"
)

// PhysicsConfig holds the tunables of a spin's motion. Zero values are
// replaced by the defaults below, so an empty config is a valid config.
type PhysicsConfig struct {
	// ItemHeight is the pixel height of one participant row. The physics
	// treats it as an opaque layout constant supplied by the renderer.
	ItemHeight float64

	// CenterOffset is how many slots from the top of the viewport the
	// "selected" row sits. Landing on winner index i means scrolling to
	// (i - CenterOffset) * ItemHeight.
	CenterOffset int

	// MinRotations and MaxRotations bound the random number of full window
	// cycles of the first flight.
	MinRotations int
	MaxRotations int

	// RetargetMinRotations and RetargetMaxRotations bound the tighter
	// re-randomized cycle count after the window swap.
	RetargetMinRotations int
	RetargetMaxRotations int

	// CheckpointMin and CheckpointMax delimit, as fractions of the first
	// flight's duration, the progress window in which the one-shot window
	// swap happens.
	CheckpointMin float64
	CheckpointMax float64

	// RetargetDurationMin and RetargetDurationMax bound the second flight's
	// duration as a random fraction of the first flight's.
	RetargetDurationMin float64
	RetargetDurationMax float64
}

const (
	defaultMinRotations         = 5
	defaultMaxRotations         = 8
	defaultRetargetMinRotations = 2
	defaultRetargetMaxRotations = 4
	defaultCheckpointMin        = 0.05
	defaultCheckpointMax        = 0.20
	defaultRetargetDurationMin  = 0.60
	defaultRetargetDurationMax  = 0.90
)

func (c PhysicsConfig) withDefaults() PhysicsConfig {
	if c.ItemHeight <= 0 {
		c.ItemHeight = 1
	}
	if c.MinRotations <= 0 {
		c.MinRotations = defaultMinRotations
	}
	if c.MaxRotations < c.MinRotations {
		c.MaxRotations = c.MinRotations + (defaultMaxRotations - defaultMinRotations)
	}
	if c.RetargetMinRotations <= 0 {
		c.RetargetMinRotations = defaultRetargetMinRotations
	}
	if c.RetargetMaxRotations < c.RetargetMinRotations {
		c.RetargetMaxRotations = c.RetargetMinRotations + (defaultRetargetMaxRotations - defaultRetargetMinRotations)
	}
	if c.CheckpointMin <= 0 {
		c.CheckpointMin = defaultCheckpointMin
	}
	if c.CheckpointMax <= c.CheckpointMin {
		c.CheckpointMax = defaultCheckpointMax
		if c.CheckpointMax <= c.CheckpointMin {
			c.CheckpointMax = c.CheckpointMin * 2
		}
	}
	if c.RetargetDurationMin <= 0 {
		c.RetargetDurationMin = defaultRetargetDurationMin
	}
	if c.RetargetDurationMax < c.RetargetDurationMin {
		c.RetargetDurationMax = defaultRetargetDurationMax
		if c.RetargetDurationMax < c.RetargetDurationMin {
			c.RetargetDurationMax = c.RetargetDurationMin
		}
	}
	return c
}

// easeOutCubic maps normalized time t in [0,1] to eased progress in [0,1].
// Velocity decays with the cube of the remaining time fraction, which is what
// makes the wheel's deceleration read as physical.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// spinPhysics is the state of one spin's motion: a pure function of elapsed
// time between mutations, mutated exactly once mid-flight by Retarget and
// discarded when the spin ends.
type spinPhysics struct {
	cfg           PhysicsConfig
	circumference float64 // window length in pixels, the cyclic period

	// Current flight segment. Retarget rebases all four fields so the eased
	// trajectory restarts from the swap instant without a position jump.
	phaseStart time.Duration // elapsed time at which this segment began
	duration   time.Duration
	startPos   float64
	distance   float64

	retargeted bool
}

// newSpinPhysics starts the first flight. The real winner's slot is not known
// yet (the initial window generally does not contain it), so the provisional
// target is anchored at the window midpoint; the retarget checkpoint replaces
// it before deceleration becomes visually meaningful.
func newSpinPhysics(cfg PhysicsConfig, rng *rand.Rand, windowLen int, startPos float64, duration time.Duration) *spinPhysics {
	cfg = cfg.withDefaults()
	p := &spinPhysics{
		cfg:           cfg,
		circumference: float64(windowLen) * cfg.ItemHeight,
		duration:      duration,
		startPos:      startPos,
	}
	rotations := randBetween(rng, cfg.MinRotations, cfg.MaxRotations)
	provisional := p.slotPosition(windowLen / 2)
	p.distance = float64(rotations)*p.circumference + p.forwardDelta(startPos, provisional)
	return p
}

// slotPosition converts a window index into the scroll position that puts
// that row in the viewport's selected slot.
func (p *spinPhysics) slotPosition(windowIndex int) float64 {
	return float64(windowIndex-p.cfg.CenterOffset) * p.cfg.ItemHeight
}

// forwardDelta is the shortest non-negative scroll from pos to target within
// one cycle.
func (p *spinPhysics) forwardDelta(pos, target float64) float64 {
	d := math.Mod(target-pos, p.circumference)
	if d < 0 {
		d += p.circumference
	}
	return d
}

// Position returns the scroll position at the given elapsed time since the
// spin began. Once the active segment's duration is reached it returns the
// exact final position rather than the eased approximation, so accumulated
// floating-point error can never move the landing row.
func (p *spinPhysics) Position(elapsed time.Duration) float64 {
	e := elapsed - p.phaseStart
	if e <= 0 {
		return p.startPos
	}
	if e >= p.duration {
		return p.startPos + p.distance
	}
	t := float64(e) / float64(p.duration)
	return p.startPos + p.distance*easeOutCubic(t)
}

func (p *spinPhysics) Done(elapsed time.Duration) bool {
	return elapsed-p.phaseStart >= p.duration
}

func (p *spinPhysics) FinalPosition() float64 {
	return p.startPos + p.distance
}

// progress is the normalized time of the current segment, used only for
// checkpoint gating.
func (p *spinPhysics) progress(elapsed time.Duration) float64 {
	if p.duration <= 0 {
		return 1
	}
	t := float64(elapsed-p.phaseStart) / float64(p.duration)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// CheckpointOpen reports whether the one-shot retarget window is open at the
// given elapsed time.
func (p *spinPhysics) CheckpointOpen(elapsed time.Duration) bool {
	if p.retargeted {
		return false
	}
	return p.progress(elapsed) >= p.cfg.CheckpointMin
}

// CheckpointClosing reports that the retarget window is about to be missed;
// the controller must swap now even if it has to wait for the window build.
func (p *spinPhysics) CheckpointClosing(elapsed time.Duration) bool {
	if p.retargeted {
		return false
	}
	return p.progress(elapsed) >= p.cfg.CheckpointMax
}

// Retarget rebases the trajectory onto the winner's slot in the freshly
// swapped window. The new segment starts exactly at the current eased
// position, so the frame rendered just before the swap and the frame just
// after are continuous; only the remaining distance and duration change.
// Calling it a second time is a bug guarded by the one-shot flag.
func (p *spinPhysics) Retarget(elapsed time.Duration, rng *rand.Rand, winnerIndex int) {
	if p.retargeted {
		return
	}
	pos := p.Position(elapsed)
	target := p.slotPosition(winnerIndex)

	rotations := randBetween(rng, p.cfg.RetargetMinRotations, p.cfg.RetargetMaxRotations)
	frac := p.cfg.RetargetDurationMin +
		rng.Float64()*(p.cfg.RetargetDurationMax-p.cfg.RetargetDurationMin)
	segment := time.Duration(float64(p.duration) * frac)
	// Never let the rebased flight undercut the requested minimum spin time.
	if minRemaining := p.duration - elapsed; segment < minRemaining {
		segment = minRemaining
	}

	p.startPos = pos
	p.distance = float64(rotations)*p.circumference + p.forwardDelta(pos, target)
	p.phaseStart = elapsed
	p.duration = segment
	p.retargeted = true
}

// Normalize folds an absolute scroll position into [0, circumference) for
// rendering. Safe for negative and overflowing values.
func (p *spinPhysics) Normalize(pos float64) float64 {
	if p.circumference <= 0 {
		return 0
	}
	m := math.Mod(pos, p.circumference)
	if m < 0 {
		m += p.circumference
	}
	return m
}

func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
