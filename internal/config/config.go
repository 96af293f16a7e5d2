package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 900
	WindowHeight = 640

	// Wheel layout
	ItemHeight   = 42.0 // pixel height of one participant row
	CenterOffset = 7    // rows from the top of the strip to the selected slot
	VisibleRows  = 15   // rows drawn, including partial rows at the edges
	WheelX       = 230
	WheelY       = 10
	WheelWidth   = 440

	// Button dimensions
	ButtonWidth  = 160
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Defaults, overridable through the environment
	DefaultCapacity     = 100
	DefaultSpinDuration = 8 * time.Second
)

// Settings holds the spin parameters an operator may want to tune without
// rebuilding: the window capacity, the spin length and the rotation ranges.
// Values come from the environment (a .env file is honored if present), with
// the defaults above as fallback. Zero rotation values mean "use the wheel
// package defaults".
type Settings struct {
	Capacity             int
	SpinDuration         time.Duration
	MinRotations         int
	MaxRotations         int
	RetargetMinRotations int
	RetargetMaxRotations int
	Seed                 int64
}

// Load reads settings from the environment. A missing .env file is not an
// error; a malformed value is.
func Load() (Settings, error) {
	_ = godotenv.Load()

	s := Settings{
		Capacity:     DefaultCapacity,
		SpinDuration: DefaultSpinDuration,
	}

	var err error
	if s.Capacity, err = intEnv("RAFFLE_CAPACITY", s.Capacity); err != nil {
		return Settings{}, err
	}
	if s.Capacity <= 0 {
		return Settings{}, fmt.Errorf("config: RAFFLE_CAPACITY must be positive, got %d", s.Capacity)
	}
	if v := os.Getenv("RAFFLE_SPIN_SECONDS"); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil || secs <= 0 {
			return Settings{}, fmt.Errorf("config: invalid RAFFLE_SPIN_SECONDS %q", v)
		}
		s.SpinDuration = time.Duration(secs * float64(time.Second))
	}
	if s.MinRotations, err = intEnv("RAFFLE_MIN_ROTATIONS", 0); err != nil {
		return Settings{}, err
	}
	if s.MaxRotations, err = intEnv("RAFFLE_MAX_ROTATIONS", 0); err != nil {
		return Settings{}, err
	}
	if s.RetargetMinRotations, err = intEnv("RAFFLE_RETARGET_MIN_ROTATIONS", 0); err != nil {
		return Settings{}, err
	}
	if s.RetargetMaxRotations, err = intEnv("RAFFLE_RETARGET_MAX_ROTATIONS", 0); err != nil {
		return Settings{}, err
	}
	if v := os.Getenv("RAFFLE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("config: invalid RAFFLE_SEED %q", v)
		}
		s.Seed = seed
	}
	return s, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q", key, v)
	}
	return n, nil
}
