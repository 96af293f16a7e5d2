package game

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// soundBank owns the speaker and the wheel's two noises: the row-change tick
// and the landing fanfare. Tones are generated, there are no media files to
// ship. If the speaker cannot be opened the wheel simply runs silent.
type soundBank struct {
	log   *slog.Logger
	sr    beep.SampleRate
	ready bool
	muted bool
}

func newSoundBank(log *slog.Logger) *soundBank {
	s := &soundBank{log: log, sr: beep.SampleRate(44100)}
	if err := speaker.Init(s.sr, s.sr.N(time.Second/20)); err != nil {
		log.Warn("audio unavailable, continuing without sound", "err", err)
		return s
	}
	s.ready = true
	return s
}

func (s *soundBank) play(freq int, d time.Duration) {
	if !s.ready || s.muted {
		return
	}
	tone, err := generators.SinTone(s.sr, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.sr.N(d), tone))
}

// tick is the clack of a row passing the selector.
func (s *soundBank) tick() {
	s.play(1320, 18*time.Millisecond)
}

// fanfare is a small rising arpeggio played when the wheel lands.
func (s *soundBank) fanfare() {
	if !s.ready || s.muted {
		return
	}
	seq := make([]beep.Streamer, 0, 3)
	for _, freq := range []int{523, 659, 784} {
		tone, err := generators.SinTone(s.sr, freq)
		if err != nil {
			return
		}
		seq = append(seq, beep.Take(s.sr.N(160*time.Millisecond), tone))
	}
	speaker.Play(beep.Seq(seq...))
}

func (s *soundBank) toggleMute() {
	s.muted = !s.muted
}
